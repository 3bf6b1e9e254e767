package processor

import (
	"encoding/json"
	"regexp"
	"strings"
)

const toolSchema = `You have access to the following admin tools. When the user asks you to perform one of these actions, respond with a <tool_call> block containing valid JSON, then continue your message normally.

Format:
<tool_call>{"tool":"TOOL_ID","params":{...}}</tool_call>

Available tools:

1. get_posts: Fetch all published blog posts
   <tool_call>{"tool":"get_posts","params":{}}</tool_call>

2. get_products: Fetch all active products
   <tool_call>{"tool":"get_products","params":{}}</tool_call>

3. create_post: Create a new blog post
   Required params: title (string), category ("Mindset"|"Skillset"|"Toolset")
   Optional params: content (string), description (string)
   <tool_call>{"tool":"create_post","params":{"title":"...","category":"Mindset","content":"...","description":"..."}}</tool_call>

4. create_product: Create a new product
   Required params: title (string), price (string), category ("Mindset"|"Skillset"|"Toolset")
   Optional params: description (string)
   <tool_call>{"tool":"create_product","params":{"title":"...","price":"29","category":"Toolset","description":"..."}}</tool_call>

5. delete_post: Delete a post by its UUID
   Required params: id (string)
   <tool_call>{"tool":"delete_post","params":{"id":"uuid-here"}}</tool_call>

Rules:
- Only emit ONE <tool_call> per response.
- Always confirm what you did after the tool result is shown.
- If the user asks to "list posts" or "show posts", use get_posts.
- Only use tools when the user explicitly requests an admin action (list, create, delete).
- NEVER use tools for text generation tasks such as writing titles, descriptions, prompts, or any content. For those tasks, respond with plain text only.
- If asked to "generate", "write", "create text for", or "suggest" any content, respond with plain text, no tool calls.`

// Page context types the chat widget can attach.
const (
	ContextProduct = "product"
	ContextBlog    = "blog"
)

// PageContext describes the product or post the visitor is looking at.
type PageContext struct {
	Type        string
	Title       string
	Description string
	Category    string
	Price       string
	AIPrompt    string
}

func buildSystemPrompt(base string, page *PageContext) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString("\n\n")
	b.WriteString(toolSchema)

	if page == nil {
		return b.String()
	}

	category := page.Category
	if category == "" {
		category = "General"
	}

	switch page.Type {
	case ContextProduct:
		b.WriteString("\n\nCurrent product context:\n")
		b.WriteString(`Title: "` + page.Title + "\"\n")
		b.WriteString("Category: " + category + "\n")
		if page.Price != "" {
			b.WriteString("Price: " + page.Price + "\n")
		}
		if page.Description != "" {
			b.WriteString("Description: " + page.Description + "\n")
		}
		if page.AIPrompt != "" {
			b.WriteString("\nProduct details:\n" + page.AIPrompt + "\n")
		}
	case ContextBlog:
		b.WriteString("\n\nCurrent blog post context:\n")
		b.WriteString(`Title: "` + page.Title + "\"\n")
		b.WriteString("Category: " + category + "\n")
		if page.Description != "" {
			b.WriteString("Description: " + page.Description + "\n")
		}
		if page.AIPrompt != "" {
			b.WriteString("\nKey insights:\n" + page.AIPrompt + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

var toolCallBlock = regexp.MustCompile(`(?s)<tool_call>(.*?)</tool_call>`)

type toolCall struct {
	Tool      string
	Params    map[string]any
	CleanText string
}

// parseToolCall extracts the first <tool_call> block. A block that is not
// valid JSON or names no tool is ignored.
func parseToolCall(reply string) (toolCall, bool) {
	loc := toolCallBlock.FindStringSubmatchIndex(reply)
	if loc == nil {
		return toolCall{}, false
	}

	var payload struct {
		Tool   string         `json:"tool"`
		Params map[string]any `json:"params"`
	}
	if err := json.Unmarshal([]byte(reply[loc[2]:loc[3]]), &payload); err != nil || payload.Tool == "" {
		return toolCall{}, false
	}
	if payload.Params == nil {
		payload.Params = map[string]any{}
	}

	return toolCall{
		Tool:      payload.Tool,
		Params:    payload.Params,
		CleanText: strings.TrimSpace(reply[:loc[0]] + reply[loc[1]:]),
	}, true
}
