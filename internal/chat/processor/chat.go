package processor

import (
	"context"
	"errors"
	"fmt"
	"shop-admin/internal/clients/llm"
	"shop-admin/internal/observability"
	settingsProcessor "shop-admin/internal/settings/processor"
	"strings"
)

var (
	ErrChatDisabled = errors.New("chat is disabled for this page type")
	ErrMissingTool  = errors.New("missing tool name")
)

// APIKeys are the provider keys from process configuration, used when the
// stored chat config carries none.
type APIKeys struct {
	OpenAI    string
	Anthropic string
	Gemini    string
}

func (k APIKeys) forProvider(provider string) string {
	switch provider {
	case llm.ProviderOpenAI:
		return k.OpenAI
	case llm.ProviderAnthropic:
		return k.Anthropic
	case llm.ProviderGemini:
		return k.Gemini
	default:
		return ""
	}
}

type Message struct {
	Role    string
	Content string
}

type ChatRequest struct {
	Messages []Message
	Context  *PageContext
}

type ToolResult struct {
	ToolID string         `json:"toolId"`
	Data   map[string]any `json:"data,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type ChatResponse struct {
	Response   string      `json:"response"`
	ToolResult *ToolResult `json:"toolResult,omitempty"`
	Provider   string      `json:"provider"`
}

type ChatProcessor struct {
	settings  ChatConfigReader
	completer Completer
	tools     ToolExecutor
	keys      APIKeys
	logger    *observability.Logger
}

func New(settings ChatConfigReader, completer Completer, tools ToolExecutor, keys APIKeys, logger *observability.Logger) ChatProcessor {
	return ChatProcessor{
		settings:  settings,
		completer: completer,
		tools:     tools,
		keys:      keys,
		logger:    logger,
	}
}

// Chat answers the conversation with the configured provider. Client system
// messages are dropped; the server builds its own. When the reply requests a
// tool and the relay is configured, the tool runs and its outcome is attached.
func (p *ChatProcessor) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	cfg, _, err := p.settings.ChatConfig(ctx)
	if err != nil {
		return ChatResponse{}, err
	}

	if req.Context != nil {
		if (req.Context.Type == ContextProduct && !cfg.EnableProductChat) ||
			(req.Context.Type == ContextBlog && !cfg.EnableBlogChat) {
			return ChatResponse{}, ErrChatDisabled
		}
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "ai_provider", Value: cfg.Provider})

	systemPrompt := cfg.SystemPrompt
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = settingsProcessor.DefaultChatConfig().SystemPrompt
	}

	messages := []llm.Message{{Role: "system", Content: buildSystemPrompt(systemPrompt, req.Context)}}
	for _, m := range req.Messages {
		if m.Role == "system" {
			continue
		}
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = p.keys.forProvider(cfg.Provider)
	}

	reply, err := p.completer.Complete(ctx, llm.Request{
		Provider: cfg.Provider,
		Model:    cfg.Model,
		Endpoint: cfg.Endpoint,
		APIKey:   apiKey,
		Messages: messages,
	})
	if err != nil {
		return ChatResponse{}, err
	}

	resp := ChatResponse{Response: reply, Provider: cfg.Provider}

	call, ok := parseToolCall(reply)
	if !ok || !p.tools.Configured() {
		return resp, nil
	}

	resp.Response = call.CleanText
	resp.ToolResult = &ToolResult{ToolID: call.Tool}
	data, err := p.tools.ExecuteTool(ctx, call.Tool, call.Params)
	if err != nil {
		p.logger.WarnWithError(observability.WithFields(ctx, observability.Field{Key: "tool", Value: call.Tool}), "tool call failed", err)
		resp.ToolResult.Error = err.Error()
		return resp, nil
	}
	resp.ToolResult.Data = data
	return resp, nil
}

// ExecuteTool relays an admin tool call directly.
func (p *ChatProcessor) ExecuteTool(ctx context.Context, tool string, params map[string]any) (map[string]any, error) {
	tool = strings.TrimSpace(tool)
	if tool == "" {
		return nil, ErrMissingTool
	}

	data, err := p.tools.ExecuteTool(ctx, tool, params)
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", tool, err)
	}
	return data, nil
}
