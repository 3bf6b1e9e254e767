package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

func (c *Client) completeGemini(ctx context.Context, req Request) (string, error) {
	if req.APIKey == "" {
		return "", fmt.Errorf("%w: gemini", ErrMissingAPIKey)
	}

	system, history, prompt, err := toGeminiConversation(req.Messages)
	if err != nil {
		return "", err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(req.APIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	modelName := req.Model
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(maxTokens)
	model.SystemInstruction = system

	chat := model.StartChat()
	chat.History = history
	resp, err := chat.SendMessage(ctx, prompt)
	if err != nil {
		return "", normalizeGeminiError(err)
	}

	return geminiText(resp), nil
}

// toGeminiConversation splits messages into the system instruction, prior
// turns, and the final prompt. Gemini names the assistant role "model".
func toGeminiConversation(messages []Message) (*genai.Content, []*genai.Content, genai.Text, error) {
	var (
		system *genai.Content
		turns  []Message
	)
	for _, m := range messages {
		if m.Role == "system" {
			system = &genai.Content{Parts: []genai.Part{genai.Text(m.Content)}}
			continue
		}
		turns = append(turns, m)
	}
	if len(turns) == 0 {
		return nil, nil, "", ErrEmptyConversation
	}

	history := make([]*genai.Content, 0, len(turns)-1)
	for _, m := range turns[:len(turns)-1] {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		history = append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}

	return system, history, genai.Text(turns[len(turns)-1].Content), nil
}

func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "No response from gemini"
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "No response from gemini"
	}
	return b.String()
}

func normalizeGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &APIError{Provider: ProviderGemini, StatusCode: apiErr.Code, Message: apiErr.Message}
	}
	return fmt.Errorf("gemini request failed: %w", err)
}
