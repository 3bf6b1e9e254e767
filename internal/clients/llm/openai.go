package llm

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const chatCompletionsPath = "/chat/completions"

func (c *Client) completeOpenAI(ctx context.Context, req Request) (string, error) {
	if req.APIKey == "" {
		return "", fmt.Errorf("%w: openai", ErrMissingAPIKey)
	}
	return c.chatCompletion(ctx, ProviderOpenAI, openAIBaseURL(req.Endpoint), req.APIKey, req.Model, req.Messages)
}

func (c *Client) completeAnthropic(ctx context.Context, req Request) (string, error) {
	if req.APIKey == "" {
		return "", fmt.Errorf("%w: anthropic", ErrMissingAPIKey)
	}
	model := req.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	return c.chatCompletion(ctx, ProviderAnthropic, c.anthropicURL, req.APIKey, model, req.Messages)
}

// completeOllama uses Ollama's OpenAI-compatible endpoint on the same host as
// the configured native chat URL, with thinking disabled.
func (c *Client) completeOllama(ctx context.Context, req Request) (string, error) {
	baseURL, err := ollamaBaseURL(req.Endpoint)
	if err != nil {
		return "", err
	}
	return c.chatCompletion(ctx, ProviderOllama, baseURL, req.APIKey, req.Model, req.Messages,
		option.WithJSONSet("think", false))
}

func (c *Client) chatCompletion(ctx context.Context, provider, baseURL, apiKey, model string, messages []Message, opts ...option.RequestOption) (string, error) {
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(c.httpClient),
		option.WithMaxRetries(c.maxRetries),
	)

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Messages:    toOpenAIMessages(messages),
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
	}, opts...)
	if err != nil {
		return "", normalizeOpenAIError(provider, err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "No response from " + provider, nil
	}
	return completion.Choices[0].Message.Content, nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			out = append(out, openai.SystemMessage(m.Content))
		case "assistant":
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

// openAIBaseURL accepts a full chat completions URL or nothing. Any other
// endpoint (such as the default Ollama URL) falls back to the OpenAI API.
func openAIBaseURL(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if strings.HasSuffix(endpoint, chatCompletionsPath) {
		return strings.TrimSuffix(endpoint, chatCompletionsPath) + "/"
	}
	return DefaultOpenAIURL
}

func ollamaBaseURL(endpoint string) (string, error) {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultOllamaURL
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid ollama endpoint %q", endpoint)
	}
	return u.Scheme + "://" + u.Host + "/v1/", nil
}

func normalizeOpenAIError(provider string, err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = fmt.Sprintf("%s error: %d", provider, apiErr.StatusCode)
		}
		return &APIError{Provider: provider, StatusCode: apiErr.StatusCode, Message: msg}
	}
	return fmt.Errorf("%s request failed: %w", provider, err)
}
