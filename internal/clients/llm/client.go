package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"shop-admin/internal/observability"
	"strings"
	"time"
)

const (
	ProviderOllama    = "ollama"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

const (
	DefaultOpenAIURL    = "https://api.openai.com/v1/"
	DefaultAnthropicURL = "https://api.anthropic.com/v1/"
	DefaultOllamaURL    = "http://127.0.0.1:11434/api/chat"

	defaultAnthropicModel = "claude-3-haiku-20240307"
	defaultTimeout        = 60 * time.Second
	maxTokens             = 1000
	temperature           = 0.7
)

var (
	ErrMissingAPIKey       = errors.New("AI provider API key is not configured")
	ErrUnsupportedProvider = errors.New("unsupported AI provider")
	ErrEmptyConversation   = errors.New("conversation has no messages")
)

// APIError is returned when the provider answers with an error. Message is
// the provider's own text and is safe to show to the caller.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a single completion call. Provider settings travel with each
// request because they are editable at runtime.
type Request struct {
	Provider string
	Model    string
	Endpoint string
	APIKey   string
	Messages []Message
}

type Config struct {
	HTTPClient *http.Client
	// AnthropicURL overrides the OpenAI-compatible Anthropic base URL.
	AnthropicURL string
	MaxRetries   int
}

// Client sends chat completions to the configured provider. openai, ollama
// and anthropic go through the OpenAI chat completions API; gemini uses the
// Gemini SDK.
type Client struct {
	httpClient   *http.Client
	anthropicURL string
	maxRetries   int
	logger       *observability.Logger
}

func NewClient(cfg Config, logger *observability.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	anthropicURL := cfg.AnthropicURL
	if anthropicURL == "" {
		anthropicURL = DefaultAnthropicURL
	}
	return &Client{
		httpClient:   httpClient,
		anthropicURL: anthropicURL,
		maxRetries:   cfg.MaxRetries,
		logger:       logger,
	}
}

var thinkBlock = regexp.MustCompile(`(?is)<think>.*?</think>`)

// Complete returns the assistant reply with any <think> blocks removed.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if len(req.Messages) == 0 {
		return "", ErrEmptyConversation
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "ai_provider", Value: req.Provider},
		observability.Field{Key: "ai_model", Value: req.Model},
	)

	var (
		reply string
		err   error
	)
	switch req.Provider {
	case ProviderOllama, "":
		reply, err = c.completeOllama(ctx, req)
	case ProviderOpenAI:
		reply, err = c.completeOpenAI(ctx, req)
	case ProviderAnthropic:
		reply, err = c.completeAnthropic(ctx, req)
	case ProviderGemini:
		reply, err = c.completeGemini(ctx, req)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedProvider, req.Provider)
	}
	if err != nil {
		c.logger.Error(ctx, "AI completion failed", err)
		return "", err
	}

	return strings.TrimSpace(thinkBlock.ReplaceAllString(reply, "")), nil
}
