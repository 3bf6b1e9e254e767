package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"shop-admin/internal/observability"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

var (
	// ErrNotConfigured is returned before any network call when no webhook URL is set.
	ErrNotConfigured = errors.New("N8N_WEBHOOK_URL is not configured")
	ErrEmptyResponse = errors.New("n8n webhook returned an empty response")
)

// APIError is returned for non-2xx webhook responses. Body holds the raw
// response text.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("n8n webhook returned %d: %s", e.StatusCode, e.Body)
}

type Config struct {
	WebhookURL string
	HTTPClient *http.Client
}

// Client relays admin tool calls to an n8n workflow webhook.
type Client struct {
	webhookURL string
	httpClient *http.Client
	logger     *observability.Logger
}

func NewClient(cfg Config, logger *observability.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		webhookURL: cfg.WebhookURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) Configured() bool {
	return c.webhookURL != ""
}

type toolRequest struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params"`
}

// ExecuteTool posts {"tool", "params"} to the webhook and decodes the JSON
// object it answers with.
func (c *Client) ExecuteTool(ctx context.Context, tool string, params map[string]any) (map[string]any, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if params == nil {
		params = map[string]any{}
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "tool", Value: tool})

	body, err := json.Marshal(toolRequest{Tool: tool, Params: params})
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool call: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "n8n webhook request failed", err)
		return nil, fmt.Errorf("failed to call n8n webhook: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read n8n response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
		c.logger.Error(ctx, "n8n webhook returned an error status", apiErr)
		return nil, apiErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrEmptyResponse
	}

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode n8n response: %w", err)
	}

	c.logger.Info(ctx, "n8n tool executed")
	return result, nil
}
