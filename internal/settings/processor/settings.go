package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=settings.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"shop-admin/internal/observability"
	"shop-admin/internal/store"
)

// ChatSettingsKey is the settings row holding the chat assistant config.
const ChatSettingsKey = "chat_ai"

const (
	SourceDefault  = "default"
	SourceDatabase = "database"
)

var (
	ErrNoSettings      = errors.New("no settings provided")
	ErrFailedOperation = errors.New("settings operation failed")
)

type SettingsStore interface {
	ListSettings(ctx context.Context) ([]store.Setting, error)
	GetSetting(ctx context.Context, key string) (store.Setting, error)
	UpsertSettings(ctx context.Context, values map[string]json.RawMessage) error
}

// ChatConfig configures the chat assistant. APIKey is server-side only and
// is never returned by the API.
type ChatConfig struct {
	Provider          string `json:"provider"`
	Model             string `json:"model"`
	Endpoint          string `json:"endpoint"`
	APIKey            string `json:"apiKey,omitempty"`
	SystemPrompt      string `json:"systemPrompt"`
	EnableProductChat bool   `json:"enableProductChat"`
	EnableBlogChat    bool   `json:"enableBlogChat"`
}

func DefaultChatConfig() ChatConfig {
	return ChatConfig{
		Provider:          "ollama",
		Model:             "qwen3:0.6b",
		Endpoint:          "http://127.0.0.1:11434/api/chat",
		SystemPrompt:      "You are a helpful AI assistant. Be friendly, helpful, and concise.",
		EnableProductChat: true,
		EnableBlogChat:    true,
	}
}

// PublicChatConfig is ChatConfig as shown to admins.
type PublicChatConfig struct {
	Provider          string `json:"provider"`
	Model             string `json:"model"`
	Endpoint          string `json:"endpoint"`
	SystemPrompt      string `json:"systemPrompt"`
	EnableProductChat bool   `json:"enableProductChat"`
	EnableBlogChat    bool   `json:"enableBlogChat"`
	APIKeySet         bool   `json:"apiKeySet"`
}

func (c ChatConfig) Public() PublicChatConfig {
	return PublicChatConfig{
		Provider:          c.Provider,
		Model:             c.Model,
		Endpoint:          c.Endpoint,
		SystemPrompt:      c.SystemPrompt,
		EnableProductChat: c.EnableProductChat,
		EnableBlogChat:    c.EnableBlogChat,
		APIKeySet:         c.APIKey != "",
	}
}

// ChatConfigInput updates the chat config. Nil flags and an empty APIKey
// keep the stored values; ClearAPIKey removes the stored key.
type ChatConfigInput struct {
	Provider          string
	Model             string
	Endpoint          string
	APIKey            string
	ClearAPIKey       bool
	SystemPrompt      string
	EnableProductChat *bool
	EnableBlogChat    *bool
}

type SettingsProcessor struct {
	store  SettingsStore
	logger *observability.Logger
}

func New(store SettingsStore, logger *observability.Logger) SettingsProcessor {
	return SettingsProcessor{
		store:  store,
		logger: logger,
	}
}

// ListSettings returns every setting keyed by name, with secrets removed.
func (p *SettingsProcessor) ListSettings(ctx context.Context) (map[string]json.RawMessage, error) {
	rows, err := p.store.ListSettings(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list settings", err)
		return nil, fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}

	settings := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		value := row.Value
		if row.Key == ChatSettingsKey {
			value = redactChatValue(value)
		}
		settings[row.Key] = value
	}
	return settings, nil
}

// SaveSettings upserts every key at once. A chat config saved this way keeps
// the stored API key when the new value carries none.
func (p *SettingsProcessor) SaveSettings(ctx context.Context, values map[string]json.RawMessage) error {
	if len(values) == 0 {
		return ErrNoSettings
	}

	if raw, ok := values[ChatSettingsKey]; ok {
		current, _, err := p.ChatConfig(ctx)
		if err != nil {
			return err
		}
		merged, err := keepAPIKey(raw, current.APIKey)
		if err != nil {
			return fmt.Errorf("%w: invalid chat config: %v", ErrFailedOperation, err)
		}
		values[ChatSettingsKey] = merged
	}

	if err := p.store.UpsertSettings(ctx, values); err != nil {
		p.logger.Error(ctx, "failed to save settings", err)
		return fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "settings_count", Value: len(values)}), "settings saved")
	return nil
}

// ChatConfig returns the stored chat config layered over the defaults, and
// where it came from. Read failures fall back to the defaults.
func (p *SettingsProcessor) ChatConfig(ctx context.Context) (ChatConfig, string, error) {
	cfg := DefaultChatConfig()

	setting, err := p.store.GetSetting(ctx, ChatSettingsKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.WarnWithError(ctx, "failed to read chat config, using defaults", err)
		}
		return cfg, SourceDefault, nil
	}

	if err := json.Unmarshal(setting.Value, &cfg); err != nil {
		p.logger.WarnWithError(ctx, "stored chat config is not valid, using defaults", err)
		return DefaultChatConfig(), SourceDefault, nil
	}
	return cfg, SourceDatabase, nil
}

func (p *SettingsProcessor) SaveChatConfig(ctx context.Context, in ChatConfigInput) (ChatConfig, error) {
	cfg, _, err := p.ChatConfig(ctx)
	if err != nil {
		return ChatConfig{}, err
	}

	cfg.Provider = in.Provider
	cfg.Model = in.Model
	cfg.Endpoint = in.Endpoint
	cfg.SystemPrompt = in.SystemPrompt
	switch {
	case in.ClearAPIKey:
		cfg.APIKey = ""
	case in.APIKey != "":
		cfg.APIKey = in.APIKey
	}
	if in.EnableProductChat != nil {
		cfg.EnableProductChat = *in.EnableProductChat
	}
	if in.EnableBlogChat != nil {
		cfg.EnableBlogChat = *in.EnableBlogChat
	}

	value, err := json.Marshal(cfg)
	if err != nil {
		return ChatConfig{}, fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}
	if err := p.store.UpsertSettings(ctx, map[string]json.RawMessage{ChatSettingsKey: value}); err != nil {
		p.logger.Error(ctx, "failed to save chat config", err)
		return ChatConfig{}, fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "ai_provider", Value: cfg.Provider}), "chat config saved")
	return cfg, nil
}

func redactChatValue(raw json.RawMessage) json.RawMessage {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return raw
	}
	_, hasKey := fields["apiKey"]
	if !hasKey {
		return raw
	}
	delete(fields, "apiKey")
	redacted, err := json.Marshal(fields)
	if err != nil {
		return raw
	}
	return redacted
}

func keepAPIKey(raw json.RawMessage, storedKey string) (json.RawMessage, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if key, _ := fields["apiKey"].(string); key != "" || storedKey == "" {
		return raw, nil
	}
	fields["apiKey"] = storedKey
	return json.Marshal(fields)
}
