package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"shop-admin/internal/clients/llm"
	settingsProcessor "shop-admin/internal/settings/processor"
)

type ChatConfigReader interface {
	ChatConfig(ctx context.Context) (settingsProcessor.ChatConfig, string, error)
}

type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// ToolExecutor runs admin tools requested by the model.
type ToolExecutor interface {
	Configured() bool
	ExecuteTool(ctx context.Context, tool string, params map[string]any) (map[string]any, error)
}
