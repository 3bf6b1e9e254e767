package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"shop-admin/internal/store"

	"github.com/google/uuid"
)

// ContentStore defines the read operations behind the public API
type ContentStore interface {
	ListPosts(ctx context.Context, params store.ListPostsParams) ([]store.Post, error)
	GetPostByID(ctx context.Context, postID uuid.UUID) (store.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (store.Post, error)
	IncrementPostViews(ctx context.Context, postID uuid.UUID) error
	ListProducts(ctx context.Context, params store.ListProductsParams) ([]store.Product, error)
	GetProductByID(ctx context.Context, productID uuid.UUID) (store.Product, error)
}

// SettingsReader returns settings with secrets already removed.
type SettingsReader interface {
	ListSettings(ctx context.Context) (map[string]json.RawMessage, error)
}
