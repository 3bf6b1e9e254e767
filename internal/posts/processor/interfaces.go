package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"shop-admin/internal/store"

	"github.com/google/uuid"
)

// PostStore defines the database operations required by PostProcessor
type PostStore interface {
	CreatePost(ctx context.Context, params store.PostParams) (store.Post, error)
	GetPostByID(ctx context.Context, postID uuid.UUID) (store.Post, error)
	ListPosts(ctx context.Context, params store.ListPostsParams) ([]store.Post, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, params store.PostParams) (store.Post, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
}
