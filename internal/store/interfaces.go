package store

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	GetDB() *sqlx.DB
	Ping(ctx context.Context) error
	Close() error

	// Product operations
	CreateProduct(ctx context.Context, params CreateProductParams) (Product, error)
	GetProductByID(ctx context.Context, productID uuid.UUID) (Product, error)
	GetProductByPaymentLinkID(ctx context.Context, paymentLinkID string) (Product, error)
	ListProducts(ctx context.Context, params ListProductsParams) ([]Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, params UpdateProductParams) (Product, error)
	UpdateProductStripeRefs(ctx context.Context, productID uuid.UUID, refs ProductStripeRefs) (Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// Post operations
	CreatePost(ctx context.Context, params PostParams) (Post, error)
	GetPostByID(ctx context.Context, postID uuid.UUID) (Post, error)
	GetPostBySlug(ctx context.Context, slug string) (Post, error)
	ListPosts(ctx context.Context, params ListPostsParams) ([]Post, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, params PostParams) (Post, error)
	IncrementPostViews(ctx context.Context, postID uuid.UUID) error
	DeletePost(ctx context.Context, postID uuid.UUID) error
	ListPostAnalytics(ctx context.Context) ([]PostAnalytics, error)

	// Subscriber operations
	ListSubscribers(ctx context.Context, limit, offset int) ([]Subscriber, error)
	DeleteSubscriber(ctx context.Context, subscriberID uuid.UUID) error
	CountSubscribersByMonth(ctx context.Context) ([]MonthlyCount, error)

	// Settings operations
	ListSettings(ctx context.Context) ([]Setting, error)
	GetSetting(ctx context.Context, key string) (Setting, error)
	UpsertSettings(ctx context.Context, values map[string]json.RawMessage) error

	// Dashboard
	GetDashboardStats(ctx context.Context) (DashboardStats, error)
}

var _ Storer = (*Store)(nil)
