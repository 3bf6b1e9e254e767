package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"shop-admin/internal/money/stripesync"
	"shop-admin/internal/store"

	"github.com/google/uuid"
)

// ProductStore defines the database operations required by ProductProcessor
type ProductStore interface {
	CreateProduct(ctx context.Context, params store.CreateProductParams) (store.Product, error)
	GetProductByID(ctx context.Context, productID uuid.UUID) (store.Product, error)
	ListProducts(ctx context.Context, params store.ListProductsParams) ([]store.Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, params store.UpdateProductParams) (store.Product, error)
	UpdateProductStripeRefs(ctx context.Context, productID uuid.UUID, refs store.ProductStripeRefs) (store.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}

// Synchronizer pushes a product to Stripe
type Synchronizer interface {
	Sync(ctx context.Context, product stripesync.ProductToSync) stripesync.SyncResult
}

// Archiver retires the Stripe objects of a product
type Archiver interface {
	Archive(ctx context.Context, productID uuid.UUID) stripesync.ArchiveResult
}
