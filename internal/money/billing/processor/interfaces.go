package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"shop-admin/internal/clients/stripe"
	"shop-admin/internal/money/stripesync"
	"shop-admin/internal/store"

	"github.com/google/uuid"
)

// StripeAccount defines the account-level Stripe operations
type StripeAccount interface {
	Configured() bool
	Mode() string
	Balance(ctx context.Context) (stripe.Balance, error)
}

// Synchronizer pushes a product to Stripe
type Synchronizer interface {
	Sync(ctx context.Context, product stripesync.ProductToSync) stripesync.SyncResult
}

// Archiver retires the Stripe objects of a product
type Archiver interface {
	Archive(ctx context.Context, productID uuid.UUID) stripesync.ArchiveResult
}

// BillingStore defines the database operations required by BillingProcessor
type BillingStore interface {
	GetProductByPaymentLinkID(ctx context.Context, paymentLinkID string) (store.Product, error)
}
