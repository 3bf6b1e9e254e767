// Package stripesync keeps local products purchasable through Stripe.
//
// Synchronizer pushes a product, a price and a payment link upstream and
// reports the resulting identifiers; persisting them is the caller's job.
// Archiver makes a product unpurchasable before it is deleted locally. Both
// report outcomes as result values and never return errors.
package stripesync

//go:generate go run go.uber.org/mock/mockgen@latest -source=stripesync.go -destination=mocks_test.go -package=stripesync

import (
	"context"
	"shop-admin/internal/clients/stripe"
	"shop-admin/internal/store"

	"github.com/google/uuid"
)

// StripeAPI defines the Stripe operations the workflows need
type StripeAPI interface {
	Configured() bool
	CreateProduct(ctx context.Context, in stripe.ProductInput, idempotencyKey string) (stripe.Product, error)
	UpdateProduct(ctx context.Context, productID string, in stripe.ProductInput) (stripe.Product, error)
	ArchiveProduct(ctx context.Context, productID string) (stripe.Product, error)
	CreatePrice(ctx context.Context, in stripe.PriceInput, idempotencyKey string) (stripe.Price, error)
	CreatePaymentLink(ctx context.Context, priceID string, idempotencyKey string) (stripe.PaymentLink, error)
	SetPaymentLinkActive(ctx context.Context, paymentLinkID string, active bool) (stripe.PaymentLink, error)
	GetPaymentLink(ctx context.Context, paymentLinkID string) (stripe.PaymentLink, error)
	ListPaymentLinks(ctx context.Context, limit int64) ([]stripe.PaymentLink, error)
}

// ProductStore defines the database operations required by Archiver
type ProductStore interface {
	GetProductByID(ctx context.Context, productID uuid.UUID) (store.Product, error)
}

// ProductToSync is the local product state pushed to Stripe.
type ProductToSync struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description,omitempty"`
	Image              string `json:"image,omitempty"`
	Category           string `json:"category,omitempty"`
	PriceCents         int64  `json:"priceCents"`
	OriginalPriceCents *int64 `json:"originalPriceCents,omitempty"`
	Currency           string `json:"currency"`
	StripeProductID    string `json:"stripeProductId,omitempty"`
	StripePriceID      string `json:"stripePriceId,omitempty"`
}

// FromStoreProduct builds the sync input for a stored product.
func FromStoreProduct(p store.Product) ProductToSync {
	return ProductToSync{
		ID:                 p.ID.String(),
		Title:              p.Title,
		Description:        p.Description,
		Image:              p.Image,
		Category:           p.Category,
		PriceCents:         p.PriceCents,
		OriginalPriceCents: p.OriginalPriceCents,
		Currency:           p.Currency,
		StripeProductID:    p.StripeProductID,
		StripePriceID:      p.StripePriceID,
	}
}

type SyncResult struct {
	Success             bool   `json:"success"`
	StripeProductID     string `json:"stripeProductId,omitempty"`
	StripePriceID       string `json:"stripePriceId,omitempty"`
	StripePaymentLinkID string `json:"stripePaymentLinkId,omitempty"`
	StripeLink          string `json:"stripeLink,omitempty"`
	Error               string `json:"error,omitempty"`
}

// Refs returns the identifiers to persist on the local product.
func (r SyncResult) Refs() store.ProductStripeRefs {
	return store.ProductStripeRefs{
		StripeProductID:     r.StripeProductID,
		StripePriceID:       r.StripePriceID,
		StripePaymentLinkID: r.StripePaymentLinkID,
		StripeLink:          r.StripeLink,
	}
}

// ArchiveResult always has Success set. Archived is true only when the
// Stripe product was actually deactivated.
type ArchiveResult struct {
	Success           bool     `json:"success"`
	Archived          bool     `json:"archived"`
	ArchivedProductID string   `json:"archivedProductId,omitempty"`
	Skipped           bool     `json:"skipped,omitempty"`
	Reason            string   `json:"reason,omitempty"`
	Warnings          []string `json:"warnings,omitempty"`
}
