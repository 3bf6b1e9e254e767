package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Empty Stripe* fields mean the product has not
// been synced yet.
type Product struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	Title               string    `db:"title" json:"title"`
	Description         string    `db:"description" json:"description"`
	Image               string    `db:"image" json:"image"`
	Category            string    `db:"category" json:"category"`
	PriceCents          int64     `db:"price_cents" json:"price_cents"`
	OriginalPriceCents  *int64    `db:"original_price_cents" json:"original_price_cents,omitempty"`
	Currency            string    `db:"currency" json:"currency"`
	StripeProductID     string    `db:"stripe_product_id" json:"stripe_product_id"`
	StripePriceID       string    `db:"stripe_price_id" json:"stripe_price_id"`
	StripePaymentLinkID string    `db:"stripe_payment_link_id" json:"stripe_payment_link_id"`
	StripeLink          string    `db:"stripe_link" json:"stripe_link"`
	Active              bool      `db:"active" json:"active"`
	SortOrder           int       `db:"sort_order" json:"sort_order"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

type CreateProductParams struct {
	Title              string
	Description        string
	Image              string
	Category           string
	PriceCents         int64
	OriginalPriceCents *int64
	Currency           string
	Active             bool
	SortOrder          int
}

// UpdateProductParams replaces every editable column. Stripe references are
// written only through UpdateProductStripeRefs.
type UpdateProductParams struct {
	Title              string
	Description        string
	Image              string
	Category           string
	PriceCents         int64
	OriginalPriceCents *int64
	Currency           string
	Active             bool
	SortOrder          int
}

type ProductStripeRefs struct {
	StripeProductID     string
	StripePriceID       string
	StripePaymentLinkID string
	StripeLink          string
}

type ListProductsParams struct {
	ActiveOnly bool
	Category   string
	Limit      int
	Offset     int
}

const productColumns = `id, title, description, image, category, price_cents, original_price_cents, currency,
	stripe_product_id, stripe_price_id, stripe_payment_link_id, stripe_link, active, sort_order,
	created_at, updated_at`

var sqlCreateProduct = `
INSERT INTO products (title, description, image, category, price_cents, original_price_cents, currency, active, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + productColumns

func (s *Store) CreateProduct(ctx context.Context, params CreateProductParams) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlCreateProduct,
		params.Title,
		params.Description,
		params.Image,
		params.Category,
		params.PriceCents,
		params.OriginalPriceCents,
		params.Currency,
		params.Active,
		params.SortOrder,
	)
	if err != nil {
		return Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return product, nil
}

var sqlGetProductByID = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`

func (s *Store) GetProductByID(ctx context.Context, productID uuid.UUID) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlGetProductByID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

var sqlGetProductByPaymentLinkID = `
SELECT ` + productColumns + `
FROM products
WHERE stripe_payment_link_id = $1
LIMIT 1
`

// GetProductByPaymentLinkID resolves the product a checkout was made through.
func (s *Store) GetProductByPaymentLinkID(ctx context.Context, paymentLinkID string) (Product, error) {
	if paymentLinkID == "" {
		return Product{}, ErrNotFound
	}
	var product Product
	err := s.db.GetContext(ctx, &product, sqlGetProductByPaymentLinkID, paymentLinkID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("failed to get product by payment link: %w", err)
	}
	return product, nil
}

var sqlListProducts = `
SELECT ` + productColumns + `
FROM products
WHERE ($1 = FALSE OR active = TRUE)
  AND ($4::text = '' OR category = $4)
ORDER BY sort_order ASC, created_at DESC
LIMIT $2 OFFSET $3
`

func (s *Store) ListProducts(ctx context.Context, params ListProductsParams) ([]Product, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	products := []Product{}
	err := s.db.SelectContext(ctx, &products, sqlListProducts, params.ActiveOnly, limit, params.Offset, params.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

var sqlUpdateProduct = `
UPDATE products
SET title = $2,
    description = $3,
    image = $4,
    category = $5,
    price_cents = $6,
    original_price_cents = $7,
    currency = $8,
    active = $9,
    sort_order = $10,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + productColumns

func (s *Store) UpdateProduct(ctx context.Context, productID uuid.UUID, params UpdateProductParams) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlUpdateProduct,
		productID,
		params.Title,
		params.Description,
		params.Image,
		params.Category,
		params.PriceCents,
		params.OriginalPriceCents,
		params.Currency,
		params.Active,
		params.SortOrder,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

var sqlUpdateProductStripeRefs = `
UPDATE products
SET stripe_product_id = $2,
    stripe_price_id = $3,
    stripe_payment_link_id = $4,
    stripe_link = $5,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + productColumns

// UpdateProductStripeRefs persists the identifiers returned by a successful
// sync. Until this succeeds the remote objects are not linked locally.
func (s *Store) UpdateProductStripeRefs(ctx context.Context, productID uuid.UUID, refs ProductStripeRefs) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlUpdateProductStripeRefs,
		productID,
		refs.StripeProductID,
		refs.StripePriceID,
		refs.StripePaymentLinkID,
		refs.StripeLink,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("failed to update product stripe refs: %w", err)
	}
	return product, nil
}

const sqlDeleteProduct = `
DELETE FROM products
WHERE id = $1
`

func (s *Store) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteProduct, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
