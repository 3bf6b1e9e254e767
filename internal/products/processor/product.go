package processor

import (
	"context"
	"errors"
	"fmt"
	"shop-admin/internal/money/currency"
	"shop-admin/internal/money/stripesync"
	"shop-admin/internal/observability"
	"shop-admin/internal/store"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCurrency = errors.New("unsupported currency")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrFailedOperation = errors.New("product operation failed")
)

type ProductProcessor struct {
	store        ProductStore
	synchronizer Synchronizer
	archiver     Archiver
	logger       *observability.Logger
}

func New(store ProductStore, synchronizer Synchronizer, archiver Archiver, logger *observability.Logger) ProductProcessor {
	return ProductProcessor{
		store:        store,
		synchronizer: synchronizer,
		archiver:     archiver,
		logger:       logger,
	}
}

// ProductInput holds the editable fields of a product.
type ProductInput struct {
	Title              string
	Description        string
	Image              string
	Category           string
	PriceCents         int64
	OriginalPriceCents *int64
	Currency           string
	Active             bool
	SortOrder          int
	SyncToStripe       bool
}

// Product is a stored product with prices rendered for display.
type Product struct {
	store.Product
	DisplayPrice         string `json:"display_price"`
	DisplayOriginalPrice string `json:"display_original_price,omitempty"`
}

// SaveResult is returned by every write. StripeWarning is set when the product
// was saved but could not be pushed to Stripe.
type SaveResult struct {
	Product       Product `json:"product"`
	Synced        bool    `json:"synced"`
	StripeWarning string  `json:"stripe_warning,omitempty"`
}

type DeleteResult struct {
	Deleted bool                     `json:"deleted"`
	Archive stripesync.ArchiveResult `json:"archive"`
}

func (p *ProductProcessor) CreateProduct(ctx context.Context, input ProductInput) (SaveResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "title", Value: input.Title})

	code, err := validateInput(input)
	if err != nil {
		return SaveResult{}, err
	}

	product, err := p.store.CreateProduct(ctx, store.CreateProductParams{
		Title:              strings.TrimSpace(input.Title),
		Description:        input.Description,
		Image:              input.Image,
		Category:           input.Category,
		PriceCents:         input.PriceCents,
		OriginalPriceCents: input.OriginalPriceCents,
		Currency:           code,
		Active:             input.Active,
		SortOrder:          input.SortOrder,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create product", err)
		return SaveResult{}, fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "product_id", Value: product.ID.String()})
	p.logger.Info(ctx, "product created")

	return p.maybeSync(ctx, product, input.SyncToStripe), nil
}

func (p *ProductProcessor) UpdateProduct(ctx context.Context, productID uuid.UUID, input ProductInput) (SaveResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "product_id", Value: productID.String()})

	code, err := validateInput(input)
	if err != nil {
		return SaveResult{}, err
	}

	product, err := p.store.UpdateProduct(ctx, productID, store.UpdateProductParams{
		Title:              strings.TrimSpace(input.Title),
		Description:        input.Description,
		Image:              input.Image,
		Category:           input.Category,
		PriceCents:         input.PriceCents,
		OriginalPriceCents: input.OriginalPriceCents,
		Currency:           code,
		Active:             input.Active,
		SortOrder:          input.SortOrder,
	})
	if err != nil {
		return SaveResult{}, p.mapStoreError(ctx, "failed to update product", err)
	}

	p.logger.Info(ctx, "product updated")
	return p.maybeSync(ctx, product, input.SyncToStripe), nil
}

func (p *ProductProcessor) GetProduct(ctx context.Context, productID uuid.UUID) (Product, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "product_id", Value: productID.String()})

	product, err := p.store.GetProductByID(ctx, productID)
	if err != nil {
		return Product{}, p.mapStoreError(ctx, "failed to get product", err)
	}
	return p.present(ctx, product), nil
}

func (p *ProductProcessor) ListProducts(ctx context.Context, params store.ListProductsParams) ([]Product, error) {
	products, err := p.store.ListProducts(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to list products", err)
		return nil, fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}

	out := make([]Product, 0, len(products))
	for _, product := range products {
		out = append(out, p.present(ctx, product))
	}
	return out, nil
}

// DeleteProduct archives the product in Stripe and then removes it locally.
// Archive problems are logged and never block the delete.
func (p *ProductProcessor) DeleteProduct(ctx context.Context, productID uuid.UUID) (DeleteResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "product_id", Value: productID.String()})

	archive := p.archiver.Archive(ctx, productID)
	switch {
	case archive.Skipped:
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "reason", Value: archive.Reason}), "stripe archive skipped")
	case len(archive.Warnings) > 0:
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "warnings", Value: archive.Warnings}), "stripe archive finished with warnings")
	}

	if err := p.store.DeleteProduct(ctx, productID); err != nil {
		return DeleteResult{Archive: archive}, p.mapStoreError(ctx, "failed to delete product", err)
	}

	p.logger.Info(ctx, "product deleted")
	return DeleteResult{Deleted: true, Archive: archive}, nil
}

// ResyncProduct pushes a stored product to Stripe regardless of its
// last-saved sync preference.
func (p *ProductProcessor) ResyncProduct(ctx context.Context, productID uuid.UUID) (SaveResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "product_id", Value: productID.String()})

	product, err := p.store.GetProductByID(ctx, productID)
	if err != nil {
		return SaveResult{}, p.mapStoreError(ctx, "failed to load product for resync", err)
	}
	return p.sync(ctx, product), nil
}

func (p *ProductProcessor) maybeSync(ctx context.Context, product store.Product, syncToStripe bool) SaveResult {
	if !syncToStripe || product.PriceCents <= 0 {
		return SaveResult{Product: p.present(ctx, product)}
	}
	return p.sync(ctx, product)
}

// sync runs the synchronizer and persists the returned references. The
// product stays saved when any part of this fails.
func (p *ProductProcessor) sync(ctx context.Context, product store.Product) SaveResult {
	result := p.synchronizer.Sync(ctx, stripesync.FromStoreProduct(product))
	if !result.Success {
		p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "stripe_error", Value: result.Error}), "product saved without stripe sync")
		return SaveResult{Product: p.present(ctx, product), StripeWarning: result.Error}
	}

	updated, err := p.store.UpdateProductStripeRefs(ctx, product.ID, result.Refs())
	if err != nil {
		p.logger.Error(ctx, "failed to persist stripe references", err)
		return SaveResult{
			Product:       p.present(ctx, product),
			StripeWarning: "Synced to Stripe but saving the references failed; sync again to repair",
		}
	}

	return SaveResult{Product: p.present(ctx, updated), Synced: true}
}

func (p *ProductProcessor) present(ctx context.Context, product store.Product) Product {
	out := Product{Product: product}

	display, err := currency.Format(product.PriceCents, product.Currency)
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to format price", err)
		return out
	}
	out.DisplayPrice = display

	if product.OriginalPriceCents != nil {
		if display, err := currency.Format(*product.OriginalPriceCents, product.Currency); err == nil {
			out.DisplayOriginalPrice = display
		}
	}
	return out
}

func (p *ProductProcessor) mapStoreError(ctx context.Context, msg string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrProductNotFound
	}
	p.logger.Error(ctx, msg, err)
	return fmt.Errorf("%w: %v", ErrFailedOperation, err)
}

// validateInput returns the normalized currency code.
func validateInput(input ProductInput) (string, error) {
	if input.PriceCents < 0 {
		return "", ErrInvalidPrice
	}
	if input.OriginalPriceCents != nil && *input.OriginalPriceCents < 0 {
		return "", ErrInvalidPrice
	}
	code, err := currency.Normalize(input.Currency)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCurrency, err)
	}
	return code, nil
}
