package stripesync

import (
	"context"
	"errors"
	"fmt"
	"shop-admin/internal/clients/stripe"
	"shop-admin/internal/observability"
	"strconv"
	"strings"
)

const (
	priceSource       = "shop-admin"
	metaOriginalPrice = "original_price_cents"
)

var (
	ErrMissingID       = errors.New("product id is required")
	ErrMissingTitle    = errors.New("title is required")
	ErrInvalidPrice    = errors.New("priceCents must be greater than 0")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")
)

type Synchronizer struct {
	api    StripeAPI
	logger *observability.Logger
}

func NewSynchronizer(api StripeAPI, logger *observability.Logger) *Synchronizer {
	return &Synchronizer{
		api:    api,
		logger: logger,
	}
}

// Sync upserts the Stripe product, creates a price for the current amount and
// a payment link for that price. Steps run in order and the first failure ends
// the sync; objects created by earlier steps are left in place.
func (s *Synchronizer) Sync(ctx context.Context, product ProductToSync) SyncResult {
	ctx = observability.WithFields(ctx, observability.Field{Key: "product_id", Value: product.ID})

	currency, err := validate(product)
	if err != nil {
		return s.fail(ctx, "invalid product", err)
	}
	if !s.api.Configured() {
		return s.fail(ctx, "stripe not configured", stripe.ErrNotConfigured)
	}

	s.logger.Info(ctx, "Starting Stripe sync")

	stripeProductID, err := s.upsertProduct(ctx, product)
	if err != nil {
		return s.fail(ctx, "failed to upsert stripe product", err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "stripe_product_id", Value: stripeProductID})

	// The price form must be a pure function of its idempotency key
	// (product, amount, currency); anything else belongs on the product.
	price, err := s.api.CreatePrice(ctx, stripe.PriceInput{
		ProductID:  stripeProductID,
		UnitAmount: product.PriceCents,
		Currency:   currency,
		Metadata:   map[string]string{"source": priceSource},
	}, stripe.PriceCreateKey(stripeProductID, product.PriceCents, currency))
	if err != nil {
		return s.fail(ctx, "failed to create stripe price", err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "stripe_price_id", Value: price.ID})

	link, err := s.api.CreatePaymentLink(ctx, price.ID, stripe.PaymentLinkKey(price.ID))
	if err != nil {
		return s.fail(ctx, "failed to create stripe payment link", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "payment_link_id", Value: link.ID})
	s.logger.Info(ctx, "Stripe sync completed")

	return SyncResult{
		Success:             true,
		StripeProductID:     stripeProductID,
		StripePriceID:       price.ID,
		StripePaymentLinkID: link.ID,
		StripeLink:          link.URL,
	}
}

func (s *Synchronizer) upsertProduct(ctx context.Context, product ProductToSync) (string, error) {
	in := stripe.ProductInput{
		Name:        product.Title,
		Description: product.Description,
		ImageURL:    publicImage(product.Image),
	}

	if product.StripeProductID != "" {
		// An empty metadata value removes the key upstream.
		in.Metadata = map[string]string{metaOriginalPrice: originalPrice(product)}
		updated, err := s.api.UpdateProduct(ctx, product.StripeProductID, in)
		if err != nil {
			return "", err
		}
		return updated.ID, nil
	}

	in.Metadata = map[string]string{"local_product_id": product.ID}
	if product.Category != "" {
		in.Metadata["category"] = product.Category
	}
	if original := originalPrice(product); original != "" {
		in.Metadata[metaOriginalPrice] = original
	}
	created, err := s.api.CreateProduct(ctx, in, stripe.ProductCreateKey(product.ID))
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (s *Synchronizer) fail(ctx context.Context, msg string, err error) SyncResult {
	s.logger.Error(ctx, msg, err)
	return SyncResult{Success: false, Error: err.Error()}
}

// validate returns the normalized lowercase currency.
func validate(product ProductToSync) (string, error) {
	if strings.TrimSpace(product.ID) == "" {
		return "", ErrMissingID
	}
	if strings.TrimSpace(product.Title) == "" {
		return "", ErrMissingTitle
	}
	if product.PriceCents <= 0 {
		return "", ErrInvalidPrice
	}
	currency := strings.ToLower(strings.TrimSpace(product.Currency))
	if len(currency) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, product.Currency)
	}
	for _, r := range currency {
		if r < 'a' || r > 'z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, product.Currency)
		}
	}
	return currency, nil
}

func originalPrice(product ProductToSync) string {
	if product.OriginalPriceCents == nil {
		return ""
	}
	return strconv.FormatInt(*product.OriginalPriceCents, 10)
}

// publicImage drops images Stripe cannot fetch.
func publicImage(image string) string {
	if strings.HasPrefix(image, "https://") {
		return image
	}
	return ""
}
