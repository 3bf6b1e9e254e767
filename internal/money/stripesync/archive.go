package stripesync

import (
	"context"
	"errors"
	"net/http"
	"shop-admin/internal/clients/stripe"
	"shop-admin/internal/observability"
	"shop-admin/internal/store"
	"strings"

	"github.com/google/uuid"
)

// paymentLinkPageSize bounds the legacy URL lookup to one page.
const paymentLinkPageSize = 100

type Archiver struct {
	api    StripeAPI
	store  ProductStore
	logger *observability.Logger
}

func NewArchiver(api StripeAPI, store ProductStore, logger *observability.Logger) *Archiver {
	return &Archiver{
		api:    api,
		store:  store,
		logger: logger,
	}
}

// Archive deactivates the payment link and product behind a local product.
// Stripe failures become warnings; the caller's delete always proceeds.
func (a *Archiver) Archive(ctx context.Context, productID uuid.UUID) ArchiveResult {
	ctx = observability.WithFields(ctx, observability.Field{Key: "product_id", Value: productID.String()})

	if !a.api.Configured() {
		return skipped("Stripe not configured")
	}

	product, err := a.store.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			a.logger.Warn(ctx, "product not found for stripe archive")
			return skipped("Product not found in DB")
		}
		a.logger.Error(ctx, "failed to load product for stripe archive", err)
		return skipped("Product lookup failed: " + err.Error())
	}

	if product.StripePaymentLinkID == "" && product.StripeLink == "" {
		return skipped("No Stripe payment link stored")
	}

	a.logger.Info(ctx, "Archiving Stripe resources for product")
	result := ArchiveResult{Success: true}

	link, found, err := a.findPaymentLink(ctx, product)
	switch {
	case err != nil:
		a.logger.WarnWithError(ctx, "failed to look up payment link", err)
		result.Warnings = append(result.Warnings, "Payment link lookup: "+err.Error())
	case !found:
		a.logger.Warn(ctx, "no matching stripe payment link found")
		result.Warnings = append(result.Warnings, "No matching payment link found in Stripe")
	default:
		a.deactivateLink(ctx, link, &result)
	}

	// The stored product id still identifies the remote product when the
	// link itself is gone or could not be fetched.
	stripeProductID := product.StripeProductID
	if found && len(link.ProductIDs) > 0 && link.ProductIDs[0] != "" {
		stripeProductID = link.ProductIDs[0]
	}
	if stripeProductID == "" {
		return result
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "stripe_product_id", Value: stripeProductID})
	if _, err := a.api.ArchiveProduct(ctx, stripeProductID); err != nil {
		a.logger.WarnWithError(ctx, "failed to archive stripe product", err)
		result.Warnings = append(result.Warnings, "Product archive: "+err.Error())
		return result
	}

	a.logger.Info(ctx, "Stripe product archived")
	result.Archived = true
	result.ArchivedProductID = stripeProductID
	return result
}

func (a *Archiver) deactivateLink(ctx context.Context, link stripe.PaymentLink, result *ArchiveResult) {
	if !link.Active {
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "payment_link_id", Value: link.ID})
	if _, err := a.api.SetPaymentLinkActive(ctx, link.ID, false); err != nil {
		a.logger.WarnWithError(ctx, "failed to deactivate payment link", err)
		result.Warnings = append(result.Warnings, "Payment link deactivate: "+err.Error())
		return
	}
	a.logger.Info(ctx, "Payment link deactivated")
}

// findPaymentLink fetches the stored link by id. Rows that only carry the
// checkout URL fall back to matching against one page of links.
func (a *Archiver) findPaymentLink(ctx context.Context, product store.Product) (stripe.PaymentLink, bool, error) {
	if product.StripePaymentLinkID != "" {
		link, err := a.api.GetPaymentLink(ctx, product.StripePaymentLinkID)
		if err != nil {
			var apiErr *stripe.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
				return stripe.PaymentLink{}, false, nil
			}
			return stripe.PaymentLink{}, false, err
		}
		return link, true, nil
	}

	links, err := a.api.ListPaymentLinks(ctx, paymentLinkPageSize)
	if err != nil {
		return stripe.PaymentLink{}, false, err
	}
	for _, link := range links {
		if link.URL == product.StripeLink || (link.ID != "" && strings.Contains(product.StripeLink, link.ID)) {
			return link, true, nil
		}
	}
	return stripe.PaymentLink{}, false, nil
}

func skipped(reason string) ArchiveResult {
	return ArchiveResult{Success: true, Skipped: true, Reason: reason}
}
