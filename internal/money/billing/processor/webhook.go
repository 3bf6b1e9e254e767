package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"shop-admin/internal/observability"
	"shop-admin/internal/store"

	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

// ConstructEvent verifies the Stripe-Signature header and decodes the event.
func (p *BillingProcessor) ConstructEvent(payload []byte, signatureHeader string) (stripego.Event, error) {
	if p.webhookSecret == "" {
		return stripego.Event{}, ErrWebhookNotConfigured
	}

	// The account's API version may differ from the library's pinned one.
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, p.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return stripego.Event{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return event, nil
}

// HandleWebhook dispatches a verified event. Events are informational; only a
// malformed payload is an error.
func (p *BillingProcessor) HandleWebhook(ctx context.Context, event stripego.Event) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: string(event.Type)},
		observability.Field{Key: "livemode", Value: event.Livemode},
	)
	p.logger.Info(ctx, "Stripe webhook received")

	if event.Data == nil {
		err := errors.New("event has no data")
		p.logger.Error(ctx, "failed to read webhook event", err)
		return err
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripego.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			p.logger.Error(ctx, "failed to unmarshal checkout session", err)
			return err
		}
		p.CheckoutCompleted(ctx, session)

	case "payment_intent.succeeded", "payment_intent.payment_failed":
		var paymentIntent stripego.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &paymentIntent); err != nil {
			p.logger.Error(ctx, "failed to unmarshal payment intent", err)
			return err
		}
		if event.Type == "payment_intent.succeeded" {
			p.PaymentSucceeded(ctx, paymentIntent)
		} else {
			p.PaymentFailed(ctx, paymentIntent)
		}

	case "price.created", "price.updated":
		var price stripego.Price
		if err := json.Unmarshal(event.Data.Raw, &price); err != nil {
			p.logger.Error(ctx, "failed to unmarshal price", err)
			return err
		}
		p.PriceChanged(ctx, price)

	case "product.created", "product.updated":
		var product stripego.Product
		if err := json.Unmarshal(event.Data.Raw, &product); err != nil {
			p.logger.Error(ctx, "failed to unmarshal product", err)
			return err
		}
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "stripe_product_id", Value: product.ID}), "Product event")

	default:
		p.logger.Debug(ctx, "Unhandled webhook event type")
	}

	return nil
}

// CheckoutCompleted records a purchase made through a product's payment link.
func (p *BillingProcessor) CheckoutCompleted(ctx context.Context, session stripego.CheckoutSession) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "checkout_session_id", Value: session.ID},
		observability.Field{Key: "amount_total", Value: session.AmountTotal},
		observability.Field{Key: "currency", Value: string(session.Currency)},
	)
	if session.Customer != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "customer_id", Value: session.Customer.ID})
	}
	if session.PaymentIntent != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "payment_intent_id", Value: session.PaymentIntent.ID})
	}
	p.logger.Info(ctx, "Checkout completed")

	if session.PaymentLink == nil || session.PaymentLink.ID == "" {
		p.logger.Info(ctx, "checkout session did not come from a payment link")
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "payment_link_id", Value: session.PaymentLink.ID})

	product, err := p.store.GetProductByPaymentLinkID(ctx, session.PaymentLink.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "Product not found for payment link")
			return
		}
		p.logger.Error(ctx, "failed to look up product for payment link", err)
		return
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "product_id", Value: product.ID.String()},
		observability.Field{Key: "title", Value: product.Title},
	), "Product purchased")
}

func (p *BillingProcessor) PaymentSucceeded(ctx context.Context, paymentIntent stripego.PaymentIntent) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "payment_intent_id", Value: paymentIntent.ID},
		observability.Field{Key: "amount", Value: paymentIntent.Amount},
		observability.Field{Key: "currency", Value: string(paymentIntent.Currency)},
	)
	if productID := paymentIntent.Metadata["local_product_id"]; productID != "" {
		ctx = observability.WithFields(ctx, observability.Field{Key: "product_id", Value: productID})
	}
	p.logger.Info(ctx, "Payment succeeded")
}

func (p *BillingProcessor) PaymentFailed(ctx context.Context, paymentIntent stripego.PaymentIntent) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "payment_intent_id", Value: paymentIntent.ID},
		observability.Field{Key: "amount", Value: paymentIntent.Amount},
		observability.Field{Key: "currency", Value: string(paymentIntent.Currency)},
	)
	if paymentIntent.LastPaymentError != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "payment_error", Value: paymentIntent.LastPaymentError.Msg})
	}
	p.logger.Warn(ctx, "Payment failed")
}

func (p *BillingProcessor) PriceChanged(ctx context.Context, price stripego.Price) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stripe_price_id", Value: price.ID},
		observability.Field{Key: "unit_amount", Value: price.UnitAmount},
		observability.Field{Key: "currency", Value: string(price.Currency)},
	)
	if price.Product != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "stripe_product_id", Value: price.Product.ID})
	}
	p.logger.Info(ctx, "Price event")
}
