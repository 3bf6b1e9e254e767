package processor

import (
	"context"
	"errors"
	"shop-admin/internal/clients/stripe"
	"shop-admin/internal/money/stripesync"
	"shop-admin/internal/observability"

	"github.com/google/uuid"
)

var (
	ErrWebhookNotConfigured = errors.New("stripe webhook secret is not configured")
	ErrInvalidSignature     = errors.New("invalid webhook signature")
)

type BillingProcessor struct {
	account       StripeAccount
	synchronizer  Synchronizer
	archiver      Archiver
	store         BillingStore
	webhookSecret string
	logger        *observability.Logger
}

func New(account StripeAccount, synchronizer Synchronizer, archiver Archiver, store BillingStore,
	webhookSecret string, logger *observability.Logger) BillingProcessor {
	return BillingProcessor{
		account:       account,
		synchronizer:  synchronizer,
		archiver:      archiver,
		store:         store,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

type Status struct {
	Configured        bool   `json:"configured"`
	Mode              string `json:"mode"`
	WebhookConfigured bool   `json:"webhookConfigured"`
}

type Amount struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// VerifyResult reports whether the configured key can reach the account.
type VerifyResult struct {
	Success   bool     `json:"success"`
	Mode      string   `json:"mode,omitempty"`
	Livemode  bool     `json:"livemode"`
	Available []Amount `json:"available,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// SyncProduct runs a sync for a caller-described product without touching
// the local database.
func (p *BillingProcessor) SyncProduct(ctx context.Context, product stripesync.ProductToSync) stripesync.SyncResult {
	return p.synchronizer.Sync(ctx, product)
}

func (p *BillingProcessor) ArchiveProduct(ctx context.Context, productID uuid.UUID) stripesync.ArchiveResult {
	return p.archiver.Archive(ctx, productID)
}

func (p *BillingProcessor) Status() Status {
	return Status{
		Configured:        p.account.Configured(),
		Mode:              p.account.Mode(),
		WebhookConfigured: p.webhookSecret != "",
	}
}

// Verify calls the balance endpoint with the configured key.
func (p *BillingProcessor) Verify(ctx context.Context) VerifyResult {
	if !p.account.Configured() {
		return VerifyResult{Error: stripe.ErrNotConfigured.Error()}
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "stripe_mode", Value: p.account.Mode()})
	balance, err := p.account.Balance(ctx)
	if err != nil {
		p.logger.WarnWithError(ctx, "stripe key verification failed", err)
		return VerifyResult{Mode: p.account.Mode(), Error: err.Error()}
	}

	result := VerifyResult{
		Success:   true,
		Mode:      p.account.Mode(),
		Livemode:  balance.Livemode,
		Available: make([]Amount, 0, len(balance.Available)),
	}
	for _, amount := range balance.Available {
		result.Available = append(result.Available, Amount{Amount: amount.Amount, Currency: amount.Currency})
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "livemode", Value: balance.Livemode}), "stripe key verified")
	return result
}
