package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"shop-admin/internal/observability"
	"strings"

	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

const DefaultAPIURL = "https://api.stripe.com"

// ErrNotConfigured is returned before any network call when no secret key is set.
var ErrNotConfigured = errors.New("STRIPE_SECRET_KEY is not configured")

// APIError is the single error type for non-2xx responses from Stripe.
// Message carries the remote-provided message verbatim.
type APIError struct {
	StatusCode int
	Type       string
	Code       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	return e.Message
}

// Config holds the settings for a Client. SecretKey comes from process
// configuration only.
type Config struct {
	SecretKey  string
	APIURL     string
	HTTPClient *http.Client
}

// Client is a thin wrapper over stripe-go bound to one secret key.
type Client struct {
	secretKey string
	api       *client.API
	logger    *observability.Logger
}

func NewClient(cfg Config, logger *observability.Logger) *Client {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	// Retries stay off: idempotency keys make caller-initiated retries safe,
	// nothing here retries on its own.
	apiBackend := stripego.GetBackendWithConfig(stripego.APIBackend, &stripego.BackendConfig{
		URL:               stripego.String(strings.TrimSuffix(apiURL, "/")),
		HTTPClient:        cfg.HTTPClient,
		LeveledLogger:     logger.Sugar(),
		MaxNetworkRetries: stripego.Int64(0),
	})
	backends := &stripego.Backends{
		API: apiBackend,
		Connect: stripego.GetBackendWithConfig(stripego.ConnectBackend, &stripego.BackendConfig{
			HTTPClient:        cfg.HTTPClient,
			LeveledLogger:     logger.Sugar(),
			MaxNetworkRetries: stripego.Int64(0),
		}),
		Uploads: stripego.GetBackendWithConfig(stripego.UploadsBackend, &stripego.BackendConfig{
			HTTPClient:        cfg.HTTPClient,
			LeveledLogger:     logger.Sugar(),
			MaxNetworkRetries: stripego.Int64(0),
		}),
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, backends)

	return &Client{
		secretKey: cfg.SecretKey,
		api:       api,
		logger:    logger,
	}
}

// Configured reports whether a secret key is present.
func (c *Client) Configured() bool {
	return c.secretKey != ""
}

// Mode returns "test" for test-mode keys and "live" otherwise.
func (c *Client) Mode() string {
	if strings.HasPrefix(c.secretKey, "sk_test_") || strings.HasPrefix(c.secretKey, "rk_test_") {
		return "test"
	}
	return "live"
}

func (c *Client) requireKey() error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	return nil
}

// Balance retrieves the account balance; used to verify the configured key.
func (c *Client) Balance(ctx context.Context) (Balance, error) {
	if err := c.requireKey(); err != nil {
		return Balance{}, err
	}

	params := &stripego.BalanceParams{}
	params.Context = ctx
	b, err := c.api.Balance.Get(params)
	if err != nil {
		return Balance{}, normalizeError(err)
	}

	balance := Balance{Livemode: b.Livemode}
	for _, amount := range b.Available {
		balance.Available = append(balance.Available, Amount{
			Amount:   amount.Amount,
			Currency: string(amount.Currency),
		})
	}
	return balance, nil
}

func normalizeError(err error) error {
	var stripeErr *stripego.Error
	if errors.As(err, &stripeErr) {
		msg := stripeErr.Msg
		if msg == "" {
			msg = fmt.Sprintf("Stripe API error: %d", stripeErr.HTTPStatusCode)
		}
		return &APIError{
			StatusCode: stripeErr.HTTPStatusCode,
			Type:       string(stripeErr.Type),
			Code:       string(stripeErr.Code),
			Message:    msg,
			RequestID:  stripeErr.RequestID,
		}
	}
	return fmt.Errorf("stripe request failed: %w", err)
}
