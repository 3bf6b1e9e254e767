package bootstrap

import (
	"context"
	"fmt"
	authHandler "shop-admin/internal/auth/handler"
	authProcessor "shop-admin/internal/auth/processor"
	chatHandler "shop-admin/internal/chat/handler"
	chatProcessor "shop-admin/internal/chat/processor"
	"shop-admin/internal/clients/llm"
	"shop-admin/internal/clients/n8n"
	"shop-admin/internal/clients/redis"
	"shop-admin/internal/clients/stripe"
	"shop-admin/internal/config"
	dashboardHandler "shop-admin/internal/dashboard/handler"
	dashboardProcessor "shop-admin/internal/dashboard/processor"
	"shop-admin/internal/health"
	billingHandler "shop-admin/internal/money/billing/handler"
	billingProcessor "shop-admin/internal/money/billing/processor"
	"shop-admin/internal/money/stripesync"
	"shop-admin/internal/observability"
	postsHandler "shop-admin/internal/posts/handler"
	postsProcessor "shop-admin/internal/posts/processor"
	productsHandler "shop-admin/internal/products/handler"
	productsProcessor "shop-admin/internal/products/processor"
	publicHandler "shop-admin/internal/publicapi/handler"
	publicProcessor "shop-admin/internal/publicapi/processor"
	"shop-admin/internal/ratelimit"
	settingsHandler "shop-admin/internal/settings/handler"
	settingsProcessor "shop-admin/internal/settings/processor"
	"shop-admin/internal/store"
	subscribersHandler "shop-admin/internal/subscribers/handler"
	subscribersProcessor "shop-admin/internal/subscribers/processor"
	"shop-admin/internal/tenant"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Clients
	StripeClient *stripe.Client
	RedisClient  *redis.Client
	LLMClient    *llm.Client
	ToolRelay    *n8n.Client

	// Middleware
	RateLimiter *ratelimit.Service
	Tenants     *tenant.Authenticator

	// Handlers
	AuthHandler       authHandler.Handler
	ProductHandler    *productsHandler.Handler
	BillingHandler    *billingHandler.Handler
	PostHandler       *postsHandler.Handler
	SubscriberHandler *subscribersHandler.Handler
	DashboardHandler  *dashboardHandler.Handler
	SettingsHandler   *settingsHandler.Handler
	ChatHandler       *chatHandler.Handler
	PublicHandler     *publicHandler.Handler
	HealthHandler     *health.Handler

	publicProc *publicProcessor.PublicProcessor
}

// Workflows are the Stripe workflows bound to the product store.
type Workflows struct {
	Synchronizer *stripesync.Synchronizer
	Archiver     *stripesync.Archiver
	Products     productsProcessor.ProductProcessor
}

// NewStripeClient builds the payment client. An empty key yields a client
// that reports itself unconfigured.
func NewStripeClient(cfg config.StripeConfig, logger *observability.Logger) *stripe.Client {
	return stripe.NewClient(stripe.Config{
		SecretKey: cfg.SecretKey,
		APIURL:    cfg.APIURL,
	}, logger)
}

// NewWorkflows wires the synchronizer, archiver and product processor.
func NewWorkflows(productStore *store.Store, stripeClient *stripe.Client, logger *observability.Logger) Workflows {
	synchronizer := stripesync.NewSynchronizer(stripeClient, logger)
	archiver := stripesync.NewArchiver(stripeClient, productStore, logger)
	return Workflows{
		Synchronizer: synchronizer,
		Archiver:     archiver,
		Products:     productsProcessor.New(productStore, synchronizer, archiver, logger),
	}
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis is optional; the rate limiter falls back to process memory
	deps.RedisClient, err = redis.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.WarnWithError(ctx, "redis unavailable, rate limiting in memory", err)
		deps.RedisClient = nil
	}
	deps.RateLimiter = ratelimit.NewService(deps.RedisClient, logger)

	// Initialize Stripe workflows
	deps.StripeClient = NewStripeClient(cfg.Stripe, logger)
	if !deps.StripeClient.Configured() {
		logger.Warn(ctx, "STRIPE_SECRET_KEY not set, Stripe sync is disabled")
	}
	workflows := NewWorkflows(&deps.Store, deps.StripeClient, logger)

	// Initialize product handler
	deps.ProductHandler = productsHandler.New(&workflows.Products, logger)

	// Initialize billing processor and handler
	billingProc := billingProcessor.New(
		deps.StripeClient,
		workflows.Synchronizer,
		workflows.Archiver,
		&deps.Store,
		cfg.Stripe.WebhookSecret,
		logger,
	)
	deps.BillingHandler = billingHandler.New(&billingProc, logger)

	// Initialize content handlers
	postProc := postsProcessor.New(&deps.Store, logger)
	deps.PostHandler = postsHandler.New(&postProc, logger)

	subscriberProc := subscribersProcessor.New(&deps.Store, logger)
	deps.SubscriberHandler = subscribersHandler.New(&subscriberProc, logger)

	dashboardProc := dashboardProcessor.New(&deps.Store, logger)
	deps.DashboardHandler = dashboardHandler.New(&dashboardProc, logger)

	settingsProc := settingsProcessor.New(&deps.Store, logger)
	deps.SettingsHandler = settingsHandler.New(&settingsProc, logger)

	// Initialize chat relay
	deps.LLMClient = llm.NewClient(llm.Config{}, logger)
	deps.ToolRelay = n8n.NewClient(n8n.Config{WebhookURL: cfg.N8N.WebhookURL}, logger)
	if !deps.ToolRelay.Configured() {
		logger.Warn(ctx, "N8N_WEBHOOK_URL not set, admin tool calls are disabled")
	}
	chatProc := chatProcessor.New(&settingsProc, deps.LLMClient, deps.ToolRelay, chatProcessor.APIKeys{
		OpenAI:    cfg.AI.OpenAIAPIKey,
		Anthropic: cfg.AI.AnthropicAPIKey,
		Gemini:    cfg.AI.GeminiAPIKey,
	}, logger)
	deps.ChatHandler = chatHandler.New(&chatProc, logger)

	// Initialize public read API
	deps.Tenants = tenant.NewAuthenticator(tenant.Config{
		APIKey: cfg.Public.APIKey,
		Name:   cfg.Public.TenantName,
		Slug:   cfg.Public.TenantSlug,
	}, logger)
	if cfg.Public.APIKey == "" {
		logger.Warn(ctx, "ADMIN_API_KEY not set, the public API rejects all requests")
	}
	publicProc := publicProcessor.New(&deps.Store, &settingsProc, logger)
	deps.publicProc = &publicProc
	deps.PublicHandler = publicHandler.New(&publicProc, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(cfg.Auth, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	// Initialize health handler
	var redisPinger health.Pinger
	if deps.RedisClient != nil {
		redisPinger = deps.RedisClient
	}
	deps.HealthHandler = health.New(&deps.Store, redisPinger, deps.StripeClient, cfg.Server.Version, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.publicProc != nil {
		d.publicProc.Drain()
	}
	if err := d.RedisClient.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close redis", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close database", err)
	}
}
