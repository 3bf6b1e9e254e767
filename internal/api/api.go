package api

import (
	authHandler "shop-admin/internal/auth/handler"
	chatHandler "shop-admin/internal/chat/handler"
	"shop-admin/internal/config"
	dashboardHandler "shop-admin/internal/dashboard/handler"
	"shop-admin/internal/health"
	billingHandler "shop-admin/internal/money/billing/handler"
	postsHandler "shop-admin/internal/posts/handler"
	productsHandler "shop-admin/internal/products/handler"
	publicHandler "shop-admin/internal/publicapi/handler"
	"shop-admin/internal/ratelimit"
	settingsHandler "shop-admin/internal/settings/handler"
	subscribersHandler "shop-admin/internal/subscribers/handler"
	"shop-admin/internal/tenant"

	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by RegisterRoutes.
type Handlers struct {
	Auth        authHandler.Handler
	Products    *productsHandler.Handler
	Billing     *billingHandler.Handler
	Posts       *postsHandler.Handler
	Subscribers *subscribersHandler.Handler
	Dashboard   *dashboardHandler.Handler
	Settings    *settingsHandler.Handler
	Chat        *chatHandler.Handler
	Public      *publicHandler.Handler
	Health      *health.Handler
}

type API struct {
	router      *gin.RouterGroup
	handlers    Handlers
	tenants     *tenant.Authenticator
	rateLimiter *ratelimit.Service
	limits      config.RateLimitConfig
}

func New(
	router *gin.RouterGroup,
	handlers Handlers,
	tenants *tenant.Authenticator,
	rateLimiter *ratelimit.Service,
	limits config.RateLimitConfig,
) API {
	return API{
		router:      router,
		handlers:    handlers,
		tenants:     tenants,
		rateLimiter: rateLimiter,
		limits:      limits,
	}
}

func (a *API) RegisterRoutes() {
	h := a.handlers
	a.router.GET("/health", h.Health.HandleHealth)

	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/login", a.rateLimiter.Middleware(ratelimit.AuthPolicy(a.limits.AuthPerMinute)), h.Auth.HandleLogin)
		authGroup.GET("/me", h.Auth.HandleJWTMiddleware, h.Auth.HandleMe)
	}

	// Visitor chat widget and the API-key protected read API
	apiGroup.POST("/chat", a.rateLimiter.Middleware(ratelimit.ChatPolicy(a.limits.ChatPerMinute)), h.Chat.HandleChat)
	apiGroup.GET("/public",
		a.rateLimiter.Middleware(ratelimit.PublicPolicy(a.limits.PublicPerMinute)),
		a.tenants.Middleware(),
		h.Public.HandlePublic,
	)

	adminGroup := apiGroup.Group("/admin",
		h.Auth.HandleJWTMiddleware,
		a.rateLimiter.Middleware(ratelimit.AdminPolicy(a.limits.AdminPerMinute)),
	)
	{
		adminGroup.GET("/currencies", h.Products.HandleListCurrencies)
		adminGroup.GET("/products", h.Products.HandleListProducts)
		adminGroup.POST("/products", h.Products.HandleCreateProduct)
		adminGroup.GET("/products/:id", h.Products.HandleGetProduct)
		adminGroup.PUT("/products/:id", h.Products.HandleUpdateProduct)
		adminGroup.DELETE("/products/:id", h.Products.HandleDeleteProduct)
		adminGroup.POST("/products/:id/sync", h.Products.HandleResyncProduct)

		adminGroup.GET("/posts", h.Posts.HandleListPosts)
		adminGroup.POST("/posts", h.Posts.HandleCreatePost)
		adminGroup.GET("/posts/:id", h.Posts.HandleGetPost)
		adminGroup.PUT("/posts/:id", h.Posts.HandleUpdatePost)
		adminGroup.DELETE("/posts/:id", h.Posts.HandleDeletePost)

		adminGroup.GET("/subscribers", h.Subscribers.HandleListSubscribers)
		adminGroup.DELETE("/subscribers/:id", h.Subscribers.HandleDeleteSubscriber)

		adminGroup.GET("/dashboard", h.Dashboard.HandleStats)
		adminGroup.GET("/analytics", h.Dashboard.HandleAnalytics)

		adminGroup.GET("/settings", h.Settings.HandleListSettings)
		adminGroup.POST("/settings", h.Settings.HandleSaveSettings)
		adminGroup.GET("/chat-config", h.Settings.HandleGetChatConfig)
		adminGroup.POST("/chat-config", h.Settings.HandleSaveChatConfig)

		adminGroup.POST("/tool-call", h.Chat.HandleToolCall)
	}

	stripeGroup := apiGroup.Group("/stripe")
	{
		// Stripe authenticates the webhook by signature, not by token
		stripeGroup.POST("/webhook", h.Billing.HandleWebhook)

		protected := stripeGroup.Group("", h.Auth.HandleJWTMiddleware)
		protected.POST("/sync", h.Billing.HandleSync)
		protected.POST("/archive", h.Billing.HandleArchive)
		protected.GET("/status", h.Billing.HandleStatus)
		protected.GET("/verify", h.Billing.HandleVerify)
	}
}
