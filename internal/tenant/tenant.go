package tenant

import (
	"crypto/subtle"
	"shop-admin/internal/apierrors"
	"shop-admin/internal/observability"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKey holds the authenticated Tenant on the gin context.
const ContextKey = "tenant"

type Features struct {
	Blog        bool `json:"blog"`
	Shop        bool `json:"shop"`
	Subscribers bool `json:"subscribers"`
	AIAssistant bool `json:"ai_assistant"`
}

type Branding struct {
	SiteName     string `json:"site_name"`
	LogoURL      string `json:"logo_url,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty"`
}

// Tenant is a client application reading content through the public API.
type Tenant struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Features Features `json:"features"`
	Branding Branding `json:"branding"`
}

type Config struct {
	APIKey string
	Name   string
	Slug   string
}

// Authenticator resolves API keys to tenants. Only the owner tenant exists
// today, keyed by ADMIN_API_KEY.
type Authenticator struct {
	apiKey string
	owner  Tenant
	logger *observability.Logger
}

func NewAuthenticator(cfg Config, logger *observability.Logger) *Authenticator {
	name := cfg.Name
	if name == "" {
		name = "Default"
	}
	slug := cfg.Slug
	if slug == "" {
		slug = "default"
	}
	return &Authenticator{
		apiKey: cfg.APIKey,
		owner: Tenant{
			ID:       "default",
			Name:     name,
			Slug:     slug,
			Features: Features{Blog: true, Shop: true, Subscribers: true, AIAssistant: true},
			Branding: Branding{SiteName: name},
		},
		logger: logger,
	}
}

// Validate accepts "Bearer <key>" or a bare key. An unset ADMIN_API_KEY
// rejects everything.
func (a *Authenticator) Validate(header string) (Tenant, bool) {
	if header == "" || a.apiKey == "" {
		return Tenant{}, false
	}
	key := strings.TrimPrefix(header, "Bearer ")
	if subtle.ConstantTimeCompare([]byte(key), []byte(a.apiKey)) != 1 {
		return Tenant{}, false
	}
	return a.owner, true
}

// Middleware authenticates the Authorization or X-Api-Key header.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if a.apiKey == "" {
			a.logger.Warn(ctx, "ADMIN_API_KEY is not set, rejecting public API request")
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			header = c.GetHeader("X-Api-Key")
		}

		t, ok := a.Validate(header)
		if !ok {
			apierrors.RespondWithError(c, apierrors.Unauthorized(apierrors.CodeUnauthorized,
				"Unauthorized. Provide a valid API key via Authorization or X-Api-Key header."))
			return
		}

		c.Set(ContextKey, t)
		c.Request = c.Request.WithContext(observability.WithFields(ctx,
			observability.Field{Key: "tenant", Value: t.Slug},
		))
		c.Next()
	}
}

// FromContext returns the tenant set by Middleware.
func FromContext(c *gin.Context) (Tenant, bool) {
	value, ok := c.Get(ContextKey)
	if !ok {
		return Tenant{}, false
	}
	t, ok := value.(Tenant)
	return t, ok
}
