package handler

import (
	"net/http"
	"shop-admin/internal/apierrors"
	"shop-admin/internal/auth/processor"
	"shop-admin/internal/observability"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminContextKey holds the authenticated admin email on the gin context.
const AdminContextKey = "Admin-Email"

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleLogin handles POST /api/auth/login
func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	admin, err := h.authProcessor.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, admin)
}

// HandleJWTMiddleware rejects requests without a valid admin bearer token.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized(apierrors.CodeUnauthorized, "Authorization token is missing or invalid"))
		return
	}

	claims, err := h.authProcessor.ValidateJWTToken(ctx, strings.TrimPrefix(tokenHeader, "Bearer "))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Set(AdminContextKey, claims.Subject)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "admin_email", Value: claims.Subject},
	))
	c.Next()
}

// HandleMe handles GET /api/auth/me
func (h *Handler) HandleMe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"email": c.GetString(AdminContextKey)})
}
