package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"shop-admin/internal/apierrors"
	"shop-admin/internal/dashboard/processor"
	"shop-admin/internal/observability"
	"shop-admin/internal/store"

	"github.com/gin-gonic/gin"
)

type DashboardProcessor interface {
	Stats(ctx context.Context) (store.DashboardStats, error)
	Analytics(ctx context.Context) (processor.Analytics, error)
}

type Handler struct {
	processor DashboardProcessor
	logger    *observability.Logger
}

func New(processor DashboardProcessor, logger *observability.Logger) *Handler {
	return &Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleStats handles GET /api/admin/dashboard
func (h *Handler) HandleStats(c *gin.Context) {
	stats, err := h.processor.Stats(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// HandleAnalytics handles GET /api/admin/analytics
func (h *Handler) HandleAnalytics(c *gin.Context) {
	analytics, err := h.processor.Analytics(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
