package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"shop-admin/internal/apierrors"
	"shop-admin/internal/observability"
	"shop-admin/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubscriberProcessor defines the subscriber operations the handler serves
type SubscriberProcessor interface {
	ListSubscribers(ctx context.Context, limit, offset int) ([]store.Subscriber, error)
	DeleteSubscriber(ctx context.Context, subscriberID uuid.UUID) error
}

type Handler struct {
	processor SubscriberProcessor
	logger    *observability.Logger
}

func New(processor SubscriberProcessor, logger *observability.Logger) *Handler {
	return &Handler{
		processor: processor,
		logger:    logger,
	}
}

type ListSubscribersQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// HandleListSubscribers handles GET /api/admin/subscribers
func (h *Handler) HandleListSubscribers(c *gin.Context) {
	var query ListSubscribersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	subscribers, err := h.processor.ListSubscribers(c.Request.Context(), query.Limit, query.Offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers})
}

// HandleDeleteSubscriber handles DELETE /api/admin/subscribers/:id
func (h *Handler) HandleDeleteSubscriber(c *gin.Context) {
	subscriberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid subscriber ID"))
		return
	}

	if err := h.processor.DeleteSubscriber(c.Request.Context(), subscriberID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
