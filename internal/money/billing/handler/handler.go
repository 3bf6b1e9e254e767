package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"io"
	"net/http"
	"shop-admin/internal/apierrors"
	"shop-admin/internal/money/billing/processor"
	"shop-admin/internal/money/stripesync"
	"shop-admin/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	stripego "github.com/stripe/stripe-go/v79"
)

// maxWebhookBytes matches the largest event payload Stripe sends.
const maxWebhookBytes = 65536

// BillingProcessor defines the Stripe operations the handler serves
type BillingProcessor interface {
	SyncProduct(ctx context.Context, product stripesync.ProductToSync) stripesync.SyncResult
	ArchiveProduct(ctx context.Context, productID uuid.UUID) stripesync.ArchiveResult
	Status() processor.Status
	Verify(ctx context.Context) processor.VerifyResult
	ConstructEvent(payload []byte, signatureHeader string) (stripego.Event, error)
	HandleWebhook(ctx context.Context, event stripego.Event) error
}

type Handler struct {
	processor BillingProcessor
	logger    *observability.Logger
}

func New(processor BillingProcessor, logger *observability.Logger) *Handler {
	return &Handler{processor: processor, logger: logger}
}

type SyncRequest struct {
	ID                 string `json:"id" binding:"required"`
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description"`
	Image              string `json:"image"`
	Category           string `json:"category"`
	PriceCents         int64  `json:"priceCents" binding:"required"`
	OriginalPriceCents *int64 `json:"originalPriceCents"`
	Currency           string `json:"currency" binding:"required"`
	StripeProductID    string `json:"stripeProductId"`
	StripePriceID      string `json:"stripePriceId"`
}

type ArchiveRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// HandleSync handles POST /api/stripe/sync
func (h *Handler) HandleSync(c *gin.Context) {
	var req SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput,
			"Missing required fields: id, title, priceCents, currency"))
		return
	}

	result := h.processor.SyncProduct(c.Request.Context(), stripesync.ProductToSync{
		ID:                 req.ID,
		Title:              req.Title,
		Description:        req.Description,
		Image:              req.Image,
		Category:           req.Category,
		PriceCents:         req.PriceCents,
		OriginalPriceCents: req.OriginalPriceCents,
		Currency:           req.Currency,
		StripeProductID:    req.StripeProductID,
		StripePriceID:      req.StripePriceID,
	})
	if !result.Success {
		c.JSON(http.StatusInternalServerError, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleArchive handles POST /api/stripe/archive. The response is always 200
// so callers can go on to delete the product.
func (h *Handler) HandleArchive(c *gin.Context) {
	var req ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid product ID"))
		return
	}

	c.JSON(http.StatusOK, h.processor.ArchiveProduct(c.Request.Context(), productID))
}

// HandleStatus handles GET /api/stripe/status
func (h *Handler) HandleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.processor.Status())
}

// HandleVerify handles GET /api/stripe/verify
func (h *Handler) HandleVerify(c *gin.Context) {
	c.JSON(http.StatusOK, h.processor.Verify(c.Request.Context()))
}

// HandleWebhook handles POST /api/stripe/webhook
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		h.logger.Error(ctx, "failed to read webhook body", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Failed to read request body"))
		return
	}

	event, err := h.processor.ConstructEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	if err := h.processor.HandleWebhook(ctx, event); err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid event payload"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
