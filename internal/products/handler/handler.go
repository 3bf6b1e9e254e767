package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"shop-admin/internal/apierrors"
	"shop-admin/internal/money/currency"
	"shop-admin/internal/observability"
	"shop-admin/internal/products/processor"
	"shop-admin/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductProcessor defines the product operations the handler serves
type ProductProcessor interface {
	CreateProduct(ctx context.Context, input processor.ProductInput) (processor.SaveResult, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input processor.ProductInput) (processor.SaveResult, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (processor.Product, error)
	ListProducts(ctx context.Context, params store.ListProductsParams) ([]processor.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) (processor.DeleteResult, error)
	ResyncProduct(ctx context.Context, productID uuid.UUID) (processor.SaveResult, error)
}

type Handler struct {
	processor ProductProcessor
	logger    *observability.Logger
}

func New(processor ProductProcessor, logger *observability.Logger) *Handler {
	return &Handler{
		processor: processor,
		logger:    logger,
	}
}

type ProductRequest struct {
	Title              string `json:"title" binding:"required,max=200"`
	Description        string `json:"description" binding:"max=5000"`
	Image              string `json:"image" binding:"omitempty,max=2048"`
	Category           string `json:"category" binding:"max=100"`
	PriceCents         int64  `json:"price_cents" binding:"gte=0"`
	OriginalPriceCents *int64 `json:"original_price_cents" binding:"omitempty,gte=0"`
	Currency           string `json:"currency" binding:"required,len=3"`
	Active             *bool  `json:"active"`
	SortOrder          int    `json:"sort_order"`
	SyncToStripe       bool   `json:"sync_to_stripe"`
}

func (r ProductRequest) toInput() processor.ProductInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return processor.ProductInput{
		Title:              r.Title,
		Description:        r.Description,
		Image:              r.Image,
		Category:           r.Category,
		PriceCents:         r.PriceCents,
		OriginalPriceCents: r.OriginalPriceCents,
		Currency:           r.Currency,
		Active:             active,
		SortOrder:          r.SortOrder,
		SyncToStripe:       r.SyncToStripe,
	}
}

type ListProductsQuery struct {
	ActiveOnly bool `form:"active"`
	Limit      int  `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset     int  `form:"offset" binding:"omitempty,min=0"`
}

// HandleListProducts handles GET /api/admin/products
func (h *Handler) HandleListProducts(c *gin.Context) {
	var query ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	products, err := h.processor.ListProducts(c.Request.Context(), store.ListProductsParams{
		ActiveOnly: query.ActiveOnly,
		Limit:      query.Limit,
		Offset:     query.Offset,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// HandleCreateProduct handles POST /api/admin/products
func (h *Handler) HandleCreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.CreateProduct(c.Request.Context(), req.toInput())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleGetProduct handles GET /api/admin/products/:id
func (h *Handler) HandleGetProduct(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := h.processor.GetProduct(c.Request.Context(), productID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// HandleUpdateProduct handles PUT /api/admin/products/:id
func (h *Handler) HandleUpdateProduct(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.UpdateProduct(c.Request.Context(), productID, req.toInput())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleDeleteProduct handles DELETE /api/admin/products/:id
func (h *Handler) HandleDeleteProduct(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	result, err := h.processor.DeleteProduct(c.Request.Context(), productID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleResyncProduct handles POST /api/admin/products/:id/sync
func (h *Handler) HandleResyncProduct(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	result, err := h.processor.ResyncProduct(c.Request.Context(), productID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleListCurrencies handles GET /api/admin/currencies
func (h *Handler) HandleListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currencies": currency.Supported()})
}

func parseProductID(c *gin.Context) (uuid.UUID, bool) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid product ID"))
		return uuid.Nil, false
	}
	return productID, true
}
