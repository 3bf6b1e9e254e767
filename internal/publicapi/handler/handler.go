package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"shop-admin/internal/apierrors"
	"shop-admin/internal/observability"
	postsProcessor "shop-admin/internal/posts/processor"
	"shop-admin/internal/publicapi/processor"
	"shop-admin/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PublicProcessor interface {
	ListPosts(ctx context.Context, query processor.PostsQuery) ([]processor.PostSummary, error)
	GetPost(ctx context.Context, postID *uuid.UUID, slug string) (postsProcessor.Post, error)
	ListProducts(ctx context.Context, category string) ([]processor.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (processor.Product, error)
	Settings(ctx context.Context) (map[string]json.RawMessage, error)
}

type Handler struct {
	processor PublicProcessor
	logger    *observability.Logger
}

func New(processor PublicProcessor, logger *observability.Logger) *Handler {
	return &Handler{
		processor: processor,
		logger:    logger,
	}
}

type PublicQuery struct {
	Resource string `form:"resource"`
	ID       string `form:"id"`
	Slug     string `form:"slug" binding:"omitempty,max=200"`
	Category string `form:"category" binding:"omitempty,max=50"`
	Limit    int    `form:"limit" binding:"omitempty,min=0"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
}

// HandlePublic handles GET /api/public?resource=posts|post|products|product|settings.
// The resource defaults to posts.
func (h *Handler) HandlePublic(c *gin.Context) {
	var query PublicQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	if query.Resource == "" {
		query.Resource = "posts"
	}

	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "resource", Value: query.Resource})

	var (
		data any
		err  error
	)
	switch query.Resource {
	case "posts":
		data, err = h.processor.ListPosts(ctx, processor.PostsQuery{
			Category: query.Category,
			Limit:    query.Limit,
			Offset:   query.Offset,
		})
	case "post":
		var postID *uuid.UUID
		if postID, err = optionalID(query.ID); err == nil {
			data, err = h.processor.GetPost(ctx, postID, query.Slug)
		}
	case "products":
		data, err = h.processor.ListProducts(ctx, query.Category)
	case "product":
		var productID *uuid.UUID
		if productID, err = optionalID(query.ID); err == nil {
			if productID == nil {
				err = apierrors.BadRequest(apierrors.CodeInvalidInput, "Provide id parameter")
			} else {
				data, err = h.processor.GetProduct(ctx, *productID)
			}
		}
	case "settings":
		data, err = h.processor.Settings(ctx)
	default:
		err = apierrors.NotFound(apierrors.CodeUnknownResource, fmt.Sprintf("Unknown resource: %s", query.Resource))
	}
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	t, _ := tenant.FromContext(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "tenant": t.Slug, "data": data})
}

func optionalID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid id parameter")
	}
	return &id, nil
}
