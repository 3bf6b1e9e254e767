package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"shop-admin/internal/apierrors"
	"shop-admin/internal/observability"
	"shop-admin/internal/posts/processor"
	"shop-admin/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PostProcessor defines the post operations the handler serves
type PostProcessor interface {
	CreatePost(ctx context.Context, input processor.PostInput) (processor.Post, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, input processor.PostInput) (processor.Post, error)
	GetPost(ctx context.Context, postID uuid.UUID) (processor.Post, error)
	ListPosts(ctx context.Context, params store.ListPostsParams) ([]processor.Post, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
}

type Handler struct {
	processor PostProcessor
	logger    *observability.Logger
}

func New(processor PostProcessor, logger *observability.Logger) *Handler {
	return &Handler{
		processor: processor,
		logger:    logger,
	}
}

type PostRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Slug        string `json:"slug" binding:"required,max=200"`
	Description string `json:"description" binding:"max=500"`
	Content     string `json:"content"`
	Image       string `json:"image" binding:"omitempty,url,max=500"`
	Category    string `json:"category" binding:"omitempty,oneof=Mindset Skillset Toolset"`
	AIPrompt    string `json:"ai_prompt" binding:"max=5000"`
	ReadTime    string `json:"read_time" binding:"max=50"`
	Published   *bool  `json:"published"`
}

func (r PostRequest) toInput() processor.PostInput {
	published := true
	if r.Published != nil {
		published = *r.Published
	}
	return processor.PostInput{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Content:     r.Content,
		Image:       r.Image,
		Category:    r.Category,
		AIPrompt:    r.AIPrompt,
		ReadTime:    r.ReadTime,
		Published:   published,
	}
}

type ListPostsQuery struct {
	PublishedOnly bool   `form:"published"`
	Category      string `form:"category" binding:"omitempty,oneof=Mindset Skillset Toolset"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset        int    `form:"offset" binding:"omitempty,min=0"`
}

// HandleListPosts handles GET /api/admin/posts
func (h *Handler) HandleListPosts(c *gin.Context) {
	var query ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	posts, err := h.processor.ListPosts(c.Request.Context(), store.ListPostsParams{
		PublishedOnly: query.PublishedOnly,
		Category:      query.Category,
		Limit:         query.Limit,
		Offset:        query.Offset,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// HandleCreatePost handles POST /api/admin/posts
func (h *Handler) HandleCreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	post, err := h.processor.CreatePost(c.Request.Context(), req.toInput())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// HandleGetPost handles GET /api/admin/posts/:id
func (h *Handler) HandleGetPost(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := h.processor.GetPost(c.Request.Context(), postID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// HandleUpdatePost handles PUT /api/admin/posts/:id
func (h *Handler) HandleUpdatePost(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	post, err := h.processor.UpdatePost(c.Request.Context(), postID, req.toInput())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// HandleDeletePost handles DELETE /api/admin/posts/:id
func (h *Handler) HandleDeletePost(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	if err := h.processor.DeletePost(c.Request.Context(), postID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func parsePostID(c *gin.Context) (uuid.UUID, bool) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid post ID"))
		return uuid.Nil, false
	}
	return postID, true
}
