package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"shop-admin/internal/apierrors"
	"shop-admin/internal/chat/processor"
	"shop-admin/internal/observability"

	"github.com/gin-gonic/gin"
)

type ChatProcessor interface {
	Chat(ctx context.Context, req processor.ChatRequest) (processor.ChatResponse, error)
	ExecuteTool(ctx context.Context, tool string, params map[string]any) (map[string]any, error)
}

type Handler struct {
	processor ChatProcessor
	logger    *observability.Logger
}

func New(processor ChatProcessor, logger *observability.Logger) *Handler {
	return &Handler{
		processor: processor,
		logger:    logger,
	}
}

type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant system"`
	Content string `json:"content" binding:"required,max=10000"`
}

type PageContext struct {
	Type        string `json:"type" binding:"required,oneof=product blog"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Category    string `json:"category" binding:"max=50"`
	Price       string `json:"price" binding:"max=50"`
	AIPrompt    string `json:"aiPrompt" binding:"max=5000"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,max=50,dive"`
	Context  *PageContext  `json:"context"`
}

// HandleChat handles POST /api/chat
func (h *Handler) HandleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	in := processor.ChatRequest{Messages: make([]processor.Message, 0, len(req.Messages))}
	for _, m := range req.Messages {
		in.Messages = append(in.Messages, processor.Message{Role: m.Role, Content: m.Content})
	}
	if req.Context != nil {
		in.Context = &processor.PageContext{
			Type:        req.Context.Type,
			Title:       req.Context.Title,
			Description: req.Context.Description,
			Category:    req.Context.Category,
			Price:       req.Context.Price,
			AIPrompt:    req.Context.AIPrompt,
		}
	}

	resp, err := h.processor.Chat(c.Request.Context(), in)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	body := gin.H{"success": true, "response": resp.Response, "provider": resp.Provider}
	if resp.ToolResult != nil {
		body["toolResult"] = resp.ToolResult
	}
	c.JSON(http.StatusOK, body)
}

type ToolCallRequest struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params"`
}

// HandleToolCall handles POST /api/admin/tool-call. The relay's reply is
// merged into the response body.
func (h *Handler) HandleToolCall(c *gin.Context) {
	var req ToolCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	if req.Params == nil {
		req.Params = map[string]any{}
	}

	data, err := h.processor.ExecuteTool(c.Request.Context(), req.Tool, req.Params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	body := gin.H{}
	for k, v := range data {
		body[k] = v
	}
	body["success"] = true
	c.JSON(http.StatusOK, body)
}
