package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"encoding/json"
	"net/http"
	"shop-admin/internal/apierrors"
	"shop-admin/internal/observability"
	"shop-admin/internal/settings/processor"

	"github.com/gin-gonic/gin"
)

type SettingsProcessor interface {
	ListSettings(ctx context.Context) (map[string]json.RawMessage, error)
	SaveSettings(ctx context.Context, values map[string]json.RawMessage) error
	ChatConfig(ctx context.Context) (processor.ChatConfig, string, error)
	SaveChatConfig(ctx context.Context, in processor.ChatConfigInput) (processor.ChatConfig, error)
}

type Handler struct {
	processor SettingsProcessor
	logger    *observability.Logger
}

func New(processor SettingsProcessor, logger *observability.Logger) *Handler {
	return &Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleListSettings handles GET /api/admin/settings
func (h *Handler) HandleListSettings(c *gin.Context) {
	settings, err := h.processor.ListSettings(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

// HandleSaveSettings handles POST /api/admin/settings. The body is an object
// of setting name to any JSON value.
func (h *Handler) HandleSaveSettings(c *gin.Context) {
	var values map[string]json.RawMessage
	if err := c.ShouldBindJSON(&values); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	if len(values) == 0 {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "No settings provided"))
		return
	}

	if err := h.processor.SaveSettings(c.Request.Context(), values); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings saved"})
}

type ChatConfigRequest struct {
	Provider          string `json:"provider" binding:"required,oneof=ollama openai anthropic gemini"`
	Model             string `json:"model" binding:"max=100"`
	Endpoint          string `json:"endpoint" binding:"omitempty,url,max=500"`
	APIKey            string `json:"apiKey" binding:"max=200"`
	ClearAPIKey       bool   `json:"clearApiKey"`
	SystemPrompt      string `json:"systemPrompt" binding:"max=5000"`
	EnableProductChat *bool  `json:"enableProductChat"`
	EnableBlogChat    *bool  `json:"enableBlogChat"`
}

// HandleGetChatConfig handles GET /api/admin/chat-config
func (h *Handler) HandleGetChatConfig(c *gin.Context) {
	cfg, source, err := h.processor.ChatConfig(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": cfg.Public(), "source": source})
}

// HandleSaveChatConfig handles POST /api/admin/chat-config
func (h *Handler) HandleSaveChatConfig(c *gin.Context) {
	var req ChatConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	cfg, err := h.processor.SaveChatConfig(c.Request.Context(), processor.ChatConfigInput{
		Provider:          req.Provider,
		Model:             req.Model,
		Endpoint:          req.Endpoint,
		APIKey:            req.APIKey,
		ClearAPIKey:       req.ClearAPIKey,
		SystemPrompt:      req.SystemPrompt,
		EnableProductChat: req.EnableProductChat,
		EnableBlogChat:    req.EnableBlogChat,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings saved", "settings": cfg.Public()})
}
