package apierrors

import (
	"errors"

	authProcessor "shop-admin/internal/auth/processor"
	chatProcessor "shop-admin/internal/chat/processor"
	"shop-admin/internal/clients/llm"
	"shop-admin/internal/clients/n8n"
	"shop-admin/internal/clients/stripe"
	billingProcessor "shop-admin/internal/money/billing/processor"
	postsProcessor "shop-admin/internal/posts/processor"
	productsProcessor "shop-admin/internal/products/processor"
	publicProcessor "shop-admin/internal/publicapi/processor"
	settingsProcessor "shop-admin/internal/settings/processor"
	"shop-admin/internal/store"
	subscribersProcessor "shop-admin/internal/subscribers/processor"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Map auth processor errors
	case errors.Is(err, authProcessor.ErrInvalidCredentials):
		return Unauthorized(CodeInvalidCredentials, "Invalid email or password")

	case errors.Is(err, authProcessor.ErrInvalidToken):
		return Unauthorized(CodeUnauthorized, "Invalid or expired token")

	// Map products processor errors
	case errors.Is(err, productsProcessor.ErrProductNotFound):
		return NotFound(CodeProductNotFound, "Product not found")

	case errors.Is(err, productsProcessor.ErrInvalidCurrency):
		return BadRequest(CodeInvalidCurrency, "Unsupported currency")

	case errors.Is(err, productsProcessor.ErrInvalidPrice):
		return BadRequest(CodeInvalidPrice, "Price must not be negative")

	// Map billing processor errors
	case errors.Is(err, billingProcessor.ErrWebhookNotConfigured):
		return ServiceUnavailable(CodeWebhookNotConfigured, "Webhook not configured", err)

	case errors.Is(err, billingProcessor.ErrInvalidSignature):
		return BadRequest(CodeInvalidSignature, "Invalid webhook signature")

	// Map posts processor errors
	case errors.Is(err, postsProcessor.ErrPostNotFound):
		return NotFound(CodePostNotFound, "Post not found")

	case errors.Is(err, postsProcessor.ErrSlugTaken):
		return Conflict(CodeSlugTaken, "Slug is already in use")

	case errors.Is(err, postsProcessor.ErrInvalidSlug):
		return BadRequest(CodeInvalidSlug, "Slug may only contain lowercase letters, digits and dashes")

	case errors.Is(err, postsProcessor.ErrInvalidCategory):
		return BadRequest(CodeInvalidCategory, "Category must be Mindset, Skillset or Toolset")

	case errors.Is(err, subscribersProcessor.ErrSubscriberNotFound):
		return NotFound(CodeSubscriberNotFound, "Subscriber not found")

	// Map public API errors
	case errors.Is(err, publicProcessor.ErrNotFound):
		return NotFound(CodeNotFound, "Not found")

	case errors.Is(err, publicProcessor.ErrMissingIdentifier):
		return BadRequest(CodeInvalidInput, "Provide id or slug parameter")

	case errors.Is(err, settingsProcessor.ErrNoSettings):
		return BadRequest(CodeInvalidInput, "No settings provided")

	// Map chat errors
	case errors.Is(err, chatProcessor.ErrMissingTool):
		return BadRequest(CodeInvalidInput, "Missing tool name")

	case errors.Is(err, chatProcessor.ErrChatDisabled):
		return Forbidden(CodeChatDisabled, "Chat is disabled for this page")

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	case errors.Is(err, store.ErrConflict):
		return Conflict(CodeConflict, "Resource already exists")
	}

	if apiErr := mapRelayError(err); apiErr != nil {
		return apiErr
	}
	return mapStripeError(err)
}

// mapRelayError maps AI provider and tool relay failures. Provider messages
// are passed through; relay bodies are not.
func mapRelayError(err error) *APIError {
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		return ServiceUnavailable(CodeAINotConfigured, "AI provider API key is not configured", err)

	case errors.Is(err, llm.ErrUnsupportedProvider):
		return BadRequest(CodeInvalidInput, "Unsupported AI provider")

	case errors.Is(err, llm.ErrEmptyConversation):
		return BadRequest(CodeInvalidInput, "Conversation has no messages")

	case errors.Is(err, n8n.ErrNotConfigured):
		return ServiceUnavailable(CodeToolNotConfigured, "N8N_WEBHOOK_URL not configured", err)

	case errors.Is(err, n8n.ErrEmptyResponse):
		return BadGateway(CodeToolRelayError, "Empty response from n8n", err)
	}

	var llmErr *llm.APIError
	if errors.As(err, &llmErr) {
		return BadGateway(CodeAIProviderError, llmErr.Message, err)
	}

	var relayErr *n8n.APIError
	if errors.As(err, &relayErr) {
		return BadGateway(CodeToolRelayError, "Tool relay request failed", err)
	}

	return nil
}

// mapStripeError maps payment provider failures. Remote messages are safe to
// show to the admin and are passed through.
func mapStripeError(err error) *APIError {
	if errors.Is(err, stripe.ErrNotConfigured) {
		return ServiceUnavailable(CodeStripeNotConfigured, "Stripe is not configured", err)
	}

	var stripeErr *stripe.APIError
	if errors.As(err, &stripeErr) {
		return BadGateway(CodeStripeError, stripeErr.Message, err)
	}

	return InternalError(err)
}
