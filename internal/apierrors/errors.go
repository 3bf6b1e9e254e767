package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned in the "code" field.
const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeNotFound             = "NOT_FOUND"
	CodeProductNotFound      = "PRODUCT_NOT_FOUND"
	CodeInvalidCurrency      = "INVALID_CURRENCY"
	CodeInvalidPrice         = "INVALID_PRICE"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeRateLimited          = "RATE_LIMITED"
	CodeStripeNotConfigured  = "STRIPE_NOT_CONFIGURED"
	CodeStripeError          = "STRIPE_ERROR"
	CodeWebhookNotConfigured = "WEBHOOK_NOT_CONFIGURED"
	CodeInvalidSignature     = "INVALID_SIGNATURE"
	CodeConflict             = "CONFLICT"
	CodePostNotFound         = "POST_NOT_FOUND"
	CodeSlugTaken            = "SLUG_TAKEN"
	CodeInvalidSlug          = "INVALID_SLUG"
	CodeInvalidCategory      = "INVALID_CATEGORY"
	CodeSubscriberNotFound   = "SUBSCRIBER_NOT_FOUND"
	CodeUnknownResource      = "UNKNOWN_RESOURCE"
	CodeAINotConfigured      = "AI_NOT_CONFIGURED"
	CodeAIProviderError      = "AI_PROVIDER_ERROR"
	CodeToolNotConfigured    = "TOOL_RELAY_NOT_CONFIGURED"
	CodeToolRelayError       = "TOOL_RELAY_ERROR"
	CodeChatDisabled         = "CHAT_DISABLED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// APIError is an error that knows how it should be presented to API clients.
// Err is kept for logging and never serialized.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func Unauthorized(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: code, Message: message}
}

func Forbidden(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: code, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// BadGateway reports an upstream failure; message is shown to the client.
func BadGateway(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusBadGateway, Code: code, Message: message, Err: err}
}

func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError hides err from the client behind a generic message.
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An unexpected error occurred. Please try again later.",
		Err:        err,
	}
}
