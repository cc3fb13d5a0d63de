package dto

import (
	"net/http"
	"time"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency is unavailable.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (menu items, customization state, cart lines)
	// Example: {"lines": [], "total": 0, "count": 0}
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"spicy level must be between 0 and 3"`
	// Details contains additional error details (optional)
	// Example: {"ingredient_id": "ing-lamb"}
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// SessionResponse is returned when a session is started.
// @Description New ordering session and the token that authenticates it
type SessionResponse struct {
	SessionID string    `json:"session_id" example:"4f1c2b7e-7a53-4b8e-9a31-5c0d9e3f2a10"`
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time `json:"expires_at" example:"2025-01-28T12:00:00Z"`
} // @name SessionResponse

// CartLineResponse is one cart line with its price contribution.
// @Description Committed cart line
type CartLineResponse struct {
	ID          string      `json:"id" example:"01HZX3Q4K8V6C2M9T7R5N1B0YA"`
	Item        interface{} `json:"item" swaggertype:"object"`
	Price       int64       `json:"price" example:"9500"`
	CommittedAt time.Time   `json:"committed_at" example:"2025-01-28T10:00:00Z"`
} // @name CartLineResponse

// CartResponse lists the cart in commit order with its total.
// @Description Session cart
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total int64              `json:"total" example:"11500"`
	Count int                `json:"count" example:"2"`
} // @name CartResponse

// CartTotalResponse carries only the cart total.
// @Description Cart total in won
type CartTotalResponse struct {
	Total int64 `json:"total" example:"11500"`
} // @name CartTotalResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// CustomizationResponse is the in-progress customization of one item.
// @Description Current add-on selection and spice level for a menu item
type CustomizationResponse struct {
	ItemID              string      `json:"item_id" example:"custom-001"`
	SelectedIngredients interface{} `json:"selected_ingredients" swaggertype:"array,object"`
	SpicyLevel          *int        `json:"spicy_level,omitempty" example:"2"`
} // @name CustomizationResponse

// MenuResponse lists the catalog in menu board order.
// @Description Menu catalog
type MenuResponse struct {
	Items interface{} `json:"items" swaggertype:"array,object"`
	Count int         `json:"count" example:"4"`
} // @name MenuResponse

// SessionHistoryEntry is one audited action of a session.
// @Description Audited session action
type SessionHistoryEntry struct {
	Timestamp time.Time              `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	Action    string                 `json:"action" example:"commit"`
	Message   string                 `json:"message" example:"Line committed"`
	Error     string                 `json:"error,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
} // @name SessionHistoryEntry

// SessionHistoryResponse lists a session's audited actions, oldest first.
// @Description Session action history
type SessionHistoryResponse struct {
	Entries []SessionHistoryEntry `json:"entries"`
	Count   int                   `json:"count" example:"3"`
} // @name SessionHistoryResponse
