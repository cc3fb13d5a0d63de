package messages

// Error message keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyServiceUnavailable = "error.service_unavailable"

	// ErrKeyTokenRequired is used when a session route is called without a token.
	ErrKeyTokenRequired = "error.token_required"
	ErrKeyInvalidToken  = "error.invalid_token"

	ErrKeySessionNotFound   = "error.session_not_found"
	ErrKeyItemNotFound      = "error.item_not_found"
	ErrKeyInvalidSpicyLevel = "error.invalid_spicy_level"
	ErrKeyValidation        = "error.validation"
)

// Success message keys.
const (
	SuccessKeySessionStarted = "success.session_started"
	SuccessKeySessionEnded   = "success.session_ended"
	SuccessKeyLineCommitted  = "success.line_committed"
)
