// Package messages holds the user-facing texts of the API, looked up by key.
package messages

import "sync"

var (
	defaultCatalog *Catalog
	catalogOnce    sync.Once
)

// Catalog maps message keys to texts.
type Catalog struct {
	texts map[string]string
}

// NewCatalog creates a catalog with the built-in texts.
func NewCatalog() *Catalog {
	return &Catalog{texts: defaultTexts()}
}

// Default returns the shared catalog.
func Default() *Catalog {
	catalogOnce.Do(func() {
		defaultCatalog = NewCatalog()
	})
	return defaultCatalog
}

// Text returns the text for key, or key itself when it is unknown.
func (c *Catalog) Text(key string) string {
	if msg, ok := c.texts[key]; ok {
		return msg
	}
	return key
}

// Get is shorthand for Default().Text(key).
func Get(key string) string {
	return Default().Text(key)
}

func defaultTexts() map[string]string {
	return map[string]string{
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyNotFound:           "Not found",
		ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
		ErrKeyConflict:           "Conflict",
		ErrKeyTimeout:            "Request timed out",
		ErrKeyServiceUnavailable: "Service temporarily unavailable",
		ErrKeyTokenRequired:      "Session token is required",
		ErrKeyInvalidToken:       "Invalid or expired session token",
		ErrKeySessionNotFound:    "Session not found or expired",
		ErrKeyItemNotFound:       "Menu item not found",
		ErrKeyInvalidSpicyLevel:  "Spicy level must be between 0 and 3",
		ErrKeyValidation:         "Validation failed",

		SuccessKeySessionStarted: "Session started",
		SuccessKeySessionEnded:   "Session ended",
		SuccessKeyLineCommitted:  "Item added to cart",
	}
}
