package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Text(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "known error key", key: ErrKeySessionNotFound, want: "Session not found or expired"},
		{name: "known success key", key: SuccessKeyLineCommitted, want: "Item added to cart"},
		{name: "unknown key falls back to the key", key: "error.nope", want: "error.nope"},
	}

	c := NewCatalog()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Text(tt.key))
		})
	}
}

func TestDefault_IsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Equal(t, "Invalid request body", Get(ErrKeyInvalidRequestBody))
}

func TestEveryKeyHasText(t *testing.T) {
	keys := []string{
		ErrKeyInvalidRequest, ErrKeyInvalidRequestBody, ErrKeyInternalError, ErrKeyNotFound,
		ErrKeyRateLimitExceeded, ErrKeyConflict, ErrKeyTimeout, ErrKeyServiceUnavailable, ErrKeyTokenRequired,
		ErrKeyInvalidToken, ErrKeySessionNotFound, ErrKeyItemNotFound, ErrKeyInvalidSpicyLevel,
		ErrKeyValidation, SuccessKeySessionStarted, SuccessKeySessionEnded, SuccessKeyLineCommitted,
	}
	c := NewCatalog()
	for _, key := range keys {
		assert.NotEqual(t, key, c.Text(key), key)
	}
}
