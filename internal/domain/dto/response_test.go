package dto

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse_WithRequestID(t *testing.T) {
	err := NewError(ErrCodeNotFound, "menu item not found").WithRequestID("req-1")

	assert.Equal(t, "req-1", err.RequestID)
	assert.Equal(t, ErrCodeNotFound, err.Error)
	assert.Equal(t, "menu item not found", err.Message)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusForbidden, ErrCodeForbidden},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusTeapot, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestNewError(t *testing.T) {
	before := time.Now()
	err := NewError(ErrCodeInvalidRequest, "spicy level must be between 0 and 3")

	assert.Equal(t, ErrCodeInvalidRequest, err.Error)
	assert.Equal(t, "spicy level must be between 0 and 3", err.Message)
	assert.False(t, err.Timestamp.Before(before))
	assert.Empty(t, err.RequestID)
}

func TestCartResponse_JSON(t *testing.T) {
	data, err := json.Marshal(CartResponse{Lines: []CartLineResponse{}, Total: 0, Count: 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"lines":[],"total":0,"count":0}`, string(data))
}

func TestCustomizationResponse_JSON(t *testing.T) {
	level := 0
	tests := []struct {
		name string
		resp CustomizationResponse
		want string
	}{
		{
			name: "spicy level zero is kept",
			resp: CustomizationResponse{ItemID: "custom-001", SelectedIngredients: []string{}, SpicyLevel: &level},
			want: `{"item_id":"custom-001","selected_ingredients":[],"spicy_level":0}`,
		},
		{
			name: "unset spicy level is omitted",
			resp: CustomizationResponse{ItemID: "fixed-003", SelectedIngredients: []string{}},
			want: `{"item_id":"fixed-003","selected_ingredients":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.resp)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}
