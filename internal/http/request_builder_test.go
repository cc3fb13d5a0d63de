//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/food-order-service/internal/circuitbreaker"
	"github.com/guttosm/food-order-service/internal/domain/dto"
	"github.com/guttosm/food-order-service/internal/domain/model"
	"github.com/guttosm/food-order-service/internal/messages"
	"github.com/guttosm/food-order-service/internal/service"
)

func jsonContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
		expectedID  string
	}{
		{name: "valid body", body: `{"item_id":"custom-001"}`, expectedID: "custom-001"},
		{name: "missing required field", body: `{"spicy_level":1}`, expectError: true},
		{name: "invalid json", body: `{"item_id":}`, expectError: true},
		{name: "empty body", body: ``, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := jsonContext(tt.body)
			req, err := BuildRequest[dto.CommitRequest](c)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, req.ItemID)
		})
	}
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedField string
		expectError   bool
	}{
		{name: "valid toggle", body: `{"ingredient_id":"ing-beef"}`},
		{name: "blank ingredient id", body: `{"ingredient_id":"   "}`, expectError: true, expectedField: "ingredient_id"},
		{name: "missing ingredient id", body: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := jsonContext(tt.body)
			req, err := BuildRequestAndValidate[dto.ToggleIngredientRequest](c)
			if !tt.expectError {
				require.NoError(t, err)
				assert.Equal(t, "ing-beef", req.IngredientID)
				return
			}
			require.Error(t, err)
			if tt.expectedField != "" {
				var vErr *dto.ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, tt.expectedField, vErr.Field)
			}
		})
	}
}

func TestResponseBuilder_BindError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
		expectDetails   bool
	}{
		{
			name:            "validation error carries details",
			err:             dto.ErrItemIDRequired,
			expectedMessage: messages.Get(messages.ErrKeyValidation),
			expectDetails:   true,
		},
		{
			name:            "decode error",
			err:             errors.New("unexpected EOF"),
			expectedMessage: messages.Get(messages.ErrKeyInvalidRequestBody),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := jsonContext("")
			NewResponseBuilder(c).bindError(tt.err)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			if tt.expectDetails {
				assert.Equal(t, "item_id", resp.Details["field"])
				assert.Equal(t, "must not be empty", resp.Details["reason"])
			} else {
				assert.Empty(t, resp.Details)
			}
			assert.Len(t, c.Errors, 1)
		})
	}
}

func TestResponseBuilder_ServiceError(t *testing.T) {
	_, spicyErr := model.ParseSpicyLevel(5)

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedCode    string
		expectedMessage string
		expectedDetails map[string]string
	}{
		{
			name:            "strict validation error",
			err:             &service.ValidationError{Field: "ingredient_id", ID: "ing-lamb", Message: "is not offered by custom-001"},
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    dto.ErrCodeInvalidRequest,
			expectedMessage: messages.Get(messages.ErrKeyValidation),
			expectedDetails: map[string]string{"field": "ingredient_id", "id": "ing-lamb", "reason": "is not offered by custom-001"},
		},
		{
			name:            "spicy level out of range",
			err:             spicyErr,
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    dto.ErrCodeInvalidRequest,
			expectedMessage: messages.Get(messages.ErrKeyInvalidSpicyLevel),
			expectedDetails: map[string]string{"level": spicyErr.Error()},
		},
		{
			name:            "session not found",
			err:             service.ErrSessionNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedCode:    dto.ErrCodeNotFound,
			expectedMessage: messages.Get(messages.ErrKeySessionNotFound),
		},
		{
			name:            "wrapped item not found",
			err:             fmt.Errorf("commit: %w", service.ErrItemNotFound),
			expectedStatus:  http.StatusNotFound,
			expectedCode:    dto.ErrCodeNotFound,
			expectedMessage: messages.Get(messages.ErrKeyItemNotFound),
		},
		{
			name:            "invalid token",
			err:             service.ErrInvalidToken,
			expectedStatus:  http.StatusUnauthorized,
			expectedCode:    dto.ErrCodeUnauthorized,
			expectedMessage: messages.Get(messages.ErrKeyInvalidToken),
		},
		{
			name:            "circuit open",
			err:             circuitbreaker.ErrCircuitOpen,
			expectedStatus:  http.StatusServiceUnavailable,
			expectedCode:    dto.ErrCodeUnavailable,
			expectedMessage: messages.Get(messages.ErrKeyServiceUnavailable),
		},
		{
			name:            "unexpected error",
			err:             errors.New("boom"),
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    dto.ErrCodeInternal,
			expectedMessage: messages.Get(messages.ErrKeyInternalError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := jsonContext("")
			NewResponseBuilder(c).ServiceError(tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, c.IsAborted())
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			if tt.expectedDetails != nil {
				assert.Equal(t, tt.expectedDetails, resp.Details)
			}
			require.Len(t, c.Errors, 1)
			assert.ErrorIs(t, c.Errors.Last().Err, tt.err)
		})
	}
}
