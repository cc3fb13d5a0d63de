//go:build !integration

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/food-order-service/internal/domain/dto"
	"github.com/guttosm/food-order-service/internal/service"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func TestSessionAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		headers        map[string]string
		setupMocks     func(*mockAuthenticator)
		expectedStatus int
		expectedCode   string
		expectedMsg    string
		expectedID     string
	}{
		{
			name:    "bearer token",
			headers: map[string]string{"Authorization": "Bearer good"},
			setupMocks: func(m *mockAuthenticator) {
				m.On("Authenticate", "good").Return("sess-1", nil)
			},
			expectedStatus: http.StatusOK,
			expectedID:     "sess-1",
		},
		{
			name:    "lowercase bearer scheme",
			headers: map[string]string{"Authorization": "bearer good"},
			setupMocks: func(m *mockAuthenticator) {
				m.On("Authenticate", "good").Return("sess-1", nil)
			},
			expectedStatus: http.StatusOK,
			expectedID:     "sess-1",
		},
		{
			name:    "session token header",
			headers: map[string]string{SessionTokenHeader: "good"},
			setupMocks: func(m *mockAuthenticator) {
				m.On("Authenticate", "good").Return("sess-2", nil)
			},
			expectedStatus: http.StatusOK,
			expectedID:     "sess-2",
		},
		{
			name:           "missing token",
			headers:        map[string]string{},
			setupMocks:     func(*mockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   dto.ErrCodeUnauthorized,
			expectedMsg:    "Session token is required",
		},
		{
			name:           "empty bearer token",
			headers:        map[string]string{"Authorization": "Bearer  "},
			setupMocks:     func(*mockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   dto.ErrCodeUnauthorized,
			expectedMsg:    "Session token is required",
		},
		{
			name:           "non bearer authorization",
			headers:        map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
			setupMocks:     func(*mockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   dto.ErrCodeUnauthorized,
			expectedMsg:    "Invalid or expired session token",
		},
		{
			name:    "invalid token",
			headers: map[string]string{"Authorization": "Bearer forged"},
			setupMocks: func(m *mockAuthenticator) {
				m.On("Authenticate", "forged").Return("", service.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   dto.ErrCodeUnauthorized,
			expectedMsg:    "Invalid or expired session token",
		},
		{
			name:    "ended session",
			headers: map[string]string{"Authorization": "Bearer stale"},
			setupMocks: func(m *mockAuthenticator) {
				m.On("Authenticate", "stale").Return("", service.ErrSessionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrCodeNotFound,
			expectedMsg:    "Session not found or expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthenticator{}
			tt.setupMocks(auth)

			router := gin.New()
			router.Use(RequestID(), SessionAuth(auth))
			router.GET("/cart", func(c *gin.Context) {
				c.String(http.StatusOK, GetSessionID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/cart", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedID, w.Body.String())
			} else {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
				assert.Equal(t, tt.expectedMsg, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
			}
			auth.AssertExpectations(t)
		})
	}
}
