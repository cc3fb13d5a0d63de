//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newIdempotentRouter returns a router whose POST handler counts its calls and creates
// a numbered line.
func newIdempotentRouter(t *testing.T, cfg IdempotencyConfig, status int) (*gin.Engine, *int64) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var calls int64

	router := gin.New()
	router.Use(RequestID(), func(c *gin.Context) {
		if sid := c.GetHeader("X-Test-Session"); sid != "" {
			c.Set(string(SessionIDKey), sid)
		}
		c.Next()
	}, Idempotency(cfg))
	handler := func(c *gin.Context) {
		n := atomic.AddInt64(&calls, 1)
		c.Header("Location", "/api/v1/cart")
		c.JSON(status, gin.H{"line": n})
	}
	router.POST("/api/v1/cart/lines", handler)
	router.GET("/api/v1/cart/lines", handler)
	return router, &calls
}

func doIdempotent(router *gin.Engine, method, key, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/v1/cart/lines", strings.NewReader(body))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	if session != "" {
		req.Header.Set("X-Test-Session", session)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysSuccessfulResponse(t *testing.T) {
	cfg := DefaultIdempotencyConfig()
	defer cfg.Store.Stop()
	router, calls := newIdempotentRouter(t, cfg, http.StatusCreated)

	body := `{"item_id":"custom-001"}`
	first := doIdempotent(router, http.MethodPost, "key-1", "sess-1", body)
	second := doIdempotent(router, http.MethodPost, "key-1", "sess-1", body)

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
	assert.Empty(t, first.Header().Get(IdempotencyReplayedHeader))
	assert.Equal(t, "/api/v1/cart", second.Header().Get("Location"))
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, int64(1), atomic.LoadInt64(calls))
}

func TestIdempotency_Scoping(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		firstKey  string
		secondKey string
		firstSID  string
		secondSID string
		wantCalls int64
	}{
		{name: "no key always runs", method: http.MethodPost, firstSID: "s", secondSID: "s", wantCalls: 2},
		{name: "different keys run twice", method: http.MethodPost, firstKey: "a", secondKey: "b", firstSID: "s", secondSID: "s", wantCalls: 2},
		{name: "same key in another session runs twice", method: http.MethodPost, firstKey: "a", secondKey: "a", firstSID: "s1", secondSID: "s2", wantCalls: 2},
		{name: "GET is never replayed", method: http.MethodGet, firstKey: "a", secondKey: "a", firstSID: "s", secondSID: "s", wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultIdempotencyConfig()
			defer cfg.Store.Stop()
			router, calls := newIdempotentRouter(t, cfg, http.StatusCreated)

			doIdempotent(router, tt.method, tt.firstKey, tt.firstSID, `{}`)
			doIdempotent(router, tt.method, tt.secondKey, tt.secondSID, `{}`)

			assert.Equal(t, tt.wantCalls, atomic.LoadInt64(calls))
		})
	}
}

func TestIdempotency_DifferentBodyConflicts(t *testing.T) {
	cfg := DefaultIdempotencyConfig()
	defer cfg.Store.Stop()
	router, calls := newIdempotentRouter(t, cfg, http.StatusCreated)

	doIdempotent(router, http.MethodPost, "key-1", "sess-1", `{"item_id":"fixed-003"}`)
	w := doIdempotent(router, http.MethodPost, "key-1", "sess-1", `{"item_id":"fixed-001"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "conflict")
	assert.Equal(t, int64(1), atomic.LoadInt64(calls))
}

func TestIdempotency_FailuresAreNotStored(t *testing.T) {
	cfg := DefaultIdempotencyConfig()
	defer cfg.Store.Stop()
	router, calls := newIdempotentRouter(t, cfg, http.StatusBadRequest)

	doIdempotent(router, http.MethodPost, "key-1", "sess-1", `{}`)
	w := doIdempotent(router, http.MethodPost, "key-1", "sess-1", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get(IdempotencyReplayedHeader))
	assert.Equal(t, int64(2), atomic.LoadInt64(calls))
}

func TestIdempotency_InFlightConflicts(t *testing.T) {
	cfg := DefaultIdempotencyConfig()
	defer cfg.Store.Stop()
	router, _ := newIdempotentRouter(t, cfg, http.StatusCreated)

	storeKey := idempotencyStoreKey("sess-1", http.MethodPost, "/api/v1/cart/lines", "key-1")
	cfg.Store.Begin(storeKey)
	defer cfg.Store.Done(storeKey)

	w := doIdempotent(router, http.MethodPost, "key-1", "sess-1", `{}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestIdempotency_KeyTooLong(t *testing.T) {
	cfg := DefaultIdempotencyConfig()
	defer cfg.Store.Stop()
	router, calls := newIdempotentRouter(t, cfg, http.StatusCreated)

	w := doIdempotent(router, http.MethodPost, strings.Repeat("k", maxIdempotencyKeyLength+1), "sess-1", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, atomic.LoadInt64(calls))
}

func TestIdempotency_Disabled(t *testing.T) {
	cfg := IdempotencyConfig{Enabled: false}
	router, calls := newIdempotentRouter(t, cfg, http.StatusCreated)

	for i := 0; i < 3; i++ {
		w := doIdempotent(router, http.MethodPost, "key-1", "sess-1", `{}`)
		assert.Equal(t, http.StatusCreated, w.Code, "attempt "+strconv.Itoa(i))
	}
	assert.Equal(t, int64(3), atomic.LoadInt64(calls))
}

func TestIdempotencyKeyTTL(t *testing.T) {
	assert.Equal(t, 5*time.Minute, IdempotencyKeyTTL)
}
