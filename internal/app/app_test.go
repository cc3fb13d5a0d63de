//go:build !integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = 100
	cfg.Server.RateWindow = time.Minute

	app := InitializeApp(cfg)
	require.NotNil(t, app)
	require.NotNil(t, app.Engine)
	t.Cleanup(func() { app.Close(context.Background()) })

	t.Run("serves the menu", func(t *testing.T) {
		w := httptest.NewRecorder()
		app.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/menu", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("readiness reports the built-in catalog", func(t *testing.T) {
		w := httptest.NewRecorder()
		app.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Info map[string]interface{} `json:"info"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "builtin", body.Info["catalog_source"])
		assert.Contains(t, body.Info, "active_sessions")
	})

	t.Run("protected routes are mounted", func(t *testing.T) {
		w := httptest.NewRecorder()
		app.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestApp_CloseWithoutDatabase(t *testing.T) {
	app := InitializeApp(testConfig())
	assert.NotPanics(t, func() { app.Close(context.Background()) })
}
