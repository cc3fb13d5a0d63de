//go:build !integration

package http

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "github.com/guttosm/food-order-service/docs"
	"github.com/guttosm/food-order-service/internal/service"
)

var (
	routerAnnotation = regexp.MustCompile(`(?m)^//\s*@Router\s+(\S+)\s+\[(\w+)\]`)
	ginParam         = regexp.MustCompile(`:(\w+)`)
)

// documentedOperations returns "METHOD /path" for every operation of the registered swagger doc.
func documentedOperations(t *testing.T) map[string]bool {
	t.Helper()
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	ops := make(map[string]bool)
	for path, methods := range doc.Paths {
		for method := range methods {
			ops[strings.ToUpper(method)+" "+path] = true
		}
	}
	return ops
}

// annotatedOperations returns "METHOD /path" for every @Router annotation in the package sources.
func annotatedOperations(t *testing.T) map[string]bool {
	t.Helper()
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	ops := make(map[string]bool)
	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		src, err := os.ReadFile(f)
		require.NoError(t, err)
		for _, m := range routerAnnotation.FindAllStringSubmatch(string(src), -1) {
			ops[strings.ToUpper(m[2])+" "+m[1]] = true
		}
	}
	return ops
}

func TestSwaggerDoc_MatchesRouterAnnotations(t *testing.T) {
	annotated := annotatedOperations(t)
	require.NotEmpty(t, annotated)

	assert.Equal(t, annotated, documentedOperations(t),
		"docs/docs.go is stale; run go generate ./cmd")
}

func TestSwaggerDoc_CoversRegisteredRoutes(t *testing.T) {
	catalog := service.NewCatalogService(nil)
	sessions := service.NewSessionStore(service.SessionStoreConfig{}, catalog.SpicyDefault)
	tokens := service.NewTokenService(service.TokenConfig{SecretKey: "docs-test"})
	ordering := service.NewOrderingService(catalog, sessions, tokens, service.OrderingConfig{})

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.Authenticator = ordering
	router := NewRouter(NewHandler(ordering, nil), NewHealthHandler(), cfg)
	documented := documentedOperations(t)

	checked := 0
	for _, r := range router.Routes() {
		if !strings.HasPrefix(r.Path, "/api/") && r.Path != "/healthz" && r.Path != "/readyz" {
			continue
		}
		if r.Method == "HEAD" || r.Method == "OPTIONS" {
			continue
		}
		op := r.Method + " " + ginParam.ReplaceAllString(r.Path, "{$1}")
		assert.True(t, documented[op], "route %s is not documented", op)
		checked++
	}
	assert.Positive(t, checked)
}
