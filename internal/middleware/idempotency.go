package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/food-order-service/internal/messages"
)

const (
	// IdempotencyKeyHeader is the request header carrying the client's idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader is set on responses served from the store.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long responses are replayable.
	IdempotencyKeyTTL = 5 * time.Minute

	maxIdempotencyKeyLength = 255
)

// replayedHeaders are copied from the original response on replay.
var replayedHeaders = []string{"Location"}

// IdempotencyConfig holds configuration for the idempotency middleware.
type IdempotencyConfig struct {
	Store   *IdempotencyStore
	Enabled bool
}

// DefaultIdempotencyConfig returns an enabled config with its own store.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Store:   NewIdempotencyStore(IdempotencyKeyTTL, defaultIdempotencyCapacity),
		Enabled: true,
	}
}

// Idempotency replays the stored response when a POST, PUT or PATCH is retried with the
// same Idempotency-Key. Keys are scoped to the session, so two sessions may reuse a key.
// Reusing a key with a different body, or while the first request still runs, is a
// conflict. Only 2xx responses are stored.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Store == nil {
		return func(c *gin.Context) { c.Next() }
	}
	store := cfg.Store

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			abortWithError(c, http.StatusBadRequest, messages.ErrKeyInvalidRequest)
			return
		}

		body, err := readBody(c.Request)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, messages.ErrKeyInvalidRequestBody)
			return
		}
		storeKey := idempotencyStoreKey(GetSessionID(c), c.Request.Method, c.Request.URL.Path, key)
		bodyHash := hashBytes(body)

		if cached, ok := store.Get(storeKey); ok {
			if cached.BodyHash != bodyHash {
				abortWithError(c, http.StatusConflict, messages.ErrKeyConflict)
				return
			}
			replay(c, cached)
			return
		}

		if !store.Begin(storeKey) {
			abortWithError(c, http.StatusConflict, messages.ErrKeyConflict)
			return
		}
		defer store.Done(storeKey)

		writer := &capturingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		resp := &cachedResponse{
			StatusCode:  status,
			ContentType: writer.Header().Get("Content-Type"),
			Headers:     make(map[string]string),
			Body:        append([]byte(nil), writer.body.Bytes()...),
			BodyHash:    bodyHash,
		}
		for _, h := range replayedHeaders {
			if v := writer.Header().Get(h); v != "" {
				resp.Headers[h] = v
			}
		}
		store.Set(storeKey, resp)
	}
}

func replay(c *gin.Context, cached *cachedResponse) {
	for k, v := range cached.Headers {
		c.Header(k, v)
	}
	c.Header(IdempotencyReplayedHeader, "true")
	contentType := cached.ContentType
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}
	c.Data(cached.StatusCode, contentType, cached.Body)
	c.Abort()
}

func readBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

func idempotencyStoreKey(sessionID, method, path, key string) string {
	h := sha256.New()
	for _, part := range []string{sessionID, method, path, key} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func hashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// capturingWriter copies the response body while writing it through.
type capturingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
