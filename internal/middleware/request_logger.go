package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/food-order-service/internal/domain/model"
	"github.com/guttosm/food-order-service/internal/logger"
)

// skipLogPaths are health checks and scrapes that would drown the request log.
var skipLogPaths = map[string]struct{}{
	"/healthz": {},
	"/metrics": {},
}

// RequestLogger logs every request to the console and, when writer is not nil, stores it
// through the async logger.
func RequestLogger(writer LogWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if _, skip := skipLogPaths[path]; skip {
			return
		}

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		requestID := GetRequestID(c)
		sessionID := GetSessionID(c)

		log := logger.ForRequest(requestID, sessionID).With().
			Str("method", c.Request.Method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Logger()
		log.WithLevel(levelForStatus(statusCode)).Msg("HTTP request")

		if writer == nil {
			return
		}
		entry := &model.LogEntry{
			Timestamp:  time.Now().UTC(),
			Level:      levelForStatus(statusCode).String(),
			Message:    "HTTP request",
			RequestID:  requestID,
			SessionID:  sessionID,
			Method:     c.Request.Method,
			Path:       path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}
		persist(writer, entry)
	}
}

func levelForStatus(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
