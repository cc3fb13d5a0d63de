package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/food-order-service/internal/domain/dto"
	"github.com/guttosm/food-order-service/internal/logger"
	"github.com/guttosm/food-order-service/internal/messages"
)

// ErrorHandler logs errors attached to the gin context. Handlers that attached an error
// without writing a response get a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)
		status := c.Writer.Status()

		log := logger.ForRequest(requestID, GetSessionID(c))
		event := log.Warn()
		if status >= http.StatusInternalServerError || !c.Writer.Written() {
			event = log.Error()
		}
		event.
			Str("error", err.Error()).
			Int("status", status).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, messages.Get(messages.ErrKeyInternalError)).
					WithRequestID(requestID))
		}
	}
}
