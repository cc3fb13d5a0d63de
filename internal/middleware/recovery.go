package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/food-order-service/internal/domain/dto"
	"github.com/guttosm/food-order-service/internal/logger"
	"github.com/guttosm/food-order-service/internal/messages"
)

// Recovery returns a middleware that turns a handler panic into a 500 error response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)
				log := logger.ForRequest(requestID, GetSessionID(c))
				log.Error().
					Interface("panic", err).
					Str("path", c.Request.URL.Path).
					Str("method", c.Request.Method).
					Msg("PANIC recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewError(dto.ErrCodeInternal, messages.Get(messages.ErrKeyInternalError)).
						WithRequestID(requestID))
			}
		}()
		c.Next()
	}
}
