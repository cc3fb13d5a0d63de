package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/food-order-service/internal/domain/dto"
	"github.com/guttosm/food-order-service/internal/messages"
	"github.com/guttosm/food-order-service/internal/service"
)

// SessionTokenHeader carries the session token for clients that cannot set Authorization.
const SessionTokenHeader = "X-Session-Token"

// Authenticator resolves a session token to a live session id.
type Authenticator interface {
	Authenticate(token string) (string, error)
}

// SessionAuth returns a middleware that requires a valid session token, taken from
// "Authorization: Bearer <token>" or X-Session-Token, and stores the session id in the
// context.
func SessionAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := sessionToken(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, messages.ErrKeyInvalidToken)
			return
		}
		if token == "" {
			abortWithError(c, http.StatusUnauthorized, messages.ErrKeyTokenRequired)
			return
		}

		sessionID, err := auth.Authenticate(token)
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			abortWithError(c, http.StatusNotFound, messages.ErrKeySessionNotFound)
			return
		case err != nil:
			abortWithError(c, http.StatusUnauthorized, messages.ErrKeyInvalidToken)
			return
		}

		c.Set(string(SessionIDKey), sessionID)
		c.Next()
	}
}

// sessionToken returns the presented token. ok is false when Authorization is set but is
// not a bearer credential.
func sessionToken(c *gin.Context) (token string, ok bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, value, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			return "", false
		}
		return strings.TrimSpace(value), true
	}
	return strings.TrimSpace(c.GetHeader(SessionTokenHeader)), true
}

func abortWithError(c *gin.Context, status int, messageKey string) {
	c.AbortWithStatusJSON(status,
		dto.NewError(dto.ErrCodeFromStatus(status), messages.Get(messageKey)).
			WithRequestID(GetRequestID(c)))
}
