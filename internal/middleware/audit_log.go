package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/food-order-service/internal/domain/model"
)

// AuditLog records a session action such as a commit or a customization change.
// It is a no-op when writer is nil.
func AuditLog(writer LogWriter, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if writer == nil {
		return
	}
	persist(writer, auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a rejected session action together with its error.
func AuditLogError(writer LogWriter, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if writer == nil {
		return
	}
	entry := auditEntry(c, "warn", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	persist(writer, entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		SessionID:  GetSessionID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}
