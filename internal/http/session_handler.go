package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/food-order-service/internal/domain/dto"
	"github.com/guttosm/food-order-service/internal/domain/model"
	"github.com/guttosm/food-order-service/internal/messages"
	"github.com/guttosm/food-order-service/internal/middleware"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// StartSession handles POST /api/sessions.
//
// @Summary      Start an ordering session
// @Description  Creates an empty cart and returns the token that authenticates the session on every session and cart route.
// @Tags         Session
// @Produce      json
// @Success      201 {object} dto.SuccessResponse{data=dto.SessionResponse} "Session started"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Failure      500 {object} dto.ErrorResponse "Token could not be signed"
// @Router       /api/sessions [post]
func (h *Handler) StartSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	resp, err := h.ordering.StartSession()
	if err != nil {
		builder.ServiceError(err)
		return
	}

	c.Set(string(middleware.SessionIDKey), resp.SessionID)
	audit(c, model.ActionSessionStart, messages.Get(messages.SuccessKeySessionStarted), nil)
	builder.SuccessCreated(resp)
}

// EndSession handles DELETE /api/session.
//
// @Summary      End the session
// @Description  Drops the session's cart and customizations. The token stops working.
// @Tags         Session
// @Produce      json
// @Security     SessionToken
// @Success      204 "Session ended"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Router       /api/session [delete]
func (h *Handler) EndSession(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if err := h.ordering.EndSession(sessionID); err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}

	audit(c, model.ActionSessionEnd, messages.Get(messages.SuccessKeySessionEnded), nil)
	c.Status(http.StatusNoContent)
}

// SessionHistory handles GET /api/session/history.
//
// @Summary      Session action history
// @Description  Lists the audited actions of the session, oldest first. Requires MongoDB.
// @Tags         Session
// @Produce      json
// @Security     SessionToken
// @Param        limit query int false "Maximum entries (1-500)" default(50)
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionHistoryResponse} "History"
// @Failure      400 {object} dto.ErrorResponse "Invalid limit"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "History not available"
// @Router       /api/session/history [get]
func (h *Handler) SessionHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.history == nil {
		builder.Error(http.StatusNotFound, messages.ErrKeyNotFound, nil)
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			builder.Error(http.StatusBadRequest, messages.ErrKeyInvalidRequest, err)
			return
		}
		limit = n
	}

	entries, err := h.history.SessionHistory(c.Request.Context(), middleware.GetSessionID(c), limit)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	out := make([]dto.SessionHistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.ActionType == "" {
			continue
		}
		out = append(out, dto.SessionHistoryEntry{
			Timestamp: e.Timestamp,
			Action:    e.ActionType,
			Message:   e.Message,
			Error:     e.Error,
			Fields:    e.Fields,
		})
	}
	builder.SuccessOK(dto.SessionHistoryResponse{Entries: out, Count: len(out)})
}
