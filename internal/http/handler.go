package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/food-order-service/internal/domain/dto"
	"github.com/guttosm/food-order-service/internal/domain/model"
	"github.com/guttosm/food-order-service/internal/middleware"
	"github.com/guttosm/food-order-service/internal/service"
)

// loggingServiceKey is where the router stores the logging service for audit logs.
const loggingServiceKey = "logging_service"

// Handler provides the HTTP handlers of the menu, session, customization and cart routes.
type Handler struct {
	ordering service.OrderingService
	history  service.LoggingService
}

// NewHandler creates a new Handler. history may be nil when MongoDB is disabled.
func NewHandler(ordering service.OrderingService, history service.LoggingService) *Handler {
	return &Handler{ordering: ordering, history: history}
}

// auditWriter returns the log writer the router put on the context, or nil.
func auditWriter(c *gin.Context) middleware.LogWriter {
	if v, exists := c.Get(loggingServiceKey); exists {
		if w, ok := v.(middleware.LogWriter); ok && w != nil {
			return w
		}
	}
	return nil
}

func audit(c *gin.Context, action, message string, fields map[string]interface{}) {
	middleware.AuditLog(auditWriter(c), c, action, message, fields)
}

func auditError(c *gin.Context, action, message string, err error, fields map[string]interface{}) {
	middleware.AuditLogError(auditWriter(c), c, action, message, err, fields)
}

func toCustomizationResponse(itemID string, state model.CustomizationState) dto.CustomizationResponse {
	selected := state.SelectedIngredients
	if selected == nil {
		selected = []model.Ingredient{}
	}
	resp := dto.CustomizationResponse{ItemID: itemID, SelectedIngredients: selected}
	if state.SpicyLevel != nil {
		level := int(*state.SpicyLevel)
		resp.SpicyLevel = &level
	}
	return resp
}

func toCartLineResponse(line model.CartLine) dto.CartLineResponse {
	return dto.CartLineResponse{
		ID:          line.ID,
		Item:        line.Item,
		Price:       line.Price(),
		CommittedAt: line.CommittedAt,
	}
}

func toCartResponse(summary *service.CartSummary) dto.CartResponse {
	lines := make([]dto.CartLineResponse, len(summary.Lines))
	for i, line := range summary.Lines {
		lines[i] = toCartLineResponse(line)
		lines[i].Price = summary.Breakdown.Lines[i].Price
	}
	return dto.CartResponse{
		Lines: lines,
		Total: summary.Breakdown.Total,
		Count: len(lines),
	}
}
