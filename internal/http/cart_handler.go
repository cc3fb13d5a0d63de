package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/food-order-service/internal/domain/dto"
	"github.com/guttosm/food-order-service/internal/domain/model"
	"github.com/guttosm/food-order-service/internal/messages"
	"github.com/guttosm/food-order-service/internal/middleware"
)

// CommitLine handles POST /api/cart/commit.
//
// @Summary      Add an item to the cart
// @Description  Snapshots the item with its customization into a new cart line. Without selected_ingredient_ids and spicy_level the session's tracked customization is used; fields that are present replace the tracked ones. Later customization changes never alter committed lines. Supports idempotency via the Idempotency-Key header.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CommitRequest true "Item to commit"
// @Success      201 {object} dto.SuccessResponse{data=dto.CartLineResponse} "Line committed"
// @Failure      400 {object} dto.ErrorResponse "Invalid body, spice level or ingredient"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Unknown item, or session not found"
// @Failure      409 {object} dto.ErrorResponse "Idempotency key reused with another body"
// @Router       /api/cart/commit [post]
func (h *Handler) CommitLine(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CommitRequest](c)
	if err != nil {
		builder.bindError(err)
		return
	}

	line, err := h.ordering.Commit(middleware.GetSessionID(c), *req)
	if err != nil {
		auditError(c, model.ActionCommitRejected, "Commit rejected", err, map[string]interface{}{
			"item_id": req.ItemID,
		})
		builder.ServiceError(err)
		return
	}

	audit(c, model.ActionCommit, messages.Get(messages.SuccessKeyLineCommitted), map[string]interface{}{
		"line_id": line.ID,
		"item_id": req.ItemID,
		"type":    string(line.Item.Type()),
		"price":   line.Price(),
	})
	c.Header("Location", "/api/cart")
	builder.SuccessCreated(toCartLineResponse(line))
}

// GetCart handles GET /api/cart.
//
// @Summary      Get the cart
// @Description  Lists the cart lines in commit order with their prices and the cart total.
// @Tags         Cart
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Router       /api/cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	summary, err := h.ordering.Cart(middleware.GetSessionID(c))
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(toCartResponse(summary))
}

// GetCartTotal handles GET /api/cart/total.
//
// @Summary      Get the cart total
// @Tags         Cart
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} dto.SuccessResponse{data=dto.CartTotalResponse} "Total in won"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Router       /api/cart/total [get]
func (h *Handler) GetCartTotal(c *gin.Context) {
	builder := NewResponseBuilder(c)

	total, err := h.ordering.Total(middleware.GetSessionID(c))
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.CartTotalResponse{Total: total})
}
