package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/food-order-service/internal/domain/dto"
	"github.com/guttosm/food-order-service/internal/domain/model"
	"github.com/guttosm/food-order-service/internal/middleware"
)

// GetCustomization handles GET /api/session/customizations/:itemId.
//
// @Summary      Get an item's customization
// @Description  Returns the in-progress selection and spice level of the item. An item that was never customized reports no ingredients and its default spice level.
// @Tags         Customization
// @Produce      json
// @Security     SessionToken
// @Param        itemId path string true "Menu item id" example(custom-001)
// @Success      200 {object} dto.SuccessResponse{data=dto.CustomizationResponse} "Customization"
// @Failure      400 {object} dto.ErrorResponse "Unknown or fixed item (strict validation)"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Router       /api/session/customizations/{itemId} [get]
func (h *Handler) GetCustomization(c *gin.Context) {
	builder := NewResponseBuilder(c)
	itemID := c.Param("itemId")

	state, err := h.ordering.Customization(middleware.GetSessionID(c), itemID)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(toCustomizationResponse(itemID, state))
}

// ToggleIngredient handles POST /api/session/customizations/:itemId/toggle.
//
// @Summary      Toggle an ingredient
// @Description  Adds the ingredient to the item's selection, or removes it when already selected. Toggling twice restores the previous selection.
// @Tags         Customization
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        itemId path string true "Menu item id" example(custom-001)
// @Param        request body dto.ToggleIngredientRequest true "Ingredient to toggle"
// @Success      200 {object} dto.SuccessResponse{data=dto.CustomizationResponse} "Updated customization"
// @Failure      400 {object} dto.ErrorResponse "Invalid body, or ingredient not offered (strict validation)"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Router       /api/session/customizations/{itemId}/toggle [post]
func (h *Handler) ToggleIngredient(c *gin.Context) {
	builder := NewResponseBuilder(c)
	itemID := c.Param("itemId")

	req, err := BuildRequestAndValidate[dto.ToggleIngredientRequest](c)
	if err != nil {
		builder.bindError(err)
		return
	}

	state, err := h.ordering.ToggleIngredient(middleware.GetSessionID(c), itemID, req.IngredientID)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	audit(c, model.ActionToggle, "Ingredient toggled", map[string]interface{}{
		"item_id":       itemID,
		"ingredient_id": req.IngredientID,
		"selected":      state.Has(req.IngredientID),
	})
	builder.SuccessOK(toCustomizationResponse(itemID, state))
}

// SetSpicyLevel handles PUT /api/session/customizations/:itemId/spicy-level.
//
// @Summary      Set the spice level
// @Description  Sets the item's spice level. Levels outside 0..3 are rejected and the previous level is kept.
// @Tags         Customization
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        itemId path string true "Menu item id" example(custom-001)
// @Param        request body dto.SetSpicyLevelRequest true "Spice level"
// @Success      200 {object} dto.SuccessResponse{data=dto.CustomizationResponse} "Updated customization"
// @Failure      400 {object} dto.ErrorResponse "Level outside 0..3 or invalid body"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Router       /api/session/customizations/{itemId}/spicy-level [put]
func (h *Handler) SetSpicyLevel(c *gin.Context) {
	builder := NewResponseBuilder(c)
	itemID := c.Param("itemId")

	req, err := BuildRequestAndValidate[dto.SetSpicyLevelRequest](c)
	if err != nil {
		builder.bindError(err)
		return
	}

	state, err := h.ordering.SetSpicyLevel(middleware.GetSessionID(c), itemID, *req.Level)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	audit(c, model.ActionSetSpicyLevel, "Spicy level set", map[string]interface{}{
		"item_id": itemID,
		"level":   *req.Level,
	})
	builder.SuccessOK(toCustomizationResponse(itemID, state))
}
