package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/food-order-service/internal/domain/dto"
)

// ListMenu handles GET /api/menu.
//
// @Summary      List the menu
// @Description  Returns every menu item in menu board order. Fixed items carry their optional spicy flag and size; customizable items carry their available ingredients and default spice level.
// @Tags         Menu
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.MenuResponse} "Menu"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Router       /api/menu [get]
func (h *Handler) ListMenu(c *gin.Context) {
	items := h.ordering.Menu()
	NewResponseBuilder(c).SuccessOK(dto.MenuResponse{Items: items, Count: len(items)})
}

// GetMenuItem handles GET /api/menu/:itemId.
//
// @Summary      Get a menu item
// @Tags         Menu
// @Produce      json
// @Param        itemId path string true "Menu item id" example(custom-001)
// @Success      200 {object} dto.SuccessResponse "Menu item"
// @Failure      404 {object} dto.ErrorResponse "Unknown item"
// @Router       /api/menu/{itemId} [get]
func (h *Handler) GetMenuItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	item, err := h.ordering.MenuItem(c.Param("itemId"))
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(item)
}
