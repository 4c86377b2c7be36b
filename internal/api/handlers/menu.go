package handlers

import (
	"net/http"
	"strconv"

	"bizhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MenuHandler handles HTTP requests for the tenant's menu
type MenuHandler struct {
	service service.MenuServiceInterface
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service service.MenuServiceInterface) *MenuHandler {
	return &MenuHandler{service: service}
}

// CreateMenuItem handles POST /api/menu/items
// @Summary Create a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param item body service.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} models.MenuItem "Created menu item"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Onboarding required"
// @Failure 409 {object} ErrorResponse "Menu item already exists"
// @Security SessionAuth
// @Router /menu/items [post]
func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var req service.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	item, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create menu item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetMenuItem handles GET /api/menu/items/:id
// @Summary Get a menu item
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID (UUID)"
// @Success 200 {object} models.MenuItem "Menu item"
// @Failure 400 {object} ErrorResponse "Invalid menu item ID"
// @Failure 404 {object} ErrorResponse "Menu item not found"
// @Security SessionAuth
// @Router /menu/items/{id} [get]
func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	id, ok := parseID(c, "menu item")
	if !ok {
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get menu item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListMenuItems handles GET /api/menu/items
// @Summary List menu items
// @Tags menu
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.MenuItemListResponse "Menu items"
// @Security SessionAuth
// @Router /menu/items [get]
func (h *MenuHandler) ListMenuItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	items, err := h.service.List(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list menu items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpdateMenuItem handles PUT /api/menu/items/:id
// @Summary Update a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID (UUID)"
// @Param item body service.UpdateMenuItemRequest true "Changed fields"
// @Success 200 {object} models.MenuItem "Updated menu item"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Menu item not found"
// @Failure 409 {object} ErrorResponse "Menu item already exists"
// @Security SessionAuth
// @Router /menu/items/{id} [put]
func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c, "menu item")
	if !ok {
		return
	}

	var req service.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update menu item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem handles DELETE /api/menu/items/:id
// @Summary Delete a menu item
// @Tags menu
// @Param id path string true "Menu item ID (UUID)"
// @Success 204 "Menu item deleted"
// @Failure 404 {object} ErrorResponse "Menu item not found"
// @Security SessionAuth
// @Router /menu/items/{id} [delete]
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c, "menu item")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete menu item")
		return
	}
	c.Status(http.StatusNoContent)
}
