package handlers

import (
	"net/http"
	"strconv"

	"bizhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SupplierHandler handles HTTP requests for the tenant's suppliers
type SupplierHandler struct {
	service service.SupplierServiceInterface
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(service service.SupplierServiceInterface) *SupplierHandler {
	return &SupplierHandler{service: service}
}

// CreateSupplier handles POST /api/suppliers
// @Summary Create a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body service.CreateSupplierRequest true "Supplier"
// @Success 201 {object} models.ProductSupplier "Created supplier"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Supplier already exists"
// @Security SessionAuth
// @Router /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req service.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	supplier, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create supplier")
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

// GetSupplier handles GET /api/suppliers/:id
// @Summary Get a supplier
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID (UUID)"
// @Success 200 {object} models.ProductSupplier "Supplier"
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security SessionAuth
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, ok := parseID(c, "supplier")
	if !ok {
		return
	}

	supplier, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get supplier")
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// ListSuppliers handles GET /api/suppliers
// @Summary List suppliers
// @Tags suppliers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.SupplierListResponse "Suppliers"
// @Security SessionAuth
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	suppliers, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list suppliers")
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

// DeleteSupplier handles DELETE /api/suppliers/:id
// @Summary Delete a supplier
// @Tags suppliers
// @Param id path string true "Supplier ID (UUID)"
// @Success 204 "Supplier deleted"
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security SessionAuth
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, ok := parseID(c, "supplier")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete supplier")
		return
	}
	c.Status(http.StatusNoContent)
}
