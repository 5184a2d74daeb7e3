package handlers

import (
	"net/http"
	"strconv"

	apperrors "fleet-operations-backend/internal/errors"
	"fleet-operations-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EquipmentHandler handles HTTP requests for equipment and tariffs
type EquipmentHandler struct {
	service *service.EquipmentService
}

// NewEquipmentHandler creates a new equipment handler
func NewEquipmentHandler(service *service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

// CreateEquipment handles POST /api/v1/equipment
// @Summary Create an equipment item
// @Description Create a billable equipment item; tariff amounts are minor currency units
// @Tags equipment
// @Accept json
// @Produce json
// @Param equipment body service.CreateEquipmentRequest true "Equipment data"
// @Success 201 {object} service.EquipmentResponse "Successfully created equipment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment [post]
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req service.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	equipment, err := h.service.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create equipment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, equipment)
}

// GetEquipment handles GET /api/v1/equipment/:id
// @Summary Get equipment by ID
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Success 200 {object} service.EquipmentResponse "Successfully retrieved equipment"
// @Failure 400 {object} map[string]interface{} "Invalid equipment ID"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID: invalid UUID format"})
		return
	}

	equipment, err := h.service.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get equipment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// ListEquipment handles GET /api/v1/equipment
// @Summary List equipment
// @Description List equipment with pagination, optionally filtered by category
// @Tags equipment
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.EquipmentListResponse "Successfully retrieved equipment"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment [get]
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	equipment, err := h.service.List(c.Query("category"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list equipment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// UpdateEquipment handles PUT /api/v1/equipment/:id
// @Summary Update an equipment item
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Param equipment body service.UpdateEquipmentRequest true "Fields to update"
// @Success 200 {object} service.EquipmentResponse "Successfully updated equipment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/{id} [put]
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID: invalid UUID format"})
		return
	}

	var req service.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	equipment, err := h.service.Update(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update equipment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// DeleteEquipment handles DELETE /api/v1/equipment/:id
// @Summary Delete an equipment item
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Success 204 "Equipment deleted"
// @Failure 400 {object} map[string]interface{} "Invalid equipment ID"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete equipment", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
