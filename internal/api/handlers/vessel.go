package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "fleet-operations-backend/internal/errors"
	"fleet-operations-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VesselHandler handles HTTP requests for vessels
type VesselHandler struct {
	service *service.VesselService
}

// NewVesselHandler creates a new vessel handler
func NewVesselHandler(service *service.VesselService) *VesselHandler {
	return &VesselHandler{service: service}
}

// CreateVessel handles POST /api/v1/vessels
// @Summary Create a new vessel
// @Tags vessels
// @Accept json
// @Produce json
// @Param vessel body service.CreateVesselRequest true "Vessel data"
// @Success 201 {object} service.VesselResponse "Successfully created vessel"
// @Failure 400 {object} map[string]interface{} "Invalid request body or vessel type"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Failure 409 {object} map[string]interface{} "Vessel already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessels [post]
func (h *VesselHandler) CreateVessel(c *gin.Context) {
	var req service.CreateVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	vessel, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrVesselExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidVesselType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vessel", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, vessel)
}

// GetVessel handles GET /api/v1/vessels/:id
// @Summary Get vessel by ID
// @Description Get a vessel with its documents, each carrying an expiration badge
// @Tags vessels
// @Produce json
// @Param id path string true "Vessel ID (UUID)"
// @Success 200 {object} service.VesselResponse "Successfully retrieved vessel"
// @Failure 400 {object} map[string]interface{} "Invalid vessel ID"
// @Failure 404 {object} map[string]interface{} "Vessel not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessels/{id} [get]
func (h *VesselHandler) GetVessel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vessel ID: invalid UUID format"})
		return
	}

	vessel, err := h.service.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get vessel", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, vessel)
}

// ListVessels handles GET /api/v1/vessels
// @Summary List vessels
// @Description List vessels with pagination, optionally scoped to a client
// @Tags vessels
// @Produce json
// @Param client_id query string false "Client ID filter (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.VesselListResponse "Successfully retrieved vessels"
// @Failure 400 {object} map[string]interface{} "Invalid client ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessels [get]
func (h *VesselHandler) ListVessels(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var clientID *uuid.UUID
	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID: invalid UUID format"})
			return
		}
		clientID = &id
	}

	vessels, err := h.service.List(clientID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vessels", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, vessels)
}

// UpdateVessel handles PUT /api/v1/vessels/:id
// @Summary Update a vessel
// @Description Apply a partial update to a vessel; the registration number is immutable
// @Tags vessels
// @Accept json
// @Produce json
// @Param id path string true "Vessel ID (UUID)"
// @Param vessel body service.UpdateVesselRequest true "Fields to update"
// @Success 200 {object} service.VesselResponse "Successfully updated vessel"
// @Failure 400 {object} map[string]interface{} "Invalid request body or vessel type"
// @Failure 404 {object} map[string]interface{} "Vessel not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessels/{id} [put]
func (h *VesselHandler) UpdateVessel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vessel ID: invalid UUID format"})
		return
	}

	var req service.UpdateVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	vessel, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidVesselType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vessel", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, vessel)
}

// DeleteVessel handles DELETE /api/v1/vessels/:id
// @Summary Delete a vessel
// @Description Delete a vessel together with its documents, plans and maneuvers
// @Tags vessels
// @Produce json
// @Param id path string true "Vessel ID (UUID)"
// @Success 204 "Vessel deleted"
// @Failure 400 {object} map[string]interface{} "Invalid vessel ID"
// @Failure 404 {object} map[string]interface{} "Vessel not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessels/{id} [delete]
func (h *VesselHandler) DeleteVessel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vessel ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vessel", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
