package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fleet-operations-backend/internal/database/models"
	apperrors "fleet-operations-backend/internal/errors"
	"fleet-operations-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ManeuverHandler handles HTTP requests for vessel maneuvers
type ManeuverHandler struct {
	service *service.ManeuverService
}

// NewManeuverHandler creates a new maneuver handler
func NewManeuverHandler(service *service.ManeuverService) *ManeuverHandler {
	return &ManeuverHandler{service: service}
}

// CreateManeuver handles POST /api/v1/maneuvers
// @Summary Schedule a maneuver
// @Tags maneuvers
// @Accept json
// @Produce json
// @Param maneuver body service.CreateManeuverRequest true "Maneuver data"
// @Success 201 {object} service.ManeuverResponse "Successfully scheduled maneuver"
// @Failure 400 {object} map[string]interface{} "Invalid request body, type or time range"
// @Failure 404 {object} map[string]interface{} "Vessel not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maneuvers [post]
func (h *ManeuverHandler) CreateManeuver(c *gin.Context) {
	var req service.CreateManeuverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	maneuver, err := h.service.Create(&req)
	if err != nil {
		respondManeuverError(c, err, "Failed to create maneuver")
		return
	}

	c.JSON(http.StatusCreated, maneuver)
}

// GetManeuver handles GET /api/v1/maneuvers/:id
// @Summary Get maneuver by ID
// @Tags maneuvers
// @Produce json
// @Param id path string true "Maneuver ID (UUID)"
// @Success 200 {object} service.ManeuverResponse "Successfully retrieved maneuver"
// @Failure 400 {object} map[string]interface{} "Invalid maneuver ID"
// @Failure 404 {object} map[string]interface{} "Maneuver not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maneuvers/{id} [get]
func (h *ManeuverHandler) GetManeuver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maneuver ID: invalid UUID format"})
		return
	}

	maneuver, err := h.service.GetByID(id)
	if err != nil {
		respondManeuverError(c, err, "Failed to get maneuver")
		return
	}

	c.JSON(http.StatusOK, maneuver)
}

// ListManeuvers handles GET /api/v1/maneuvers
// @Summary List maneuvers
// @Description List maneuvers with pagination, optionally filtered by status
// @Tags maneuvers
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ManeuverListResponse "Successfully retrieved maneuvers"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maneuvers [get]
func (h *ManeuverHandler) ListManeuvers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	status := models.ManeuverStatus(c.Query("status"))

	maneuvers, err := h.service.List(status, page, pageSize)
	if err != nil {
		respondManeuverError(c, err, "Failed to list maneuvers")
		return
	}

	c.JSON(http.StatusOK, maneuvers)
}

// ManeuverCalendar handles GET /api/v1/maneuvers/calendar
// @Summary Maneuver calendar
// @Description List maneuvers whose scheduled window intersects the given date range
// @Tags maneuvers
// @Produce json
// @Param from query string true "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param to query string true "Range end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {array} service.ManeuverResponse "Maneuvers ordered by scheduled start"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maneuvers/calendar [get]
func (h *ManeuverHandler) ManeuverCalendar(c *gin.Context) {
	from, err := parseCalendarDate(c.Query("from"), false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date"})
		return
	}
	to, err := parseCalendarDate(c.Query("to"), true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date"})
		return
	}

	maneuvers, err := h.service.Calendar(from, to)
	if err != nil {
		respondManeuverError(c, err, "Failed to load maneuver calendar")
		return
	}

	c.JSON(http.StatusOK, maneuvers)
}

// UpdateManeuver handles PUT /api/v1/maneuvers/:id
// @Summary Update a maneuver
// @Description Apply a partial update to a maneuver's scheduling details
// @Tags maneuvers
// @Accept json
// @Produce json
// @Param id path string true "Maneuver ID (UUID)"
// @Param maneuver body service.UpdateManeuverRequest true "Fields to update"
// @Success 200 {object} service.ManeuverResponse "Successfully updated maneuver"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time range"
// @Failure 404 {object} map[string]interface{} "Maneuver not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maneuvers/{id} [put]
func (h *ManeuverHandler) UpdateManeuver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maneuver ID: invalid UUID format"})
		return
	}

	var req service.UpdateManeuverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	maneuver, err := h.service.Update(id, &req)
	if err != nil {
		respondManeuverError(c, err, "Failed to update maneuver")
		return
	}

	c.JSON(http.StatusOK, maneuver)
}

// ChangeManeuverStatus handles PATCH /api/v1/maneuvers/:id/status
// @Summary Change maneuver status
// @Description Moves a maneuver through its lifecycle; completed and cancelled are terminal
// @Tags maneuvers
// @Accept json
// @Produce json
// @Param id path string true "Maneuver ID (UUID)"
// @Param status body service.ChangeManeuverStatusRequest true "Target status"
// @Success 200 {object} service.ManeuverResponse "Maneuver with updated status"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Maneuver not found"
// @Failure 409 {object} map[string]interface{} "Transition not allowed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maneuvers/{id}/status [patch]
func (h *ManeuverHandler) ChangeManeuverStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maneuver ID: invalid UUID format"})
		return
	}

	var req service.ChangeManeuverStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	maneuver, err := h.service.ChangeStatus(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrManeuverStatusTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondManeuverError(c, err, "Failed to change maneuver status")
		return
	}

	c.JSON(http.StatusOK, maneuver)
}

// DeleteManeuver handles DELETE /api/v1/maneuvers/:id
// @Summary Delete a maneuver
// @Tags maneuvers
// @Produce json
// @Param id path string true "Maneuver ID (UUID)"
// @Success 204 "Maneuver deleted"
// @Failure 400 {object} map[string]interface{} "Invalid maneuver ID"
// @Failure 404 {object} map[string]interface{} "Maneuver not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maneuvers/{id} [delete]
func (h *ManeuverHandler) DeleteManeuver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maneuver ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondManeuverError(c, err, "Failed to delete maneuver")
		return
	}

	c.Status(http.StatusNoContent)
}

// parseCalendarDate accepts RFC 3339 timestamps or bare dates. Bare end
// dates cover the whole day.
func parseCalendarDate(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}

func respondManeuverError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidManeuverType),
		errors.Is(err, apperrors.ErrInvalidManeuverStatus),
		errors.Is(err, apperrors.ErrManeuverTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
