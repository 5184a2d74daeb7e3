package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "fleet-operations-backend/internal/errors"
	"fleet-operations-backend/internal/schedule"
	"fleet-operations-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ScheduleHandler handles HTTP requests for work schedules
type ScheduleHandler struct {
	service service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(service service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// CreateSchedule handles POST /api/v1/schedules
// @Summary Create a work schedule
// @Description Generates the cyclic work pattern for a user and persists one cycle of work days
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body service.CreateScheduleRequest true "Schedule data"
// @Success 201 {object} service.ScheduleResponse "Successfully created schedule"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time window"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req service.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Create(&req)
	if err != nil {
		respondScheduleError(c, err, "Failed to create schedule")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetSchedule handles GET /api/v1/schedules/:id
// @Summary Get schedule by ID
// @Description Get a schedule with its work days and novelties
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 200 {object} service.ScheduleResponse "Successfully retrieved schedule"
// @Failure 400 {object} map[string]interface{} "Invalid schedule ID"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID: invalid UUID format"})
		return
	}

	resp, err := h.service.GetByID(id)
	if err != nil {
		respondScheduleError(c, err, "Failed to get schedule")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListSchedules handles GET /api/v1/schedules
// @Summary List schedules
// @Description List schedules with pagination
// @Tags schedules
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ScheduleListResponse "Successfully retrieved schedules"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules [get]
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.service.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list schedules", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteSchedule handles DELETE /api/v1/schedules/:id
// @Summary Delete a schedule
// @Description Delete a schedule together with its work days and novelties
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 204 "Schedule deleted"
// @Failure 400 {object} map[string]interface{} "Invalid schedule ID"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondScheduleError(c, err, "Failed to delete schedule")
		return
	}

	c.Status(http.StatusNoContent)
}

// PreviewSchedule handles POST /api/v1/schedules/preview
// @Summary Preview a work pattern
// @Description Generates the full pattern through the end of the start year without persisting it
// @Tags schedules
// @Accept json
// @Produce json
// @Param preview body service.PreviewRequest true "Pattern parameters"
// @Success 200 {object} service.PreviewResponse "Generated pattern"
// @Failure 400 {object} map[string]interface{} "Invalid parameters or time window"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules/preview [post]
func (h *ScheduleHandler) PreviewSchedule(c *gin.Context) {
	var req service.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Preview(&req)
	if err != nil {
		respondScheduleError(c, err, "Failed to preview schedule")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateWorkDay handles PATCH /api/v1/schedules/:id/work-days
// @Summary Commit one work day's time window
// @Description Updates the start and end time of a single persisted work day
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Param workday body service.UpdateWorkDayRequest true "Work day time window"
// @Success 200 {object} service.ScheduleResponse "Updated schedule"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time window"
// @Failure 404 {object} map[string]interface{} "Schedule or work day not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules/{id}/work-days [patch]
func (h *ScheduleHandler) UpdateWorkDay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID: invalid UUID format"})
		return
	}

	var req service.UpdateWorkDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.UpdateWorkDayTime(id, &req)
	if err != nil {
		respondScheduleError(c, err, "Failed to update work day")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// BulkWorkDayTimes handles PUT /api/v1/schedules/:id/work-days
// @Summary Apply one time window to all work days
// @Description Sets the same start and end time on every work day of the schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Param times body service.BulkWorkDayTimesRequest true "Time window"
// @Success 200 {object} service.ScheduleResponse "Updated schedule"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time window"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules/{id}/work-days [put]
func (h *ScheduleHandler) BulkWorkDayTimes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID: invalid UUID format"})
		return
	}

	var req service.BulkWorkDayTimesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.ApplyBulkTimes(id, &req)
	if err != nil {
		respondScheduleError(c, err, "Failed to apply work day times")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SaveNovelty handles PUT /api/v1/schedules/:id/novelties
// @Summary Save a novelty
// @Description Upserts a novelty by date; an existing entry for the same day is replaced in place
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Param novelty body service.SaveNoveltyRequest true "Novelty data"
// @Success 200 {object} service.NoveltyResponse "Saved novelty"
// @Failure 400 {object} map[string]interface{} "Invalid request body or novelty type"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules/{id}/novelties [put]
func (h *ScheduleHandler) SaveNovelty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID: invalid UUID format"})
		return
	}

	var req service.SaveNoveltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.SaveNovelty(id, &req)
	if err != nil {
		respondScheduleError(c, err, "Failed to save novelty")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListNovelties handles GET /api/v1/schedules/:id/novelties
// @Summary List novelties of a schedule
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 200 {array} service.NoveltyResponse "Novelties ordered by date"
// @Failure 400 {object} map[string]interface{} "Invalid schedule ID"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules/{id}/novelties [get]
func (h *ScheduleHandler) ListNovelties(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID: invalid UUID format"})
		return
	}

	resp, err := h.service.ListNovelties(id)
	if err != nil {
		respondScheduleError(c, err, "Failed to list novelties")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteNovelty handles DELETE /api/v1/schedules/:id/novelties/:noveltyId
// @Summary Delete a novelty
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Param noveltyId path string true "Novelty ID (UUID)"
// @Success 204 "Novelty deleted"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Novelty not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules/{id}/novelties/{noveltyId} [delete]
func (h *ScheduleHandler) DeleteNovelty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID: invalid UUID format"})
		return
	}
	noveltyID, err := uuid.Parse(c.Param("noveltyId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid novelty ID: invalid UUID format"})
		return
	}

	if err := h.service.DeleteNovelty(id, noveltyID); err != nil {
		respondScheduleError(c, err, "Failed to delete novelty")
		return
	}

	c.Status(http.StatusNoContent)
}

// respondScheduleError maps service errors to HTTP statuses
func respondScheduleError(c *gin.Context, err error, fallback string) {
	var fieldErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, schedule.ErrInvalidTimeWindow),
		errors.Is(err, apperrors.ErrInvalidNoveltyType),
		errors.Is(err, apperrors.ErrInvalidCycleBounds),
		errors.As(err, &fieldErrs),
		apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
