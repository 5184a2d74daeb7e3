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

// MaintenancePlanHandler handles HTTP requests for maintenance plans
type MaintenancePlanHandler struct {
	service *service.MaintenancePlanService
}

// NewMaintenancePlanHandler creates a new maintenance plan handler
func NewMaintenancePlanHandler(service *service.MaintenancePlanService) *MaintenancePlanHandler {
	return &MaintenancePlanHandler{service: service}
}

// CreatePlan handles POST /api/v1/maintenance-plans
// @Summary Create a maintenance plan
// @Tags maintenance-plans
// @Accept json
// @Produce json
// @Param plan body service.CreateMaintenancePlanRequest true "Plan data"
// @Success 201 {object} service.MaintenancePlanResponse "Successfully created plan"
// @Failure 400 {object} map[string]interface{} "Invalid request body or periodicity"
// @Failure 404 {object} map[string]interface{} "Vessel or equipment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maintenance-plans [post]
func (h *MaintenancePlanHandler) CreatePlan(c *gin.Context) {
	var req service.CreateMaintenancePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidPeriodicity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create maintenance plan", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlan handles GET /api/v1/maintenance-plans/:id
// @Summary Get maintenance plan by ID
// @Tags maintenance-plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} service.MaintenancePlanResponse "Successfully retrieved plan"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maintenance-plans/{id} [get]
func (h *MaintenancePlanHandler) GetPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID: invalid UUID format"})
		return
	}

	plan, err := h.service.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get maintenance plan", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ListPlans handles GET /api/v1/maintenance-plans
// @Summary List maintenance plans
// @Description List plans with pagination, optionally scoped to a vessel
// @Tags maintenance-plans
// @Produce json
// @Param vessel_id query string false "Vessel ID filter (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.MaintenancePlanListResponse "Successfully retrieved plans"
// @Failure 400 {object} map[string]interface{} "Invalid vessel ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maintenance-plans [get]
func (h *MaintenancePlanHandler) ListPlans(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var vesselID *uuid.UUID
	if raw := c.Query("vessel_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vessel ID: invalid UUID format"})
			return
		}
		vesselID = &id
	}

	plans, err := h.service.List(vesselID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list maintenance plans", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// ListDuePlans handles GET /api/v1/maintenance-plans/due
// @Summary List due maintenance plans
// @Description List active plans due within the given number of days
// @Tags maintenance-plans
// @Produce json
// @Param within query int false "Due horizon in days" default(30)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.MaintenancePlanListResponse "Due plans ordered by due date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maintenance-plans/due [get]
func (h *MaintenancePlanHandler) ListDuePlans(c *gin.Context) {
	withinDays, _ := strconv.Atoi(c.DefaultQuery("within", "30"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	plans, err := h.service.ListDue(withinDays, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list due maintenance plans", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// UpdatePlan handles PUT /api/v1/maintenance-plans/:id
// @Summary Update a maintenance plan
// @Tags maintenance-plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param plan body service.UpdateMaintenancePlanRequest true "Fields to update"
// @Success 200 {object} service.MaintenancePlanResponse "Successfully updated plan"
// @Failure 400 {object} map[string]interface{} "Invalid request body or periodicity"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maintenance-plans/{id} [put]
func (h *MaintenancePlanHandler) UpdatePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID: invalid UUID format"})
		return
	}

	var req service.UpdateMaintenancePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidPeriodicity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update maintenance plan", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// CompletePlan handles POST /api/v1/maintenance-plans/:id/complete
// @Summary Complete a maintenance round
// @Description Marks one round done and advances the next due date by one period
// @Tags maintenance-plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} service.MaintenancePlanResponse "Plan with advanced due date"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maintenance-plans/{id}/complete [post]
func (h *MaintenancePlanHandler) CompletePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID: invalid UUID format"})
		return
	}

	plan, err := h.service.Complete(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete maintenance plan", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /api/v1/maintenance-plans/:id
// @Summary Delete a maintenance plan
// @Tags maintenance-plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 204 "Plan deleted"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /maintenance-plans/{id} [delete]
func (h *MaintenancePlanHandler) DeletePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete maintenance plan", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
