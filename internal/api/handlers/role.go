package handlers

import (
	"errors"
	"net/http"

	"fleet-operations-backend/internal/database/models"
	apperrors "fleet-operations-backend/internal/errors"
	"fleet-operations-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoleHandler handles HTTP requests for roles
type RoleHandler struct {
	service *service.RoleService
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(service *service.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// CreateRole handles POST /api/v1/roles
// @Summary Create a new role
// @Description Create a role with a category from the closed set and a permission list
// @Tags roles
// @Accept json
// @Produce json
// @Param role body service.CreateRoleRequest true "Role data"
// @Success 201 {object} service.RoleResponse "Successfully created role"
// @Failure 400 {object} map[string]interface{} "Invalid request body or category"
// @Failure 409 {object} map[string]interface{} "Role already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /roles [post]
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req service.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	role, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoleExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create role", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, role)
}

// GetRole handles GET /api/v1/roles/:id
// @Summary Get role by ID
// @Tags roles
// @Produce json
// @Param id path string true "Role ID (UUID)"
// @Success 200 {object} service.RoleResponse "Successfully retrieved role"
// @Failure 400 {object} map[string]interface{} "Invalid role ID"
// @Failure 404 {object} map[string]interface{} "Role not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /roles/{id} [get]
func (h *RoleHandler) GetRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID: invalid UUID format"})
		return
	}

	role, err := h.service.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get role", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, role)
}

// ListRoles handles GET /api/v1/roles
// @Summary List roles
// @Description List roles, optionally filtered by category
// @Tags roles
// @Produce json
// @Param category query string false "Role category filter"
// @Success 200 {array} service.RoleResponse "Successfully retrieved roles"
// @Failure 400 {object} map[string]interface{} "Invalid category"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	category := models.RoleCategory(c.Query("category"))

	roles, err := h.service.List(category)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list roles", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, roles)
}

// UpdateRole handles PUT /api/v1/roles/:id
// @Summary Update a role
// @Description Apply a partial update to a role; name and category are immutable
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID (UUID)"
// @Param role body service.UpdateRoleRequest true "Fields to update"
// @Success 200 {object} service.RoleResponse "Successfully updated role"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Role not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /roles/{id} [put]
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID: invalid UUID format"})
		return
	}

	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	role, err := h.service.Update(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, role)
}

// DeleteRole handles DELETE /api/v1/roles/:id
// @Summary Delete a role
// @Tags roles
// @Produce json
// @Param id path string true "Role ID (UUID)"
// @Success 204 "Role deleted"
// @Failure 400 {object} map[string]interface{} "Invalid role ID"
// @Failure 404 {object} map[string]interface{} "Role not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /roles/{id} [delete]
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete role", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
