package service

import (
	"errors"
	"fmt"

	"fleet-operations-backend/internal/database/models"
	apperrors "fleet-operations-backend/internal/errors"
	"fleet-operations-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleService handles business logic for roles
type RoleService struct {
	repo      *repository.RoleRepository
	validator *validator.Validate
}

// NewRoleService creates a new role service
func NewRoleService(repo *repository.RoleRepository, validator *validator.Validate) *RoleService {
	return &RoleService{repo: repo, validator: validator}
}

// CreateRoleRequest represents the request to create a role
type CreateRoleRequest struct {
	Name        string              `json:"name" validate:"required,min=1,max=40"`
	Title       string              `json:"title" validate:"required,min=1,max=100"`
	Description string              `json:"description" validate:"max=200"`
	Category    models.RoleCategory `json:"category" validate:"required"`
	Permissions []string            `json:"permissions"`
}

// UpdateRoleRequest represents the request to update a role
type UpdateRoleRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=200"`
	Permissions []string `json:"permissions,omitempty"`
}

// RoleResponse represents the response for role operations
type RoleResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Category    models.RoleCategory `json:"category"`
	Permissions []string            `json:"permissions"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

// Create creates a new role. The category must be one of the closed set.
func (s *RoleService) Create(req *CreateRoleRequest) (*RoleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Category.IsValid() {
		return nil, apperrors.NewValidationError("category", "unknown role category")
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrRoleExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing role: %w", err)
	}

	role := &models.Role{
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Permissions: req.Permissions,
	}
	if err := s.repo.Create(role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return s.toResponse(role), nil
}

// GetByID retrieves a role by ID
func (s *RoleService) GetByID(id uuid.UUID) (*RoleResponse, error) {
	role, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return s.toResponse(role), nil
}

// List retrieves roles, optionally filtered by category
func (s *RoleService) List(category models.RoleCategory) ([]RoleResponse, error) {
	if category != "" && !category.IsValid() {
		return nil, apperrors.NewValidationError("category", "unknown role category")
	}

	roles, err := s.repo.List(category)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	responses := make([]RoleResponse, len(roles))
	for i := range roles {
		responses[i] = *s.toResponse(&roles[i])
	}
	return responses, nil
}

// Update applies a partial update to a role. Name and category are immutable.
func (s *RoleService) Update(id uuid.UUID, req *UpdateRoleRequest) (*RoleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	if req.Title != nil {
		role.Title = *req.Title
	}
	if req.Description != nil {
		role.Description = *req.Description
	}
	if req.Permissions != nil {
		role.Permissions = req.Permissions
	}

	if err := s.repo.Update(role); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return s.toResponse(role), nil
}

// Delete deletes a role
func (s *RoleService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoleNotFound
		}
		return fmt.Errorf("failed to get role: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

func (s *RoleService) toResponse(role *models.Role) *RoleResponse {
	return &RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Title:       role.Title,
		Description: role.Description,
		Category:    role.Category,
		Permissions: role.Permissions,
		CreatedAt:   role.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   role.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
