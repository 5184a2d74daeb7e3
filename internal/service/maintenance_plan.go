package service

import (
	"errors"
	"fmt"
	"time"

	"fleet-operations-backend/internal/database/models"
	apperrors "fleet-operations-backend/internal/errors"
	"fleet-operations-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenancePlanService handles business logic for maintenance plans
type MaintenancePlanService struct {
	repo          *repository.MaintenancePlanRepository
	vesselRepo    *repository.VesselRepository
	equipmentRepo *repository.EquipmentRepository
	validator     *validator.Validate
}

// NewMaintenancePlanService creates a new maintenance plan service
func NewMaintenancePlanService(repo *repository.MaintenancePlanRepository, vesselRepo *repository.VesselRepository, equipmentRepo *repository.EquipmentRepository, validator *validator.Validate) *MaintenancePlanService {
	return &MaintenancePlanService{repo: repo, vesselRepo: vesselRepo, equipmentRepo: equipmentRepo, validator: validator}
}

// CreateMaintenancePlanRequest represents the request to create a maintenance plan
type CreateMaintenancePlanRequest struct {
	VesselID    uuid.UUID                     `json:"vessel_id" validate:"required"`
	EquipmentID *uuid.UUID                    `json:"equipment_id,omitempty"`
	Title       string                        `json:"title" validate:"required,min=1,max=150"`
	Description string                        `json:"description" validate:"max=500"`
	Periodicity models.MaintenancePeriodicity `json:"periodicity" validate:"required"`
	NextDueDate time.Time                     `json:"next_due_date" validate:"required"`
}

// UpdateMaintenancePlanRequest represents the request to update a maintenance plan
type UpdateMaintenancePlanRequest struct {
	Title       *string                        `json:"title,omitempty" validate:"omitempty,min=1,max=150"`
	Description *string                        `json:"description,omitempty" validate:"omitempty,max=500"`
	Periodicity *models.MaintenancePeriodicity `json:"periodicity,omitempty"`
	NextDueDate *time.Time                     `json:"next_due_date,omitempty"`
	Active      *bool                          `json:"active,omitempty"`
}

// MaintenancePlanResponse represents the response for maintenance plan operations
type MaintenancePlanResponse struct {
	ID            uuid.UUID                     `json:"id"`
	VesselID      uuid.UUID                     `json:"vessel_id"`
	VesselName    string                        `json:"vessel_name,omitempty"`
	EquipmentID   *uuid.UUID                    `json:"equipment_id,omitempty"`
	EquipmentName string                        `json:"equipment_name,omitempty"`
	Title         string                        `json:"title"`
	Description   string                        `json:"description,omitempty"`
	Periodicity   models.MaintenancePeriodicity `json:"periodicity"`
	NextDueDate   string                        `json:"next_due_date"`
	Active        bool                          `json:"active"`
	CreatedAt     string                        `json:"created_at"`
	UpdatedAt     string                        `json:"updated_at"`
}

// MaintenancePlanListResponse represents a paginated list of maintenance plans
type MaintenancePlanListResponse struct {
	Plans    []MaintenancePlanResponse `json:"plans"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

// Create creates a new maintenance plan for a vessel
func (s *MaintenancePlanService) Create(req *CreateMaintenancePlanRequest) (*MaintenancePlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Periodicity.IsValid() {
		return nil, apperrors.ErrInvalidPeriodicity
	}

	if _, err := s.vesselRepo.GetByID(req.VesselID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVesselNotFound
		}
		return nil, fmt.Errorf("failed to verify vessel: %w", err)
	}
	if req.EquipmentID != nil {
		if _, err := s.equipmentRepo.GetByID(*req.EquipmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrEquipmentNotFound
			}
			return nil, fmt.Errorf("failed to verify equipment: %w", err)
		}
	}

	plan := &models.MaintenancePlan{
		VesselID:    req.VesselID,
		EquipmentID: req.EquipmentID,
		Title:       req.Title,
		Description: req.Description,
		Periodicity: req.Periodicity,
		NextDueDate: req.NextDueDate,
		Active:      true,
	}
	if err := s.repo.Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create maintenance plan: %w", err)
	}
	return s.toResponse(plan), nil
}

// GetByID retrieves a maintenance plan by ID
func (s *MaintenancePlanService) GetByID(id uuid.UUID) (*MaintenancePlanResponse, error) {
	plan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaintenancePlanNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance plan: %w", err)
	}
	return s.toResponse(plan), nil
}

// List retrieves maintenance plans with pagination, optionally scoped to a vessel
func (s *MaintenancePlanService) List(vesselID *uuid.UUID, page, pageSize int) (*MaintenancePlanListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var (
		plans []models.MaintenancePlan
		total int64
		err   error
	)
	if vesselID != nil {
		plans, total, err = s.repo.GetByVesselID(*vesselID, pageSize, offset)
	} else {
		plans, total, err = s.repo.List(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance plans: %w", err)
	}

	responses := make([]MaintenancePlanResponse, len(plans))
	for i := range plans {
		responses[i] = *s.toResponse(&plans[i])
	}

	return &MaintenancePlanListResponse{Plans: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// ListDue retrieves active plans due within the given number of days
func (s *MaintenancePlanService) ListDue(withinDays, page, pageSize int) (*MaintenancePlanListResponse, error) {
	if withinDays < 0 {
		withinDays = 0
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	until := time.Now().UTC().AddDate(0, 0, withinDays)
	plans, total, err := s.repo.GetDueWithin(until, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list due maintenance plans: %w", err)
	}

	responses := make([]MaintenancePlanResponse, len(plans))
	for i := range plans {
		responses[i] = *s.toResponse(&plans[i])
	}

	return &MaintenancePlanListResponse{Plans: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update applies a partial update to a maintenance plan
func (s *MaintenancePlanService) Update(id uuid.UUID, req *UpdateMaintenancePlanRequest) (*MaintenancePlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	plan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaintenancePlanNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance plan: %w", err)
	}

	if req.Periodicity != nil {
		if !req.Periodicity.IsValid() {
			return nil, apperrors.ErrInvalidPeriodicity
		}
		plan.Periodicity = *req.Periodicity
	}
	if req.Title != nil {
		plan.Title = *req.Title
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.NextDueDate != nil {
		plan.NextDueDate = *req.NextDueDate
	}
	if req.Active != nil {
		plan.Active = *req.Active
	}

	if err := s.repo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to update maintenance plan: %w", err)
	}
	return s.toResponse(plan), nil
}

// Complete marks one maintenance round done and advances the due date by
// one period.
func (s *MaintenancePlanService) Complete(id uuid.UUID) (*MaintenancePlanResponse, error) {
	plan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaintenancePlanNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance plan: %w", err)
	}

	plan.Advance()
	if err := s.repo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to advance maintenance plan: %w", err)
	}
	return s.toResponse(plan), nil
}

// Delete deletes a maintenance plan
func (s *MaintenancePlanService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMaintenancePlanNotFound
		}
		return fmt.Errorf("failed to get maintenance plan: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete maintenance plan: %w", err)
	}
	return nil
}

func (s *MaintenancePlanService) toResponse(plan *models.MaintenancePlan) *MaintenancePlanResponse {
	response := &MaintenancePlanResponse{
		ID:          plan.ID,
		VesselID:    plan.VesselID,
		EquipmentID: plan.EquipmentID,
		Title:       plan.Title,
		Description: plan.Description,
		Periodicity: plan.Periodicity,
		NextDueDate: plan.NextDueDate.Format("2006-01-02"),
		Active:      plan.Active,
		CreatedAt:   plan.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   plan.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if plan.Vessel.ID != uuid.Nil {
		response.VesselName = plan.Vessel.Name
	}
	if plan.Equipment != nil {
		response.EquipmentName = plan.Equipment.Name
	}
	return response
}
