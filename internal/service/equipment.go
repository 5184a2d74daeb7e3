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

// EquipmentService handles business logic for billable equipment
type EquipmentService struct {
	repo      *repository.EquipmentRepository
	validator *validator.Validate
}

// NewEquipmentService creates a new equipment service
func NewEquipmentService(repo *repository.EquipmentRepository, validator *validator.Validate) *EquipmentService {
	return &EquipmentService{repo: repo, validator: validator}
}

// CreateEquipmentRequest represents the request to create an equipment item
type CreateEquipmentRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Category       string `json:"category" validate:"max=60"`
	Description    string `json:"description" validate:"max=200"`
	TariffAmount   int64  `json:"tariff_amount" validate:"min=0"`
	TariffCurrency string `json:"tariff_currency" validate:"omitempty,len=3"`
	Unit           string `json:"unit" validate:"max=20"`
}

// UpdateEquipmentRequest represents the request to update an equipment item
type UpdateEquipmentRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Category       *string `json:"category,omitempty" validate:"omitempty,max=60"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=200"`
	TariffAmount   *int64  `json:"tariff_amount,omitempty" validate:"omitempty,min=0"`
	TariffCurrency *string `json:"tariff_currency,omitempty" validate:"omitempty,len=3"`
	Unit           *string `json:"unit,omitempty" validate:"omitempty,max=20"`
	Active         *bool   `json:"active,omitempty"`
}

// EquipmentResponse represents the response for equipment operations
type EquipmentResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category,omitempty"`
	Description    string    `json:"description,omitempty"`
	TariffAmount   int64     `json:"tariff_amount"`
	TariffCurrency string    `json:"tariff_currency"`
	Unit           string    `json:"unit"`
	Active         bool      `json:"active"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// EquipmentListResponse represents a paginated list of equipment
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
	Total     int64               `json:"total"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

// Create creates a new equipment item. Tariff amounts are minor currency units.
func (s *EquipmentService) Create(req *CreateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	equipment := &models.Equipment{
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		TariffAmount:   req.TariffAmount,
		TariffCurrency: req.TariffCurrency,
		Unit:           req.Unit,
		Active:         true,
	}
	if equipment.TariffCurrency == "" {
		equipment.TariffCurrency = "USD"
	}
	if equipment.Unit == "" {
		equipment.Unit = "hour"
	}

	if err := s.repo.Create(equipment); err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}
	return s.toResponse(equipment), nil
}

// GetByID retrieves an equipment item by ID
func (s *EquipmentService) GetByID(id uuid.UUID) (*EquipmentResponse, error) {
	equipment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return s.toResponse(equipment), nil
}

// List retrieves equipment with pagination, optionally filtered by category
func (s *EquipmentService) List(category string, page, pageSize int) (*EquipmentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	items, total, err := s.repo.List(category, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	responses := make([]EquipmentResponse, len(items))
	for i := range items {
		responses[i] = *s.toResponse(&items[i])
	}

	return &EquipmentListResponse{Equipment: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update applies a partial update to an equipment item
func (s *EquipmentService) Update(id uuid.UUID, req *UpdateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	equipment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	if req.Name != nil {
		equipment.Name = *req.Name
	}
	if req.Category != nil {
		equipment.Category = *req.Category
	}
	if req.Description != nil {
		equipment.Description = *req.Description
	}
	if req.TariffAmount != nil {
		equipment.TariffAmount = *req.TariffAmount
	}
	if req.TariffCurrency != nil {
		equipment.TariffCurrency = *req.TariffCurrency
	}
	if req.Unit != nil {
		equipment.Unit = *req.Unit
	}
	if req.Active != nil {
		equipment.Active = *req.Active
	}

	if err := s.repo.Update(equipment); err != nil {
		return nil, fmt.Errorf("failed to update equipment: %w", err)
	}
	return s.toResponse(equipment), nil
}

// Delete deletes an equipment item
func (s *EquipmentService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEquipmentNotFound
		}
		return fmt.Errorf("failed to get equipment: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	return nil
}

func (s *EquipmentService) toResponse(equipment *models.Equipment) *EquipmentResponse {
	return &EquipmentResponse{
		ID:             equipment.ID,
		Name:           equipment.Name,
		Category:       equipment.Category,
		Description:    equipment.Description,
		TariffAmount:   equipment.TariffAmount,
		TariffCurrency: equipment.TariffCurrency,
		Unit:           equipment.Unit,
		Active:         equipment.Active,
		CreatedAt:      equipment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      equipment.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
