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

// VesselService handles business logic for vessels
type VesselService struct {
	repo       *repository.VesselRepository
	clientRepo *repository.ClientRepository
	validator  *validator.Validate
}

// NewVesselService creates a new vessel service
func NewVesselService(repo *repository.VesselRepository, clientRepo *repository.ClientRepository, validator *validator.Validate) *VesselService {
	return &VesselService{repo: repo, clientRepo: clientRepo, validator: validator}
}

// CreateVesselRequest represents the request to create a vessel
type CreateVesselRequest struct {
	ClientID           uuid.UUID         `json:"client_id" validate:"required"`
	Name               string            `json:"name" validate:"required,min=1,max=100"`
	RegistrationNumber string            `json:"registration_number" validate:"required,max=40"`
	Flag               string            `json:"flag" validate:"max=60"`
	VesselType         models.VesselType `json:"vessel_type" validate:"required"`
	LengthM            float64           `json:"length_m" validate:"min=0"`
	BeamM              float64           `json:"beam_m" validate:"min=0"`
	DraftM             float64           `json:"draft_m" validate:"min=0"`
	GrossTonnage       float64           `json:"gross_tonnage" validate:"min=0"`
}

// UpdateVesselRequest represents the request to update a vessel
type UpdateVesselRequest struct {
	Name         *string            `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Flag         *string            `json:"flag,omitempty" validate:"omitempty,max=60"`
	VesselType   *models.VesselType `json:"vessel_type,omitempty"`
	LengthM      *float64           `json:"length_m,omitempty" validate:"omitempty,min=0"`
	BeamM        *float64           `json:"beam_m,omitempty" validate:"omitempty,min=0"`
	DraftM       *float64           `json:"draft_m,omitempty" validate:"omitempty,min=0"`
	GrossTonnage *float64           `json:"gross_tonnage,omitempty" validate:"omitempty,min=0"`
	Active       *bool              `json:"active,omitempty"`
}

// VesselResponse represents the response for vessel operations
type VesselResponse struct {
	ID                 uuid.UUID                `json:"id"`
	ClientID           uuid.UUID                `json:"client_id"`
	ClientName         string                   `json:"client_name,omitempty"`
	Name               string                   `json:"name"`
	RegistrationNumber string                   `json:"registration_number"`
	Flag               string                   `json:"flag,omitempty"`
	VesselType         models.VesselType        `json:"vessel_type"`
	LengthM            float64                  `json:"length_m,omitempty"`
	BeamM              float64                  `json:"beam_m,omitempty"`
	DraftM             float64                  `json:"draft_m,omitempty"`
	GrossTonnage       float64                  `json:"gross_tonnage,omitempty"`
	Active             bool                     `json:"active"`
	Documents          []VesselDocumentResponse `json:"documents,omitempty"`
	CreatedAt          string                   `json:"created_at"`
	UpdatedAt          string                   `json:"updated_at"`
}

// VesselListResponse represents a paginated list of vessels
type VesselListResponse struct {
	Vessels  []VesselResponse `json:"vessels"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new vessel under a client
func (s *VesselService) Create(req *CreateVesselRequest) (*VesselResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.VesselType.IsValid() {
		return nil, apperrors.ErrInvalidVesselType
	}

	if _, err := s.clientRepo.GetByID(req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to verify client: %w", err)
	}

	if _, err := s.repo.GetByRegistrationNumber(req.RegistrationNumber); err == nil {
		return nil, apperrors.ErrVesselExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing vessel: %w", err)
	}

	vessel := &models.Vessel{
		ClientID:           req.ClientID,
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Flag:               req.Flag,
		VesselType:         req.VesselType,
		LengthM:            req.LengthM,
		BeamM:              req.BeamM,
		DraftM:             req.DraftM,
		GrossTonnage:       req.GrossTonnage,
		Active:             true,
	}
	if err := s.repo.Create(vessel); err != nil {
		return nil, fmt.Errorf("failed to create vessel: %w", err)
	}
	return vesselToResponse(vessel), nil
}

// GetByID retrieves a vessel with its documents, each carrying an
// expiration badge computed against today.
func (s *VesselService) GetByID(id uuid.UUID) (*VesselResponse, error) {
	vessel, err := s.repo.GetWithDocuments(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVesselNotFound
		}
		return nil, fmt.Errorf("failed to get vessel: %w", err)
	}

	response := vesselToResponse(vessel)
	now := time.Now().UTC()
	for i := range vessel.Documents {
		response.Documents = append(response.Documents, *documentToResponse(&vessel.Documents[i], now))
	}
	return response, nil
}

// List retrieves vessels with pagination, optionally scoped to a client
func (s *VesselService) List(clientID *uuid.UUID, page, pageSize int) (*VesselListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var (
		vessels []models.Vessel
		total   int64
		err     error
	)
	if clientID != nil {
		vessels, total, err = s.repo.GetByClientID(*clientID, pageSize, offset)
	} else {
		vessels, total, err = s.repo.List(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list vessels: %w", err)
	}

	responses := make([]VesselResponse, len(vessels))
	for i := range vessels {
		responses[i] = *vesselToResponse(&vessels[i])
	}

	return &VesselListResponse{Vessels: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update applies a partial update to a vessel. Registration number is immutable.
func (s *VesselService) Update(id uuid.UUID, req *UpdateVesselRequest) (*VesselResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	vessel, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVesselNotFound
		}
		return nil, fmt.Errorf("failed to get vessel: %w", err)
	}

	if req.VesselType != nil {
		if !req.VesselType.IsValid() {
			return nil, apperrors.ErrInvalidVesselType
		}
		vessel.VesselType = *req.VesselType
	}
	if req.Name != nil {
		vessel.Name = *req.Name
	}
	if req.Flag != nil {
		vessel.Flag = *req.Flag
	}
	if req.LengthM != nil {
		vessel.LengthM = *req.LengthM
	}
	if req.BeamM != nil {
		vessel.BeamM = *req.BeamM
	}
	if req.DraftM != nil {
		vessel.DraftM = *req.DraftM
	}
	if req.GrossTonnage != nil {
		vessel.GrossTonnage = *req.GrossTonnage
	}
	if req.Active != nil {
		vessel.Active = *req.Active
	}

	if err := s.repo.Update(vessel); err != nil {
		return nil, fmt.Errorf("failed to update vessel: %w", err)
	}
	return vesselToResponse(vessel), nil
}

// Delete deletes a vessel; documents, plans and maneuvers cascade
func (s *VesselService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVesselNotFound
		}
		return fmt.Errorf("failed to get vessel: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete vessel: %w", err)
	}
	return nil
}

// vesselToResponse is shared with the client service for embedded vessels
func vesselToResponse(vessel *models.Vessel) *VesselResponse {
	response := &VesselResponse{
		ID:                 vessel.ID,
		ClientID:           vessel.ClientID,
		Name:               vessel.Name,
		RegistrationNumber: vessel.RegistrationNumber,
		Flag:               vessel.Flag,
		VesselType:         vessel.VesselType,
		LengthM:            vessel.LengthM,
		BeamM:              vessel.BeamM,
		DraftM:             vessel.DraftM,
		GrossTonnage:       vessel.GrossTonnage,
		Active:             vessel.Active,
		CreatedAt:          vessel.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:          vessel.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if vessel.Client.ID != uuid.Nil {
		response.ClientName = vessel.Client.Name
	}
	return response
}
