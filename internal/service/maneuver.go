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

// ManeuverService handles business logic for vessel maneuvers
type ManeuverService struct {
	repo       *repository.ManeuverRepository
	vesselRepo *repository.VesselRepository
	validator  *validator.Validate
}

// NewManeuverService creates a new maneuver service
func NewManeuverService(repo *repository.ManeuverRepository, vesselRepo *repository.VesselRepository, validator *validator.Validate) *ManeuverService {
	return &ManeuverService{repo: repo, vesselRepo: vesselRepo, validator: validator}
}

// CreateManeuverRequest represents the request to create a maneuver
type CreateManeuverRequest struct {
	VesselID       uuid.UUID           `json:"vessel_id" validate:"required"`
	ManeuverType   models.ManeuverType `json:"maneuver_type" validate:"required"`
	ScheduledStart time.Time           `json:"scheduled_start" validate:"required"`
	ScheduledEnd   time.Time           `json:"scheduled_end" validate:"required"`
	Berth          string              `json:"berth" validate:"max=60"`
	PilotName      string              `json:"pilot_name" validate:"max=100"`
	Tugboats       int                 `json:"tugboats" validate:"min=0,max=10"`
	Notes          string              `json:"notes"`
}

// UpdateManeuverRequest represents the request to update a scheduled maneuver
type UpdateManeuverRequest struct {
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	Berth          *string    `json:"berth,omitempty" validate:"omitempty,max=60"`
	PilotName      *string    `json:"pilot_name,omitempty" validate:"omitempty,max=100"`
	Tugboats       *int       `json:"tugboats,omitempty" validate:"omitempty,min=0,max=10"`
	Notes          *string    `json:"notes,omitempty"`
}

// ChangeManeuverStatusRequest represents the request to move a maneuver
// through its lifecycle
type ChangeManeuverStatusRequest struct {
	Status models.ManeuverStatus `json:"status" validate:"required"`
}

// ManeuverResponse represents the response for maneuver operations
type ManeuverResponse struct {
	ID             uuid.UUID             `json:"id"`
	VesselID       uuid.UUID             `json:"vessel_id"`
	VesselName     string                `json:"vessel_name,omitempty"`
	ManeuverType   models.ManeuverType   `json:"maneuver_type"`
	Status         models.ManeuverStatus `json:"status"`
	ScheduledStart string                `json:"scheduled_start"`
	ScheduledEnd   string                `json:"scheduled_end"`
	Berth          string                `json:"berth,omitempty"`
	PilotName      string                `json:"pilot_name,omitempty"`
	Tugboats       int                   `json:"tugboats"`
	Notes          string                `json:"notes,omitempty"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}

// ManeuverListResponse represents a paginated list of maneuvers
type ManeuverListResponse struct {
	Maneuvers []ManeuverResponse `json:"maneuvers"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create schedules a new maneuver for a vessel
func (s *ManeuverService) Create(req *CreateManeuverRequest) (*ManeuverResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.ManeuverType.IsValid() {
		return nil, apperrors.ErrInvalidManeuverType
	}
	if !req.ScheduledEnd.After(req.ScheduledStart) {
		return nil, apperrors.ErrManeuverTimeRange
	}

	if _, err := s.vesselRepo.GetByID(req.VesselID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVesselNotFound
		}
		return nil, fmt.Errorf("failed to verify vessel: %w", err)
	}

	maneuver := &models.Maneuver{
		VesselID:       req.VesselID,
		ManeuverType:   req.ManeuverType,
		Status:         models.ManeuverStatusScheduled,
		ScheduledStart: req.ScheduledStart,
		ScheduledEnd:   req.ScheduledEnd,
		Berth:          req.Berth,
		PilotName:      req.PilotName,
		Tugboats:       req.Tugboats,
		Notes:          req.Notes,
	}
	if err := s.repo.Create(maneuver); err != nil {
		return nil, fmt.Errorf("failed to create maneuver: %w", err)
	}
	return s.toResponse(maneuver), nil
}

// GetByID retrieves a maneuver by ID
func (s *ManeuverService) GetByID(id uuid.UUID) (*ManeuverResponse, error) {
	maneuver, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrManeuverNotFound
		}
		return nil, fmt.Errorf("failed to get maneuver: %w", err)
	}
	return s.toResponse(maneuver), nil
}

// List retrieves maneuvers with pagination, optionally filtered by status
func (s *ManeuverService) List(status models.ManeuverStatus, page, pageSize int) (*ManeuverListResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.ErrInvalidManeuverStatus
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	maneuvers, total, err := s.repo.List(status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list maneuvers: %w", err)
	}

	responses := make([]ManeuverResponse, len(maneuvers))
	for i := range maneuvers {
		responses[i] = *s.toResponse(&maneuvers[i])
	}

	return &ManeuverListResponse{Maneuvers: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Calendar retrieves all maneuvers whose scheduled window intersects [from, to]
func (s *ManeuverService) Calendar(from, to time.Time) ([]ManeuverResponse, error) {
	if !to.After(from) {
		return nil, apperrors.ErrManeuverTimeRange
	}

	maneuvers, err := s.repo.GetByDateRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load maneuver calendar: %w", err)
	}

	responses := make([]ManeuverResponse, len(maneuvers))
	for i := range maneuvers {
		responses[i] = *s.toResponse(&maneuvers[i])
	}
	return responses, nil
}

// Update applies a partial update to a maneuver's scheduling details
func (s *ManeuverService) Update(id uuid.UUID, req *UpdateManeuverRequest) (*ManeuverResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	maneuver, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrManeuverNotFound
		}
		return nil, fmt.Errorf("failed to get maneuver: %w", err)
	}

	if req.ScheduledStart != nil {
		maneuver.ScheduledStart = *req.ScheduledStart
	}
	if req.ScheduledEnd != nil {
		maneuver.ScheduledEnd = *req.ScheduledEnd
	}
	if !maneuver.ScheduledEnd.After(maneuver.ScheduledStart) {
		return nil, apperrors.ErrManeuverTimeRange
	}
	if req.Berth != nil {
		maneuver.Berth = *req.Berth
	}
	if req.PilotName != nil {
		maneuver.PilotName = *req.PilotName
	}
	if req.Tugboats != nil {
		maneuver.Tugboats = *req.Tugboats
	}
	if req.Notes != nil {
		maneuver.Notes = *req.Notes
	}

	if err := s.repo.Update(maneuver); err != nil {
		return nil, fmt.Errorf("failed to update maneuver: %w", err)
	}
	return s.toResponse(maneuver), nil
}

// ChangeStatus moves a maneuver through its lifecycle. Only forward
// transitions are allowed; completed and cancelled are terminal.
func (s *ManeuverService) ChangeStatus(id uuid.UUID, req *ChangeManeuverStatusRequest) (*ManeuverResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidManeuverStatus
	}

	maneuver, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrManeuverNotFound
		}
		return nil, fmt.Errorf("failed to get maneuver: %w", err)
	}

	if !maneuver.Status.CanTransitionTo(req.Status) {
		return nil, apperrors.ErrManeuverStatusTransition
	}
	maneuver.Status = req.Status

	if err := s.repo.Update(maneuver); err != nil {
		return nil, fmt.Errorf("failed to change maneuver status: %w", err)
	}
	return s.toResponse(maneuver), nil
}

// Delete deletes a maneuver
func (s *ManeuverService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrManeuverNotFound
		}
		return fmt.Errorf("failed to get maneuver: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete maneuver: %w", err)
	}
	return nil
}

func (s *ManeuverService) toResponse(maneuver *models.Maneuver) *ManeuverResponse {
	response := &ManeuverResponse{
		ID:             maneuver.ID,
		VesselID:       maneuver.VesselID,
		ManeuverType:   maneuver.ManeuverType,
		Status:         maneuver.Status,
		ScheduledStart: maneuver.ScheduledStart.Format(time.RFC3339),
		ScheduledEnd:   maneuver.ScheduledEnd.Format(time.RFC3339),
		Berth:          maneuver.Berth,
		PilotName:      maneuver.PilotName,
		Tugboats:       maneuver.Tugboats,
		Notes:          maneuver.Notes,
		CreatedAt:      maneuver.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      maneuver.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if maneuver.Vessel.ID != uuid.Nil {
		response.VesselName = maneuver.Vessel.Name
	}
	return response
}
