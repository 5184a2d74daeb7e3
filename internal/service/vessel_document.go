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

// VesselDocumentService handles business logic for vessel documents
type VesselDocumentService struct {
	repo       *repository.VesselDocumentRepository
	vesselRepo *repository.VesselRepository
	validator  *validator.Validate
	now        func() time.Time
}

// NewVesselDocumentService creates a new vessel document service
func NewVesselDocumentService(repo *repository.VesselDocumentRepository, vesselRepo *repository.VesselRepository, validator *validator.Validate) *VesselDocumentService {
	return &VesselDocumentService{repo: repo, vesselRepo: vesselRepo, validator: validator, now: time.Now}
}

// CreateVesselDocumentRequest represents the request to create a vessel document
type CreateVesselDocumentRequest struct {
	VesselID     uuid.UUID  `json:"vessel_id" validate:"required"`
	Name         string     `json:"name" validate:"required,min=1,max=150"`
	DocumentType string     `json:"document_type" validate:"max=60"`
	IssuedAt     *time.Time `json:"issued_at,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	FileURL      string     `json:"file_url" validate:"omitempty,url,max=500"`
}

// UpdateVesselDocumentRequest represents the request to update a vessel document
type UpdateVesselDocumentRequest struct {
	Name         *string    `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	DocumentType *string    `json:"document_type,omitempty" validate:"omitempty,max=60"`
	IssuedAt     *time.Time `json:"issued_at,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	FileURL      *string    `json:"file_url,omitempty" validate:"omitempty,url,max=500"`
}

// VesselDocumentResponse represents the response for vessel document operations
type VesselDocumentResponse struct {
	ID           uuid.UUID             `json:"id"`
	VesselID     uuid.UUID             `json:"vessel_id"`
	VesselName   string                `json:"vessel_name,omitempty"`
	Name         string                `json:"name"`
	DocumentType string                `json:"document_type,omitempty"`
	IssuedAt     *string               `json:"issued_at,omitempty"`
	ExpiresAt    *string               `json:"expires_at,omitempty"`
	Status       models.DocumentStatus `json:"status"`
	FileURL      string                `json:"file_url,omitempty"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
}

// VesselDocumentListResponse represents a paginated list of vessel documents
type VesselDocumentListResponse struct {
	Documents []VesselDocumentResponse `json:"documents"`
	Total     int64                    `json:"total"`
	Page      int                      `json:"page"`
	PageSize  int                      `json:"page_size"`
}

// Create creates a new document for a vessel
func (s *VesselDocumentService) Create(req *CreateVesselDocumentRequest) (*VesselDocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.vesselRepo.GetByID(req.VesselID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVesselNotFound
		}
		return nil, fmt.Errorf("failed to verify vessel: %w", err)
	}

	doc := &models.VesselDocument{
		VesselID:     req.VesselID,
		Name:         req.Name,
		DocumentType: req.DocumentType,
		IssuedAt:     req.IssuedAt,
		ExpiresAt:    req.ExpiresAt,
		FileURL:      req.FileURL,
	}
	if err := s.repo.Create(doc); err != nil {
		return nil, fmt.Errorf("failed to create vessel document: %w", err)
	}
	return documentToResponse(doc, s.now().UTC()), nil
}

// GetByID retrieves a vessel document by ID
func (s *VesselDocumentService) GetByID(id uuid.UUID) (*VesselDocumentResponse, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVesselDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get vessel document: %w", err)
	}
	return documentToResponse(doc, s.now().UTC()), nil
}

// ListByVessel retrieves all documents of a vessel
func (s *VesselDocumentService) ListByVessel(vesselID uuid.UUID) ([]VesselDocumentResponse, error) {
	if _, err := s.vesselRepo.GetByID(vesselID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVesselNotFound
		}
		return nil, fmt.Errorf("failed to verify vessel: %w", err)
	}

	docs, err := s.repo.GetByVesselID(vesselID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vessel documents: %w", err)
	}

	now := s.now().UTC()
	responses := make([]VesselDocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *documentToResponse(&docs[i], now)
	}
	return responses, nil
}

// ListExpiring retrieves documents that are expired or expire within the
// given number of days, fleet-wide.
func (s *VesselDocumentService) ListExpiring(withinDays, page, pageSize int) (*VesselDocumentListResponse, error) {
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

	now := s.now().UTC()
	until := now.AddDate(0, 0, withinDays)
	docs, total, err := s.repo.GetExpiringWithin(until, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring documents: %w", err)
	}

	responses := make([]VesselDocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *documentToResponse(&docs[i], now)
	}

	return &VesselDocumentListResponse{Documents: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update applies a partial update to a vessel document
func (s *VesselDocumentService) Update(id uuid.UUID, req *UpdateVesselDocumentRequest) (*VesselDocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	doc, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVesselDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get vessel document: %w", err)
	}

	if req.Name != nil {
		doc.Name = *req.Name
	}
	if req.DocumentType != nil {
		doc.DocumentType = *req.DocumentType
	}
	if req.IssuedAt != nil {
		doc.IssuedAt = req.IssuedAt
	}
	if req.ExpiresAt != nil {
		doc.ExpiresAt = req.ExpiresAt
	}
	if req.FileURL != nil {
		doc.FileURL = *req.FileURL
	}

	if err := s.repo.Update(doc); err != nil {
		return nil, fmt.Errorf("failed to update vessel document: %w", err)
	}
	return documentToResponse(doc, s.now().UTC()), nil
}

// Delete deletes a vessel document
func (s *VesselDocumentService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVesselDocumentNotFound
		}
		return fmt.Errorf("failed to get vessel document: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete vessel document: %w", err)
	}
	return nil
}

// documentToResponse is shared with the vessel service for embedded documents
func documentToResponse(doc *models.VesselDocument, now time.Time) *VesselDocumentResponse {
	response := &VesselDocumentResponse{
		ID:           doc.ID,
		VesselID:     doc.VesselID,
		Name:         doc.Name,
		DocumentType: doc.DocumentType,
		Status:       doc.StatusAt(now),
		FileURL:      doc.FileURL,
		CreatedAt:    doc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    doc.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if doc.IssuedAt != nil {
		v := doc.IssuedAt.Format("2006-01-02")
		response.IssuedAt = &v
	}
	if doc.ExpiresAt != nil {
		v := doc.ExpiresAt.Format("2006-01-02")
		response.ExpiresAt = &v
	}
	if doc.Vessel.ID != uuid.Nil {
		response.VesselName = doc.Vessel.Name
	}
	return response
}
