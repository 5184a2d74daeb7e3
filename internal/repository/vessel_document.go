package repository

import (
	"time"

	"fleet-operations-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VesselDocumentRepository handles database operations for vessel documents
type VesselDocumentRepository struct {
	db *gorm.DB
}

// NewVesselDocumentRepository creates a new vessel document repository
func NewVesselDocumentRepository(db *gorm.DB) *VesselDocumentRepository {
	return &VesselDocumentRepository{db: db}
}

// Create creates a new vessel document
func (r *VesselDocumentRepository) Create(doc *models.VesselDocument) error {
	return r.db.Create(doc).Error
}

// GetByID retrieves a vessel document by ID
func (r *VesselDocumentRepository) GetByID(id uuid.UUID) (*models.VesselDocument, error) {
	var doc models.VesselDocument
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetByVesselID retrieves all documents for a vessel
func (r *VesselDocumentRepository) GetByVesselID(vesselID uuid.UUID) ([]models.VesselDocument, error) {
	var docs []models.VesselDocument
	err := r.db.Where("vessel_id = ?", vesselID).Order("expires_at ASC NULLS LAST").Find(&docs).Error
	return docs, err
}

// GetExpiringWithin retrieves documents whose expiry falls inside the window,
// expired ones included
func (r *VesselDocumentRepository) GetExpiringWithin(until time.Time, limit, offset int) ([]models.VesselDocument, int64, error) {
	var docs []models.VesselDocument
	var total int64

	q := r.db.Model(&models.VesselDocument{}).Where("expires_at IS NOT NULL AND expires_at <= ?", until)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Vessel").Order("expires_at ASC").Limit(limit).Offset(offset).Find(&docs).Error
	return docs, total, err
}

// Update updates a vessel document
func (r *VesselDocumentRepository) Update(doc *models.VesselDocument) error {
	return r.db.Save(doc).Error
}

// Delete deletes a vessel document
func (r *VesselDocumentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.VesselDocument{}, "id = ?", id).Error
}
