package repository

import (
	"time"

	"fleet-operations-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ManeuverRepository handles database operations for maneuvers
type ManeuverRepository struct {
	db *gorm.DB
}

// NewManeuverRepository creates a new maneuver repository
func NewManeuverRepository(db *gorm.DB) *ManeuverRepository {
	return &ManeuverRepository{db: db}
}

// Create creates a new maneuver
func (r *ManeuverRepository) Create(maneuver *models.Maneuver) error {
	return r.db.Create(maneuver).Error
}

// GetByID retrieves a maneuver by ID
func (r *ManeuverRepository) GetByID(id uuid.UUID) (*models.Maneuver, error) {
	var maneuver models.Maneuver
	err := r.db.Preload("Vessel").First(&maneuver, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &maneuver, nil
}

// GetByVesselID retrieves all maneuvers for a vessel
func (r *ManeuverRepository) GetByVesselID(vesselID uuid.UUID, limit, offset int) ([]models.Maneuver, int64, error) {
	var maneuvers []models.Maneuver
	var total int64

	if err := r.db.Model(&models.Maneuver{}).Where("vessel_id = ?", vesselID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("vessel_id = ?", vesselID).Order("scheduled_start DESC").Limit(limit).Offset(offset).Find(&maneuvers).Error
	return maneuvers, total, err
}

// GetByDateRange retrieves maneuvers whose scheduled window intersects [from, to]
func (r *ManeuverRepository) GetByDateRange(from, to time.Time) ([]models.Maneuver, error) {
	var maneuvers []models.Maneuver
	err := r.db.Preload("Vessel").
		Where("scheduled_start <= ? AND scheduled_end >= ?", to, from).
		Order("scheduled_start ASC").
		Find(&maneuvers).Error
	return maneuvers, err
}

// List retrieves maneuvers with pagination, optionally filtered by status
func (r *ManeuverRepository) List(status models.ManeuverStatus, limit, offset int) ([]models.Maneuver, int64, error) {
	var maneuvers []models.Maneuver
	var total int64

	q := r.db.Model(&models.Maneuver{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Vessel").Order("scheduled_start DESC").Limit(limit).Offset(offset).Find(&maneuvers).Error
	return maneuvers, total, err
}

// Update updates a maneuver
func (r *ManeuverRepository) Update(maneuver *models.Maneuver) error {
	return r.db.Save(maneuver).Error
}

// Delete deletes a maneuver
func (r *ManeuverRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Maneuver{}, "id = ?", id).Error
}
