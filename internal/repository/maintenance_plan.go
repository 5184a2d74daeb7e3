package repository

import (
	"time"

	"fleet-operations-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenancePlanRepository handles database operations for maintenance plans
type MaintenancePlanRepository struct {
	db *gorm.DB
}

// NewMaintenancePlanRepository creates a new maintenance plan repository
func NewMaintenancePlanRepository(db *gorm.DB) *MaintenancePlanRepository {
	return &MaintenancePlanRepository{db: db}
}

// Create creates a new maintenance plan
func (r *MaintenancePlanRepository) Create(plan *models.MaintenancePlan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a maintenance plan by ID
func (r *MaintenancePlanRepository) GetByID(id uuid.UUID) (*models.MaintenancePlan, error) {
	var plan models.MaintenancePlan
	err := r.db.Preload("Vessel").Preload("Equipment").First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByVesselID retrieves all maintenance plans for a vessel
func (r *MaintenancePlanRepository) GetByVesselID(vesselID uuid.UUID, limit, offset int) ([]models.MaintenancePlan, int64, error) {
	var plans []models.MaintenancePlan
	var total int64

	if err := r.db.Model(&models.MaintenancePlan{}).Where("vessel_id = ?", vesselID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("vessel_id = ?", vesselID).Order("next_due_date ASC").Limit(limit).Offset(offset).Find(&plans).Error
	return plans, total, err
}

// GetDueWithin retrieves active plans due on or before the given date
func (r *MaintenancePlanRepository) GetDueWithin(until time.Time, limit, offset int) ([]models.MaintenancePlan, int64, error) {
	var plans []models.MaintenancePlan
	var total int64

	q := r.db.Model(&models.MaintenancePlan{}).Where("active = ? AND next_due_date <= ?", true, until)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Vessel").Preload("Equipment").Order("next_due_date ASC").Limit(limit).Offset(offset).Find(&plans).Error
	return plans, total, err
}

// List retrieves maintenance plans with pagination
func (r *MaintenancePlanRepository) List(limit, offset int) ([]models.MaintenancePlan, int64, error) {
	var plans []models.MaintenancePlan
	var total int64

	if err := r.db.Model(&models.MaintenancePlan{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Vessel").Order("next_due_date ASC").Limit(limit).Offset(offset).Find(&plans).Error
	return plans, total, err
}

// Update updates a maintenance plan
func (r *MaintenancePlanRepository) Update(plan *models.MaintenancePlan) error {
	return r.db.Save(plan).Error
}

// Delete deletes a maintenance plan
func (r *MaintenancePlanRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MaintenancePlan{}, "id = ?", id).Error
}
