package repository

import (
	"fleet-operations-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VesselRepository handles database operations for vessels
type VesselRepository struct {
	db *gorm.DB
}

// NewVesselRepository creates a new vessel repository
func NewVesselRepository(db *gorm.DB) *VesselRepository {
	return &VesselRepository{db: db}
}

// Create creates a new vessel
func (r *VesselRepository) Create(vessel *models.Vessel) error {
	return r.db.Create(vessel).Error
}

// GetByID retrieves a vessel by ID
func (r *VesselRepository) GetByID(id uuid.UUID) (*models.Vessel, error) {
	var vessel models.Vessel
	err := r.db.Preload("Client").First(&vessel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vessel, nil
}

// GetByRegistrationNumber retrieves a vessel by its unique registration number
func (r *VesselRepository) GetByRegistrationNumber(registration string) (*models.Vessel, error) {
	var vessel models.Vessel
	err := r.db.First(&vessel, "registration_number = ?", registration).Error
	if err != nil {
		return nil, err
	}
	return &vessel, nil
}

// GetWithDocuments retrieves a vessel with its documents preloaded
func (r *VesselRepository) GetWithDocuments(id uuid.UUID) (*models.Vessel, error) {
	var vessel models.Vessel
	err := r.db.Preload("Client").Preload("Documents").First(&vessel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vessel, nil
}

// List retrieves vessels with pagination
func (r *VesselRepository) List(limit, offset int) ([]models.Vessel, int64, error) {
	var vessels []models.Vessel
	var total int64

	if err := r.db.Model(&models.Vessel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Client").Order("name ASC").Limit(limit).Offset(offset).Find(&vessels).Error
	return vessels, total, err
}

// GetByClientID retrieves all vessels for a client
func (r *VesselRepository) GetByClientID(clientID uuid.UUID, limit, offset int) ([]models.Vessel, int64, error) {
	var vessels []models.Vessel
	var total int64

	if err := r.db.Model(&models.Vessel{}).Where("client_id = ?", clientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("client_id = ?", clientID).Order("name ASC").Limit(limit).Offset(offset).Find(&vessels).Error
	return vessels, total, err
}

// Update updates a vessel
func (r *VesselRepository) Update(vessel *models.Vessel) error {
	return r.db.Save(vessel).Error
}

// Delete deletes a vessel
func (r *VesselRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Vessel{}, "id = ?", id).Error
}
