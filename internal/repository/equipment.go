package repository

import (
	"fleet-operations-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentRepository handles database operations for equipment
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create creates a new equipment item
func (r *EquipmentRepository) Create(equipment *models.Equipment) error {
	return r.db.Create(equipment).Error
}

// GetByID retrieves an equipment item by ID
func (r *EquipmentRepository) GetByID(id uuid.UUID) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.First(&equipment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// List retrieves equipment with pagination, optionally filtered by category
func (r *EquipmentRepository) List(category string, limit, offset int) ([]models.Equipment, int64, error) {
	var items []models.Equipment
	var total int64

	q := r.db.Model(&models.Equipment{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

// Update updates an equipment item
func (r *EquipmentRepository) Update(equipment *models.Equipment) error {
	return r.db.Save(equipment).Error
}

// Delete deletes an equipment item
func (r *EquipmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Equipment{}, "id = ?", id).Error
}
