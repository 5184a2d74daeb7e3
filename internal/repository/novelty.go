package repository

import (
	"time"

	"fleet-operations-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoveltyRepository handles database operations for schedule novelties
type NoveltyRepository struct {
	db *gorm.DB
}

// NewNoveltyRepository creates a new novelty repository
func NewNoveltyRepository(db *gorm.DB) *NoveltyRepository {
	return &NoveltyRepository{db: db}
}

// Create creates a new novelty
func (r *NoveltyRepository) Create(novelty *models.Novelty) error {
	return r.db.Create(novelty).Error
}

// GetByID retrieves a novelty by ID
func (r *NoveltyRepository) GetByID(id uuid.UUID) (*models.Novelty, error) {
	var novelty models.Novelty
	err := r.db.First(&novelty, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &novelty, nil
}

// GetByScheduleAndDate retrieves the novelty of a schedule for an exact calendar date
func (r *NoveltyRepository) GetByScheduleAndDate(scheduleID uuid.UUID, date time.Time) (*models.Novelty, error) {
	var novelty models.Novelty
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	err := r.db.First(&novelty, "schedule_id = ? AND date = ?", scheduleID, day).Error
	if err != nil {
		return nil, err
	}
	return &novelty, nil
}

// GetByScheduleID retrieves all novelties of a schedule ordered by date
func (r *NoveltyRepository) GetByScheduleID(scheduleID uuid.UUID) ([]models.Novelty, error) {
	var novelties []models.Novelty
	err := r.db.Where("schedule_id = ?", scheduleID).Order("date ASC").Find(&novelties).Error
	return novelties, err
}

// Update updates a novelty
func (r *NoveltyRepository) Update(novelty *models.Novelty) error {
	return r.db.Save(novelty).Error
}

// Delete deletes a novelty
func (r *NoveltyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Novelty{}, "id = ?", id).Error
}
