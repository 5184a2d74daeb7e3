package repository

import (
	"time"

	"fleet-operations-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleRepository handles database operations for schedules and their work days
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create creates a schedule together with its work days in one transaction
func (r *ScheduleRepository) Create(schedule *models.Schedule) error {
	return r.db.Create(schedule).Error
}

// GetByID retrieves a schedule with its user, work days and novelties
func (r *ScheduleRepository) GetByID(id uuid.UUID) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.
		Preload("User").
		Preload("WorkDays", func(db *gorm.DB) *gorm.DB { return db.Order("work_days.date ASC") }).
		Preload("Novelties", func(db *gorm.DB) *gorm.DB { return db.Order("novelties.date ASC") }).
		First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// List retrieves schedules with their user summaries, paginated
func (r *ScheduleRepository) List(limit, offset int) ([]models.Schedule, int64, error) {
	var schedules []models.Schedule
	var total int64

	if err := r.db.Model(&models.Schedule{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").Order("start_date DESC").Limit(limit).Offset(offset).Find(&schedules).Error
	return schedules, total, err
}

// GetByUserID retrieves all schedules owned by a user
func (r *ScheduleRepository) GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Schedule, int64, error) {
	var schedules []models.Schedule
	var total int64

	if err := r.db.Model(&models.Schedule{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("user_id = ?", userID).Order("start_date DESC").Limit(limit).Offset(offset).Find(&schedules).Error
	return schedules, total, err
}

// Update updates a schedule
func (r *ScheduleRepository) Update(schedule *models.Schedule) error {
	return r.db.Save(schedule).Error
}

// Delete deletes a schedule; work days and novelties cascade
func (r *ScheduleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Schedule{}, "id = ?", id).Error
}

// GetWorkDay retrieves the work day of a schedule for an exact calendar date
func (r *ScheduleRepository) GetWorkDay(scheduleID uuid.UUID, date time.Time) (*models.WorkDay, error) {
	var workDay models.WorkDay
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	err := r.db.First(&workDay, "schedule_id = ? AND date = ?", scheduleID, day).Error
	if err != nil {
		return nil, err
	}
	return &workDay, nil
}

// UpdateWorkDay updates a single work day
func (r *ScheduleRepository) UpdateWorkDay(workDay *models.WorkDay) error {
	return r.db.Save(workDay).Error
}

// UpdateAllWorkDayTimes applies one time window to every work day of a schedule
func (r *ScheduleRepository) UpdateAllWorkDayTimes(scheduleID uuid.UUID, startTime, endTime string) error {
	return r.db.Model(&models.WorkDay{}).
		Where("schedule_id = ?", scheduleID).
		Updates(map[string]interface{}{"start_time": startTime, "end_time": endTime}).Error
}
