package service

import (
	"errors"
	"fmt"
	"time"

	"fleet-operations-backend/internal/database/models"
	apperrors "fleet-operations-backend/internal/errors"
	"fleet-operations-backend/internal/repository"
	"fleet-operations-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleService handles business logic for work schedules
type ScheduleService struct {
	repo        *repository.ScheduleRepository
	noveltyRepo *repository.NoveltyRepository
	userRepo    *repository.UserRepository
	validator   *validator.Validate
}

// NewScheduleService creates a new schedule service
func NewScheduleService(repo *repository.ScheduleRepository, noveltyRepo *repository.NoveltyRepository, userRepo *repository.UserRepository, validator *validator.Validate) *ScheduleService {
	return &ScheduleService{
		repo:        repo,
		noveltyRepo: noveltyRepo,
		userRepo:    userRepo,
		validator:   validator,
	}
}

// CreateScheduleRequest represents the request to create a schedule
type CreateScheduleRequest struct {
	UserID            uuid.UUID  `json:"user_id" validate:"required"`
	StartDate         time.Time  `json:"start_date" validate:"required"`
	WorkingDays       int        `json:"working_days" validate:"required,min=1,max=31"`
	RestDays          int        `json:"rest_days" validate:"min=0,max=31"`
	RepeatMonthly     bool       `json:"repeat_monthly"`
	VacationStartDate *time.Time `json:"vacation_start_date,omitempty"`
	VacationDays      int        `json:"vacation_days" validate:"min=0"`
	DefaultStartTime  string     `json:"default_start_time" validate:"required,datetime=15:04"`
	DefaultEndTime    string     `json:"default_end_time" validate:"required,datetime=15:04"`
}

// UpdateWorkDayRequest represents the request to commit one day's time window
type UpdateWorkDayRequest struct {
	Date      time.Time `json:"date" validate:"required"`
	StartTime string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string    `json:"end_time" validate:"required,datetime=15:04"`
}

// BulkWorkDayTimesRequest represents the request to apply one window to all work days
type BulkWorkDayTimesRequest struct {
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

// SaveNoveltyRequest represents the request to upsert a novelty by date
type SaveNoveltyRequest struct {
	Date        time.Time          `json:"date" validate:"required"`
	NoveltyType models.NoveltyType `json:"novelty_type" validate:"required"`
	Observation string             `json:"observation" validate:"max=500"`
}

// PreviewRequest represents the request to generate a pattern preview
type PreviewRequest struct {
	StartDate        time.Time `json:"start_date" validate:"required"`
	WorkingDays      int       `json:"working_days" validate:"required,min=1,max=31"`
	RestDays         int       `json:"rest_days" validate:"min=0,max=31"`
	DefaultStartTime string    `json:"default_start_time" validate:"required,datetime=15:04"`
	DefaultEndTime   string    `json:"default_end_time" validate:"required,datetime=15:04"`
}

// WorkDayResponse represents one persisted work day
type WorkDayResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

// NoveltyResponse represents one novelty
type NoveltyResponse struct {
	ID          uuid.UUID          `json:"id"`
	Date        string             `json:"date"`
	NoveltyType models.NoveltyType `json:"novelty_type"`
	Observation string             `json:"observation"`
}

// UserSummary is the embedded user info on schedule responses
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Login     string    `json:"login"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// ScheduleResponse represents the response for schedule operations
type ScheduleResponse struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"user_id"`
	User              *UserSummary      `json:"user,omitempty"`
	StartDate         string            `json:"start_date"`
	WorkingDays       int               `json:"working_days"`
	RestDays          int               `json:"rest_days"`
	RepeatMonthly     bool              `json:"repeat_monthly"`
	VacationStartDate *string           `json:"vacation_start_date,omitempty"`
	VacationDays      int               `json:"vacation_days"`
	WorkDays          []WorkDayResponse `json:"work_days,omitempty"`
	Novelties         []NoveltyResponse `json:"novelties,omitempty"`
	CreatedAt         string            `json:"created_at"`
	UpdatedAt         string            `json:"updated_at"`
}

// ScheduleListResponse represents a paginated list of schedules
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// PreviewResponse represents a generated full-year pattern for the calendar UI
type PreviewResponse struct {
	StartDate   string            `json:"start_date"`
	WorkingDays int               `json:"working_days"`
	RestDays    int               `json:"rest_days"`
	WorkDayList []WorkDayResponse `json:"work_days"`
	RestDayList []string          `json:"rest_days_list"`
}

// Create generates the cyclic pattern for the request, trims it to one
// cycle's worth of work days and persists the schedule.
func (s *ScheduleService) Create(req *CreateScheduleRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	window := schedule.TimeWindow{Start: req.DefaultStartTime, End: req.DefaultEndTime}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	// Verify user exists
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	cycle := schedule.Cycle{
		Start:       req.StartDate,
		WorkingDays: req.WorkingDays,
		RestDays:    req.RestDays,
	}
	pattern := schedule.Generate(cycle, window)
	trimmed := pattern.Trim(req.StartDate, req.WorkingDays)

	entity := &models.Schedule{
		UserID:            req.UserID,
		StartDate:         truncateDay(req.StartDate),
		WorkingDays:       req.WorkingDays,
		RestDays:          req.RestDays,
		RepeatMonthly:     req.RepeatMonthly,
		VacationStartDate: req.VacationStartDate,
		VacationDays:      req.VacationDays,
	}
	for _, wd := range trimmed {
		entity.WorkDays = append(entity.WorkDays, models.WorkDay{
			Date:      wd.Date,
			StartTime: wd.StartTime,
			EndTime:   wd.EndTime,
		})
	}

	if err := s.repo.Create(entity); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	created, err := s.repo.GetByID(entity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload schedule: %w", err)
	}
	return s.toResponse(created), nil
}

// GetByID retrieves a schedule with its work days and novelties
func (s *ScheduleService) GetByID(id uuid.UUID) (*ScheduleResponse, error) {
	entity, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return s.toResponse(entity), nil
}

// List retrieves schedules with embedded user summaries
func (s *ScheduleService) List(page, pageSize int) (*ScheduleListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	schedules, total, err := s.repo.List(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	responses := make([]ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *s.toResponse(&schedules[i])
	}

	return &ScheduleListResponse{
		Schedules: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Delete deletes a schedule and its dependents
func (s *ScheduleService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to get schedule: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

// Preview generates the full-year pattern without persisting anything
func (s *ScheduleService) Preview(req *PreviewRequest) (*PreviewResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	window := schedule.TimeWindow{Start: req.DefaultStartTime, End: req.DefaultEndTime}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	cycle := schedule.Cycle{
		Start:       req.StartDate,
		WorkingDays: req.WorkingDays,
		RestDays:    req.RestDays,
	}
	pattern := schedule.Generate(cycle, window)

	resp := &PreviewResponse{
		StartDate:   truncateDay(req.StartDate).Format("2006-01-02"),
		WorkingDays: req.WorkingDays,
		RestDays:    req.RestDays,
	}
	for _, wd := range pattern.WorkDays {
		resp.WorkDayList = append(resp.WorkDayList, WorkDayResponse{
			Date:      wd.Date.Format("2006-01-02"),
			StartTime: wd.StartTime,
			EndTime:   wd.EndTime,
		})
	}
	for _, rd := range pattern.RestDays {
		resp.RestDayList = append(resp.RestDayList, rd.Format("2006-01-02"))
	}
	return resp, nil
}

// UpdateWorkDayTime commits a single day's time window. Unknown dates are
// reported as not found so remote callers get a signal.
func (s *ScheduleService) UpdateWorkDayTime(scheduleID uuid.UUID, req *UpdateWorkDayRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	window := schedule.TimeWindow{Start: req.StartTime, End: req.EndTime}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	workDay, err := s.repo.GetWorkDay(scheduleID, req.Date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkDayNotFound
		}
		return nil, fmt.Errorf("failed to get work day: %w", err)
	}

	workDay.StartTime = req.StartTime
	workDay.EndTime = req.EndTime
	if err := s.repo.UpdateWorkDay(workDay); err != nil {
		return nil, fmt.Errorf("failed to update work day: %w", err)
	}

	return s.GetByID(scheduleID)
}

// ApplyBulkTimes applies one time window to every work day of a schedule
func (s *ScheduleService) ApplyBulkTimes(scheduleID uuid.UUID, req *BulkWorkDayTimesRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	window := schedule.TimeWindow{Start: req.StartTime, End: req.EndTime}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	if err := s.repo.UpdateAllWorkDayTimes(scheduleID, req.StartTime, req.EndTime); err != nil {
		return nil, fmt.Errorf("failed to apply bulk times: %w", err)
	}

	return s.GetByID(scheduleID)
}

// SaveNovelty upserts a novelty by date: an existing entry for the same
// calendar day is updated in place, preserving its id.
func (s *ScheduleService) SaveNovelty(scheduleID uuid.UUID, req *SaveNoveltyRequest) (*NoveltyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.NoveltyType.IsValid() {
		return nil, apperrors.ErrInvalidNoveltyType
	}

	if _, err := s.repo.GetByID(scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	existing, err := s.noveltyRepo.GetByScheduleAndDate(scheduleID, req.Date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up novelty: %w", err)
	}

	if existing != nil {
		existing.NoveltyType = req.NoveltyType
		existing.Observation = req.Observation
		if err := s.noveltyRepo.Update(existing); err != nil {
			return nil, fmt.Errorf("failed to update novelty: %w", err)
		}
		return s.toNoveltyResponse(existing), nil
	}

	novelty := &models.Novelty{
		ScheduleID:  scheduleID,
		Date:        truncateDay(req.Date),
		NoveltyType: req.NoveltyType,
		Observation: req.Observation,
	}
	if err := s.noveltyRepo.Create(novelty); err != nil {
		return nil, fmt.Errorf("failed to create novelty: %w", err)
	}
	return s.toNoveltyResponse(novelty), nil
}

// ListNovelties retrieves all novelties of a schedule
func (s *ScheduleService) ListNovelties(scheduleID uuid.UUID) ([]NoveltyResponse, error) {
	if _, err := s.repo.GetByID(scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	novelties, err := s.noveltyRepo.GetByScheduleID(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list novelties: %w", err)
	}

	responses := make([]NoveltyResponse, len(novelties))
	for i := range novelties {
		responses[i] = *s.toNoveltyResponse(&novelties[i])
	}
	return responses, nil
}

// DeleteNovelty deletes a novelty from a schedule
func (s *ScheduleService) DeleteNovelty(scheduleID, noveltyID uuid.UUID) error {
	novelty, err := s.noveltyRepo.GetByID(noveltyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoveltyNotFound
		}
		return fmt.Errorf("failed to get novelty: %w", err)
	}
	if novelty.ScheduleID != scheduleID {
		return apperrors.ErrNoveltyNotFound
	}

	if err := s.noveltyRepo.Delete(noveltyID); err != nil {
		return fmt.Errorf("failed to delete novelty: %w", err)
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// toResponse converts a schedule model to response
func (s *ScheduleService) toResponse(entity *models.Schedule) *ScheduleResponse {
	response := &ScheduleResponse{
		ID:            entity.ID,
		UserID:        entity.UserID,
		StartDate:     entity.StartDate.Format("2006-01-02"),
		WorkingDays:   entity.WorkingDays,
		RestDays:      entity.RestDays,
		RepeatMonthly: entity.RepeatMonthly,
		VacationDays:  entity.VacationDays,
		CreatedAt:     entity.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     entity.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if entity.VacationStartDate != nil {
		v := entity.VacationStartDate.Format("2006-01-02")
		response.VacationStartDate = &v
	}

	if entity.User.ID != uuid.Nil {
		response.User = &UserSummary{
			ID:        entity.User.ID,
			Login:     entity.User.Login,
			FirstName: entity.User.FirstName,
			LastName:  entity.User.LastName,
			Email:     entity.User.Email,
		}
	}

	for _, wd := range entity.WorkDays {
		response.WorkDays = append(response.WorkDays, WorkDayResponse{
			ID:        wd.ID,
			Date:      wd.Date.Format("2006-01-02"),
			StartTime: wd.StartTime,
			EndTime:   wd.EndTime,
		})
	}
	for _, n := range entity.Novelties {
		response.Novelties = append(response.Novelties, *s.toNoveltyResponse(&n))
	}

	return response
}

func (s *ScheduleService) toNoveltyResponse(novelty *models.Novelty) *NoveltyResponse {
	return &NoveltyResponse{
		ID:          novelty.ID,
		Date:        novelty.Date.Format("2006-01-02"),
		NoveltyType: novelty.NoveltyType,
		Observation: novelty.Observation,
	}
}
