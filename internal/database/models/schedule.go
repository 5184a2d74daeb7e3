package models

import (
	"time"

	"github.com/google/uuid"
)

// Schedule represents a recurring work schedule owned by exactly one user.
// Only one cycle's worth of explicit work days is persisted; recurrence
// beyond that window is derived from working_days/rest_days.
type Schedule struct {
	BaseModel
	UserID            uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate         time.Time  `json:"start_date" gorm:"type:date;not null" validate:"required"`
	WorkingDays       int        `json:"working_days" gorm:"not null" validate:"required,min=1,max=31"`
	RestDays          int        `json:"rest_days" gorm:"not null" validate:"min=0,max=31"`
	RepeatMonthly     bool       `json:"repeat_monthly" gorm:"default:false"`
	VacationStartDate *time.Time `json:"vacation_start_date,omitempty" gorm:"type:date"`
	VacationDays      int        `json:"vacation_days" gorm:"default:0" validate:"min=0"`

	// Relationships
	User      User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	WorkDays  []WorkDay  `json:"work_days,omitempty" gorm:"foreignKey:ScheduleID"`
	Novelties []Novelty  `json:"novelties,omitempty" gorm:"foreignKey:ScheduleID"`
}

// WorkDay represents one persisted day the user is scheduled to work.
// Uniqueness is by calendar day within a schedule.
type WorkDay struct {
	BaseModel
	ScheduleID uuid.UUID `json:"schedule_id" gorm:"type:uuid;not null;uniqueIndex:idx_work_days_schedule_date" validate:"required"`
	Date       time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_work_days_schedule_date" validate:"required"`
	StartTime  string    `json:"start_time" gorm:"size:5;not null" validate:"required,datetime=15:04"`
	EndTime    string    `json:"end_time" gorm:"size:5;not null" validate:"required,datetime=15:04"`

	// Relationships
	Schedule Schedule `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
}

// Novelty is a date-scoped exception overlaid on a schedule. It never alters
// the underlying work/rest classification; at most one exists per date.
type Novelty struct {
	BaseModel
	ScheduleID  uuid.UUID   `json:"schedule_id" gorm:"type:uuid;not null;uniqueIndex:idx_novelties_schedule_date" validate:"required"`
	Date        time.Time   `json:"date" gorm:"type:date;not null;uniqueIndex:idx_novelties_schedule_date" validate:"required"`
	NoveltyType NoveltyType `json:"novelty_type" gorm:"type:varchar(30);not null" validate:"required"`
	Observation string      `json:"observation" gorm:"size:500" validate:"max=500"`

	// Relationships
	Schedule Schedule `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Schedule
func (Schedule) TableName() string {
	return "schedules"
}

// TableName returns the table name for WorkDay
func (WorkDay) TableName() string {
	return "work_days"
}

// TableName returns the table name for Novelty
func (Novelty) TableName() string {
	return "novelties"
}
