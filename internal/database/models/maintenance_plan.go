package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenancePlan represents a recurring maintenance obligation for a vessel
type MaintenancePlan struct {
	BaseModel
	VesselID    uuid.UUID              `json:"vessel_id" gorm:"type:uuid;not null;index" validate:"required"`
	EquipmentID *uuid.UUID             `json:"equipment_id,omitempty" gorm:"type:uuid;index"`
	Title       string                 `json:"title" gorm:"not null;size:150" validate:"required,min=1,max=150"`
	Description string                 `json:"description" gorm:"size:500" validate:"max=500"`
	Periodicity MaintenancePeriodicity `json:"periodicity" gorm:"type:varchar(20);not null" validate:"required"`
	NextDueDate time.Time              `json:"next_due_date" gorm:"type:date;not null;index" validate:"required"`
	Active      bool                   `json:"active" gorm:"default:true"`

	// Relationships
	Vessel    Vessel     `json:"vessel,omitempty" gorm:"foreignKey:VesselID;constraint:OnDelete:CASCADE"`
	Equipment *Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID"`
}

// Advance moves the next due date forward by one period.
func (p *MaintenancePlan) Advance() {
	switch p.Periodicity {
	case PeriodicityWeekly:
		p.NextDueDate = p.NextDueDate.AddDate(0, 0, 7)
	case PeriodicityMonthly:
		p.NextDueDate = p.NextDueDate.AddDate(0, 1, 0)
	case PeriodicityQuarterly:
		p.NextDueDate = p.NextDueDate.AddDate(0, 3, 0)
	case PeriodicitySemiannual:
		p.NextDueDate = p.NextDueDate.AddDate(0, 6, 0)
	case PeriodicityAnnual:
		p.NextDueDate = p.NextDueDate.AddDate(1, 0, 0)
	}
}

// TableName returns the table name for MaintenancePlan
func (MaintenancePlan) TableName() string {
	return "maintenance_plans"
}
