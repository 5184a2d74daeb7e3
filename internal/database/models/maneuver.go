package models

import (
	"time"

	"github.com/google/uuid"
)

// Maneuver represents a scheduled docking/berthing operation for a vessel
type Maneuver struct {
	BaseModel
	VesselID       uuid.UUID      `json:"vessel_id" gorm:"type:uuid;not null;index" validate:"required"`
	ManeuverType   ManeuverType   `json:"maneuver_type" gorm:"type:varchar(20);not null" validate:"required"`
	Status         ManeuverStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	ScheduledStart time.Time      `json:"scheduled_start" gorm:"not null;index" validate:"required"`
	ScheduledEnd   time.Time      `json:"scheduled_end" gorm:"not null" validate:"required"`
	Berth          string         `json:"berth" gorm:"size:60" validate:"max=60"`
	PilotName      string         `json:"pilot_name" gorm:"size:100" validate:"max=100"`
	Tugboats       int            `json:"tugboats" gorm:"default:0" validate:"min=0,max=10"`
	Notes          string         `json:"notes" gorm:"type:text"`

	// Relationships
	Vessel Vessel `json:"vessel,omitempty" gorm:"foreignKey:VesselID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Maneuver
func (Maneuver) TableName() string {
	return "maneuvers"
}
