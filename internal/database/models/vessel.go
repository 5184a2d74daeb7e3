package models

import "github.com/google/uuid"

// Vessel represents a fleet vessel owned by a client
type Vessel struct {
	BaseModel
	ClientID           uuid.UUID  `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name               string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	RegistrationNumber string     `json:"registration_number" gorm:"uniqueIndex;not null;size:40" validate:"required,max=40"`
	Flag               string     `json:"flag" gorm:"size:60" validate:"max=60"`
	VesselType         VesselType `json:"vessel_type" gorm:"type:varchar(50);not null" validate:"required"`
	LengthM            float64    `json:"length_m" gorm:"type:numeric(8,2)"`
	BeamM              float64    `json:"beam_m" gorm:"type:numeric(8,2)"`
	DraftM             float64    `json:"draft_m" gorm:"type:numeric(8,2)"`
	GrossTonnage       float64    `json:"gross_tonnage" gorm:"type:numeric(10,2)"`
	Active             bool       `json:"active" gorm:"default:true"`

	// Relationships
	Client           Client            `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Documents        []VesselDocument  `json:"documents,omitempty" gorm:"foreignKey:VesselID"`
	MaintenancePlans []MaintenancePlan `json:"maintenance_plans,omitempty" gorm:"foreignKey:VesselID"`
	Maneuvers        []Maneuver        `json:"maneuvers,omitempty" gorm:"foreignKey:VesselID"`
}

// TableName returns the table name for Vessel
func (Vessel) TableName() string {
	return "vessels"
}
