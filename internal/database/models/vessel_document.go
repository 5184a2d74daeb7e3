package models

import (
	"time"

	"github.com/google/uuid"
)

// Expiration badge windows, in days before expiry.
const (
	documentCriticalWindowDays = 30
	documentWarningWindowDays  = 60
)

// VesselDocument represents a statutory or commercial document of a vessel
type VesselDocument struct {
	BaseModel
	VesselID     uuid.UUID  `json:"vessel_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name         string     `json:"name" gorm:"not null;size:150" validate:"required,min=1,max=150"`
	DocumentType string     `json:"document_type" gorm:"size:60" validate:"max=60"`
	IssuedAt     *time.Time `json:"issued_at,omitempty" gorm:"type:date"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty" gorm:"type:date;index"`
	FileURL      string     `json:"file_url" gorm:"size:500" validate:"omitempty,url,max=500"`

	// Relationships
	Vessel Vessel `json:"vessel,omitempty" gorm:"foreignKey:VesselID;constraint:OnDelete:CASCADE"`
}

// StatusAt returns the expiration badge for the document as of the given day.
// Documents with no expiry are always valid.
func (d *VesselDocument) StatusAt(now time.Time) DocumentStatus {
	if d.ExpiresAt == nil {
		return DocumentStatusValid
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	expires := time.Date(d.ExpiresAt.Year(), d.ExpiresAt.Month(), d.ExpiresAt.Day(), 0, 0, 0, 0, time.UTC)
	daysLeft := int(expires.Sub(today).Hours() / 24)
	switch {
	case daysLeft < 0:
		return DocumentStatusExpired
	case daysLeft <= documentCriticalWindowDays:
		return DocumentStatusCritical
	case daysLeft <= documentWarningWindowDays:
		return DocumentStatusWarning
	}
	return DocumentStatusValid
}

// TableName returns the table name for VesselDocument
func (VesselDocument) TableName() string {
	return "vessel_documents"
}
