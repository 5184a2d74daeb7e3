package models

// Client represents a shipowner the fleet works for
type Client struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:150" validate:"required,min=1,max=150"`
	TaxID       string `json:"tax_id" gorm:"uniqueIndex;not null;size:30" validate:"required,max=30"`
	ContactName string `json:"contact_name" gorm:"size:100" validate:"max=100"`
	Email       string `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone       string `json:"phone" gorm:"size:20"`
	Address     string `json:"address" gorm:"size:200" validate:"max=200"`
	Active      bool   `json:"active" gorm:"default:true"`

	// Relationships
	Vessels []Vessel `json:"vessels,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName returns the table name for Client
func (Client) TableName() string {
	return "clients"
}
