package models

// Equipment represents a billable equipment item with its tariff
type Equipment struct {
	BaseModel
	Name           string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Category       string `json:"category" gorm:"size:60" validate:"max=60"`
	Description    string `json:"description" gorm:"size:200" validate:"max=200"`
	TariffAmount   int64  `json:"tariff_amount" gorm:"not null;default:0" validate:"min=0"` // minor currency units
	TariffCurrency string `json:"tariff_currency" gorm:"size:3;default:'USD'" validate:"omitempty,len=3"`
	Unit           string `json:"unit" gorm:"size:20;default:'hour'" validate:"max=20"`
	Active         bool   `json:"active" gorm:"default:true"`
}

// TableName returns the table name for Equipment
func (Equipment) TableName() string {
	return "equipment"
}
