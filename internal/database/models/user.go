package models

import (
	"github.com/google/uuid"
)

// User represents an application user (crew or office staff)
type User struct {
	BaseModel
	RoleID       *uuid.UUID `json:"role_id,omitempty" gorm:"type:uuid;index"`
	Login        string     `json:"login" gorm:"uniqueIndex;not null;size:40" validate:"required,min=3,max=40"`
	FirstName    string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Mobile       string     `json:"mobile" gorm:"size:20"`
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	Active       bool       `json:"active" gorm:"default:true"`

	// Relationships
	Role      *Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Schedules []Schedule `json:"schedules,omitempty" gorm:"foreignKey:UserID"`
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
