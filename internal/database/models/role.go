package models

// Role represents an access role with a fixed category and a permission list
type Role struct {
	BaseModel
	Name        string       `json:"name" gorm:"uniqueIndex;not null;size:40" validate:"required,min=1,max=40"`
	Title       string       `json:"title" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string       `json:"description" gorm:"size:200" validate:"max=200"`
	Category    RoleCategory `json:"category" gorm:"type:varchar(50);not null" validate:"required"`
	Permissions []string     `json:"permissions" gorm:"type:jsonb;serializer:json"`
	Users       []User       `json:"users,omitempty" gorm:"foreignKey:RoleID"`
}

// roleCategoryByName maps well-known role names to their category.
// Replaces runtime string matching against free-text role names.
var roleCategoryByName = map[string]RoleCategory{
	"admin":      RoleCategoryAdministration,
	"manager":    RoleCategoryAdministration,
	"operator":   RoleCategoryOperations,
	"dispatcher": RoleCategoryOperations,
	"inspector":  RoleCategoryInspection,
	"surveyor":   RoleCategoryInspection,
	"shipowner":  RoleCategoryClientAccess,
}

// CategoryForName returns the category for a well-known role name.
func CategoryForName(name string) (RoleCategory, bool) {
	c, ok := roleCategoryByName[name]
	return c, ok
}

// HasPermission reports whether the role grants the given permission
func (r *Role) HasPermission(permission string) bool {
	for _, p := range r.Permissions {
		if p == permission || p == "*" {
			return true
		}
	}
	return false
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}
