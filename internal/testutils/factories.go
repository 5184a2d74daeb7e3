package testutils

import (
	"time"

	"fleet-operations-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique login
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	login := "user-" + id.String()[:8]
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Login:        login,
		FirstName:    "Ana",
		LastName:     "Castro",
		Email:        login + "@test.com",
		Mobile:       "+57-300-5550100",
		PasswordHash: string(hash),
		Active:       true,
	}
}

// WithLogin sets a custom login and matching email
func (f *UserFactory) WithLogin(login string) *models.User {
	user := f.Create()
	user.Login = login
	user.Email = login + "@test.com"
	return user
}

// WithRole attaches a role id
func (f *UserFactory) WithRole(roleID uuid.UUID) *models.User {
	user := f.Create()
	user.RoleID = &roleID
	return user
}

// RoleFactory provides methods to create test Role data
type RoleFactory struct{}

// NewRoleFactory creates a new RoleFactory
func NewRoleFactory() *RoleFactory {
	return &RoleFactory{}
}

// Create creates a test Role with default values
func (f *RoleFactory) Create() *models.Role {
	id := uuid.New()
	return &models.Role{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "role-" + id.String()[:8],
		Title:       "Test Role",
		Category:    models.RoleCategoryOperations,
		Permissions: []string{"schedules:write"},
	}
}

// Admin creates an administration role granting everything
func (f *RoleFactory) Admin() *models.Role {
	role := f.Create()
	role.Name = "admin-" + role.ID.String()[:8]
	role.Title = "Administrator"
	role.Category = models.RoleCategoryAdministration
	role.Permissions = []string{"*"}
	return role
}

// ClientFactory provides methods to create test Client data
type ClientFactory struct{}

// NewClientFactory creates a new ClientFactory
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// Create creates a test Client with a unique tax id
func (f *ClientFactory) Create() *models.Client {
	id := uuid.New()
	return &models.Client{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Naviera del Caribe",
		TaxID:       "TAX-" + id.String()[:8],
		ContactName: "Carlos Mendoza",
		Email:       "operaciones@test.com",
		Active:      true,
	}
}

// VesselFactory provides methods to create test Vessel data
type VesselFactory struct{}

// NewVesselFactory creates a new VesselFactory
func NewVesselFactory() *VesselFactory {
	return &VesselFactory{}
}

// Create creates a test Vessel owned by the given client
func (f *VesselFactory) Create(clientID uuid.UUID) *models.Vessel {
	id := uuid.New()
	return &models.Vessel{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClientID:           clientID,
		Name:               "MV Test",
		RegistrationNumber: "REG-" + id.String()[:8],
		Flag:               "Panama",
		VesselType:         models.VesselTypeTug,
		LengthM:            32.5,
		BeamM:              10.2,
		DraftM:             4.8,
		GrossTonnage:       420,
		Active:             true,
	}
}

// ScheduleFactory provides methods to create test Schedule data
type ScheduleFactory struct{}

// NewScheduleFactory creates a new ScheduleFactory
func NewScheduleFactory() *ScheduleFactory {
	return &ScheduleFactory{}
}

// Create creates a test Schedule for the given user with a 4x3 cycle
func (f *ScheduleFactory) Create(userID uuid.UUID) *models.Schedule {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	s := &models.Schedule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:      userID,
		StartDate:   start,
		WorkingDays: 4,
		RestDays:    3,
	}
	for i := 0; i < 4; i++ {
		s.WorkDays = append(s.WorkDays, models.WorkDay{
			Date:      start.AddDate(0, 0, i),
			StartTime: "08:00",
			EndTime:   "17:00",
		})
	}
	return s
}
