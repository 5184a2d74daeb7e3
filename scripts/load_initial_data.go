package main

import (
	"fleet-operations-backend/internal/config"
	"fleet-operations-backend/internal/database"
	"fleet-operations-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type RoleData struct {
	Name        string   `yaml:"name"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Permissions []string `yaml:"permissions,omitempty"`
}

type UserData struct {
	Login     string `yaml:"login"`
	RoleName  string `yaml:"role_name,omitempty"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Mobile    string `yaml:"mobile,omitempty"`
	Password  string `yaml:"password"`
	Active    bool   `yaml:"active"`
}

type ClientData struct {
	Name        string `yaml:"name"`
	TaxID       string `yaml:"tax_id"`
	ContactName string `yaml:"contact_name,omitempty"`
	Email       string `yaml:"email,omitempty"`
	Phone       string `yaml:"phone,omitempty"`
	Address     string `yaml:"address,omitempty"`
	Active      bool   `yaml:"active"`
}

type VesselData struct {
	Name               string  `yaml:"name"`
	ClientTaxID        string  `yaml:"client_tax_id"`
	RegistrationNumber string  `yaml:"registration_number"`
	Flag               string  `yaml:"flag,omitempty"`
	VesselType         string  `yaml:"vessel_type"`
	LengthM            float64 `yaml:"length_m,omitempty"`
	BeamM              float64 `yaml:"beam_m,omitempty"`
	DraftM             float64 `yaml:"draft_m,omitempty"`
	GrossTonnage       float64 `yaml:"gross_tonnage,omitempty"`
	Active             bool    `yaml:"active"`
}

// File structures
type RolesFile struct {
	Roles []RoleData `yaml:"roles"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ClientsFile struct {
	Clients []ClientData `yaml:"clients"`
}

type VesselsFile struct {
	Vessels []VesselData `yaml:"vessels"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	roles, err := loadRoles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	clients, err := loadClients(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}

	vessels, err := loadVessels(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load vessels: %w", err)
	}

	// Create roles first; users reference them by name
	roleMap := make(map[string]*models.Role)
	roleCreated := 0
	for _, roleData := range roles {
		role, created, err := createRole(db, roleData)
		if err != nil {
			return fmt.Errorf("failed to create role %s: %w", roleData.Name, err)
		}
		roleMap[roleData.Name] = role
		if created {
			roleCreated++
		}
	}
	log.Printf("Roles: %d created, %d total", roleCreated, len(roles))

	userCreated := 0
	for _, userData := range users {
		_, created, err := createUser(db, userData, roleMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Login, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	// Create clients; vessels reference them by tax id
	clientMap := make(map[string]*models.Client)
	clientCreated := 0
	for _, clientData := range clients {
		client, created, err := createClient(db, clientData)
		if err != nil {
			return fmt.Errorf("failed to create client %s: %w", clientData.Name, err)
		}
		clientMap[clientData.TaxID] = client
		if created {
			clientCreated++
		}
	}
	log.Printf("Clients: %d created, %d total", clientCreated, len(clients))

	vesselCreated := 0
	for _, vesselData := range vessels {
		_, created, err := createVessel(db, vesselData, clientMap)
		if err != nil {
			log.Printf("Warning: failed to create vessel %s: %v", vesselData.Name, err)
			continue
		}
		if created {
			vesselCreated++
		}
	}
	log.Printf("Vessels: %d created, %d total", vesselCreated, len(vessels))

	return nil
}

func loadRoles(dataDir string) ([]RoleData, error) {
	var allRoles []RoleData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "roles") {
			var file RolesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allRoles = append(allRoles, file.Roles...)
		}
		return nil
	})

	return allRoles, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadClients(dataDir string) ([]ClientData, error) {
	var allClients []ClientData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "clients") {
			var file ClientsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allClients = append(allClients, file.Clients...)
		}
		return nil
	})

	return allClients, err
}

func loadVessels(dataDir string) ([]VesselData, error) {
	var allVessels []VesselData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "vessels") {
			var file VesselsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allVessels = append(allVessels, file.Vessels...)
		}
		return nil
	})

	return allVessels, err
}

func createRole(db *gorm.DB, roleData RoleData) (*models.Role, bool, error) {
	var role models.Role
	if err := db.Where("name = ?", roleData.Name).First(&role).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			category := models.RoleCategory(roleData.Category)
			if !category.IsValid() {
				if c, ok := models.CategoryForName(roleData.Name); ok {
					category = c
				} else {
					category = models.RoleCategoryOperations
				}
			}

			role = models.Role{
				Name:        roleData.Name,
				Title:       roleData.Title,
				Description: roleData.Description,
				Category:    category,
				Permissions: roleData.Permissions,
			}

			if err := db.Create(&role).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create role: %w", err)
			}
			return &role, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query role: %w", err)
		}
	}

	return &role, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData, roleMap map[string]*models.Role) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("login = ?", userData.Login).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			user = models.User{
				Login:        userData.Login,
				FirstName:    userData.FirstName,
				LastName:     userData.LastName,
				Email:        userData.Email,
				Mobile:       userData.Mobile,
				PasswordHash: string(hash),
				Active:       userData.Active,
			}
			if role := roleMap[userData.RoleName]; role != nil {
				user.RoleID = &role.ID
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createClient(db *gorm.DB, clientData ClientData) (*models.Client, bool, error) {
	var client models.Client
	if err := db.Where("tax_id = ?", clientData.TaxID).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			client = models.Client{
				Name:        clientData.Name,
				TaxID:       clientData.TaxID,
				ContactName: clientData.ContactName,
				Email:       clientData.Email,
				Phone:       clientData.Phone,
				Address:     clientData.Address,
				Active:      clientData.Active,
			}

			if err := db.Create(&client).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create client: %w", err)
			}
			return &client, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query client: %w", err)
		}
	}

	return &client, false, nil // created = false (existing)
}

func createVessel(db *gorm.DB, vesselData VesselData, clientMap map[string]*models.Client) (*models.Vessel, bool, error) {
	client := clientMap[vesselData.ClientTaxID]
	if client == nil {
		return nil, false, fmt.Errorf("client %s not found for vessel %s", vesselData.ClientTaxID, vesselData.Name)
	}

	var vessel models.Vessel
	if err := db.Where("registration_number = ?", vesselData.RegistrationNumber).First(&vessel).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			vesselType := models.VesselType(vesselData.VesselType)
			if !vesselType.IsValid() {
				return nil, false, fmt.Errorf("unknown vessel type %s", vesselData.VesselType)
			}

			vessel = models.Vessel{
				ClientID:           client.ID,
				Name:               vesselData.Name,
				RegistrationNumber: vesselData.RegistrationNumber,
				Flag:               vesselData.Flag,
				VesselType:         vesselType,
				LengthM:            vesselData.LengthM,
				BeamM:              vesselData.BeamM,
				DraftM:             vesselData.DraftM,
				GrossTonnage:       vesselData.GrossTonnage,
				Active:             vesselData.Active,
			}

			if err := db.Create(&vessel).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create vessel: %w", err)
			}
			return &vessel, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query vessel: %w", err)
		}
	}

	return &vessel, false, nil // created = false (existing)
}
