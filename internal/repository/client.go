package repository

import (
	"fleet-operations-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientRepository handles database operations for clients (shipowners)
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create creates a new client
func (r *ClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByTaxID retrieves a client by its unique tax id
func (r *ClientRepository) GetByTaxID(taxID string) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "tax_id = ?", taxID).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetWithVessels retrieves a client with its vessels preloaded
func (r *ClientRepository) GetWithVessels(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.Preload("Vessels").First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// List retrieves clients with pagination, optionally filtered by a search query
func (r *ClientRepository) List(query string, limit, offset int) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	q := r.db.Model(&models.Client{})
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("name ILIKE ? OR tax_id ILIKE ?", pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&clients).Error
	return clients, total, err
}

// Update updates a client
func (r *ClientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

// Delete deletes a client
func (r *ClientRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Client{}, "id = ?", id).Error
}
