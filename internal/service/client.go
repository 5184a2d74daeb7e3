package service

import (
	"errors"
	"fmt"

	"fleet-operations-backend/internal/database/models"
	apperrors "fleet-operations-backend/internal/errors"
	"fleet-operations-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientService handles business logic for clients
type ClientService struct {
	repo      *repository.ClientRepository
	validator *validator.Validate
}

// NewClientService creates a new client service
func NewClientService(repo *repository.ClientRepository, validator *validator.Validate) *ClientService {
	return &ClientService{repo: repo, validator: validator}
}

// CreateClientRequest represents the request to create a client
type CreateClientRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=150"`
	TaxID       string `json:"tax_id" validate:"required,max=30"`
	ContactName string `json:"contact_name" validate:"max=100"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
	Phone       string `json:"phone" validate:"max=20"`
	Address     string `json:"address" validate:"max=200"`
}

// UpdateClientRequest represents the request to update a client
type UpdateClientRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	ContactName *string `json:"contact_name,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=200"`
	Active      *bool   `json:"active,omitempty"`
}

// ClientResponse represents the response for client operations
type ClientResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	TaxID       string           `json:"tax_id"`
	ContactName string           `json:"contact_name,omitempty"`
	Email       string           `json:"email,omitempty"`
	Phone       string           `json:"phone,omitempty"`
	Address     string           `json:"address,omitempty"`
	Active      bool             `json:"active"`
	Vessels     []VesselResponse `json:"vessels,omitempty"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// ClientListResponse represents a paginated list of clients
type ClientListResponse struct {
	Clients  []ClientResponse `json:"clients"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new client
func (s *ClientService) Create(req *CreateClientRequest) (*ClientResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByTaxID(req.TaxID); err == nil {
		return nil, apperrors.ErrClientExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing client: %w", err)
	}

	client := &models.Client{
		Name:        req.Name,
		TaxID:       req.TaxID,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Active:      true,
	}
	if err := s.repo.Create(client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return s.toResponse(client), nil
}

// GetByID retrieves a client with its vessels
func (s *ClientService) GetByID(id uuid.UUID) (*ClientResponse, error) {
	client, err := s.repo.GetWithVessels(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return s.toResponse(client), nil
}

// List retrieves clients with pagination and optional search
func (s *ClientService) List(query string, page, pageSize int) (*ClientListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	clients, total, err := s.repo.List(query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = *s.toResponse(&clients[i])
	}

	return &ClientListResponse{Clients: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update applies a partial update to a client. Tax id is immutable.
func (s *ClientService) Update(id uuid.UUID, req *UpdateClientRequest) (*ClientResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	client, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.ContactName != nil {
		client.ContactName = *req.ContactName
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Active != nil {
		client.Active = *req.Active
	}

	if err := s.repo.Update(client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return s.toResponse(client), nil
}

// Delete deletes a client; its vessels cascade
func (s *ClientService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClientNotFound
		}
		return fmt.Errorf("failed to get client: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func (s *ClientService) toResponse(client *models.Client) *ClientResponse {
	response := &ClientResponse{
		ID:          client.ID,
		Name:        client.Name,
		TaxID:       client.TaxID,
		ContactName: client.ContactName,
		Email:       client.Email,
		Phone:       client.Phone,
		Address:     client.Address,
		Active:      client.Active,
		CreatedAt:   client.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   client.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for i := range client.Vessels {
		response.Vessels = append(response.Vessels, *vesselToResponse(&client.Vessels[i]))
	}
	return response
}
