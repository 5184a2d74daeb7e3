package service

import (
	"errors"
	"fmt"

	"fleet-operations-backend/internal/database/models"
	apperrors "fleet-operations-backend/internal/errors"
	"fleet-operations-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo      *repository.UserRepository
	roleRepo  *repository.RoleRepository
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo *repository.UserRepository, roleRepo *repository.RoleRepository, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, roleRepo: roleRepo, validator: validator}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Login     string     `json:"login" validate:"required,min=3,max=40"`
	FirstName string     `json:"first_name" validate:"required,max=100"`
	LastName  string     `json:"last_name" validate:"required,max=100"`
	Email     string     `json:"email" validate:"required,email,max=255"`
	Mobile    string     `json:"mobile" validate:"max=20"`
	Password  string     `json:"password" validate:"required,min=8,max=72"`
	RoleID    *uuid.UUID `json:"role_id,omitempty"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	FirstName *string    `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string    `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email     *string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Mobile    *string    `json:"mobile,omitempty" validate:"omitempty,max=20"`
	Password  *string    `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	RoleID    *uuid.UUID `json:"role_id,omitempty"`
	Active    *bool      `json:"active,omitempty"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Login     string     `json:"login"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Mobile    string     `json:"mobile,omitempty"`
	Active    bool       `json:"active"`
	RoleID    *uuid.UUID `json:"role_id,omitempty"`
	RoleName  string     `json:"role_name,omitempty"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new user with a bcrypt-hashed password
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByLogin(req.Login); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing login: %w", err)
	}
	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	if req.RoleID != nil {
		if _, err := s.roleRepo.GetByID(*req.RoleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRoleNotFound
			}
			return nil, fmt.Errorf("failed to verify role: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		RoleID:       req.RoleID,
		Login:        req.Login,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Mobile:       req.Mobile,
		PasswordHash: string(hash),
		Active:       true,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return s.toResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return s.toResponse(user), nil
}

// List retrieves users with pagination and optional search
func (s *UserService) List(query string, page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	users, total, err := s.repo.List(query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *s.toResponse(&users[i])
	}

	return &UserListResponse{Users: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update applies a partial update to a user
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.repo.GetByEmail(*req.Email); err == nil {
			return nil, apperrors.ErrUserExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing email: %w", err)
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Mobile != nil {
		user.Mobile = *req.Mobile
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.RoleID != nil {
		if _, err := s.roleRepo.GetByID(*req.RoleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRoleNotFound
			}
			return nil, fmt.Errorf("failed to verify role: %w", err)
		}
		user.RoleID = req.RoleID
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.toResponse(user), nil
}

// Delete deletes a user
func (s *UserService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// toResponse converts a user model to response
func (s *UserService) toResponse(user *models.User) *UserResponse {
	response := &UserResponse{
		ID:        user.ID,
		Login:     user.Login,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		Email:     user.Email,
		Mobile:    user.Mobile,
		Active:    user.Active,
		RoleID:    user.RoleID,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if user.Role != nil {
		response.RoleName = user.Role.Name
	}
	return response
}
