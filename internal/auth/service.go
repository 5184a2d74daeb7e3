package auth

import (
	"errors"
	"fmt"
	"time"

	"fleet-operations-backend/internal/database/models"
	apperrors "fleet-operations-backend/internal/errors"
	"fleet-operations-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims represents the JWT token claims carried on every authenticated request
type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Login    string    `json:"login"`
	Email    string    `json:"email"`
	RoleName string    `json:"role_name,omitempty"`
	jwt.RegisteredClaims
}

// Service provides password authentication and JWT issuing
type Service struct {
	secret      []byte
	tokenTTL    time.Duration
	userRepo    *repository.UserRepository
	permissions *PermissionConfig
}

// NewService creates a new authentication service
func NewService(secret string, tokenTTL time.Duration, userRepo *repository.UserRepository, permissions *PermissionConfig) *Service {
	return &Service{
		secret:      []byte(secret),
		tokenTTL:    tokenTTL,
		userRepo:    userRepo,
		permissions: permissions,
	}
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"`
	Profile     UserProfile `json:"profile"`
}

// UserProfile is the identity payload returned alongside a token
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	Login     string    `json:"login"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	RoleName  string    `json:"role_name,omitempty"`
	RoleTitle string    `json:"role_title,omitempty"`
}

// Login verifies credentials and issues a signed token. Inactive accounts
// are rejected with the same status as bad credentials over HTTP.
func (s *Service) Login(login, password string) (*LoginResponse, error) {
	user, err := s.userRepo.GetByLogin(login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.Active {
		return nil, apperrors.ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
		Profile:     s.profileFor(user),
	}, nil
}

// GenerateJWT creates a signed token for the user
func (s *Service) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Login:  user.Login,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "fleet-operations-backend",
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	if user.Role != nil {
		claims.RoleName = user.Role.Name
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT parses and validates a token, returning its claims
func (s *Service) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// HasPermission reports whether the role named in the claims grants the
// permission, consulting the role's stored list first and the configured
// presets as fallback.
func (s *Service) HasPermission(claims *Claims, permission string) bool {
	if claims == nil || claims.RoleName == "" {
		return false
	}

	user, err := s.userRepo.GetByLogin(claims.Login)
	if err == nil && user.Role != nil && len(user.Role.Permissions) > 0 {
		return user.Role.HasPermission(permission)
	}

	if s.permissions != nil {
		return s.permissions.Grants(claims.RoleName, permission)
	}
	return false
}

// Me loads the current profile for the authenticated claims
func (s *Service) Me(claims *Claims) (*UserProfile, error) {
	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	profile := s.profileFor(user)
	return &profile, nil
}

func (s *Service) profileFor(user *models.User) UserProfile {
	profile := UserProfile{
		ID:       user.ID,
		Login:    user.Login,
		FullName: user.FullName(),
		Email:    user.Email,
	}
	if user.Role != nil {
		profile.RoleName = user.Role.Name
		profile.RoleTitle = user.Role.Title
	}
	return profile
}
