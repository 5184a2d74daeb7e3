package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this tax id"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrRoleNotFound            = &NotFoundError{Entity: "role"}
	ErrClientNotFound          = &NotFoundError{Entity: "client"}
	ErrVesselNotFound          = &NotFoundError{Entity: "vessel"}
	ErrVesselDocumentNotFound  = &NotFoundError{Entity: "vessel document"}
	ErrEquipmentNotFound       = &NotFoundError{Entity: "equipment"}
	ErrMaintenancePlanNotFound = &NotFoundError{Entity: "maintenance plan"}
	ErrManeuverNotFound        = &NotFoundError{Entity: "maneuver"}
	ErrScheduleNotFound        = &NotFoundError{Entity: "schedule"}
	ErrWorkDayNotFound         = &NotFoundError{Entity: "work day"}
	ErrNoveltyNotFound         = &NotFoundError{Entity: "novelty"}
)

// Already Exists Errors
var (
	ErrUserExists     = &AlreadyExistsError{Entity: "user", Context: "with this login or email"}
	ErrRoleExists     = &AlreadyExistsError{Entity: "role", Context: "with this name"}
	ErrClientExists   = &AlreadyExistsError{Entity: "client", Context: "with this tax id"}
	ErrVesselExists   = &AlreadyExistsError{Entity: "vessel", Context: "with this registration number"}
	ErrScheduleExists = &AlreadyExistsError{Entity: "schedule", Context: "for this user and start date"}
)

// Business Logic Errors
var (
	ErrInvalidCycleBounds       = errors.New("invalid cycle: working days must be 1-31 and rest days 0-31")
	ErrInvalidNoveltyType       = errors.New("invalid novelty type")
	ErrInvalidVesselType        = errors.New("invalid vessel type")
	ErrInvalidPeriodicity       = errors.New("invalid maintenance periodicity")
	ErrInvalidManeuverType      = errors.New("invalid maneuver type")
	ErrInvalidManeuverStatus    = errors.New("invalid maneuver status")
	ErrManeuverStatusTransition = errors.New("maneuver status transition not allowed")
	ErrManeuverTimeRange        = errors.New("scheduled end must be after scheduled start")
	ErrInvalidPaginationParams  = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid login or password"}
	ErrUserInactive       = &AuthenticationError{Message: "user account is inactive"}
	ErrMissingClaims      = &AuthenticationError{Message: "user claims not found in context"}
	ErrPermissionDenied   = &AuthorizationError{Message: "permission denied"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
