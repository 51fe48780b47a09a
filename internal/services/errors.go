package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/curriculum-interview/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrConflict         = errors.New("resource conflict")

	// Interview specific errors
	ErrSessionNotFound    = fmt.Errorf("session %w", ErrNotFound)
	ErrQuestionNotFound   = fmt.Errorf("question %w", ErrNotFound)
	ErrSessionCompleted   = fmt.Errorf("interview already completed: %w", ErrConflict)
	ErrStateConflict      = fmt.Errorf("answer recorded but question not completed: %w", ErrConflict)
	ErrConsentRequired    = errors.New("consent_required")
	ErrNoPreviousQuestion = errors.New("no previous question to revisit")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) || errors.Is(err, ErrNoPreviousQuestion) {
		return true
	}
	_, ok := apperrors.UserMessage(err)
	return ok
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsConsentRequired(err error) bool {
	return errors.Is(err, ErrConsentRequired)
}
