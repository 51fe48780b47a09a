package validator

import (
	"errors"

	apperrors "github.com/SAP-F-2025/curriculum-interview/internal/errors"
)

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// ErrUnsupportedQuestionType is an internal fault: the catalog declared a
// type the validator does not know.
var ErrUnsupportedQuestionType = errors.New("unsupported question type")

// ToValidationErrors converts validator.ValidationErrors to our custom type
func ToValidationErrors(err error) ValidationErrors {
	return apperrors.ToValidationErrors(err)
}

func answerError(message string, value any) *ValidationError {
	return apperrors.NewValidationError("answer", message, value)
}
