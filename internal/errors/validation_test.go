package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("test_field", "test message", "test_value")

	assert.Equal(t, "test_field", err.Field)
	assert.Equal(t, "test message", err.Message)
	assert.Equal(t, "test_value", err.Value)
	assert.Equal(t, "validation error on field 'test_field': test message", err.Error())
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "validation failed", errs.Error())

	errs = append(errs, *NewValidationError("field1", "message1", nil))
	assert.Equal(t, "validation failed: field1 message1", errs.Error())

	errs = append(errs, *NewValidationError("field2", "message2", nil))
	assert.Equal(t, "validation failed: 2 field errors", errs.Error())
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("test_field", "test message", "required", "test_value")

	assert.Equal(t, "required", err.Rule)
	assert.Equal(t, "test_field", err.Field)
}

func TestUserMessage(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", NewValidationError("answer", "Please select an option.", nil))
	msg, ok := UserMessage(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "Please select an option.", msg)

	msg, ok = UserMessage(ValidationErrors{{Field: "direction", Message: "must be empty or back"}})
	assert.True(t, ok)
	assert.Equal(t, "direction must be empty or back", msg)

	_, ok = UserMessage(fmt.Errorf("boom"))
	assert.False(t, ok)
}
