package validator

import (
	"reflect"
	"strings"

	"github.com/SAP-F-2025/curriculum-interview/internal/catalog"
	"github.com/SAP-F-2025/curriculum-interview/internal/models"
	"github.com/go-playground/validator/v10"
)

// DirectionBack asks for the previously answered question.
const DirectionBack = "back"

// Validator combines struct-tag validation of request payloads with the
// answer rules of the interview catalog.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()

	// Register all custom validators once
	registerCustomValidators(structValidator)

	return &Validator{structValidator: structValidator}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Validate validates struct tags and converts failures to ValidationErrors.
func (v *Validator) Validate(s interface{}) error {
	if err := v.ValidateStruct(s); err != nil {
		if errs := ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// Answer validates a raw submitted value against question q.
func (v *Validator) Answer(q models.QuestionNode, raw any) (models.AnswerValue, error) {
	return ValidateAnswer(q, raw)
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("question_type", validateQuestionType)
	validate.RegisterValidation("question_id", validateQuestionID)
	validate.RegisterValidation("direction", validateDirection)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateQuestionType(fl validator.FieldLevel) bool {
	switch models.QuestionType(fl.Field().String()) {
	case models.SingleChoice, models.MultiChoice, models.FreeText:
		return true
	}
	return false
}

func validateQuestionID(fl validator.FieldLevel) bool {
	return catalog.Contains(models.QuestionID(fl.Field().String()))
}

func validateDirection(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || value == DirectionBack
}
