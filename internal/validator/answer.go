package validator

import (
	"fmt"
	"strings"

	"github.com/SAP-F-2025/curriculum-interview/internal/models"
)

const (
	msgInvalidOption  = "Selected option is not valid."
	msgSelectOption   = "Please select an option."
	msgSelectAtLeast1 = "Please select at least one option."
	msgShortResponse  = "Please provide a short response."
	msgSelectAtLeastN = "Please select at least %d option(s)."
)

// ValidateAnswer checks raw against the constraints of q and returns the
// normalized value. Rejections are *ValidationError with a message suitable
// for the interviewee.
func ValidateAnswer(q models.QuestionNode, raw any) (models.AnswerValue, error) {
	switch q.Type {
	case models.SingleChoice:
		return validateSingle(q, raw)
	case models.MultiChoice:
		return validateMulti(q, raw)
	case models.FreeText:
		return validateText(q, raw)
	default:
		return models.AnswerValue{}, fmt.Errorf("%w: %q", ErrUnsupportedQuestionType, q.Type)
	}
}

func validateSingle(q models.QuestionNode, raw any) (models.AnswerValue, error) {
	value, ok := raw.(string)
	if !ok || value == "" {
		return models.AnswerValue{}, answerError(msgSelectOption, raw)
	}
	if q.HasOptions() {
		if _, ok := q.Option(value); !ok {
			return models.AnswerValue{}, answerError(msgInvalidOption, raw)
		}
	}
	return models.TextAnswer(value), nil
}

func validateMulti(q models.QuestionNode, raw any) (models.AnswerValue, error) {
	seen := make(map[string]bool)
	selected := make([]string, 0)
	for _, value := range coerceList(raw) {
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		if q.HasOptions() {
			if _, ok := q.Option(value); !ok {
				continue
			}
		}
		selected = append(selected, value)
	}

	if q.Required && len(selected) == 0 {
		return models.AnswerValue{}, answerError(msgSelectAtLeast1, raw)
	}
	if q.MinSelections > 0 && len(selected) < q.MinSelections {
		return models.AnswerValue{}, answerError(fmt.Sprintf(msgSelectAtLeastN, q.MinSelections), raw)
	}
	if q.MaxSelections > 0 && len(selected) > q.MaxSelections {
		selected = selected[:q.MaxSelections]
	}
	return models.ListAnswer(selected), nil
}

func validateText(q models.QuestionNode, raw any) (models.AnswerValue, error) {
	value := strings.TrimSpace(coerceString(raw))
	if q.Required && value == "" {
		return models.AnswerValue{}, answerError(msgShortResponse, raw)
	}
	return models.TextAnswer(value), nil
}

// coerceList accepts a JSON-decoded array or a bare string. Anything else is
// treated as no selection.
func coerceList(raw any) []string {
	switch v := raw.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			out = append(out, coerceString(item))
		}
		return out
	default:
		return nil
	}
}

func coerceString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, coerceString(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
