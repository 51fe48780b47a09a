package validator

import (
	"testing"

	"github.com/SAP-F-2025/curriculum-interview/internal/catalog"
	"github.com/SAP-F-2025/curriculum-interview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogNodesPassStructValidation(t *testing.T) {
	v := New()
	for _, q := range catalog.All() {
		assert.NoError(t, v.ValidateStruct(q), "question %s", q.ID)
	}
}

func TestValidate_QuestionNodeRules(t *testing.T) {
	v := New()

	options := []models.QuestionOption{{Value: "a", Label: "A"}}
	err := v.Validate(models.QuestionNode{ID: "x", Title: "X", Prompt: "p", Type: "slider", Options: options})
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "type", errs[0].Field)
	assert.Equal(t, "question_type", errs[0].Rule)

	err = v.Validate(models.QuestionNode{ID: "x", Title: "X", Prompt: "p", Type: models.SingleChoice})
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "options", errs[0].Field)

	assert.NoError(t, v.Validate(models.QuestionNode{ID: "x", Title: "X", Prompt: "p", Type: models.FreeText}))
}

type navigationPayload struct {
	QuestionID string `json:"questionId" validate:"required,question_id"`
	Direction  string `json:"direction" validate:"direction"`
}

func TestValidate_CustomTags(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(navigationPayload{QuestionID: "consent"}))
	assert.NoError(t, v.Validate(navigationPayload{QuestionID: "consent", Direction: "back"}))

	err := v.Validate(navigationPayload{QuestionID: "favorite_color", Direction: "sideways"})
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 2)
	assert.Equal(t, "questionId", errs[0].Field)
	assert.Equal(t, "must be a known interview question", errs[0].Message)
	assert.Equal(t, "direction", errs[1].Field)
	assert.Equal(t, "must be empty or back", errs[1].Message)
}
