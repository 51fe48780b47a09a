package validator

import (
	"testing"

	"github.com/SAP-F-2025/curriculum-interview/internal/catalog"
	"github.com/SAP-F-2025/curriculum-interview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abcQuestion() models.QuestionNode {
	return models.QuestionNode{
		ID:     "letters",
		Title:  "Letters",
		Prompt: "Pick letters",
		Type:   models.MultiChoice,
		Options: []models.QuestionOption{
			{Value: "a", Label: "A"},
			{Value: "b", Label: "B"},
			{Value: "c", Label: "C"},
		},
	}
}

func requireMessage(t *testing.T, err error, message string) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "answer", verr.Field)
	assert.Equal(t, message, verr.Message)
}

func TestValidateAnswer_SingleChoice(t *testing.T) {
	q := catalog.MustLookup(models.QuestionCodingHistory)

	value, err := ValidateAnswer(q, "dabbling")
	require.NoError(t, err)
	assert.Equal(t, models.TextAnswer("dabbling"), value)

	_, err = ValidateAnswer(q, "expert")
	requireMessage(t, err, "Selected option is not valid.")

	for _, raw := range []any{"", nil, 3.0, []any{"none"}} {
		_, err = ValidateAnswer(q, raw)
		requireMessage(t, err, "Please select an option.")
	}
}

func TestValidateAnswer_SingleChoiceWithoutOptions(t *testing.T) {
	q := models.QuestionNode{ID: "free", Type: models.SingleChoice}

	value, err := ValidateAnswer(q, "anything")
	require.NoError(t, err)
	assert.Equal(t, "anything", value.Text())
}

func TestValidateAnswer_MultiTruncatesToMax(t *testing.T) {
	q := abcQuestion()
	q.MaxSelections = 2

	value, err := ValidateAnswer(q, []any{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, value.Values())
}

func TestValidateAnswer_MultiBelowMinimum(t *testing.T) {
	q := abcQuestion()
	q.Required = true
	q.MinSelections = 1

	_, err := ValidateAnswer(q, []any{})
	requireMessage(t, err, "Please select at least one option.")

	q.Required = false
	q.MinSelections = 2
	_, err = ValidateAnswer(q, []any{"a"})
	requireMessage(t, err, "Please select at least 2 option(s).")
}

func TestValidateAnswer_MultiNormalizes(t *testing.T) {
	q := abcQuestion()

	value, err := ValidateAnswer(q, []any{"c", "x", "a", "c", nil})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, value.Values())
	assert.True(t, value.IsList())

	value, err = ValidateAnswer(q, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, value.Values())

	value, err = ValidateAnswer(q, 42.0)
	require.NoError(t, err)
	assert.True(t, value.IsList())
	assert.Empty(t, value.Values())
}

func TestValidateAnswer_CatalogMultiMinimum(t *testing.T) {
	q := catalog.MustLookup(models.QuestionBuildTopics)

	_, err := ValidateAnswer(q, []any{"unknown"})
	requireMessage(t, err, "Please select at least 1 option(s).")

	value, err := ValidateAnswer(q, []any{"games", "music"})
	require.NoError(t, err)
	assert.Equal(t, []string{"games", "music"}, value.Values())
}

func TestValidateAnswer_FreeText(t *testing.T) {
	q := catalog.MustLookup(models.QuestionAIExcites)

	value, err := ValidateAnswer(q, "  agents everywhere \n")
	require.NoError(t, err)
	assert.Equal(t, models.TextAnswer("agents everywhere"), value)

	_, err = ValidateAnswer(q, "   ")
	requireMessage(t, err, "Please provide a short response.")

	_, err = ValidateAnswer(q, nil)
	requireMessage(t, err, "Please provide a short response.")

	value, err = ValidateAnswer(q, 12.0)
	require.NoError(t, err)
	assert.Equal(t, "12", value.Text())
}

func TestValidateAnswer_OptionalFreeTextAcceptsEmpty(t *testing.T) {
	q := models.QuestionNode{ID: "notes", Type: models.FreeText}

	value, err := ValidateAnswer(q, "")
	require.NoError(t, err)
	assert.Equal(t, "", value.Text())
}

func TestValidateAnswer_UnsupportedType(t *testing.T) {
	q := models.QuestionNode{ID: "weird", Type: "slider"}

	_, err := ValidateAnswer(q, "1")
	require.ErrorIs(t, err, ErrUnsupportedQuestionType)

	var verr *ValidationError
	assert.NotErrorAs(t, err, &verr)
}
