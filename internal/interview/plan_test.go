package interview

import (
	"testing"

	"github.com/SAP-F-2025/curriculum-interview/internal/catalog"
	"github.com/SAP-F-2025/curriculum-interview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) models.AnswerValue { return models.TextAnswer(s) }

func list(values ...string) models.AnswerValue { return models.ListAnswer(values) }

func fullAnswers() models.AnswerMap {
	return models.AnswerMap{
		models.QuestionConsent:          text("yes"),
		models.QuestionCodingHistory:    text("confident"),
		models.QuestionCodingLanguages:  list("python", "sql"),
		models.QuestionResearchTools:    list("youtube"),
		models.QuestionAIExcites:        text("Agents that write code"),
		models.QuestionAIRole:           text("coworker"),
		models.QuestionAIRoleReason:     text("I pair with copilots daily"),
		models.QuestionBuildTopics:      list("games", "music"),
		models.QuestionAutomationTarget: text("Sorting my inbox"),
		models.QuestionLearningStyle:    list("hands_on"),
		models.QuestionLessonStructure:  text("hybrid"),
		models.QuestionWeeklyTime:       text("8_12"),
		models.QuestionSuccessCriteria:  text("Ship a working agent"),
	}
}

func TestComputePlan_Empty(t *testing.T) {
	plan := ComputePlan(models.AnswerMap{})

	require.NotNil(t, plan.NextQuestionID)
	assert.Equal(t, models.QuestionConsent, *plan.NextQuestionID)
	assert.Empty(t, plan.CompletedQuestionIDs)
	assert.Equal(t, []models.QuestionID{models.QuestionConsent}, plan.RemainingQuestionIDs)
}

func TestComputePlan_ConsentDeclined(t *testing.T) {
	answers := models.AnswerMap{
		models.QuestionConsent:       text("no"),
		models.QuestionCodingHistory: text("none"),
	}

	plan := ComputePlan(answers)

	assert.Equal(t, []models.QuestionID{models.QuestionConsent}, plan.CompletedQuestionIDs)
	assert.Nil(t, plan.NextQuestionID)
	assert.Empty(t, plan.RemainingQuestionIDs)
	assert.NotContains(t, plan.Answers, models.QuestionCodingHistory)
}

func TestComputePlan_ConsentGranted(t *testing.T) {
	plan := ComputePlan(models.AnswerMap{models.QuestionConsent: text("yes")})

	require.NotNil(t, plan.NextQuestionID)
	assert.Equal(t, models.QuestionCodingHistory, *plan.NextQuestionID)
	assert.NotContains(t, plan.RemainingQuestionIDs, models.QuestionCodingLanguages)
	assert.NotContains(t, plan.RemainingQuestionIDs, models.QuestionAIRoleReason)
	assert.Len(t, plan.RemainingQuestionIDs, 10)
}

func TestComputePlan_CodingLanguagesGate(t *testing.T) {
	tests := []struct {
		history  string
		eligible bool
	}{
		{"none", false},
		{"dabbling", true},
		{"confident", true},
	}

	for _, tt := range tests {
		t.Run(tt.history, func(t *testing.T) {
			plan := ComputePlan(models.AnswerMap{
				models.QuestionConsent:       text("yes"),
				models.QuestionCodingHistory: text(tt.history),
			})
			require.NotNil(t, plan.NextQuestionID)
			if tt.eligible {
				assert.Equal(t, models.QuestionCodingLanguages, *plan.NextQuestionID)
			} else {
				assert.Equal(t, models.QuestionResearchTools, *plan.NextQuestionID)
				assert.NotContains(t, plan.RemainingQuestionIDs, models.QuestionCodingLanguages)
			}
		})
	}
}

func TestComputePlan_StaleBranchAnswerIsDropped(t *testing.T) {
	answers := fullAnswers()
	answers[models.QuestionCodingHistory] = text("none")

	plan := ComputePlan(answers)

	assert.NotContains(t, plan.Answers, models.QuestionCodingLanguages)
	assert.NotContains(t, plan.CompletedQuestionIDs, models.QuestionCodingLanguages)
	assert.Nil(t, plan.NextQuestionID)
}

func TestComputePlan_RoleReasonGate(t *testing.T) {
	answers := fullAnswers()
	delete(answers, models.QuestionAIRole)
	delete(answers, models.QuestionAIRoleReason)

	plan := ComputePlan(answers)
	require.NotNil(t, plan.NextQuestionID)
	assert.Equal(t, models.QuestionAIRole, *plan.NextQuestionID)
	assert.NotContains(t, plan.RemainingQuestionIDs, models.QuestionAIRoleReason)

	answers[models.QuestionAIRole] = text("helper")
	plan = ComputePlan(answers)
	require.NotNil(t, plan.NextQuestionID)
	assert.Equal(t, models.QuestionAIRoleReason, *plan.NextQuestionID)
}

func TestComputePlan_Complete(t *testing.T) {
	plan := ComputePlan(fullAnswers())

	assert.True(t, plan.IsComplete())
	assert.Empty(t, plan.RemainingQuestionIDs)
	assert.Equal(t, catalog.Order(), plan.CompletedQuestionIDs)
}

func TestComputePlan_Idempotent(t *testing.T) {
	inputs := []models.AnswerMap{
		{},
		{models.QuestionConsent: text("no")},
		fullAnswers(),
		{models.QuestionConsent: text("yes"), models.QuestionAIRole: text("replacement")},
	}
	for _, answers := range inputs {
		assert.Equal(t, ComputePlan(answers), ComputePlan(answers))
	}
}

func TestComputePlan_NextIsLowestEligibleUnanswered(t *testing.T) {
	answers := fullAnswers()
	delete(answers, models.QuestionWeeklyTime)
	delete(answers, models.QuestionResearchTools)

	plan := ComputePlan(answers)

	require.NotNil(t, plan.NextQuestionID)
	assert.Equal(t, models.QuestionResearchTools, *plan.NextQuestionID)
	assert.Equal(t, []models.QuestionID{models.QuestionResearchTools, models.QuestionWeeklyTime}, plan.RemainingQuestionIDs)
}

func TestComputePlan_AnsweringNextAdvances(t *testing.T) {
	answers := models.AnswerMap{}
	script := fullAnswers()

	for steps := 0; steps < 20; steps++ {
		plan := ComputePlan(answers)
		if plan.IsComplete() {
			break
		}
		next := *plan.NextQuestionID
		answers[next] = script[next]

		after := ComputePlan(answers)
		assert.True(t, after.IsCompleted(next), "question %s should be completed", next)
		if after.NextQuestionID != nil {
			assert.Greater(t, catalog.Position(*after.NextQuestionID), catalog.Position(next))
		}
	}
	assert.True(t, ComputePlan(answers).IsComplete())
}

func TestComputePlan_StepBackReopensPrevious(t *testing.T) {
	answers := models.AnswerMap{
		models.QuestionConsent:       text("yes"),
		models.QuestionCodingHistory: text("none"),
		models.QuestionResearchTools: list("google"),
	}
	plan := ComputePlan(answers)
	last := plan.CompletedQuestionIDs[len(plan.CompletedQuestionIDs)-1]
	require.Equal(t, models.QuestionResearchTools, last)

	trimmed := plan.Answers.Clone()
	delete(trimmed, last)
	reopened := ComputePlan(trimmed)

	assert.False(t, reopened.IsCompleted(last))
	require.NotNil(t, reopened.NextQuestionID)
	assert.Equal(t, last, *reopened.NextQuestionID)
}

func TestProgress(t *testing.T) {
	assert.Equal(t, models.Progress{Step: 1, Total: 1}, Progress(ComputePlan(models.AnswerMap{})))

	plan := ComputePlan(models.AnswerMap{models.QuestionConsent: text("yes")})
	assert.Equal(t, models.Progress{Step: 2, Total: 11}, Progress(plan))

	complete := ComputePlan(fullAnswers())
	assert.Equal(t, models.Progress{Step: 13, Total: 13}, Progress(complete))

	declined := ComputePlan(models.AnswerMap{models.QuestionConsent: text("no")})
	assert.Equal(t, models.Progress{Step: 1, Total: 1}, Progress(declined))
}

func TestTranscript(t *testing.T) {
	entries := Transcript(models.AnswerMap{
		models.QuestionBuildTopics: list("games", "custom"),
		models.QuestionConsent:     text("yes"),
		"legacy_field":             text("ignored"),
	})

	require.Len(t, entries, 2)
	assert.Equal(t, models.QuestionConsent, entries[0].ID)
	assert.Equal(t, "yes", entries[0].Answer)
	assert.Equal(t, "Build Interests", entries[1].Title)
	assert.Equal(t, "Games, custom", entries[1].Answer)
}
