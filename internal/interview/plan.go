// Package interview derives the interview plan from a set of answers and
// converts answers to and from their stored form.
package interview

import (
	"github.com/SAP-F-2025/curriculum-interview/internal/catalog"
	"github.com/SAP-F-2025/curriculum-interview/internal/models"
)

// ShouldAsk reports whether id is presented given the answers collected so far.
func ShouldAsk(id models.QuestionID, answers models.AnswerMap) bool {
	if id == models.QuestionConsent {
		return true
	}
	if !IsConsentGranted(answers) {
		return false
	}

	switch id {
	case models.QuestionCodingLanguages:
		history := answers.Text(models.QuestionCodingHistory)
		return history == "dabbling" || history == "confident"
	case models.QuestionAIRoleReason:
		return answers.Text(models.QuestionAIRole) != ""
	default:
		return true
	}
}

func IsConsentGranted(answers models.AnswerMap) bool {
	return answers.Text(models.QuestionConsent) == models.ConsentGranted
}

// ComputePlan walks the catalog in order. Each predicate only sees answers to
// questions that were themselves eligible earlier in the walk, so an answer
// left over from a branch that is no longer taken cannot open another branch.
func ComputePlan(raw models.AnswerMap) models.InterviewPlan {
	plan := models.InterviewPlan{
		Answers:              models.AnswerMap{},
		CompletedQuestionIDs: []models.QuestionID{},
		RemainingQuestionIDs: []models.QuestionID{},
	}

	for _, id := range catalog.Order() {
		if !ShouldAsk(id, plan.Answers) {
			continue
		}

		if value, ok := raw[id]; ok {
			plan.Answers[id] = value
			plan.CompletedQuestionIDs = append(plan.CompletedQuestionIDs, id)
			continue
		}

		if plan.NextQuestionID == nil {
			next := id
			plan.NextQuestionID = &next
		}
		plan.RemainingQuestionIDs = append(plan.RemainingQuestionIDs, id)
	}

	return plan
}
