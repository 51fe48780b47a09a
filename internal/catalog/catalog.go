// Package catalog holds the fixed interview question table.
package catalog

import (
	"errors"
	"fmt"

	"github.com/SAP-F-2025/curriculum-interview/internal/models"
)

var ErrUnknownQuestion = errors.New("unknown question id")

var order = [...]models.QuestionID{
	models.QuestionConsent,
	models.QuestionCodingHistory,
	models.QuestionCodingLanguages,
	models.QuestionResearchTools,
	models.QuestionAIExcites,
	models.QuestionAIRole,
	models.QuestionAIRoleReason,
	models.QuestionBuildTopics,
	models.QuestionAutomationTarget,
	models.QuestionLearningStyle,
	models.QuestionLessonStructure,
	models.QuestionWeeklyTime,
	models.QuestionSuccessCriteria,
}

// Order returns the canonical question sequence.
func Order() []models.QuestionID {
	out := make([]models.QuestionID, len(order))
	copy(out, order[:])
	return out
}

// Initial returns the first question of every interview.
func Initial() models.QuestionID {
	return order[0]
}

// Position returns the ordinal of id in the sequence, or -1.
func Position(id models.QuestionID) int {
	for i, candidate := range order {
		if candidate == id {
			return i
		}
	}
	return -1
}

func Contains(id models.QuestionID) bool {
	_, ok := questions[id]
	return ok
}

// Lookup returns the question node for id. Nodes are returned by value so
// callers cannot mutate the table.
func Lookup(id models.QuestionID) (models.QuestionNode, error) {
	q, ok := questions[id]
	if !ok {
		return models.QuestionNode{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}
	q.Options = append([]models.QuestionOption(nil), q.Options...)
	return q, nil
}

// MustLookup is Lookup for ids produced by the plan engine, where a miss is a
// programming error.
func MustLookup(id models.QuestionID) models.QuestionNode {
	q, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return q
}

// OptionLabel resolves the display label of an option value. ok is false when
// the question or the option is unknown.
func OptionLabel(id models.QuestionID, value string) (string, bool) {
	q, ok := questions[id]
	if !ok {
		return "", false
	}
	opt, ok := q.Option(value)
	if !ok {
		return "", false
	}
	return opt.Label, true
}

// All returns every node in catalog order.
func All() []models.QuestionNode {
	out := make([]models.QuestionNode, 0, len(order))
	for _, id := range order {
		out = append(out, MustLookup(id))
	}
	return out
}
