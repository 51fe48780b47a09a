package interview

import (
	"strings"

	"github.com/SAP-F-2025/curriculum-interview/internal/catalog"
	"github.com/SAP-F-2025/curriculum-interview/internal/models"
)

// Progress reports the 1-based step of the next question within the currently
// eligible questions.
func Progress(plan models.InterviewPlan) models.Progress {
	completed := len(plan.CompletedQuestionIDs)
	total := completed + len(plan.RemainingQuestionIDs)

	step := completed + 1
	if total > 0 && total < step {
		step = total
	}
	if total < step {
		total = step
	}
	return models.Progress{Step: step, Total: total}
}

// Transcript lists the answered questions in catalog order with choice values
// replaced by their labels. Answers for unknown ids are skipped.
func Transcript(answers models.AnswerMap) []models.TranscriptEntry {
	entries := make([]models.TranscriptEntry, 0, len(answers))
	for _, id := range catalog.Order() {
		value, ok := answers[id]
		if !ok {
			continue
		}
		q := catalog.MustLookup(id)
		entries = append(entries, models.TranscriptEntry{
			ID:     q.ID,
			Title:  q.Title,
			Prompt: q.Prompt,
			Answer: FormatAnswer(q, value),
		})
	}
	return entries
}

// FormatAnswer renders an answer for display.
func FormatAnswer(q models.QuestionNode, value models.AnswerValue) string {
	if q.Type == models.MultiChoice {
		values := value.Values()
		labels := make([]string, 0, len(values))
		for _, v := range values {
			if opt, ok := q.Option(v); ok {
				labels = append(labels, opt.Label)
				continue
			}
			if v != "" {
				labels = append(labels, v)
			}
		}
		return strings.Join(labels, ", ")
	}
	return value.String()
}
