package models

// InterviewPlan is derived from persisted answers on every request and never stored.
type InterviewPlan struct {
	Answers              AnswerMap    `json:"answers"`
	CompletedQuestionIDs []QuestionID `json:"completedQuestionIds"`
	NextQuestionID       *QuestionID  `json:"nextQuestionId"`
	RemainingQuestionIDs []QuestionID `json:"remainingQuestionIds"`
}

// IsComplete reports whether no eligible question is left unanswered.
func (p InterviewPlan) IsComplete() bool {
	return p.NextQuestionID == nil
}

// IsCompleted reports whether id was answered and is currently eligible.
func (p InterviewPlan) IsCompleted(id QuestionID) bool {
	for _, completed := range p.CompletedQuestionIDs {
		if completed == id {
			return true
		}
	}
	return false
}

type Progress struct {
	Step  int `json:"step"`
	Total int `json:"total"`
}

type TranscriptEntry struct {
	ID     QuestionID `json:"id"`
	Title  string     `json:"title"`
	Prompt string     `json:"prompt"`
	Answer string     `json:"answer"`
}
