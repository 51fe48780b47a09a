package models

// QuestionID identifies one node of the interview catalog.
type QuestionID string

const (
	QuestionConsent          QuestionID = "consent"
	QuestionCodingHistory    QuestionID = "coding_history"
	QuestionCodingLanguages  QuestionID = "coding_languages"
	QuestionResearchTools    QuestionID = "research_tools"
	QuestionAIExcites        QuestionID = "ai_excites"
	QuestionAIRole           QuestionID = "ai_role"
	QuestionAIRoleReason     QuestionID = "ai_role_reason"
	QuestionBuildTopics      QuestionID = "build_topics"
	QuestionAutomationTarget QuestionID = "automation_target"
	QuestionLearningStyle    QuestionID = "learning_style"
	QuestionLessonStructure  QuestionID = "lesson_structure"
	QuestionWeeklyTime       QuestionID = "weekly_time"
	QuestionSuccessCriteria  QuestionID = "success_criteria"
)

type QuestionType string

const (
	SingleChoice QuestionType = "single"
	MultiChoice  QuestionType = "multi"
	FreeText     QuestionType = "text"
)

// ConsentGranted is the consent option value that unlocks the rest of the interview.
const ConsentGranted = "yes"

type QuestionOption struct {
	Value       string `json:"value" validate:"required"`
	Label       string `json:"label" validate:"required"`
	Description string `json:"description,omitempty"`
}

type QuestionNode struct {
	ID            QuestionID       `json:"id" validate:"required"`
	Title         string           `json:"title" validate:"required,max=80"`
	Prompt        string           `json:"prompt" validate:"required"`
	Type          QuestionType     `json:"type" validate:"required,question_type"`
	HelperText    string           `json:"helperText,omitempty"`
	Placeholder   string           `json:"placeholder,omitempty"`
	Options       []QuestionOption `json:"options,omitempty" validate:"required_unless=Type text,dive"`
	Required      bool             `json:"required,omitempty"`
	MinSelections int              `json:"minSelections,omitempty" validate:"min=0"`
	MaxSelections int              `json:"maxSelections,omitempty" validate:"min=0"`
}

// HasOptions reports whether the question restricts answers to a declared option list.
func (q QuestionNode) HasOptions() bool {
	return len(q.Options) > 0
}

// Option returns the option with the given value, if declared.
func (q QuestionNode) Option(value string) (QuestionOption, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return QuestionOption{}, false
}
