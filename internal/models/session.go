package models

import (
	"time"

	"gorm.io/datatypes"
)

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// Session is the persisted interview record. Answers, Questions and Summary are
// kept as raw JSON: older rows carry legacy shapes that only the codec understands.
type Session struct {
	ID        string         `json:"id" gorm:"primaryKey;size:64"`
	Name      string         `json:"name" gorm:"size:200;default:Anonymous"`
	StartTime time.Time      `json:"start_time" gorm:"autoCreateTime;index"`
	Questions datatypes.JSON `json:"questions" gorm:"type:jsonb"`
	Answers   datatypes.JSON `json:"answers" gorm:"type:jsonb"`
	Summary   datatypes.JSON `json:"summary" gorm:"type:jsonb"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Session) TableName() string {
	return "sessions"
}

// SessionSummaryState tracks where a session is in the interview.
type SessionSummaryState struct {
	Status            SessionStatus      `json:"status"`
	CurrentQuestionID *QuestionID        `json:"currentQuestionId"`
	Result            *CurriculumSummary `json:"result"`
}

// SessionUpdate lists the fields of a Session that a single update may replace.
// Nil fields are left untouched.
type SessionUpdate struct {
	Questions []QuestionID
	Answers   []StoredAnswerEntry
	Summary   *SessionSummaryState
}
