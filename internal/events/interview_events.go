package events

import (
	"time"

	"github.com/SAP-F-2025/curriculum-interview/internal/models"
	"github.com/google/uuid"
)

// EventType represents the kinds of interview events
type EventType string

const (
	EventSessionStarted   EventType = "interview.session_started"
	EventSessionCompleted EventType = "interview.session_completed"
)

const (
	eventSource  = "curriculum-interview"
	eventVersion = "1.0"
)

// InterviewEvent is the envelope for all interview events
type InterviewEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type SessionStartedEvent struct {
	SessionID       string            `json:"session_id"`
	Name            string            `json:"name"`
	FirstQuestionID models.QuestionID `json:"first_question_id"`
	StartedAt       time.Time         `json:"started_at"`
}

type SessionCompletedEvent struct {
	SessionID     string   `json:"session_id"`
	Name          string   `json:"name"`
	AnsweredCount int      `json:"answered_count"`
	LevelEstimate string   `json:"level_estimate"`
	ModuleOrder   []string `json:"module_order"`
	UsedLLM       bool     `json:"used_llm"`
}

func newEvent(eventType EventType, data interface{}) *InterviewEvent {
	return &InterviewEvent{
		ID:        GenerateEventID(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

func NewSessionStartedEvent(session *models.Session, first models.QuestionID) *InterviewEvent {
	return newEvent(EventSessionStarted, SessionStartedEvent{
		SessionID:       session.ID,
		Name:            session.Name,
		FirstQuestionID: first,
		StartedAt:       session.StartTime,
	})
}

func NewSessionCompletedEvent(session *models.Session, answered int, summary *models.CurriculumSummary) *InterviewEvent {
	data := SessionCompletedEvent{
		SessionID:     session.ID,
		Name:          session.Name,
		AnsweredCount: answered,
	}
	if summary != nil {
		data.LevelEstimate = summary.LevelEstimate
		data.ModuleOrder = summary.ModuleOrder
		data.UsedLLM = summary.GenerationNotes != nil && summary.GenerationNotes.UsedLLM
	}
	return newEvent(EventSessionCompleted, data)
}

// GenerateEventID returns a new random event id
func GenerateEventID() string {
	return uuid.NewString()
}
