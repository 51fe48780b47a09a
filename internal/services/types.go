package services

import (
	"time"

	"github.com/SAP-F-2025/curriculum-interview/internal/models"
)

// ===== REQUEST TYPES =====

type StartSessionRequest struct {
	Name string `json:"name" validate:"max=200"`
}

type NextQuestionRequest struct {
	SessionID string `json:"sessionId" validate:"required,max=64"`
	Direction string `json:"direction,omitempty" validate:"direction"`
}

type SubmitAnswerRequest struct {
	SessionID  string            `json:"sessionId" validate:"required,max=64"`
	QuestionID models.QuestionID `json:"questionId" validate:"required"`
	Answer     any               `json:"answer"`
}

type ListSessionsRequest struct {
	Name      string     `form:"name" json:"name"`
	DateFrom  *time.Time `form:"date_from" json:"date_from" time_format:"2006-01-02"`
	DateTo    *time.Time `form:"date_to" json:"date_to" time_format:"2006-01-02"`
	Page      int        `form:"page" json:"page" validate:"omitempty,min=1"`
	Size      int        `form:"size" json:"size" validate:"omitempty,min=1,max=200"`
	SortBy    string     `form:"sort_by" json:"sort_by" validate:"omitempty,oneof=start_time name updated_at"`
	SortOrder string     `form:"sort_order" json:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// ===== RESPONSE TYPES =====

type StartSessionResponse struct {
	SessionID       string            `json:"sessionId"`
	FirstQuestionID models.QuestionID `json:"firstQuestionId"`
}

type QuestionResponse struct {
	Status         models.SessionStatus      `json:"status"`
	Question       *models.QuestionNode      `json:"question,omitempty"`
	PreviousAnswer *models.AnswerValue       `json:"previousAnswer,omitempty"`
	Progress       models.Progress           `json:"progress"`
	Transcript     []models.TranscriptEntry  `json:"transcript"`
	Summary        *models.CurriculumSummary `json:"summary,omitempty"`
}

type SubmitAnswerResponse struct {
	Status         models.SessionStatus      `json:"status"`
	NextQuestionID *models.QuestionID        `json:"nextQuestionId,omitempty"`
	Summary        *models.CurriculumSummary `json:"summary,omitempty"`
}

type SessionOverview struct {
	ID         string                    `json:"id"`
	Name       string                    `json:"name"`
	StartTime  time.Time                 `json:"startTime"`
	Status     models.SessionStatus      `json:"status"`
	Transcript []models.TranscriptEntry  `json:"transcript"`
	Summary    *models.CurriculumSummary `json:"summary,omitempty"`
}

type SessionListResponse struct {
	Sessions []SessionOverview `json:"sessions"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Size     int               `json:"size"`
}
