package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/curriculum-interview/internal/catalog"
	"github.com/SAP-F-2025/curriculum-interview/internal/events"
	"github.com/SAP-F-2025/curriculum-interview/internal/interview"
	"github.com/SAP-F-2025/curriculum-interview/internal/models"
	"github.com/SAP-F-2025/curriculum-interview/internal/repositories"
	"github.com/SAP-F-2025/curriculum-interview/internal/validator"
)

// anonymousName is stored when a session starts without a name.
const anonymousName = "Anonymous"

type InterviewService interface {
	StartSession(ctx context.Context, req *StartSessionRequest) (*StartSessionResponse, error)
	GetNextQuestion(ctx context.Context, req *NextQuestionRequest) (*QuestionResponse, error)
	SubmitAnswer(ctx context.Context, req *SubmitAnswerRequest) (*SubmitAnswerResponse, error)
	ListSessions(ctx context.Context, req *ListSessionsRequest) (*SessionListResponse, error)
}

// SummaryBuilder turns a finished answer set into a curriculum summary. It
// never fails: enhancement problems degrade to the heuristic result.
type SummaryBuilder interface {
	Build(ctx context.Context, name string, answers models.AnswerMap) models.CurriculumSummary
}

type interviewService struct {
	repo           repositories.SessionRepository
	summaries      SummaryBuilder
	eventPublisher events.EventPublisher
	validator      *validator.Validator
	logger         *slog.Logger
	opLogger       *ServiceLogger
}

func NewInterviewService(
	repo repositories.SessionRepository,
	summaries SummaryBuilder,
	eventPublisher events.EventPublisher,
	validator *validator.Validator,
	logger *slog.Logger,
) InterviewService {
	return &interviewService{
		repo:           repo,
		summaries:      summaries,
		eventPublisher: eventPublisher,
		validator:      validator,
		logger:         logger,
		opLogger:       NewServiceLogger(logger, "interview"),
	}
}

// sessionState is the decoded view of a stored session.
type sessionState struct {
	session *models.Session
	plan    models.InterviewPlan
	summary models.SessionSummaryState
}

// ===== START =====

func (s *interviewService) StartSession(ctx context.Context, req *StartSessionRequest) (resp *StartSessionResponse, err error) {
	op := s.opLogger.WithOperation(ctx, "start_session")
	var sessionID string
	defer func() { op.LogResult(sessionID, err) }()

	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = anonymousName
	}

	first := catalog.Initial()
	summary := models.SessionSummaryState{
		Status:            models.SessionInProgress,
		CurrentQuestionID: &first,
	}
	summaryJSON, err := jsonColumn(summary)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		Name:      name,
		Questions: datatypes.JSON("[]"),
		Answers:   datatypes.JSON("[]"),
		Summary:   summaryJSON,
	}
	sessionID = session.ID

	if err = s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.publish(ctx, events.NewSessionStartedEvent(session, first))

	return &StartSessionResponse{SessionID: session.ID, FirstQuestionID: first}, nil
}

// ===== NEXT QUESTION =====

func (s *interviewService) GetNextQuestion(ctx context.Context, req *NextQuestionRequest) (resp *QuestionResponse, err error) {
	op := s.opLogger.WithOperation(ctx, "get_next_question")
	defer func() { op.LogResult(req.SessionID, err) }()

	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}

	state, err := s.loadState(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	if req.Direction == validator.DirectionBack {
		return s.stepBack(ctx, state)
	}

	if state.summary.Status == models.SessionInProgress && state.plan.IsComplete() && interview.IsConsentGranted(state.plan.Answers) {
		// Answers are complete but the session was never finalized.
		if _, err = s.complete(ctx, state); err != nil {
			return nil, err
		}
	}

	if state.summary.Status == models.SessionCompleted {
		answered := len(state.plan.CompletedQuestionIDs)
		return &QuestionResponse{
			Status:     models.SessionCompleted,
			Progress:   models.Progress{Step: answered, Total: answered},
			Transcript: interview.Transcript(state.plan.Answers),
			Summary:    state.summary.Result,
		}, nil
	}

	current := s.currentQuestion(state)
	if stored := state.summary.CurrentQuestionID; stored == nil || *stored != current {
		state.summary.CurrentQuestionID = &current
		if err = s.repo.Update(ctx, state.session.ID, models.SessionUpdate{Summary: &state.summary}); err != nil {
			return nil, fmt.Errorf("failed to update current question: %w", err)
		}
	}

	return s.questionResponse(current, state.plan)
}

// currentQuestion picks the question to present: the stored pointer when it
// still refers to an eligible question, otherwise the plan's next question.
func (s *interviewService) currentQuestion(state *sessionState) models.QuestionID {
	if stored := state.summary.CurrentQuestionID; stored != nil && isEligible(state.plan, *stored) {
		return *stored
	}
	if state.plan.NextQuestionID != nil {
		return *state.plan.NextQuestionID
	}
	return catalog.Initial()
}

// stepBack reopens the most recently completed question by removing its
// answer from the stored set.
func (s *interviewService) stepBack(ctx context.Context, state *sessionState) (*QuestionResponse, error) {
	if state.summary.Status == models.SessionCompleted {
		return nil, ErrSessionCompleted
	}

	completed := state.plan.CompletedQuestionIDs
	if len(completed) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoPreviousQuestion,
			NewValidationError("direction", "No previous question to revisit.", validator.DirectionBack))
	}

	target := completed[len(completed)-1]
	previous := state.plan.Answers[target]

	trimmed := state.plan.Answers.Clone()
	delete(trimmed, target)
	plan := interview.ComputePlan(trimmed)

	summary := models.SessionSummaryState{
		Status:            models.SessionInProgress,
		CurrentQuestionID: &target,
		Result:            state.summary.Result,
	}
	update := models.SessionUpdate{
		Questions: plan.CompletedQuestionIDs,
		Answers:   interview.SerializeAnswers(plan.Answers),
		Summary:   &summary,
	}
	if err := s.repo.Update(ctx, state.session.ID, update); err != nil {
		return nil, fmt.Errorf("failed to reopen question: %w", err)
	}

	resp, err := s.questionResponse(target, plan)
	if err != nil {
		return nil, err
	}
	resp.PreviousAnswer = &previous
	return resp, nil
}

func (s *interviewService) questionResponse(current models.QuestionID, plan models.InterviewPlan) (*QuestionResponse, error) {
	node, err := catalog.Lookup(current)
	if err != nil {
		// Ids come from the plan or the stored pointer; an unknown id is corrupt state.
		return nil, fmt.Errorf("current question %q: %w", current, err)
	}

	resp := &QuestionResponse{
		Status:     models.SessionInProgress,
		Question:   &node,
		Progress:   interview.Progress(plan),
		Transcript: interview.Transcript(plan.Answers),
	}
	if previous, ok := plan.Answers[current]; ok {
		resp.PreviousAnswer = &previous
	}
	return resp, nil
}

// ===== SUBMIT ANSWER =====

func (s *interviewService) SubmitAnswer(ctx context.Context, req *SubmitAnswerRequest) (resp *SubmitAnswerResponse, err error) {
	op := s.opLogger.WithOperation(ctx, "submit_answer")
	defer func() { op.LogResult(req.SessionID, err) }()

	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}

	question, err := catalog.Lookup(req.QuestionID)
	if err != nil {
		return nil, ErrQuestionNotFound
	}

	state, err := s.loadState(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if state.summary.Status == models.SessionCompleted {
		return nil, ErrSessionCompleted
	}
	if !isEligible(state.plan, question.ID) {
		return nil, NewValidationError("questionId", "This question is not part of the interview right now.", question.ID)
	}

	value, err := s.validator.Answer(question, req.Answer)
	if err != nil {
		return nil, err
	}
	if question.ID == models.QuestionConsent && value.Text() != models.ConsentGranted {
		return nil, ErrConsentRequired
	}

	answers := state.plan.Answers.Clone()
	answers[question.ID] = value
	state.plan = interview.ComputePlan(answers)
	if !state.plan.IsCompleted(question.ID) {
		return nil, ErrStateConflict
	}

	if state.plan.IsComplete() {
		summary, err := s.complete(ctx, state)
		if err != nil {
			return nil, err
		}
		return &SubmitAnswerResponse{Status: models.SessionCompleted, Summary: summary}, nil
	}

	next := *state.plan.NextQuestionID
	state.summary = models.SessionSummaryState{
		Status:            models.SessionInProgress,
		CurrentQuestionID: &next,
		Result:            state.summary.Result,
	}
	update := models.SessionUpdate{
		Questions: state.plan.CompletedQuestionIDs,
		Answers:   interview.SerializeAnswers(state.plan.Answers),
		Summary:   &state.summary,
	}
	if err = s.repo.Update(ctx, state.session.ID, update); err != nil {
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	return &SubmitAnswerResponse{Status: models.SessionInProgress, NextQuestionID: &next}, nil
}

// complete builds the summary for a finished plan, persists the completed
// state and announces it. state is updated in place.
func (s *interviewService) complete(ctx context.Context, state *sessionState) (*models.CurriculumSummary, error) {
	summary := s.summaries.Build(ctx, summaryName(state.session.Name), state.plan.Answers)

	state.summary = models.SessionSummaryState{
		Status: models.SessionCompleted,
		Result: &summary,
	}
	update := models.SessionUpdate{
		Questions: state.plan.CompletedQuestionIDs,
		Answers:   interview.SerializeAnswers(state.plan.Answers),
		Summary:   &state.summary,
	}
	if err := s.repo.Update(ctx, state.session.ID, update); err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}

	s.logger.InfoContext(ctx, "Interview completed",
		"session_id", state.session.ID,
		"answered", len(state.plan.CompletedQuestionIDs),
		"used_llm", summary.GenerationNotes != nil && summary.GenerationNotes.UsedLLM)

	s.publish(ctx, events.NewSessionCompletedEvent(state.session, len(state.plan.CompletedQuestionIDs), &summary))
	return &summary, nil
}

// ===== LIST =====

func (s *interviewService) ListSessions(ctx context.Context, req *ListSessionsRequest) (resp *SessionListResponse, err error) {
	op := s.opLogger.WithOperation(ctx, "list_sessions")
	defer func() { op.LogResult("", err) }()

	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}

	page, size := req.Page, req.Size
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 50
	}

	sessions, total, err := s.repo.List(ctx, repositories.SessionFilters{
		Name:      req.Name,
		DateFrom:  req.DateFrom,
		DateTo:    req.DateTo,
		Limit:     size,
		Offset:    (page - 1) * size,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	overviews := make([]SessionOverview, 0, len(sessions))
	for _, session := range sessions {
		state := decodeState(session)
		overviews = append(overviews, SessionOverview{
			ID:         session.ID,
			Name:       session.Name,
			StartTime:  session.StartTime,
			Status:     state.summary.Status,
			Transcript: interview.Transcript(state.plan.Answers),
			Summary:    state.summary.Result,
		})
	}

	return &SessionListResponse{Sessions: overviews, Total: total, Page: page, Size: size}, nil
}

// ===== HELPERS =====

func (s *interviewService) loadState(ctx context.Context, sessionID string) (*sessionState, error) {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return decodeState(session), nil
}

func decodeState(session *models.Session) *sessionState {
	order := interview.DecodeQuestionIDs(json.RawMessage(session.Questions))
	answers := interview.DeserializeAnswers(json.RawMessage(session.Answers), order)
	plan := interview.ComputePlan(answers)
	return &sessionState{
		session: session,
		plan:    plan,
		summary: interview.DecodeSummaryState(json.RawMessage(session.Summary), plan.NextQuestionID),
	}
}

func (s *interviewService) publish(ctx context.Context, event *events.InterviewEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.PublishInterviewEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish interview event",
			"event_type", event.Type,
			"error", err)
	}
}

// isEligible reports whether id is answered or still to be asked in plan.
func isEligible(plan models.InterviewPlan, id models.QuestionID) bool {
	if plan.IsCompleted(id) {
		return true
	}
	for _, remaining := range plan.RemainingQuestionIDs {
		if remaining == id {
			return true
		}
	}
	return false
}

// summaryName hides the placeholder name from the summary text.
func summaryName(name string) string {
	if name == anonymousName {
		return ""
	}
	return name
}

func jsonColumn(v any) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode column: %w", err)
	}
	return datatypes.JSON(raw), nil
}
