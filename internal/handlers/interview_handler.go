package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/curriculum-interview/internal/models"
	"github.com/SAP-F-2025/curriculum-interview/internal/services"
	"github.com/SAP-F-2025/curriculum-interview/internal/utils"
)

type InterviewHandler struct {
	BaseHandler
	interviewService services.InterviewService
}

func NewInterviewHandler(interviewService services.InterviewService, logger utils.Logger) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:      NewBaseHandler(logger),
		interviewService: interviewService,
	}
}

// StartSession creates a new interview session
// @Summary Start interview
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body services.StartSessionRequest false "Interviewee name"
// @Success 201 {object} services.StartSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (h *InterviewHandler) StartSession(c *gin.Context) {
	var req services.StartSessionRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, CodeValidation, "Invalid request payload", nil, err.Error())
		return
	}

	resp, err := h.interviewService.StartSession(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Interview session started", "session_id", resp.SessionID)
	c.JSON(http.StatusCreated, resp)
}

// NextQuestion returns the question to present, or the summary once the
// interview is complete. {"direction":"back"} reopens the previous question.
// @Summary Get next question
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} services.QuestionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/question [post]
func (h *InterviewHandler) NextQuestion(c *gin.Context) {
	sessionID := ParseStringIDParam(c, "id")
	if sessionID == "" {
		return
	}

	var req services.NextQuestionRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, CodeValidation, "Invalid request payload", nil, err.Error())
		return
	}
	req.SessionID = sessionID

	resp, err := h.interviewService.GetNextQuestion(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitAnswer records the answer to one question
// @Summary Submit answer
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param answer body services.SubmitAnswerRequest true "Answer"
// @Success 200 {object} services.SubmitAnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "consent_required"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/answers [post]
func (h *InterviewHandler) SubmitAnswer(c *gin.Context) {
	sessionID := ParseStringIDParam(c, "id")
	if sessionID == "" {
		return
	}

	var req services.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, CodeValidation, "Invalid request payload", nil, err.Error())
		return
	}
	req.SessionID = sessionID

	resp, err := h.interviewService.SubmitAnswer(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if resp.Status == models.SessionCompleted {
		h.LogRequest(c, "Interview session completed", "session_id", sessionID)
	}
	c.JSON(http.StatusOK, resp)
}

// ListSessions lists interview sessions for the admin dashboard
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Param name query string false "Name contains"
// @Param date_from query string false "Started on or after (YYYY-MM-DD)"
// @Param date_to query string false "Started on or before (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Param sort_by query string false "start_time, name or updated_at"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} services.SessionListResponse
// @Failure 400 {object} ErrorResponse
// @Router /sessions [get]
func (h *InterviewHandler) ListSessions(c *gin.Context) {
	var req services.ListSessionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, CodeValidation, "Invalid query parameters", nil, err.Error())
		return
	}

	resp, err := h.interviewService.ListSessions(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
