package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/curriculum-interview/internal/services"
	"github.com/SAP-F-2025/curriculum-interview/internal/utils"
)

type HandlerManager struct {
	interviewHandler *InterviewHandler
	logger           utils.Logger
}

func NewHandlerManager(interviewService services.InterviewService, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		interviewHandler: NewInterviewHandler(interviewService, logger),
		logger:           logger,
	}
}

// NewRouter builds a gin engine with the logging middleware and all routes.
func (hm *HandlerManager) NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), utils.ContextLogger(hm.logger), utils.LoggerMiddleware(hm.logger))
	hm.SetupRoutes(router)
	return router
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", hm.interviewHandler.StartSession)
			sessions.GET("", hm.interviewHandler.ListSessions)
			sessions.POST("/:id/question", hm.interviewHandler.NextQuestion)
			sessions.POST("/:id/answers", hm.interviewHandler.SubmitAnswer)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "curriculum-interview",
	})
}
