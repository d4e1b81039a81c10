package http

import (
	"github.com/gin-gonic/gin"

	"financial-coach/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// /coach/health stays open; the rest resolve the caller through Auth.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	coachGroup := r.Group("/coach")
	{
		coachGroup.GET("/health", h.Health)
		coachGroup.POST("/turn", mw.Auth(), mw.RateLimit(), h.Turn)
		coachGroup.GET("/history", mw.Auth(), h.History)
	}

	assessment := r.Group("/assessment")
	{
		assessment.POST("/submit", mw.Auth(), h.SubmitAssessment)
		assessment.GET("/latest", mw.Auth(), h.LatestAssessment)
	}
}
