package http

import (
	"github.com/gin-gonic/gin"

	"financial-coach/internal/coach"
	"financial-coach/pkg/log"
)

// Handler is the public interface for the coach HTTP delivery layer.
type Handler interface {
	Turn(c *gin.Context)
	Health(c *gin.Context)
	History(c *gin.Context)
	SubmitAssessment(c *gin.Context)
	LatestAssessment(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc coach.UseCase
}

// New creates a new HTTP handler for the coach domain.
func New(l log.Logger, uc coach.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
