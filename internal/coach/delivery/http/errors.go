package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"financial-coach/internal/coach"
	"financial-coach/pkg/response"
)

// mapError translates domain errors into HTTP responses.
// Unknown errors become a generic 500 so no internal detail reaches the client.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, coach.ErrEmptyMessage),
		errors.Is(err, coach.ErrEmptyUserID),
		errors.Is(err, coach.ErrInvalidAssessment),
		errors.Is(err, errInvalidBody):
		response.Error(c, err)
	case errors.Is(err, coach.ErrAssessmentNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}

// degraded answers a turn that fell back to the apology.
func (h *handler) degraded(c *gin.Context, out coach.TurnOutput) {
	response.ErrorWithStatus(c, http.StatusBadGateway, out.Reply)
}
