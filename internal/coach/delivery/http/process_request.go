package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = errors.New("invalid request body")

// processTurnReq binds and validates the coach turn request body.
func (h *handler) processTurnReq(c *gin.Context) (turnReq, error) {
	var req turnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, req.validate()
		}
		return req, errInvalidBody
	}
	return req, req.validate()
}

// processHistoryReq binds the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}

// processSubmitAssessmentReq binds the assessment submission body.
func (h *handler) processSubmitAssessmentReq(c *gin.Context) (submitAssessmentReq, error) {
	var req submitAssessmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}
