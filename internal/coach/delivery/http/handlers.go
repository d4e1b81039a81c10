package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financial-coach/internal/middleware"
	"financial-coach/pkg/response"
)

// Turn godoc
// @Summary     Send a message to the coach
// @Description Answers one user message using the conversation history and an optional assessment profile.
// @Tags        Coach
// @Accept      json
// @Produce     json
// @Param       body body turnReq true "Turn request"
// @Success     200 {object} response.Resp "status=success, reply set"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "status=error, message holds the apology"
// @Router      /coach/turn [POST]
func (h *handler) Turn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTurnReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	userID := resolveUserID(middleware.UserID(c), req.UserID)
	output, err := h.uc.HandleTurn(ctx, req.toInput(userID))
	if err != nil {
		h.l.Warnf(ctx, "uc.HandleTurn: user=%s: %v", userID, err)
		h.mapError(c, err)
		return
	}

	if output.Degraded {
		h.degraded(c, output)
		return
	}

	if meta := h.newTurnMetaResp(output); meta != nil {
		response.Reply(c, output.Reply, meta)
		return
	}
	response.Reply(c, output.Reply, nil)
}

// Health godoc
// @Summary     Coach liveness
// @Description Stateless liveness check of the coach endpoint.
// @Tags        Coach
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /coach/health [GET]
func (h *handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResp{Status: response.StatusOK})
}

// History godoc
// @Summary     Conversation history
// @Description Returns the latest turns of the caller, oldest first.
// @Tags        Coach
// @Produce     json
// @Param       userId query string false "User id when auth is optional"
// @Param       limit  query int    false "Max turns (default: full history)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /coach/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	userID := resolveUserID(middleware.UserID(c), req.UserID)
	output, err := h.uc.GetHistory(ctx, req.toInput(userID))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetHistory: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(userID, output))
}

// SubmitAssessment godoc
// @Summary     Store an assessment
// @Description Stores an assessment snapshot, used by later turns that carry no profile.
// @Tags        Assessment
// @Accept      json
// @Produce     json
// @Param       body body submitAssessmentReq true "Assessment"
// @Success     200 {object} assessmentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /assessment/submit [POST]
func (h *handler) SubmitAssessment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitAssessmentReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	userID := resolveUserID(middleware.UserID(c), req.UserID)
	output, err := h.uc.SubmitAssessment(ctx, req.toInput(userID))
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitAssessment: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAssessmentResp(output.Snapshot))
}

// LatestAssessment godoc
// @Summary     Latest assessment
// @Description Returns the most recent stored assessment of the caller.
// @Tags        Assessment
// @Produce     json
// @Param       userId query string false "User id when auth is optional"
// @Success     200 {object} assessmentResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /assessment/latest [GET]
func (h *handler) LatestAssessment(c *gin.Context) {
	ctx := c.Request.Context()

	userID := resolveUserID(middleware.UserID(c), c.Query("userId"))
	output, err := h.uc.LatestAssessment(ctx, userID)
	if err != nil {
		h.l.Warnf(ctx, "uc.LatestAssessment: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAssessmentResp(output.Snapshot))
}
