package http

import (
	"financial-coach/internal/auth"
	"financial-coach/internal/coach"
	"financial-coach/pkg/response"
)

// defaultMaxScore applies when a profile omits maxScore.
const defaultMaxScore = 40

// --- Request DTOs ---

type profileReq struct {
	UserName       string             `json:"userName"`
	Score          float64            `json:"score"`
	MaxScore       *float64           `json:"maxScore"`
	CategoryScores map[string]float64 `json:"categoryScores"`
	ResultTitle    string             `json:"resultTitle"`
	AdviceList     []string           `json:"adviceList"`

	// Legacy field names sent by older clients.
	ResultMessage  *resultMessageReq `json:"resultMessage,omitempty"`
	CategoryAdvice []string          `json:"categoryAdvice,omitempty"`
}

type resultMessageReq struct {
	Title string `json:"title"`
}

func (r profileReq) toProfile() coach.AssessmentProfile {
	p := coach.AssessmentProfile{
		UserName:       r.UserName,
		Score:          r.Score,
		MaxScore:       defaultMaxScore,
		CategoryScores: r.CategoryScores,
		ResultTitle:    r.ResultTitle,
		AdviceList:     r.AdviceList,
	}
	if r.MaxScore != nil {
		p.MaxScore = *r.MaxScore
	}
	if p.ResultTitle == "" && r.ResultMessage != nil {
		p.ResultTitle = r.ResultMessage.Title
	}
	if len(p.AdviceList) == 0 {
		p.AdviceList = r.CategoryAdvice
	}
	return p
}

type turnReq struct {
	Message           string      `json:"message"`
	UserID            string      `json:"userId"`
	AssessmentProfile *profileReq `json:"assessmentProfile"`
}

func (r turnReq) validate() error {
	if r.Message == "" {
		return coach.ErrEmptyMessage
	}
	return nil
}

func (r turnReq) toInput(userID string) coach.TurnInput {
	input := coach.TurnInput{
		UserID:  userID,
		Message: r.Message,
	}
	if r.AssessmentProfile != nil {
		p := r.AssessmentProfile.toProfile()
		input.Profile = &p
	}
	return input
}

// ---

type historyReq struct {
	UserID string `form:"userId"`
	Limit  int    `form:"limit"`
}

func (r historyReq) validate() error { return nil }

func (r historyReq) toInput(userID string) coach.HistoryInput {
	return coach.HistoryInput{UserID: userID, Limit: r.Limit}
}

// ---

type submitAssessmentReq struct {
	UserID            string     `json:"userId"`
	AssessmentProfile profileReq `json:"assessmentProfile"`
}

func (r submitAssessmentReq) validate() error { return nil }

func (r submitAssessmentReq) toInput(userID string) coach.SubmitAssessmentInput {
	return coach.SubmitAssessmentInput{UserID: userID, Profile: r.AssessmentProfile.toProfile()}
}

// resolveUserID prefers the authenticated user, then the id named in the request.
func resolveUserID(authenticated, requested string) string {
	if authenticated != "" {
		return authenticated
	}
	if requested != "" {
		return requested
	}
	return auth.DefaultUserID
}

// --- Response DTOs ---

type turnMetaResp struct {
	SafetyBlocked bool   `json:"safetyBlocked,omitempty"`
	Provider      string `json:"provider,omitempty"`
}

func (h *handler) newTurnMetaResp(out coach.TurnOutput) *turnMetaResp {
	if !out.SafetyBlocked && out.Provider == "" {
		return nil
	}
	return &turnMetaResp{SafetyBlocked: out.SafetyBlocked, Provider: out.Provider}
}

type healthResp struct {
	Status string `json:"status"`
}

type turnItemResp struct {
	Sender    string            `json:"sender"`
	Text      string            `json:"text"`
	Timestamp response.DateTime `json:"timestamp"`
	Error     bool              `json:"error,omitempty"`
}

type historyResp struct {
	UserID string         `json:"userId"`
	Turns  []turnItemResp `json:"turns"`
}

func (h *handler) newHistoryResp(userID string, out coach.HistoryOutput) historyResp {
	turns := make([]turnItemResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = turnItemResp{
			Sender:    string(t.Sender),
			Text:      t.Text,
			Timestamp: response.DateTime(t.Timestamp),
			Error:     t.Error,
		}
	}
	return historyResp{UserID: userID, Turns: turns}
}

type profileResp struct {
	UserName       string             `json:"userName"`
	Score          float64            `json:"score"`
	MaxScore       float64            `json:"maxScore"`
	CategoryScores map[string]float64 `json:"categoryScores"`
	ResultTitle    string             `json:"resultTitle"`
	AdviceList     []string           `json:"adviceList"`
}

type assessmentResp struct {
	ID                string            `json:"id,omitempty"`
	UserID            string            `json:"userId"`
	AssessmentProfile profileResp       `json:"assessmentProfile"`
	CreatedAt         response.DateTime `json:"createdAt"`
}

func (h *handler) newAssessmentResp(snap coach.AssessmentSnapshot) assessmentResp {
	return assessmentResp{
		ID:     snap.ID,
		UserID: snap.UserID,
		AssessmentProfile: profileResp{
			UserName:       snap.Profile.UserName,
			Score:          snap.Profile.Score,
			MaxScore:       snap.Profile.MaxScore,
			CategoryScores: snap.Profile.CategoryScores,
			ResultTitle:    snap.Profile.ResultTitle,
			AdviceList:     snap.Profile.AdviceList,
		},
		CreatedAt: response.DateTime(snap.CreatedAt),
	}
}
