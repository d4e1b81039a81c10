package repository

import "financial-coach/internal/coach"

// AppendTurnOptions holds parameters for persisting a Turn.
type AppendTurnOptions struct {
	UserID string
	Turn   coach.Turn
}

// ListTurnsOptions selects the latest Limit turns of a user.
type ListTurnsOptions struct {
	UserID string
	Limit  int
}

// SaveAssessmentOptions holds parameters for persisting an assessment snapshot.
type SaveAssessmentOptions struct {
	UserID  string
	Profile coach.AssessmentProfile
}
