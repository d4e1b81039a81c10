package repository

import (
	"context"

	"financial-coach/internal/coach"
)

// Repository is the composed interface for the coach durable store.
type Repository interface {
	TurnRepository
	AssessmentRepository

	Ping(ctx context.Context) error
	Close() error
}

// TurnRepository persists conversation turns beyond the process lifetime.
type TurnRepository interface {
	AppendTurn(ctx context.Context, opt AppendTurnOptions) (string, error)
	// ListTurns returns the latest turns of a user in chronological order.
	ListTurns(ctx context.Context, opt ListTurnsOptions) ([]coach.Turn, error)
}

// AssessmentRepository persists assessment snapshots.
type AssessmentRepository interface {
	SaveAssessment(ctx context.Context, opt SaveAssessmentOptions) (coach.AssessmentSnapshot, error)
	// LatestAssessment returns a zero-value snapshot (ID == "") when the user has none.
	LatestAssessment(ctx context.Context, userID string) (coach.AssessmentSnapshot, error)
}
