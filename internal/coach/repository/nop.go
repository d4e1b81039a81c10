package repository

import (
	"context"

	"financial-coach/internal/coach"
)

type nopRepository struct{}

// NewNop returns a Repository that stores nothing. Used with storage.driver "none".
func NewNop() Repository {
	return nopRepository{}
}

func (nopRepository) AppendTurn(ctx context.Context, opt AppendTurnOptions) (string, error) {
	return "", nil
}

func (nopRepository) ListTurns(ctx context.Context, opt ListTurnsOptions) ([]coach.Turn, error) {
	return nil, nil
}

func (nopRepository) SaveAssessment(ctx context.Context, opt SaveAssessmentOptions) (coach.AssessmentSnapshot, error) {
	return coach.AssessmentSnapshot{UserID: opt.UserID, Profile: opt.Profile}, nil
}

func (nopRepository) LatestAssessment(ctx context.Context, userID string) (coach.AssessmentSnapshot, error) {
	return coach.AssessmentSnapshot{}, nil
}

func (nopRepository) Ping(ctx context.Context) error { return nil }
func (nopRepository) Close() error                   { return nil }
