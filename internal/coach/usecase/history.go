package usecase

import (
	"context"

	"financial-coach/internal/coach"
)

// GetHistory returns the latest turns of a user, oldest first.
func (uc *implUseCase) GetHistory(ctx context.Context, input coach.HistoryInput) (coach.HistoryOutput, error) {
	if input.UserID == "" {
		return coach.HistoryOutput{}, coach.ErrEmptyUserID
	}

	limit := input.Limit
	if limit <= 0 || limit > uc.maxTurns() {
		limit = uc.maxTurns()
	}

	unlock, err := uc.locker.Lock(ctx, input.UserID)
	if err != nil {
		return coach.HistoryOutput{}, err
	}
	defer unlock()

	uc.hydrate(ctx, input.UserID)

	return coach.HistoryOutput{Turns: uc.sessions.Recent(input.UserID, limit)}, nil
}
