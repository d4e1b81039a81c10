package usecase

import (
	"context"

	"financial-coach/internal/coach"
	"financial-coach/internal/coach/repository"
	"financial-coach/internal/coach/session"
)

func (uc *implUseCase) maxTurns() int {
	return session.MaxTurns(uc.cfg.MaxHistoryLength)
}

// hydrate seeds the session from the durable store on the first touch of a user in this process.
// Caller must hold the user's lock.
func (uc *implUseCase) hydrate(ctx context.Context, userID string) {
	if uc.sessions.Has(userID) {
		return
	}

	turns, err := uc.repo.ListTurns(ctx, repository.ListTurnsOptions{UserID: userID, Limit: uc.maxTurns()})
	if err != nil {
		uc.l.Warnf(ctx, "coach.usecase.hydrate: user=%s: %v", userID, err)
		return
	}
	if len(turns) == 0 {
		return
	}

	if uc.sessions.Seed(userID, turns) {
		uc.l.Debugf(ctx, "coach.usecase.hydrate: user=%s restored %d turns", userID, len(turns))
	}
}

// storedProfile returns the latest stored assessment, or nil when there is none or the store fails.
func (uc *implUseCase) storedProfile(ctx context.Context, userID string) *coach.AssessmentProfile {
	snap, err := uc.repo.LatestAssessment(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "coach.usecase.storedProfile: user=%s: %v", userID, err)
		return nil
	}
	if snap.ID == "" {
		return nil
	}
	return &snap.Profile
}

// persist writes turns to the durable store. Failures are logged and never reach the caller.
// It runs detached from request cancellation so an aborted request still records its exchange.
func (uc *implUseCase) persist(ctx context.Context, userID string, turns ...coach.Turn) {
	ctx = context.WithoutCancel(ctx)
	for _, t := range turns {
		if _, err := uc.repo.AppendTurn(ctx, repository.AppendTurnOptions{UserID: userID, Turn: t}); err != nil {
			uc.l.Warnf(ctx, "coach.usecase.persist: user=%s sender=%s: %v", userID, t.Sender, err)
			return
		}
	}
}
