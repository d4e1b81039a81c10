package usecase

import (
	"context"
	"fmt"

	"financial-coach/internal/coach"
	"financial-coach/internal/coach/repository"
)

// SubmitAssessment stores a snapshot used by later turns that carry no profile.
func (uc *implUseCase) SubmitAssessment(ctx context.Context, input coach.SubmitAssessmentInput) (coach.SubmitAssessmentOutput, error) {
	if input.UserID == "" {
		return coach.SubmitAssessmentOutput{}, coach.ErrEmptyUserID
	}
	if err := validateProfile(input.Profile); err != nil {
		return coach.SubmitAssessmentOutput{}, err
	}

	snap, err := uc.repo.SaveAssessment(ctx, repository.SaveAssessmentOptions{
		UserID:  input.UserID,
		Profile: input.Profile,
	})
	if err != nil {
		uc.l.Errorf(ctx, "coach.usecase.SubmitAssessment: user=%s: %v", input.UserID, err)
		return coach.SubmitAssessmentOutput{}, err
	}

	return coach.SubmitAssessmentOutput{Snapshot: snap}, nil
}

// LatestAssessment returns the most recent stored snapshot of a user.
func (uc *implUseCase) LatestAssessment(ctx context.Context, userID string) (coach.LatestAssessmentOutput, error) {
	if userID == "" {
		return coach.LatestAssessmentOutput{}, coach.ErrEmptyUserID
	}

	snap, err := uc.repo.LatestAssessment(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "coach.usecase.LatestAssessment: user=%s: %v", userID, err)
		return coach.LatestAssessmentOutput{}, err
	}
	if snap.ID == "" {
		return coach.LatestAssessmentOutput{}, coach.ErrAssessmentNotFound
	}

	return coach.LatestAssessmentOutput{Snapshot: snap}, nil
}

func validateProfile(p coach.AssessmentProfile) error {
	if p.MaxScore < 0 || p.Score < 0 {
		return fmt.Errorf("%w: scores must not be negative", coach.ErrInvalidAssessment)
	}
	for code, score := range p.CategoryScores {
		if score < 0 || score > 100 {
			return fmt.Errorf("%w: category %s score %v out of range 0..100", coach.ErrInvalidAssessment, code, score)
		}
	}
	return nil
}
