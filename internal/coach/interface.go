package coach

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Conversation
	HandleTurn(ctx context.Context, input TurnInput) (TurnOutput, error)
	GetHistory(ctx context.Context, input HistoryInput) (HistoryOutput, error)

	// Assessment
	SubmitAssessment(ctx context.Context, input SubmitAssessmentInput) (SubmitAssessmentOutput, error)
	LatestAssessment(ctx context.Context, userID string) (LatestAssessmentOutput, error)
}
