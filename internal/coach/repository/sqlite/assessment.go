package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"financial-coach/internal/coach"
	repo "financial-coach/internal/coach/repository"
)

// SaveAssessment stores a snapshot of the profile.
func (r *implRepository) SaveAssessment(ctx context.Context, opt repo.SaveAssessmentOptions) (coach.AssessmentSnapshot, error) {
	const query = `
		INSERT INTO coach_assessments
			(id, seq, user_id, user_name, score, max_score, category_scores, result_title, advice_list, created_at)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM coach_assessments), ?, ?, ?, ?, ?, ?, ?, ?)`

	categories := opt.Profile.CategoryScores
	if categories == nil {
		categories = map[string]float64{}
	}
	categoriesJSON, err := json.Marshal(categories)
	if err != nil {
		return coach.AssessmentSnapshot{}, repo.ErrFailedToInsert
	}
	advice := opt.Profile.AdviceList
	if advice == nil {
		advice = []string{}
	}
	adviceJSON, err := json.Marshal(advice)
	if err != nil {
		return coach.AssessmentSnapshot{}, repo.ErrFailedToInsert
	}

	snap := coach.AssessmentSnapshot{
		ID:        r.newID(),
		UserID:    opt.UserID,
		Profile:   opt.Profile,
		CreatedAt: r.now(),
	}
	_, err = r.db.ExecContext(ctx, query,
		snap.ID, snap.UserID, opt.Profile.UserName, opt.Profile.Score, opt.Profile.MaxScore,
		string(categoriesJSON), opt.Profile.ResultTitle, string(adviceJSON), snap.CreatedAt.UnixNano(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveAssessment"), err)
		return coach.AssessmentSnapshot{}, repo.ErrFailedToInsert
	}
	return snap, nil
}

// LatestAssessment returns the most recent snapshot of a user, or a zero value when none exists.
func (r *implRepository) LatestAssessment(ctx context.Context, userID string) (coach.AssessmentSnapshot, error) {
	const query = `
		SELECT id, user_id, user_name, score, max_score, category_scores, result_title, advice_list, created_at
		FROM coach_assessments
		WHERE user_id = ?
		ORDER BY seq DESC
		LIMIT 1`

	var (
		snap                       coach.AssessmentSnapshot
		categoriesJSON, adviceJSON string
		createdAt                  int64
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&snap.ID, &snap.UserID, &snap.Profile.UserName, &snap.Profile.Score, &snap.Profile.MaxScore,
		&categoriesJSON, &snap.Profile.ResultTitle, &adviceJSON, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return coach.AssessmentSnapshot{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LatestAssessment"), err)
		return coach.AssessmentSnapshot{}, repo.ErrFailedToGet
	}

	if err := json.Unmarshal([]byte(categoriesJSON), &snap.Profile.CategoryScores); err != nil {
		r.l.Errorf(ctx, "%s category_scores: %v", r.dsn("LatestAssessment"), err)
		return coach.AssessmentSnapshot{}, repo.ErrFailedToGet
	}
	if err := json.Unmarshal([]byte(adviceJSON), &snap.Profile.AdviceList); err != nil {
		r.l.Errorf(ctx, "%s advice_list: %v", r.dsn("LatestAssessment"), err)
		return coach.AssessmentSnapshot{}, repo.ErrFailedToGet
	}
	snap.CreatedAt = fromUnixNano(createdAt)

	return snap, nil
}
