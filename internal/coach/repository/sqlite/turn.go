package sqlite

import (
	"context"

	"financial-coach/internal/coach"
	repo "financial-coach/internal/coach/repository"
)

// AppendTurn inserts a Turn row and returns its id.
// seq keeps insertion order stable when timestamps collide.
func (r *implRepository) AppendTurn(ctx context.Context, opt repo.AppendTurnOptions) (string, error) {
	const query = `
		INSERT INTO coach_turns (id, seq, user_id, sender, text, is_error, created_at)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM coach_turns), ?, ?, ?, ?, ?)`

	ts := opt.Turn.Timestamp
	if ts.IsZero() {
		ts = r.now()
	}

	id := r.newID()
	_, err := r.db.ExecContext(ctx, query,
		id, opt.UserID, string(opt.Turn.Sender), opt.Turn.Text, boolToInt(opt.Turn.Error), ts.UnixNano(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendTurn"), err)
		return "", repo.ErrFailedToInsert
	}
	return id, nil
}

// ListTurns returns the latest opt.Limit turns of a user, oldest first.
func (r *implRepository) ListTurns(ctx context.Context, opt repo.ListTurnsOptions) ([]coach.Turn, error) {
	const query = `
		SELECT sender, text, is_error, created_at FROM (
			SELECT seq, sender, text, is_error, created_at
			FROM coach_turns
			WHERE user_id = ?
			ORDER BY seq DESC
			LIMIT ?
		) ORDER BY seq ASC`

	if opt.Limit <= 0 {
		return []coach.Turn{}, nil
	}

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTurns"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	turns := []coach.Turn{}
	for rows.Next() {
		var (
			sender, text string
			isError      int
			createdAt    int64
		)
		if err := rows.Scan(&sender, &text, &isError, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTurns"), err)
			return nil, repo.ErrFailedToList
		}
		turns = append(turns, coach.Turn{
			Sender:    coach.Sender(sender),
			Text:      text,
			Error:     isError != 0,
			Timestamp: fromUnixNano(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTurns"), err)
		return nil, repo.ErrFailedToList
	}
	return turns, nil
}
