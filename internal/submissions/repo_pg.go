package submissions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo stores each submission as a JSONB document in Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts the submission document.
func (r *PGRepo) Create(ctx context.Context, sub Submission) error {
	doc, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	const query = `
INSERT INTO submissions (id, user_id, submitted_at, document)
VALUES ($1, $2, $3, $4)`
	_, err = r.DB.ExecContext(ctx, query, sub.ID, sub.UserID, sub.SubmittedAt, doc)
	return err
}

// GetByID returns the submission document keyed by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Submission, error) {
	const query = `
SELECT document
FROM submissions
WHERE id = $1
LIMIT 1`
	var raw []byte
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, err
	}
	return decodeDocument(raw)
}

// ListByUser lists a user's submissions ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Submission, error) {
	limit, offset = clampPage(limit, offset)
	const query = `
SELECT document
FROM submissions
WHERE user_id = $1
ORDER BY submitted_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Submission{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		sub, err := decodeDocument(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func decodeDocument(raw []byte) (Submission, error) {
	var sub Submission
	if err := json.Unmarshal(raw, &sub); err != nil {
		return Submission{}, fmt.Errorf("decode submission: %w", err)
	}
	return sub, nil
}

var _ Repo = (*PGRepo)(nil)
