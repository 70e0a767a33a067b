package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mmynk/scribe/internal/models"
)

// AddTranscript persists a new transcript under its owner's subtree.
// ID and CreatedAt are always assigned here; caller-provided values are
// ignored.
func (s *SQLiteStore) AddTranscript(ctx context.Context, transcript *models.Transcript) error {
	if transcript.UserID == "" {
		return fmt.Errorf("transcript has no owner")
	}
	if transcript.Text == "" {
		return fmt.Errorf("transcript text is empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var last sql.NullInt64
	err = tx.QueryRowContext(ctx,
		"SELECT MAX(created_at) FROM transcripts WHERE user_id = ?",
		transcript.UserID,
	).Scan(&last)
	if err != nil {
		return fmt.Errorf("failed to read last timestamp: %w", err)
	}

	createdAt := time.Now().UnixNano()
	if last.Valid && createdAt <= last.Int64 {
		createdAt = last.Int64 + 1
	}

	id := uuid.New().String()
	_, err = tx.ExecContext(ctx,
		"INSERT INTO transcripts (id, user_id, text, model, created_at) VALUES (?, ?, ?, ?, ?)",
		id, transcript.UserID, transcript.Text, transcript.Model, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transcript: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	transcript.ID = id
	transcript.CreatedAt = createdAt
	return nil
}

// ListTranscripts returns a user's transcripts ordered newest first.
func (s *SQLiteStore) ListTranscripts(ctx context.Context, userID string, limit int) ([]*models.Transcript, error) {
	query := `SELECT id, user_id, text, model, created_at
		FROM transcripts
		WHERE user_id = ?
		ORDER BY created_at DESC`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transcripts: %w", err)
	}
	defer rows.Close()

	var out []*models.Transcript
	for rows.Next() {
		t := &models.Transcript{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.Model, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transcript: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transcripts: %w", err)
	}

	return out, nil
}
