// Package repo provides repository implementations for the archive service
package repo

import (
	"context"

	"quipbot/internal/modkit/repokit"
	"quipbot/internal/services/archive/domain"
)

// binder implements repokit.Binder[domain.StorageRepo]
type binder struct{}

// NewPG returns a Postgres binder for domain.StorageRepo
func NewPG() repokit.Binder[domain.StorageRepo] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) domain.StorageRepo { return &pg{q: q} }

type pg struct{ q repokit.Queryer }

// InsertAnswer stores one delivered answer, duplicate deliveries for the
// same inbound message are ignored
func (s *pg) InsertAnswer(ctx context.Context, rec domain.AnswerRecord) error {
	const q = `
		INSERT INTO answers
			(chat_id, message_id, from_id, from_username, job_id, answer, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (chat_id, message_id) DO NOTHING`
	_, err := s.q.Exec(ctx, q,
		rec.ChatID, rec.MessageID, rec.FromID, rec.FromUsername,
		rec.JobID, rec.Answer, rec.CreatedAt,
	)
	return err
}

// ListRecent returns the newest archived answers, newest first
func (s *pg) ListRecent(ctx context.Context, limit int) ([]domain.AnswerRecord, error) {
	const q = `
		SELECT chat_id, message_id, from_id, from_username, job_id, answer, created_at
		FROM answers
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := s.q.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AnswerRecord
	for rows.Next() {
		var rec domain.AnswerRecord
		if err := rows.Scan(
			&rec.ChatID, &rec.MessageID, &rec.FromID, &rec.FromUsername,
			&rec.JobID, &rec.Answer, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
