// Package service implements the archive service
package service

import (
	"context"
	"time"

	"quipbot/internal/modkit/repokit"
	perr "quipbot/internal/platform/errors"
	"quipbot/internal/platform/logger"
	"quipbot/internal/services/archive/domain"
)

// Service implements domain.WriterPort and domain.ReaderPort
// a nil TxRunner disables archiving and every call becomes a no op
type Service struct {
	tx     repokit.TxRunner
	binder repokit.Binder[domain.StorageRepo]
	now    func() time.Time
}

// New constructs an archive service, tx may be nil when archiving is off
func New(tx repokit.TxRunner, binder repokit.Binder[domain.StorageRepo]) *Service {
	return &Service{tx: tx, binder: binder, now: time.Now}
}

// Enabled reports whether a storage backend is wired
func (s *Service) Enabled() bool { return s.tx != nil }

// Record stores a delivered answer
// failures are logged and swallowed, auditing never blocks answering
func (s *Service) Record(ctx context.Context, rec domain.AnswerRecord) error {
	if !s.Enabled() {
		return nil
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}
	if err := s.binder.Bind(s.tx).InsertAnswer(ctx, rec); err != nil {
		logger.C(ctx).Warn().
			Err(err).
			Str("job_id", rec.JobID).
			Msg("archive write failed")
		return perr.FromPostgres(err, "archive insert")
	}
	return nil
}

// Recent lists the newest archived answers
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.AnswerRecord, error) {
	if !s.Enabled() {
		return nil, nil
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	out, err := s.binder.Bind(s.tx).ListRecent(ctx, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "archive list")
	}
	return out, nil
}
