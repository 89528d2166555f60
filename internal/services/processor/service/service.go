// Package service implements the processor service
package service

import (
	"context"

	"quipbot/internal/core/jobspec"
	"quipbot/internal/core/match"
	"quipbot/internal/core/message"
	"quipbot/internal/core/respond"
	"quipbot/internal/core/trigger"
	"quipbot/internal/platform/logger"
	"quipbot/internal/services/processor/domain"
)

// Config for the processor service
type Config struct {
	// BotName disambiguates "@name" qualified commands
	BotName string
}

// Service implements domain.AnswererPort and domain.InspectorPort
type Service struct {
	jobs  []jobspec.Job
	store *trigger.Store
	cfg   Config
}

// New constructs a processor over an already validated job set
func New(jobs []jobspec.Job, store *trigger.Store, cfg Config) *Service {
	if store == nil {
		store = trigger.NewStore()
	}
	return &Service{
		jobs:  append([]jobspec.Job(nil), jobs...),
		store: store,
		cfg:   cfg,
	}
}

// Answer finds matching jobs in configuration order, throttles them,
// and returns the first firing job's response
//
// configuration order is a deliberate priority mechanism, only one job
// answers per message even when several match and fire. every matched
// job pays its countdown decrement whether or not it ends up answering
func (s *Service) Answer(ctx context.Context, msg message.Message) domain.Answer {
	return s.answer(ctx, msg, s.store)
}

// Preview is Answer against a throwaway trigger store
func (s *Service) Preview(ctx context.Context, msg message.Message) domain.Answer {
	return s.answer(ctx, msg, trigger.NewStore())
}

func (s *Service) answer(ctx context.Context, msg message.Message, store *trigger.Store) domain.Answer {
	log := logger.C(ctx)

	var matched []jobspec.Job
	for _, job := range s.jobs {
		if match.Matches(job, msg, s.cfg.BotName) {
			matched = append(matched, job)
		}
	}
	if len(matched) == 0 {
		return domain.Answer{}
	}

	var firing []jobspec.Job
	for _, job := range matched {
		if store.ShouldFire(job) {
			firing = append(firing, job)
		}
	}
	if len(firing) == 0 {
		log.Debug().
			Int("matched", len(matched)).
			Str("kind", msg.Kind.String()).
			Msg("matched jobs suppressed by countdown")
		return domain.Answer{}
	}

	job := firing[0]
	text := respond.Select(job)
	log.Debug().
		Str("job_id", job.ID).
		Str("kind", msg.Kind.String()).
		Int("matched", len(matched)).
		Int("firing", len(firing)).
		Msg("job fired")
	return domain.Answer{JobID: job.ID, Text: text}
}

// Jobs returns a copy of the loaded job set in configuration order
func (s *Service) Jobs() []jobspec.Job {
	return append([]jobspec.Job(nil), s.jobs...)
}

// Triggers returns the pending countdown records of the live store
func (s *Service) Triggers() []trigger.RecordView {
	return s.store.Snapshot()
}
