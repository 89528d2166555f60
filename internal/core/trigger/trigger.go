// Package trigger holds per job countdown state and decides firing
package trigger

import (
	"sync"
	"time"

	"quipbot/internal/core/jobspec"
	ptime "quipbot/internal/platform/time"
)

// record tracks countdown progress for one job id
type record struct {
	remaining      int
	timeoutMinutes int
	createdAt      time.Time
}

// Store is the process wide trigger state, safe for concurrent use
// state lives in memory only, a restart clears all throttling history
type Store struct {
	mu   sync.Mutex
	recs map[string]*record
	now  func() time.Time
}

// NewStore constructs an empty Store
func NewStore() *Store {
	return &Store{
		recs: make(map[string]*record),
		now:  time.Now,
	}
}

// ShouldFire decides whether a matched job is allowed to answer this round
//
// a zero countdown always fires and touches no state. otherwise the job's
// record is created on first reference with remaining = countdown - 1 and
// decremented on every later reference, the job fires once remaining
// reaches zero. a fired record is deleted so the next window starts its
// accumulation from countdown again. expired records are swept after
// every decision
func (s *Store) ShouldFire(job jobspec.Job) bool {
	if job.Countdown == 0 {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rec, ok := s.recs[job.ID]
	if !ok {
		rec = &record{
			remaining:      job.Countdown - 1,
			timeoutMinutes: job.MinutesTimeout,
			createdAt:      now,
		}
		s.recs[job.ID] = rec
	} else {
		rec.remaining--
	}

	fired := rec.remaining <= 0
	if fired {
		delete(s.recs, job.ID)
	}
	s.sweepLocked(now)
	return fired
}

// sweepLocked purges records whose whole elapsed minutes exceed the window
// callers must hold mu
func (s *Store) sweepLocked(now time.Time) {
	for id, rec := range s.recs {
		if ptime.WholeMinutes(now.Sub(rec.createdAt)) > rec.timeoutMinutes {
			delete(s.recs, id)
		}
	}
}

// RecordView is a read only snapshot of one pending trigger record
type RecordView struct {
	JobID          string    `json:"job_id"`
	Remaining      int       `json:"remaining"`
	TimeoutMinutes int       `json:"timeout_minutes"`
	CreatedAt      time.Time `json:"created_at"`
}

// Snapshot returns the pending records for inspection
func (s *Store) Snapshot() []RecordView {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RecordView, 0, len(s.recs))
	for id, rec := range s.recs {
		out = append(out, RecordView{
			JobID:          id,
			Remaining:      rec.remaining,
			TimeoutMinutes: rec.timeoutMinutes,
			CreatedAt:      rec.createdAt,
		})
	}
	return out
}

// Len reports the number of pending records
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recs)
}
