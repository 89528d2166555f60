package pg

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"quipbot/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpenParseError(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{URL: "://nope"}, nil, nil)
	if err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}

func TestOpenNewPoolError(t *testing.T) {
	// mutates a global seam, run serially to avoid bleed
	testkit.Serial(t)

	testkit.Swap(t, &newPool, func(ctx context.Context, _ *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("boom")
	})

	// URL must parse so we reach newPool
	_, err := Open(context.Background(), Config{URL: "postgres://u:p@h:5432/db?sslmode=disable"}, nil, nil)
	if err == nil {
		t.Fatalf("expected newPool error, got nil")
	}
}

func TestOpenAppliesConfigAndMutator(t *testing.T) {
	testkit.Serial(t)

	fake := &pgxpool.Pool{} // zero value, never closed
	testkit.Swap(t, &newPool, func(ctx context.Context, _ *pgxpool.Config) (*pgxpool.Pool, error) {
		return fake, nil
	})

	var mutCalled atomic.Bool
	cfg := Config{URL: "postgres://u:p@h:5432/db?sslmode=disable", MaxConns: 3, SlowMs: 250}
	p, err := Open(context.Background(), cfg, nil, func(pc *pgxpool.Config) {
		mutCalled.Store(true)
		if pc.MaxConns != cfg.MaxConns {
			t.Fatalf("MaxConns not applied: got %d want %d", pc.MaxConns, cfg.MaxConns)
		}
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !mutCalled.Load() {
		t.Fatalf("pool config mutator was not invoked")
	}
	if p.SlowMs != cfg.SlowMs || p.Pool == nil {
		t.Fatalf("client not populated: %+v", p)
	}
}

func TestCloseNilSafe(t *testing.T) {
	t.Parallel()

	var p *PG
	p.Close()

	p = &PG{}
	p.Close()
	p.Close()
}
