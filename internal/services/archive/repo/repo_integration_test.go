//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"quipbot/internal/platform/store"
	"quipbot/internal/services/archive/domain"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

const answersDDL = `
	CREATE TABLE IF NOT EXISTS answers (
		chat_id       BIGINT      NOT NULL,
		message_id    BIGINT      NOT NULL,
		from_id       BIGINT      NOT NULL DEFAULT 0,
		from_username TEXT        NOT NULL DEFAULT '',
		job_id        TEXT        NOT NULL,
		answer        TEXT        NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (chat_id, message_id)
	)`

func TestAnswerRoundtrip_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		PG: store.PGConfig{Enabled: true, URL: dsn},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	if _, err := st.PG.Exec(ctx, answersDDL); err != nil {
		t.Fatalf("create table: %v", err)
	}

	repo := NewPG().Bind(st.PG)
	rec := domain.AnswerRecord{
		ChatID:       -42,
		MessageID:    7,
		FromID:       99,
		FromUsername: "someone",
		JobID:        "ping",
		Answer:       "pong",
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.InsertAnswer(ctx, rec); err != nil {
		t.Fatalf("insert: %v", err)
	}
	// a duplicate delivery for the same inbound message is ignored
	rec.Answer = "changed"
	if err := repo.InsertAnswer(ctx, rec); err != nil {
		t.Fatalf("duplicate insert: %v", err)
	}

	got, err := repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("rows = %d, want 1", len(got))
	}
	if got[0].ChatID != -42 || got[0].Answer != "pong" || got[0].JobID != "ping" {
		t.Fatalf("row = %+v", got[0])
	}
}
