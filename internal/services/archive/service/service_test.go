package service

import (
	"context"
	"testing"

	"quipbot/internal/services/archive/domain"
	"quipbot/internal/services/archive/repo"
)

func TestDisabledServiceIsNoOp(t *testing.T) {
	s := New(nil, repo.NewPG())
	if s.Enabled() {
		t.Fatalf("nil runner must leave the service disabled")
	}
	if err := s.Record(context.Background(), domain.AnswerRecord{ChatID: 1, MessageID: 2}); err != nil {
		t.Fatalf("Record on disabled service: %v", err)
	}
	recs, err := s.Recent(context.Background(), 10)
	if err != nil || recs != nil {
		t.Fatalf("Recent on disabled service = %v, %v", recs, err)
	}
}
