package respond

import (
	"testing"

	"quipbot/internal/core/jobspec"
	"quipbot/internal/platform/testkit"
)

func TestSelectPhraseIsIdempotent(t *testing.T) {
	job := jobspec.Job{Action: jobspec.ActionPhrase, Data: []string{"pong"}}
	for i := 0; i < 3; i++ {
		if got := Select(job); got != "pong" {
			t.Fatalf("Select = %q, want pong", got)
		}
	}
}

func TestSelectRandomSingleElement(t *testing.T) {
	job := jobspec.Job{Action: jobspec.ActionRandomPhrase, Data: []string{"only"}}
	for i := 0; i < 5; i++ {
		if got := Select(job); got != "only" {
			t.Fatalf("Select = %q, want only", got)
		}
	}
}

func TestSelectRandomUsesPick(t *testing.T) {
	testkit.Swap(t, &randIntN, func(n int) int { return n - 1 })
	job := jobspec.Job{Action: jobspec.ActionRandomPhrase, Data: []string{"a", "b", "c"}}
	if got := Select(job); got != "c" {
		t.Fatalf("Select = %q, want c", got)
	}
}

func TestSelectUnknownActionIsEmpty(t *testing.T) {
	if got := Select(jobspec.Job{Action: "shrug", Data: []string{"x"}}); got != "" {
		t.Fatalf("Select = %q, want empty", got)
	}
}
