package jobspec

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	perr "quipbot/internal/platform/errors"
)

func mustValidate(t *testing.T, rec Record) Job {
	t.Helper()
	job, err := Validate(rec)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return job
}

func TestValidateNormalizesKeywords(t *testing.T) {
	job := mustValidate(t, Record{
		Keywords:    StringList{" Ping ", "PING", "pong", ""},
		MessageType: "user_message",
		JobAction:   "phrase",
		Data:        StringList{"hi"},
	})
	if len(job.Keywords) != 2 || job.Keywords[0] != "ping" || job.Keywords[1] != "pong" {
		t.Fatalf("Keywords = %v", job.Keywords)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
	}{
		{"empty keywords", Record{MessageType: "command", JobAction: "phrase", Data: StringList{"x"}}},
		{"blank keywords", Record{Keywords: StringList{"  "}, MessageType: "command", JobAction: "phrase", Data: StringList{"x"}}},
		{"bad message type", Record{Keywords: StringList{"a"}, MessageType: "broadcast", JobAction: "phrase", Data: StringList{"x"}}},
		{"bad action", Record{Keywords: StringList{"a"}, MessageType: "command", JobAction: "shuffle", Data: StringList{"x"}}},
		{"random phrase without data", Record{Keywords: StringList{"a"}, MessageType: "command", JobAction: "random_phrase"}},
		{"negative countdown", Record{Keywords: StringList{"a"}, MessageType: "command", JobAction: "phrase", Data: StringList{"x"}, Countdown: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Validate(tc.rec); err == nil {
				t.Fatalf("Validate accepted %+v", tc.rec)
			} else if perr.CodeOf(err) != perr.ErrorCodeValidation {
				t.Fatalf("code = %v, want validation", perr.CodeOf(err))
			}
		})
	}
}

func TestValidateLegacyActionField(t *testing.T) {
	job := mustValidate(t, Record{
		Keywords:     StringList{"roll"},
		MessageType:  "command",
		LegacyAction: "Random_Phrase",
		Data:         StringList{"one", "two"},
	})
	if job.Action != ActionRandomPhrase {
		t.Fatalf("Action = %q", job.Action)
	}
}

func TestValidateGeneratesStableID(t *testing.T) {
	job := mustValidate(t, Record{
		Keywords:    StringList{"hi"},
		MessageType: "user_message",
		JobAction:   "phrase",
		Data:        StringList{"hello"},
	})
	if job.ID == "" {
		t.Fatalf("expected a generated job id")
	}
	kept := mustValidate(t, Record{
		Keywords:    StringList{"hi"},
		MessageType: "user_message",
		JobAction:   "phrase",
		Data:        StringList{"hello"},
		JobID:       "fixed-id",
	})
	if kept.ID != "fixed-id" {
		t.Fatalf("ID = %q, want fixed-id", kept.ID)
	}
}

func TestStringListDecodesBothShapes(t *testing.T) {
	var rec Record
	raw := `{"keywords": "Ping", "message_type": "user_message", "job_action": "phrase", "data": "pong"}`
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rec.Keywords) != 1 || rec.Keywords[0] != "Ping" {
		t.Fatalf("Keywords = %v", rec.Keywords)
	}
	if len(rec.Data) != 1 || rec.Data[0] != "pong" {
		t.Fatalf("Data = %v", rec.Data)
	}
}

func TestLoadFailsFast(t *testing.T) {
	_, err := Load([]Record{
		{Keywords: StringList{"ok"}, MessageType: "command", JobAction: "phrase", Data: StringList{"x"}},
		{Keywords: StringList{"bad"}, MessageType: "nope", JobAction: "phrase", Data: StringList{"x"}},
	})
	if err == nil {
		t.Fatalf("Load accepted a bad record")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.json")
	body := `[{"keywords": ["ping"], "message_type": "user_message", "job_action": "phrase", "data": "pong"}]`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	jobs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Phrase() != "pong" {
		t.Fatalf("jobs = %+v", jobs)
	}
}
