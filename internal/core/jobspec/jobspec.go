// Package jobspec validates and normalizes rule definitions from raw configuration
package jobspec

import (
	"encoding/json"
	"strings"

	perr "quipbot/internal/platform/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MessageType says which classified message kind a job may match
type MessageType string

// Supported message types
const (
	MessageCommand  MessageType = "command"
	MessageUserText MessageType = "user_message"
)

// Action says how a fired job produces its response
type Action string

// Supported response actions
const (
	ActionPhrase       Action = "phrase"
	ActionRandomPhrase Action = "random_phrase"
)

// StringList decodes either a bare JSON string or an array of strings
type StringList []string

// UnmarshalJSON promotes a single string to a one element list
func (l *StringList) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}
	var xs []string
	if err := json.Unmarshal(b, &xs); err != nil {
		return err
	}
	*l = StringList(xs)
	return nil
}

// Record is one raw rule as found in configuration
// field shapes stay permissive here, Validate does the real checking
type Record struct {
	Keywords       StringList `json:"keywords"`
	MessageType    string     `json:"message_type"`
	JobAction      string     `json:"job_action"`
	LegacyAction   string     `json:"job"` // older rule files used "job"
	Data           StringList `json:"data"`
	Countdown      int        `json:"countdown" validate:"gte=0"`
	MinutesTimeout int        `json:"minutes_timeout" validate:"gte=0"`
	JobID          string     `json:"job_id"`
}

// Job is one validated immutable rule
type Job struct {
	ID             string
	Keywords       []string // lowercased, deduped, never empty
	MessageType    MessageType
	Action         Action
	Data           []string
	Countdown      int
	MinutesTimeout int
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks one raw record and returns the normalized immutable Job
// a missing job_id is generated exactly once here, never on later access
func Validate(rec Record) (Job, error) {
	if err := validate.Struct(rec); err != nil {
		return Job{}, perr.Wrap(err, perr.ErrorCodeValidation, "invalid job record")
	}

	kws := make([]string, 0, len(rec.Keywords))
	seen := make(map[string]struct{}, len(rec.Keywords))
	for _, kw := range rec.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		kws = append(kws, kw)
	}
	if len(kws) == 0 {
		return Job{}, perr.Validationf("job has no keywords")
	}

	mt := MessageType(strings.ToLower(strings.TrimSpace(rec.MessageType)))
	switch mt {
	case MessageCommand, MessageUserText:
	default:
		return Job{}, perr.Validationf("invalid message_type %q", rec.MessageType)
	}

	rawAction := rec.JobAction
	if rawAction == "" {
		rawAction = rec.LegacyAction
	}
	act := Action(strings.ToLower(strings.TrimSpace(rawAction)))
	switch act {
	case ActionPhrase:
		if len(rec.Data) > 1 {
			return Job{}, perr.Validationf("phrase action wants a single data string, got %d", len(rec.Data))
		}
	case ActionRandomPhrase:
		if len(rec.Data) == 0 {
			return Job{}, perr.Validationf("random_phrase action wants a non empty data list")
		}
	default:
		return Job{}, perr.Validationf("invalid job_action %q", rawAction)
	}

	id := strings.TrimSpace(rec.JobID)
	if id == "" {
		id = uuid.NewString()
	}

	data := make([]string, len(rec.Data))
	copy(data, rec.Data)

	return Job{
		ID:             id,
		Keywords:       kws,
		MessageType:    mt,
		Action:         act,
		Data:           data,
		Countdown:      rec.Countdown,
		MinutesTimeout: rec.MinutesTimeout,
	}, nil
}

// Phrase returns the single data string for phrase jobs, empty when unset
func (j Job) Phrase() string {
	if len(j.Data) == 0 {
		return ""
	}
	return j.Data[0]
}

// HasKeyword reports membership in the normalized keyword set
func (j Job) HasKeyword(kw string) bool {
	for _, k := range j.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}
