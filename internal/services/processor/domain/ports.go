package domain

import (
	"context"

	"quipbot/internal/core/jobspec"
	"quipbot/internal/core/message"
	"quipbot/internal/core/trigger"
)

// AnswererPort is the external port the transport drives per message
type AnswererPort interface {
	// Answer evaluates msg against the configured jobs and returns the
	// first firing job's response, or an empty Answer when nothing fires
	Answer(ctx context.Context, msg message.Message) Answer
}

// InspectorPort exposes read only views of the engine for operations
type InspectorPort interface {
	// Jobs returns the loaded job set in configuration order
	Jobs() []jobspec.Job

	// Triggers returns the pending countdown records
	Triggers() []trigger.RecordView

	// Preview evaluates msg against the job set with isolated trigger
	// state, leaving live throttling untouched
	Preview(ctx context.Context, msg message.Message) Answer
}
