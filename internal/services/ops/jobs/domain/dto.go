// Package domain holds DTOs for the jobs operations endpoints
package domain

import "quipbot/internal/core/trigger"

// JobView is the read only representation of one configured rule
type JobView struct {
	ID             string   `json:"id"`
	Keywords       []string `json:"keywords"`
	MessageType    string   `json:"message_type"`
	Action         string   `json:"action"`
	Data           []string `json:"data"`
	Countdown      int      `json:"countdown"`
	MinutesTimeout int      `json:"minutes_timeout"`
}

// TriggersResponse lists pending countdown records
type TriggersResponse struct {
	Records []trigger.RecordView `json:"records"`
}

// AnswerInput is a dry run probe message
type AnswerInput struct {
	ChatID       int64  `json:"chat_id"`
	FromID       int64  `json:"from_id"`
	FromUsername string `json:"from_username"`
	Text         string `json:"text" validate:"required,min=1"`
}

// AnswerResponse is the dry run outcome
type AnswerResponse struct {
	Answered bool   `json:"answered"`
	JobID    string `json:"job_id,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

// ArchiveRow is one archived delivered answer
type ArchiveRow struct {
	ChatID       int64  `json:"chat_id"`
	MessageID    int64  `json:"message_id"`
	FromID       int64  `json:"from_id"`
	FromUsername string `json:"from_username"`
	JobID        string `json:"job_id"`
	Answer       string `json:"answer"`
	CreatedAt    string `json:"created_at"`
}
