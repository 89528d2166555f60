// Package domain defines the core types and interfaces for the archive service
package domain

import "time"

// AnswerRecord is one delivered response kept for auditing
type AnswerRecord struct {
	ChatID       int64
	MessageID    int64
	FromID       int64
	FromUsername string
	JobID        string
	Answer       string
	CreatedAt    time.Time
}
