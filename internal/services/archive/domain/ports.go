package domain

import "context"

// WriterPort records delivered answers
// implementations must never block message handling on failure
type WriterPort interface {
	Record(ctx context.Context, rec AnswerRecord) error
}

// ReaderPort lists recent archived answers for operations
type ReaderPort interface {
	Recent(ctx context.Context, limit int) ([]AnswerRecord, error)
}

// StorageRepo is the persistence surface bound per queryer
type StorageRepo interface {
	InsertAnswer(ctx context.Context, rec AnswerRecord) error
	ListRecent(ctx context.Context, limit int) ([]AnswerRecord, error)
}
