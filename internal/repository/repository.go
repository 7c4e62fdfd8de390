package repository

import (
	"context"

	"sandevex-hiring-backend/internal/domain"
)

// DispatchJournal stores "notification sent, record pending" entries for the
// offer dispatch saga. Entries are appended when the backend create-record
// call fails after the email went out, and resolved by the reconciliation
// job once the backend accepts the record.
type DispatchJournal interface {
	Create(ctx context.Context, rec *domain.DispatchRecord) error
	ListPending(ctx context.Context) ([]domain.DispatchRecord, error)
	MarkRecorded(ctx context.Context, id string) error
	RecordAttempt(ctx context.Context, id string, lastError string) error
}
