package postgres

import (
	"context"
	"database/sql"
	"time"

	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/logger"
	"sandevex-hiring-backend/internal/repository"
)

type dispatchJournal struct {
	db *sql.DB
}

func NewDispatchJournal(db *sql.DB) repository.DispatchJournal {
	return &dispatchJournal{db: db}
}

func (r *dispatchJournal) Create(ctx context.Context, rec *domain.DispatchRecord) error {
	query := `INSERT INTO dispatch_journal (id, candidate_id, email, email_sent_on, recorded, attempts, last_error, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	logger.DatabaseCall("CreateDispatchRecord", query, "candidate_id", rec.CandidateID)
	result, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.CandidateID, rec.Email, rec.EmailSentOn, rec.Recorded, rec.Attempts, rec.LastError, time.Now().UTC().Format(time.RFC3339))
	rows := int64(0)
	if result != nil {
		rows, _ = result.RowsAffected()
	}
	logger.DatabaseResult("CreateDispatchRecord", rows, err)
	return err
}

func (r *dispatchJournal) ListPending(ctx context.Context) ([]domain.DispatchRecord, error) {
	query := `SELECT id, candidate_id, email, email_sent_on, recorded, attempts, last_error, created_on
	          FROM dispatch_journal WHERE recorded = FALSE ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.DispatchRecord
	for rows.Next() {
		var rec domain.DispatchRecord
		if err := rows.Scan(&rec.ID, &rec.CandidateID, &rec.Email, &rec.EmailSentOn, &rec.Recorded, &rec.Attempts, &rec.LastError, &rec.CreatedOn); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *dispatchJournal) MarkRecorded(ctx context.Context, id string) error {
	query := `UPDATE dispatch_journal SET recorded = TRUE WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *dispatchJournal) RecordAttempt(ctx context.Context, id string, lastError string) error {
	query := `UPDATE dispatch_journal SET attempts = attempts + 1, last_error = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, lastError, id)
	return err
}
