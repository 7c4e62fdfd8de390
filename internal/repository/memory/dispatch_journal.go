// Package memory provides an in-process dispatch journal for deployments
// that run without a database. Entries do not survive a restart; the
// consistency window is accepted there, matching the journal config type
// "memory".
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/repository"
)

type dispatchJournal struct {
	mu      sync.Mutex
	records map[string]*domain.DispatchRecord
}

func NewDispatchJournal() repository.DispatchJournal {
	return &dispatchJournal{records: make(map[string]*domain.DispatchRecord)}
}

func (r *dispatchJournal) Create(_ context.Context, rec *domain.DispatchRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[rec.ID]; exists {
		return fmt.Errorf("dispatch record %s already exists", rec.ID)
	}
	stored := *rec
	if stored.CreatedOn == "" {
		stored.CreatedOn = time.Now().UTC().Format(time.RFC3339)
	}
	r.records[rec.ID] = &stored
	return nil
}

func (r *dispatchJournal) ListPending(_ context.Context) ([]domain.DispatchRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pending []domain.DispatchRecord
	for _, rec := range r.records {
		if !rec.Recorded {
			pending = append(pending, *rec)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].CreatedOn < pending[j].CreatedOn })
	return pending, nil
}

func (r *dispatchJournal) MarkRecorded(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return fmt.Errorf("dispatch record %s not found", id)
	}
	rec.Recorded = true
	return nil
}

func (r *dispatchJournal) RecordAttempt(_ context.Context, id string, lastError string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return fmt.Errorf("dispatch record %s not found", id)
	}
	rec.Attempts++
	rec.LastError = &lastError
	return nil
}
