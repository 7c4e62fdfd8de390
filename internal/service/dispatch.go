package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/logger"
	"sandevex-hiring-backend/internal/records"
	"sandevex-hiring-backend/internal/repository"
)

type dispatchService struct {
	records records.Client
	email   EmailService
	journal repository.DispatchJournal

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewDispatchService(client records.Client, email EmailService, journal repository.DispatchJournal) DispatchService {
	return &dispatchService{
		records:  client,
		email:    email,
		journal:  journal,
		inFlight: make(map[string]bool),
	}
}

func (s *dispatchService) begin(candidateID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[candidateID] {
		return false
	}
	s.inFlight[candidateID] = true
	return true
}

func (s *dispatchService) end(candidateID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, candidateID)
}

// SendOffer runs the two-phase dispatch: offer email first, then the backend
// offer record. An email failure fails the whole action; a record failure
// after a sent email is a qualified success journaled for reconciliation.
// Concurrent sends for one candidate are collapsed by an in-flight guard.
func (s *dispatchService) SendOffer(ctx context.Context, candidateID string) (*domain.DispatchOutcome, error) {
	log := logger.WithService("dispatch")

	if !s.begin(candidateID) {
		return nil, ErrSendInFlight
	}
	defer s.end(candidateID)

	student, err := s.records.GetStudent(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("candidate lookup failed: %w", err)
	}

	// Refuse a re-send once a prior offer record is observed. A 404 means
	// no offer exists yet; other lookup failures do not block the send.
	if status, err := s.records.GetOfferStatus(ctx, candidateID); err == nil && status != "" {
		return nil, ErrOfferAlreadySent
	} else if err != nil {
		if apiErr, ok := records.AsAPIError(err); !ok || !apiErr.NotFound() {
			log.Warn("offer status pre-check failed", "candidate_id", candidateID, "error", err)
		}
	}

	if err := s.email.SendOfferEmail(ctx, student.Email, student.FullName); err != nil {
		log.Error("offer email failed", "candidate_id", candidateID, "email", student.Email, "error", err)
		return nil, fmt.Errorf("failed to send offer email: %w", err)
	}

	if err := s.records.CreateOfferRecord(ctx, candidateID, student.Email); err != nil {
		// The notification went out; the missing record is journaled and
		// retried out of band rather than reported as a failure.
		log.Warn("offer record creation failed after email send", "candidate_id", candidateID, "error", err)
		s.journalMiss(ctx, candidateID, student.Email, err)
		return &domain.DispatchOutcome{
			CandidateID: candidateID,
			EmailSent:   true,
			Message:     fmt.Sprintf("Email sent to %s but the offer record could not be created yet", student.Email),
		}, nil
	}

	log.Info("offer dispatched", "candidate_id", candidateID, "email", student.Email)
	return &domain.DispatchOutcome{
		CandidateID:   candidateID,
		EmailSent:     true,
		RecordCreated: true,
		Message:       fmt.Sprintf("Offer sent successfully to %s", student.FullName),
	}, nil
}

func (s *dispatchService) journalMiss(ctx context.Context, candidateID, email string, cause error) {
	msg := cause.Error()
	rec := &domain.DispatchRecord{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		Email:       email,
		EmailSentOn: time.Now().UTC().Format(time.RFC3339),
		Attempts:    1,
		LastError:   &msg,
	}
	if err := s.journal.Create(ctx, rec); err != nil {
		logger.Error("failed to journal dispatch record", "candidate_id", candidateID, "error", err)
	}
}

// Reconcile retries record creation for every journaled entry and returns
// the number of entries resolved.
func (s *dispatchService) Reconcile(ctx context.Context) (int, error) {
	log := logger.WithService("dispatch")

	pending, err := s.journal.ListPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending dispatch records: %w", err)
	}

	resolved := 0
	for _, rec := range pending {
		err := s.records.CreateOfferRecord(ctx, rec.CandidateID, rec.Email)
		if err != nil {
			if apiErr, ok := records.AsAPIError(err); ok && apiErr.AlreadyProcessed() {
				// The record exists after all; the entry is settled.
				err = nil
			}
		}
		if err != nil {
			log.Debug("dispatch reconciliation attempt failed", "candidate_id", rec.CandidateID, "error", err)
			if jerr := s.journal.RecordAttempt(ctx, rec.ID, err.Error()); jerr != nil {
				log.Error("failed to record reconciliation attempt", "id", rec.ID, "error", jerr)
			}
			continue
		}
		if jerr := s.journal.MarkRecorded(ctx, rec.ID); jerr != nil {
			log.Error("failed to settle dispatch record", "id", rec.ID, "error", jerr)
			continue
		}
		resolved++
		log.Info("dispatch record reconciled", "candidate_id", rec.CandidateID)
	}
	return resolved, nil
}
