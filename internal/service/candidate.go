package service

import (
	"context"

	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/logger"
	"sandevex-hiring-backend/internal/records"
)

type candidateService struct {
	records records.Client
}

func NewCandidateService(client records.Client) CandidateService {
	return &candidateService{records: client}
}

// List fetches one roster page and decorates each row with its offer status.
// Status lookups are best-effort: a candidate without an offer (404) simply
// has no entry, and other failures are logged and skipped so one bad row
// cannot take down the roster.
func (s *candidateService) List(ctx context.Context, page, limit int) (*RosterPage, error) {
	log := logger.WithService("candidates")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	students, total, err := s.records.ListStudents(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	statuses := make(map[string]domain.OfferStatus, len(students))
	for _, student := range students {
		status, err := s.records.GetOfferStatus(ctx, student.ID)
		if err != nil {
			if apiErr, ok := records.AsAPIError(err); !ok || !apiErr.NotFound() {
				log.Warn("offer status lookup failed", "candidate_id", student.ID, "error", err)
			}
			continue
		}
		if status != "" {
			statuses[student.ID] = status
		}
	}

	return &RosterPage{
		Students:      students,
		Total:         total,
		Page:          page,
		Limit:         limit,
		OfferStatuses: statuses,
	}, nil
}
