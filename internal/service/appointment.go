package service

import (
	"context"
	"sync"

	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/logger"
	"sandevex-hiring-backend/internal/records"
)

type appointmentService struct {
	records records.Client
	email   EmailService

	mu          sync.Mutex
	invitesSent map[string]bool
}

func NewAppointmentService(client records.Client, email EmailService) AppointmentService {
	return &appointmentService{
		records:     client,
		email:       email,
		invitesSent: make(map[string]bool),
	}
}

func (s *appointmentService) ListOffers(ctx context.Context) ([]domain.OfferListing, error) {
	return s.records.ListOffers(ctx)
}

// SendBookingInvite emails the slot-booking link for one offer. A per-offer
// guard keeps the control disabled once an invite went out in this process.
func (s *appointmentService) SendBookingInvite(ctx context.Context, offerID string) error {
	log := logger.WithService("appointments")

	s.mu.Lock()
	if s.invitesSent[offerID] {
		s.mu.Unlock()
		return ErrInviteAlreadySent
	}
	s.mu.Unlock()

	offers, err := s.records.ListOffers(ctx)
	if err != nil {
		return err
	}

	var offer *domain.OfferListing
	for i := range offers {
		if offers[i].ID == offerID {
			offer = &offers[i]
			break
		}
	}
	if offer == nil {
		return ErrOfferNotFound
	}

	name := offer.Candidate.FullName
	if name == "" {
		name = "Candidate"
	}
	if err := s.email.SendBookingInvite(ctx, offer.Email, name, "Student", offer.Candidate.ID); err != nil {
		log.Warn("booking invite failed", "offer_id", offerID, "email", offer.Email, "error", err)
		return err
	}

	s.mu.Lock()
	s.invitesSent[offerID] = true
	s.mu.Unlock()

	log.Info("booking invite sent", "offer_id", offerID, "email", offer.Email)
	return nil
}

func (s *appointmentService) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return s.records.ListAppointments(ctx)
}

func (s *appointmentService) CreateAppointment(ctx context.Context, req *domain.BookingRequest) (*domain.Appointment, error) {
	if req.Date == "" {
		return nil, ErrDateRequired
	}
	if !req.Slot.Valid() {
		return nil, ErrInvalidSlot
	}
	return s.records.CreateAppointment(ctx, req)
}

// MarkCollected flips the one-way letter-collected flag. The records API
// rejects a second flip; its message is surfaced unchanged.
func (s *appointmentService) MarkCollected(ctx context.Context, appointmentID string) error {
	return s.records.MarkLetterCollected(ctx, appointmentID)
}
