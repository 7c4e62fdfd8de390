package service

import (
	"context"
	"errors"

	"sandevex-hiring-backend/internal/config"
	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/logger"
	"sandevex-hiring-backend/internal/records"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrDateRequired  = errors.New("please choose a date")
	ErrInvalidSlot   = errors.New("invalid slot selection")
)

const (
	thankYouPath      = "/thank-you"
	redirectDelayMS   = 2500
	bookingCutoffNote = "Slots must be booked at least 3 hours before the scheduled time."
)

type bookingService struct {
	records records.Client
	email   EmailService
	cfg     config.EmailConfig
}

func NewBookingService(client records.Client, email EmailService, cfg config.EmailConfig) BookingService {
	return &bookingService{records: client, email: email, cfg: cfg}
}

// Context assembles the booking form's initial state: prefill from the link
// parameters, a best-effort phone lookup, the server-authoritative date
// list, and the two fixed slot options. The cutoff labels are informational;
// the records API enforces the actual windows.
func (s *bookingService) Context(ctx context.Context, link BookingLink) (*BookingContext, error) {
	log := logger.WithService("booking")

	prefill := domain.BookingRequest{
		CandidateID: link.CandidateID,
		Name:        link.Name,
		Email:       link.Email,
		Position:    link.Position,
		Slot:        domain.SlotTwoToThree,
	}

	if link.CandidateID != "" {
		student, err := s.records.GetStudent(ctx, link.CandidateID)
		if err != nil {
			// Best-effort: the phone field stays blank and editable.
			log.Debug("candidate phone lookup failed", "candidate_id", link.CandidateID, "error", err)
		} else if student.Mobile != "" {
			prefill.Phone = student.Mobile
		}
	}

	dates, err := s.records.ListSlotDates(ctx)
	if err != nil {
		return nil, err
	}

	return &BookingContext{
		Prefill:          prefill,
		Dates:            dates,
		Slots:            domain.SlotOptions(),
		OfficeAddressURL: s.cfg.OfficeAddressURL,
		CutoffNote:       bookingCutoffNote,
	}, nil
}

// Book submits the appointment. On success a confirmation email goes out
// best-effort; its failure does not fail the booking.
func (s *bookingService) Book(ctx context.Context, req *domain.BookingRequest) (*BookingResult, error) {
	log := logger.WithService("booking")

	if req.Email == "" {
		return nil, ErrEmailRequired
	}
	if req.Date == "" {
		return nil, ErrDateRequired
	}
	if !req.Slot.Valid() {
		return nil, ErrInvalidSlot
	}

	appt, err := s.records.CreateAppointment(ctx, req)
	if err != nil {
		log.Warn("appointment submission failed", "candidate_id", req.CandidateID, "error", err)
		return nil, err
	}

	confirmed := true
	if err := s.email.SendBookingConfirmation(ctx, appt); err != nil {
		// The booking stands even when the confirmation mail does not go out.
		log.Warn("confirmation email failed", "email", appt.Email, "error", err)
		confirmed = false
	}

	log.Info("appointment booked", "appointment_id", appt.ID, "date", appt.Date, "slot", appt.Slot)
	return &BookingResult{
		Appointment:      appt,
		ConfirmationSent: confirmed,
		RedirectTo:       thankYouPath,
		RedirectDelayMS:  redirectDelayMS,
	}, nil
}
