package service

import (
	"context"
	"errors"

	"sandevex-hiring-backend/internal/domain"
)

var (
	ErrSendInFlight       = errors.New("an offer send is already in progress for this candidate")
	ErrOfferAlreadySent   = errors.New("an offer has already been sent to this candidate")
	ErrInviteAlreadySent  = errors.New("a booking email has already been sent for this offer")
	ErrOfferNotFound      = errors.New("offer not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ResponseResult is the outcome of one response-page resolution. Message is
// user-facing copy selected by the state machine. When State is checking and
// the offer is still pending, AcceptURL/DeclineURL re-invoke the flow with
// the corresponding action. Location, when set, is the canonical page
// location with the action parameter stripped so a reload cannot resubmit.
type ResponseResult struct {
	State      domain.ResponseState `json:"state"`
	Message    string               `json:"message"`
	Offer      *domain.Offer        `json:"offer,omitempty"`
	AcceptURL  string               `json:"acceptUrl,omitempty"`
	DeclineURL string               `json:"declineUrl,omitempty"`
	Location   string               `json:"location,omitempty"`
}

// BookingLink carries the parameters a booking invitation link encodes.
type BookingLink struct {
	CandidateID string
	Name        string
	Email       string
	Position    string
}

// BookingContext is everything the booking form needs on load.
type BookingContext struct {
	Prefill          domain.BookingRequest `json:"prefill"`
	Dates            []string              `json:"dates"`
	Slots            []domain.SlotOption   `json:"slots"`
	OfficeAddressURL string                `json:"officeAddressUrl"`
	CutoffNote       string                `json:"cutoffNote"`
}

// BookingResult reports a successful submission and where the caller should
// navigate after the fixed confirmation delay.
type BookingResult struct {
	Appointment      *domain.Appointment `json:"appointment"`
	ConfirmationSent bool                `json:"confirmationSent"`
	RedirectTo       string              `json:"redirectTo"`
	RedirectDelayMS  int                 `json:"redirectDelayMs"`
}

// RosterPage is one page of the candidate roster with per-row offer status.
// Statuses are best-effort: a missing key means no offer exists or the
// status lookup failed.
type RosterPage struct {
	Students      []domain.Student              `json:"students"`
	Total         int                           `json:"total"`
	Page          int                           `json:"page"`
	Limit         int                           `json:"limit"`
	OfferStatuses map[string]domain.OfferStatus `json:"offerStatuses"`
}

type OfferResponseService interface {
	Resolve(ctx context.Context, email, action string) *ResponseResult
}

type BookingService interface {
	Context(ctx context.Context, link BookingLink) (*BookingContext, error)
	Book(ctx context.Context, req *domain.BookingRequest) (*BookingResult, error)
}

type DispatchService interface {
	SendOffer(ctx context.Context, candidateID string) (*domain.DispatchOutcome, error)
	Reconcile(ctx context.Context) (int, error)
}

type CandidateService interface {
	List(ctx context.Context, page, limit int) (*RosterPage, error)
}

type AppointmentService interface {
	ListOffers(ctx context.Context) ([]domain.OfferListing, error)
	SendBookingInvite(ctx context.Context, offerID string) error
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	CreateAppointment(ctx context.Context, req *domain.BookingRequest) (*domain.Appointment, error)
	MarkCollected(ctx context.Context, appointmentID string) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type EmailService interface {
	SendOfferEmail(ctx context.Context, email, fullName string) error
	SendBookingInvite(ctx context.Context, email, fullName, position, candidateID string) error
	SendBookingConfirmation(ctx context.Context, appt *domain.Appointment) error
}
