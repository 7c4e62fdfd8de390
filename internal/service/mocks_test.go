package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sandevex-hiring-backend/internal/domain"
)

// MockRecordsClient
type MockRecordsClient struct {
	mock.Mock
}

func (m *MockRecordsClient) ListStudents(ctx context.Context, page, limit int) ([]domain.Student, int, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Student), args.Int(1), args.Error(2)
}
func (m *MockRecordsClient) GetStudent(ctx context.Context, id string) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}
func (m *MockRecordsClient) ListOffers(ctx context.Context) ([]domain.OfferListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfferListing), args.Error(1)
}
func (m *MockRecordsClient) GetOfferStatus(ctx context.Context, candidateID string) (domain.OfferStatus, error) {
	args := m.Called(ctx, candidateID)
	return args.Get(0).(domain.OfferStatus), args.Error(1)
}
func (m *MockRecordsClient) CheckOfferByEmail(ctx context.Context, email string) (*domain.Offer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}
func (m *MockRecordsClient) CreateOfferRecord(ctx context.Context, candidateID, email string) error {
	args := m.Called(ctx, candidateID, email)
	return args.Error(0)
}
func (m *MockRecordsClient) RespondToOffer(ctx context.Context, email string, action domain.ResponseAction) error {
	args := m.Called(ctx, email, action)
	return args.Error(0)
}
func (m *MockRecordsClient) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}
func (m *MockRecordsClient) CreateAppointment(ctx context.Context, req *domain.BookingRequest) (*domain.Appointment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}
func (m *MockRecordsClient) MarkLetterCollected(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}
func (m *MockRecordsClient) ListSlotDates(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOfferEmail(ctx context.Context, email, fullName string) error {
	args := m.Called(ctx, email, fullName)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingInvite(ctx context.Context, email, fullName, position, candidateID string) error {
	args := m.Called(ctx, email, fullName, position, candidateID)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, appt *domain.Appointment) error {
	args := m.Called(ctx, appt)
	return args.Error(0)
}

// MockDispatchJournal
type MockDispatchJournal struct {
	mock.Mock
}

func (m *MockDispatchJournal) Create(ctx context.Context, rec *domain.DispatchRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockDispatchJournal) ListPending(ctx context.Context) ([]domain.DispatchRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DispatchRecord), args.Error(1)
}
func (m *MockDispatchJournal) MarkRecorded(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockDispatchJournal) RecordAttempt(ctx context.Context, id string, lastError string) error {
	args := m.Called(ctx, id, lastError)
	return args.Error(0)
}
