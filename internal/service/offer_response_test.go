package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/records"
	"sandevex-hiring-backend/internal/service"
)

func pendingOffer(email string) *domain.Offer {
	return &domain.Offer{
		ID:          "offer-1",
		CandidateID: "cand-1",
		Email:       email,
		Status:      domain.OfferPending,
		SentAt:      "2026-08-30T10:00:00Z",
		ExpiresAt:   "2026-08-31T10:00:00Z",
	}
}

func TestResolve_MissingEmail(t *testing.T) {
	client := new(MockRecordsClient)
	svc := service.NewOfferResponseService(client)

	result := svc.Resolve(context.Background(), "", "accept")

	assert.Equal(t, domain.StateError, result.State)
	assert.Contains(t, result.Message, "Invalid response link")
	client.AssertNotCalled(t, "CheckOfferByEmail")
}

func TestResolve_PendingNoAction_RendersPrompt(t *testing.T) {
	client := new(MockRecordsClient)
	client.On("CheckOfferByEmail", mock.Anything, "jane@example.com").
		Return(pendingOffer("jane@example.com"), nil)
	svc := service.NewOfferResponseService(client)

	result := svc.Resolve(context.Background(), "jane@example.com", "")

	assert.Equal(t, domain.StateChecking, result.State)
	require.NotNil(t, result.Offer)
	assert.Contains(t, result.AcceptURL, "status=accept")
	assert.Contains(t, result.DeclineURL, "status=decline")
	client.AssertNotCalled(t, "RespondToOffer")
}

func TestResolve_PendingAccept_Succeeds(t *testing.T) {
	client := new(MockRecordsClient)
	client.On("CheckOfferByEmail", mock.Anything, "jane@example.com").
		Return(pendingOffer("jane@example.com"), nil)
	client.On("RespondToOffer", mock.Anything, "jane@example.com", domain.ActionAccept).
		Return(nil)
	svc := service.NewOfferResponseService(client)

	result := svc.Resolve(context.Background(), "jane@example.com", "accept")

	assert.Equal(t, domain.StateSuccess, result.State)
	assert.Contains(t, result.Message, "Congratulations")
	assert.Equal(t, "/respond?email=jane%40example.com", result.Location)
	assert.NotContains(t, result.Location, "status=")
	client.AssertExpectations(t)
}

func TestResolve_PendingDecline_Succeeds(t *testing.T) {
	client := new(MockRecordsClient)
	client.On("CheckOfferByEmail", mock.Anything, "jane@example.com").
		Return(pendingOffer("jane@example.com"), nil)
	client.On("RespondToOffer", mock.Anything, "jane@example.com", domain.ActionDecline).
		Return(nil)
	svc := service.NewOfferResponseService(client)

	result := svc.Resolve(context.Background(), "jane@example.com", "decline")

	assert.Equal(t, domain.StateSuccess, result.State)
	assert.Contains(t, result.Message, "Thank you for letting us know")
}

func TestResolve_TerminalStatuses_SkipSubmission(t *testing.T) {
	tests := []struct {
		name      string
		status    domain.OfferStatus
		wantState domain.ResponseState
	}{
		{"accepted", domain.OfferAccepted, domain.StateAlreadyProcessed},
		{"declined", domain.OfferDeclined, domain.StateAlreadyProcessed},
		{"expired", domain.OfferExpired, domain.StateExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := pendingOffer("jane@example.com")
			offer.Status = tt.status

			client := new(MockRecordsClient)
			client.On("CheckOfferByEmail", mock.Anything, "jane@example.com").
				Return(offer, nil)
			svc := service.NewOfferResponseService(client)

			result := svc.Resolve(context.Background(), "jane@example.com", "accept")

			assert.Equal(t, tt.wantState, result.State)
			client.AssertNotCalled(t, "RespondToOffer")
		})
	}
}

func TestResolve_InvalidAction(t *testing.T) {
	client := new(MockRecordsClient)
	client.On("CheckOfferByEmail", mock.Anything, "jane@example.com").
		Return(pendingOffer("jane@example.com"), nil)
	svc := service.NewOfferResponseService(client)

	result := svc.Resolve(context.Background(), "jane@example.com", "maybe")

	assert.Equal(t, domain.StateError, result.State)
	client.AssertNotCalled(t, "RespondToOffer")
}

func TestResolve_CheckTransportError(t *testing.T) {
	client := new(MockRecordsClient)
	client.On("CheckOfferByEmail", mock.Anything, "jane@example.com").
		Return(nil, errors.New("dial tcp: connection refused"))
	svc := service.NewOfferResponseService(client)

	result := svc.Resolve(context.Background(), "jane@example.com", "accept")

	assert.Equal(t, domain.StateError, result.State)
	assert.Contains(t, result.Message, "Unable to connect")
}

func TestResolve_SubmitRejection_OverridesPrecheck(t *testing.T) {
	tests := []struct {
		name      string
		apiErr    *records.APIError
		wantState domain.ResponseState
	}{
		{
			name:      "structured already_processed code",
			apiErr:    &records.APIError{StatusCode: http.StatusConflict, Code: records.CodeAlreadyProcessed},
			wantState: domain.StateAlreadyProcessed,
		},
		{
			name:      "structured expired code",
			apiErr:    &records.APIError{StatusCode: http.StatusGone, Code: records.CodeOfferExpired},
			wantState: domain.StateExpired,
		},
		{
			name:      "legacy message substring already processed",
			apiErr:    &records.APIError{StatusCode: http.StatusBadRequest, Message: "Offer has already been processed"},
			wantState: domain.StateAlreadyProcessed,
		},
		{
			name:      "legacy message substring expired",
			apiErr:    &records.APIError{StatusCode: http.StatusBadRequest, Message: "Offer expired"},
			wantState: domain.StateExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockRecordsClient)
			client.On("CheckOfferByEmail", mock.Anything, "jane@example.com").
				Return(pendingOffer("jane@example.com"), nil)
			client.On("RespondToOffer", mock.Anything, "jane@example.com", domain.ActionAccept).
				Return(tt.apiErr)
			svc := service.NewOfferResponseService(client)

			result := svc.Resolve(context.Background(), "jane@example.com", "accept")

			assert.Equal(t, tt.wantState, result.State)
		})
	}
}

func TestResolve_SubmitTransportError(t *testing.T) {
	client := new(MockRecordsClient)
	client.On("CheckOfferByEmail", mock.Anything, "jane@example.com").
		Return(pendingOffer("jane@example.com"), nil)
	client.On("RespondToOffer", mock.Anything, "jane@example.com", domain.ActionAccept).
		Return(errors.New("dial tcp: i/o timeout"))
	svc := service.NewOfferResponseService(client)

	result := svc.Resolve(context.Background(), "jane@example.com", "accept")

	assert.Equal(t, domain.StateError, result.State)
	assert.Contains(t, result.Message, "Unable to process your response")
}
