package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/records"
	"sandevex-hiring-backend/internal/service"
)

func TestHandleContext_ParsesLinkParams(t *testing.T) {
	var gotLink service.BookingLink
	handler := NewBookingHandler(&stubBooking{
		contextFn: func(_ context.Context, link service.BookingLink) (*service.BookingContext, error) {
			gotLink = link
			return &service.BookingContext{Dates: []string{"2026-09-03"}, Slots: domain.SlotOptions()}, nil
		},
	})

	req := httptest.NewRequest("GET",
		"/booking/context?candidateId=cand-1&name=Jane+Doe&email=jane%40example.com&position=Student", nil)
	rec := httptest.NewRecorder()
	handler.HandleContext(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cand-1", gotLink.CandidateID)
	assert.Equal(t, "Jane Doe", gotLink.Name)
	assert.Equal(t, "jane@example.com", gotLink.Email)
	assert.Equal(t, "Student", gotLink.Position)
}

func TestHandleBook_ValidationErrorsAre400(t *testing.T) {
	handler := NewBookingHandler(&stubBooking{
		book: func(context.Context, *domain.BookingRequest) (*service.BookingResult, error) {
			return nil, service.ErrDateRequired
		},
	})

	req := httptest.NewRequest("POST", "/booking",
		strings.NewReader(`{"email":"jane@example.com","slot":"2-3"}`))
	rec := httptest.NewRecorder()
	handler.HandleBook(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "please choose a date")
}

func TestHandleBook_MalformedBody(t *testing.T) {
	handler := NewBookingHandler(&stubBooking{})

	req := httptest.NewRequest("POST", "/booking", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	handler.HandleBook(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBook_SurfacesUpstreamRejection(t *testing.T) {
	handler := NewBookingHandler(&stubBooking{
		book: func(context.Context, *domain.BookingRequest) (*service.BookingResult, error) {
			return nil, &records.APIError{StatusCode: http.StatusConflict, Message: "Slot is full"}
		},
	})

	req := httptest.NewRequest("POST", "/booking",
		strings.NewReader(`{"email":"jane@example.com","date":"2026-09-03","slot":"2-3"}`))
	rec := httptest.NewRecorder()
	handler.HandleBook(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Slot is full")
}

func TestHandleBook_SuccessReturnsRedirect(t *testing.T) {
	handler := NewBookingHandler(&stubBooking{
		book: func(_ context.Context, req *domain.BookingRequest) (*service.BookingResult, error) {
			return &service.BookingResult{
				Appointment:      &domain.Appointment{ID: "appt-1"},
				ConfirmationSent: true,
				RedirectTo:       "/thank-you",
				RedirectDelayMS:  2500,
			}, nil
		},
	})

	req := httptest.NewRequest("POST", "/booking",
		strings.NewReader(`{"email":"jane@example.com","date":"2026-09-03","slot":"2-3"}`))
	rec := httptest.NewRecorder()
	handler.HandleBook(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var result service.BookingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "/thank-you", result.RedirectTo)
	assert.Equal(t, 2500, result.RedirectDelayMS)
}

func TestWriteAPIError_TransportFailureIs502(t *testing.T) {
	rec := httptest.NewRecorder()
	writeAPIError(rec, assert.AnError)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unable to reach the records service")
}
