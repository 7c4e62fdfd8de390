package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/service"
)

// BookingHandler serves the candidate-facing slot booking flow.
type BookingHandler struct {
	booking service.BookingService
}

func NewBookingHandler(booking service.BookingService) *BookingHandler {
	return &BookingHandler{booking: booking}
}

// HandleContext returns the booking form's initial state: link prefill,
// bookable dates, and the two slot options with their cutoff labels.
func (h *BookingHandler) HandleContext(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	link := service.BookingLink{
		CandidateID: query.Get("candidateId"),
		Name:        query.Get("name"),
		Email:       query.Get("email"),
		Position:    query.Get("position"),
	}

	ctx, err := h.booking.Context(r.Context(), link)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ctx)
}

// HandleBook submits an appointment.
func (h *BookingHandler) HandleBook(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.booking.Book(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrDateRequired),
			errors.Is(err, service.ErrInvalidSlot):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeAPIError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, result)
}
