package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/service"
)

// AppointmentsHandler serves the admin offer/appointment tracking views.
type AppointmentsHandler struct {
	appointments service.AppointmentService
}

func NewAppointmentsHandler(appointments service.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{appointments: appointments}
}

func (h *AppointmentsHandler) HandleListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.appointments.ListOffers(r.Context())
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"offers": offers})
}

func (h *AppointmentsHandler) HandleSendBookingInvite(w http.ResponseWriter, r *http.Request) {
	offerID := mux.Vars(r)["offerId"]

	err := h.appointments.SendBookingInvite(r.Context(), offerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteAlreadySent):
			writeError(w, http.StatusConflict, "A booking email has already been sent for this offer")
		case errors.Is(err, service.ErrOfferNotFound):
			writeError(w, http.StatusNotFound, "Offer not found")
		default:
			writeAPIError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking email sent"})
}

func (h *AppointmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointments.ListAppointments(r.Context())
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"appointments": appointments})
}

func (h *AppointmentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	appt, err := h.appointments.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDateRequired), errors.Is(err, service.ErrInvalidSlot):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeAPIError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"appointment": appt})
}

// HandleMarkCollected flips the one-way letter-collected flag.
func (h *AppointmentsHandler) HandleMarkCollected(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["id"]

	if err := h.appointments.MarkCollected(r.Context(), appointmentID); err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Letter marked as collected"})
}
