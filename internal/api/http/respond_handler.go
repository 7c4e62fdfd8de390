package http

import (
	"net/http"

	"sandevex-hiring-backend/internal/service"
)

// RespondHandler serves the candidate-facing offer response page data.
type RespondHandler struct {
	offers service.OfferResponseService
}

func NewRespondHandler(offers service.OfferResponseService) *RespondHandler {
	return &RespondHandler{offers: offers}
}

// HandleRespond resolves an offer response link. The query carries the
// candidate's email and, when a decision button was clicked, the requested
// action in `status` (matching the link format the offer email embeds).
func (h *RespondHandler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	action := r.URL.Query().Get("status")

	result := h.offers.Resolve(r.Context(), email, action)
	writeJSON(w, http.StatusOK, result)
}
