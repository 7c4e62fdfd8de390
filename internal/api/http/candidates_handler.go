package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"sandevex-hiring-backend/internal/service"
)

// CandidatesHandler serves the admin candidate roster and offer dispatch.
type CandidatesHandler struct {
	candidates service.CandidateService
	dispatch   service.DispatchService
}

func NewCandidatesHandler(candidates service.CandidateService, dispatch service.DispatchService) *CandidatesHandler {
	return &CandidatesHandler{candidates: candidates, dispatch: dispatch}
}

// HandleList returns one page of the roster with per-row offer statuses.
func (h *CandidatesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	roster, err := h.candidates.List(r.Context(), page, limit)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

// HandleSendOffer triggers the two-phase offer dispatch for one candidate.
// A record-creation failure after a sent email still returns 200; the
// outcome body carries recordCreated=false for that qualified success.
func (h *CandidatesHandler) HandleSendOffer(w http.ResponseWriter, r *http.Request) {
	candidateID := mux.Vars(r)["candidateId"]
	if candidateID == "" {
		writeError(w, http.StatusBadRequest, "Missing candidate ID")
		return
	}

	outcome, err := h.dispatch.SendOffer(r.Context(), candidateID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSendInFlight):
			writeError(w, http.StatusConflict, "An offer send is already in progress for this candidate")
		case errors.Is(err, service.ErrOfferAlreadySent):
			writeError(w, http.StatusConflict, "An offer has already been sent to this candidate")
		default:
			writeAPIError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}
