package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"sandevex-hiring-backend/internal/security"
	"sandevex-hiring-backend/internal/service"
)

// Services bundles the handler dependencies for route registration.
type Services struct {
	Offers       service.OfferResponseService
	Booking      service.BookingService
	Candidates   service.CandidateService
	Dispatch     service.DispatchService
	Appointments service.AppointmentService
	Auth         service.AuthService
}

// RegisterRoutes wires all endpoints onto the router. Public candidate
// routes sit behind the rate limiter; admin routes behind bearer auth.
func RegisterRoutes(router *mux.Router, svcs Services, tokens security.TokenManager, limiter Limiter, limit int, window time.Duration) {
	respondHandler := NewRespondHandler(svcs.Offers)
	bookingHandler := NewBookingHandler(svcs.Booking)
	candidatesHandler := NewCandidatesHandler(svcs.Candidates, svcs.Dispatch)
	appointmentsHandler := NewAppointmentsHandler(svcs.Appointments)
	authHandler := NewAuthHandler(svcs.Auth)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	public := api.NewRoute().Subrouter()
	public.Use(RateLimit(limiter, limit, window))
	public.HandleFunc("/respond", respondHandler.HandleRespond).Methods("GET")
	public.HandleFunc("/booking/context", bookingHandler.HandleContext).Methods("GET")
	public.HandleFunc("/booking", bookingHandler.HandleBook).Methods("POST")
	public.HandleFunc("/admin/login", authHandler.HandleLogin).Methods("POST")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(AdminAuth(tokens))
	admin.HandleFunc("/candidates", candidatesHandler.HandleList).Methods("GET")
	admin.HandleFunc("/candidates/{candidateId}/offer", candidatesHandler.HandleSendOffer).Methods("POST")
	admin.HandleFunc("/offers", appointmentsHandler.HandleListOffers).Methods("GET")
	admin.HandleFunc("/offers/{offerId}/booking-email", appointmentsHandler.HandleSendBookingInvite).Methods("POST")
	admin.HandleFunc("/appointments", appointmentsHandler.HandleList).Methods("GET")
	admin.HandleFunc("/appointments", appointmentsHandler.HandleCreate).Methods("POST")
	admin.HandleFunc("/appointments/{id}/collected", appointmentsHandler.HandleMarkCollected).Methods("PATCH")
}
