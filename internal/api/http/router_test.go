package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/security"
	"sandevex-hiring-backend/internal/service"
)

// Function-backed stubs; nil funcs mean the route under test never reaches
// that service.
type stubOffers struct {
	resolve func(ctx context.Context, email, action string) *service.ResponseResult
}

func (s *stubOffers) Resolve(ctx context.Context, email, action string) *service.ResponseResult {
	return s.resolve(ctx, email, action)
}

type stubBooking struct {
	contextFn func(ctx context.Context, link service.BookingLink) (*service.BookingContext, error)
	book      func(ctx context.Context, req *domain.BookingRequest) (*service.BookingResult, error)
}

func (s *stubBooking) Context(ctx context.Context, link service.BookingLink) (*service.BookingContext, error) {
	return s.contextFn(ctx, link)
}
func (s *stubBooking) Book(ctx context.Context, req *domain.BookingRequest) (*service.BookingResult, error) {
	return s.book(ctx, req)
}

type stubDispatch struct {
	sendOffer func(ctx context.Context, candidateID string) (*domain.DispatchOutcome, error)
}

func (s *stubDispatch) SendOffer(ctx context.Context, candidateID string) (*domain.DispatchOutcome, error) {
	return s.sendOffer(ctx, candidateID)
}
func (s *stubDispatch) Reconcile(ctx context.Context) (int, error) { return 0, nil }

type stubCandidates struct {
	list func(ctx context.Context, page, limit int) (*service.RosterPage, error)
}

func (s *stubCandidates) List(ctx context.Context, page, limit int) (*service.RosterPage, error) {
	return s.list(ctx, page, limit)
}

type stubAppointments struct{}

func (s *stubAppointments) ListOffers(ctx context.Context) ([]domain.OfferListing, error) {
	return nil, nil
}
func (s *stubAppointments) SendBookingInvite(ctx context.Context, offerID string) error { return nil }
func (s *stubAppointments) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return nil, nil
}
func (s *stubAppointments) CreateAppointment(ctx context.Context, req *domain.BookingRequest) (*domain.Appointment, error) {
	return nil, nil
}
func (s *stubAppointments) MarkCollected(ctx context.Context, appointmentID string) error {
	return nil
}

type stubAuth struct {
	login func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (string, error) {
	return s.login(ctx, email, password)
}

const routerTestSecret = "0123456789abcdef0123456789abcdef"

func newTestRouter(t *testing.T, svcs Services) (*mux.Router, security.TokenManager) {
	t.Helper()
	tokens := security.NewTokenManager(routerTestSecret, time.Hour)
	router := mux.NewRouter()
	RegisterRoutes(router, svcs, tokens, NewMemoryLimiter(), 100, time.Minute)
	return router, tokens
}

func TestRespondRoute_PassesQueryParams(t *testing.T) {
	var gotEmail, gotAction string
	svcs := Services{
		Offers: &stubOffers{resolve: func(_ context.Context, email, action string) *service.ResponseResult {
			gotEmail, gotAction = email, action
			return &service.ResponseResult{State: domain.StateSuccess, Message: "ok"}
		}},
	}
	router, _ := newTestRouter(t, svcs)

	req := httptest.NewRequest("GET", "/api/v1/respond?email=jane%40example.com&status=accept", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jane@example.com", gotEmail)
	assert.Equal(t, "accept", gotAction)

	var body service.ResponseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.StateSuccess, body.State)
}

func TestAdminRoutes_RequireBearerToken(t *testing.T) {
	svcs := Services{
		Candidates: &stubCandidates{list: func(context.Context, int, int) (*service.RosterPage, error) {
			return &service.RosterPage{}, nil
		}},
	}
	router, tokens := newTestRouter(t, svcs)

	req := httptest.NewRequest("GET", "/api/v1/admin/candidates", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := tokens.GenerateAdminToken("admin@sandevex.com")
	require.NoError(t, err)

	req = httptest.NewRequest("GET", "/api/v1/admin/candidates", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminLogin_IsReachableWithoutToken(t *testing.T) {
	svcs := Services{
		Auth: &stubAuth{login: func(_ context.Context, email, password string) (string, error) {
			if email == "admin@sandevex.com" && password == "correct" {
				return "token-123", nil
			}
			return "", service.ErrInvalidCredentials
		}},
	}
	router, _ := newTestRouter(t, svcs)

	req := httptest.NewRequest("POST", "/api/v1/admin/login",
		strings.NewReader(`{"email":"admin@sandevex.com","password":"correct"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "token-123", body["token"])
}

func TestAdminLogin_InvalidCredentials(t *testing.T) {
	svcs := Services{
		Auth: &stubAuth{login: func(context.Context, string, string) (string, error) {
			return "", service.ErrInvalidCredentials
		}},
	}
	router, _ := newTestRouter(t, svcs)

	req := httptest.NewRequest("POST", "/api/v1/admin/login",
		strings.NewReader(`{"email":"admin@sandevex.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSendOffer_ConflictOnDuplicate(t *testing.T) {
	svcs := Services{
		Dispatch: &stubDispatch{sendOffer: func(context.Context, string) (*domain.DispatchOutcome, error) {
			return nil, service.ErrOfferAlreadySent
		}},
	}
	router, tokens := newTestRouter(t, svcs)
	token, err := tokens.GenerateAdminToken("admin@sandevex.com")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/admin/candidates/cand-1/offer", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSendOffer_QualifiedSuccessBody(t *testing.T) {
	svcs := Services{
		Dispatch: &stubDispatch{sendOffer: func(_ context.Context, candidateID string) (*domain.DispatchOutcome, error) {
			return &domain.DispatchOutcome{CandidateID: candidateID, EmailSent: true, RecordCreated: false}, nil
		}},
	}
	router, tokens := newTestRouter(t, svcs)
	token, err := tokens.GenerateAdminToken("admin@sandevex.com")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/admin/candidates/cand-1/offer", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var outcome domain.DispatchOutcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.True(t, outcome.EmailSent)
	assert.False(t, outcome.RecordCreated)
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t, Services{})

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
