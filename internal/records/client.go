// Package records is the outbound client for the external records API that
// owns every durable entity (students, offers, appointments, slots). This
// service keeps no local copy of those records; responses are consumed as-is
// and failures carry the server's own message where one exists.
package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/logger"
)

// Client is the interface the services consume; it mirrors the records API
// surface one call per endpoint.
type Client interface {
	ListStudents(ctx context.Context, page, limit int) ([]domain.Student, int, error)
	GetStudent(ctx context.Context, id string) (*domain.Student, error)
	ListOffers(ctx context.Context) ([]domain.OfferListing, error)
	GetOfferStatus(ctx context.Context, candidateID string) (domain.OfferStatus, error)
	CheckOfferByEmail(ctx context.Context, email string) (*domain.Offer, error)
	CreateOfferRecord(ctx context.Context, candidateID, email string) error
	RespondToOffer(ctx context.Context, email string, action domain.ResponseAction) error
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	CreateAppointment(ctx context.Context, req *domain.BookingRequest) (*domain.Appointment, error)
	MarkLetterCollected(ctx context.Context, appointmentID string) error
	ListSlotDates(ctx context.Context) ([]string, error)
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do issues the request and decodes a success body into out (when out is
// non-nil). Non-2xx responses become *APIError with whatever code/message
// the server supplied.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.ExternalServiceCall("records", method+" "+path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("records", method+" "+path, err)
		return fmt.Errorf("records api unreachable: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseAPIError(resp.StatusCode, payload)
		logger.ExternalServiceResult("records", method+" "+path, apiErr, "status", resp.StatusCode)
		return apiErr
	}
	logger.ExternalServiceResult("records", method+" "+path, nil, "status", resp.StatusCode)

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func parseAPIError(status int, payload []byte) *APIError {
	var parsed errorBody
	if err := json.Unmarshal(payload, &parsed); err != nil {
		message := strings.TrimSpace(string(payload))
		return &APIError{StatusCode: status, Message: message}
	}
	message := parsed.Message
	if message == "" {
		message = parsed.Error
	}
	return &APIError{StatusCode: status, Code: parsed.Code, Message: message}
}

type studentsResponse struct {
	Data       []domain.Student `json:"data"`
	Pagination struct {
		Total int `json:"total"`
	} `json:"pagination"`
}

func (c *HTTPClient) ListStudents(ctx context.Context, page, limit int) ([]domain.Student, int, error) {
	var parsed studentsResponse
	path := fmt.Sprintf("/students?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &parsed); err != nil {
		return nil, 0, err
	}
	return parsed.Data, parsed.Pagination.Total, nil
}

type studentResponse struct {
	Student domain.Student `json:"student"`
}

func (c *HTTPClient) GetStudent(ctx context.Context, id string) (*domain.Student, error) {
	var parsed studentResponse
	if err := c.do(ctx, http.MethodGet, "/students/"+url.PathEscape(id), nil, &parsed); err != nil {
		return nil, err
	}
	return &parsed.Student, nil
}

type offersResponse struct {
	Offers []domain.OfferListing `json:"offers"`
}

func (c *HTTPClient) ListOffers(ctx context.Context) ([]domain.OfferListing, error) {
	var parsed offersResponse
	if err := c.do(ctx, http.MethodGet, "/offers", nil, &parsed); err != nil {
		return nil, err
	}
	return parsed.Offers, nil
}

type offerStatusResponse struct {
	Status domain.OfferStatus `json:"status"`
}

func (c *HTTPClient) GetOfferStatus(ctx context.Context, candidateID string) (domain.OfferStatus, error) {
	var parsed offerStatusResponse
	path := "/offers/" + url.PathEscape(candidateID) + "/status"
	if err := c.do(ctx, http.MethodGet, path, nil, &parsed); err != nil {
		return "", err
	}
	return parsed.Status, nil
}

type checkOfferResponse struct {
	Offer domain.Offer `json:"offer"`
}

func (c *HTTPClient) CheckOfferByEmail(ctx context.Context, email string) (*domain.Offer, error) {
	var parsed checkOfferResponse
	path := "/offers/check-status?email=" + url.QueryEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &parsed); err != nil {
		return nil, err
	}
	return &parsed.Offer, nil
}

type createOfferRequest struct {
	CandidateID string `json:"candidateId"`
	Email       string `json:"email"`
	Status      string `json:"status"`
}

func (c *HTTPClient) CreateOfferRecord(ctx context.Context, candidateID, email string) error {
	payload := createOfferRequest{
		CandidateID: candidateID,
		Email:       email,
		Status:      string(domain.OfferPending),
	}
	return c.do(ctx, http.MethodPost, "/offers/create-record", payload, nil)
}

type respondRequest struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

func (c *HTTPClient) RespondToOffer(ctx context.Context, email string, action domain.ResponseAction) error {
	payload := respondRequest{Email: email, Status: string(action)}
	return c.do(ctx, http.MethodPost, "/offers/respond", payload, nil)
}

type appointmentsResponse struct {
	Appointments []domain.Appointment `json:"appointments"`
}

func (c *HTTPClient) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	var parsed appointmentsResponse
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, &parsed); err != nil {
		return nil, err
	}
	return parsed.Appointments, nil
}

type appointmentResponse struct {
	Appointment domain.Appointment `json:"appointment"`
}

func (c *HTTPClient) CreateAppointment(ctx context.Context, req *domain.BookingRequest) (*domain.Appointment, error) {
	var parsed appointmentResponse
	if err := c.do(ctx, http.MethodPost, "/appointments", req, &parsed); err != nil {
		return nil, err
	}
	return &parsed.Appointment, nil
}

func (c *HTTPClient) MarkLetterCollected(ctx context.Context, appointmentID string) error {
	path := "/appointments/" + url.PathEscape(appointmentID) + "/collected"
	return c.do(ctx, http.MethodPatch, path, nil, nil)
}

type slotDatesResponse struct {
	Dates []string `json:"dates"`
}

func (c *HTTPClient) ListSlotDates(ctx context.Context) ([]string, error) {
	var parsed slotDatesResponse
	if err := c.do(ctx, http.MethodGet, "/slots/dates", nil, &parsed); err != nil {
		return nil, err
	}
	return parsed.Dates, nil
}
