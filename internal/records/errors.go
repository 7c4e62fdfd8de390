package records

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes the records API attaches to failure bodies. Older deployments
// only return a free-text message, so classification falls back to substring
// matching on it.
const (
	CodeAlreadyProcessed = "already_processed"
	CodeOfferExpired     = "offer_expired"
	CodeOfferNotFound    = "offer_not_found"
)

// APIError is a non-success response from the records API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("records api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("records api: status %d", e.StatusCode)
}

// AlreadyProcessed reports whether the failure means the offer left the
// pending state before this request landed.
func (e *APIError) AlreadyProcessed() bool {
	if e.Code != "" {
		return e.Code == CodeAlreadyProcessed
	}
	return strings.Contains(e.Message, "already been processed")
}

// Expired reports whether the failure means the response window has closed.
func (e *APIError) Expired() bool {
	if e.Code != "" {
		return e.Code == CodeOfferExpired
	}
	return strings.Contains(e.Message, "expired")
}

// NotFound reports whether the requested record does not exist.
func (e *APIError) NotFound() bool {
	if e.Code == CodeOfferNotFound {
		return true
	}
	return e.StatusCode == http.StatusNotFound
}

// AsAPIError unwraps err into an *APIError when the failure came from a
// non-success API response rather than transport.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
