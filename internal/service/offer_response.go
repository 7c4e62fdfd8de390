package service

import (
	"context"
	"net/url"

	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/logger"
	"sandevex-hiring-backend/internal/records"
)

// User-facing copy for each terminal state of the response flow.
const (
	msgInvalidLink      = "Invalid response link. Please check your email for the correct link."
	msgConnectFailed    = "Unable to connect to the server. Please try again."
	msgVerifyFailed     = "Unable to verify offer status. Please contact support."
	msgAlreadyAccepted  = "You have already accepted this offer. Welcome to Sandevex! Our team will contact you soon."
	msgAlreadyDeclined  = "You have already declined this offer. Thank you for your response."
	msgAlreadyProcessed = "This offer has already been processed."
	msgExpired          = "This offer has expired. The 24-hour response period has passed."
	msgAwaitingDecision = "Please click Accept or Decline to respond to this offer."
	msgAcceptSuccess    = "Congratulations! Your acceptance has been recorded. Welcome to Sandevex!\n\nOur team will reach out to you shortly with further instructions regarding the onboarding process."
	msgDeclineSuccess   = "Thank you for letting us know. We appreciate your response and wish you the best in your future endeavors."
	msgSubmitFailed     = "Unable to process your response. Please try again."
	msgGenericError     = "An error occurred. Please try again."
)

type offerResponseService struct {
	records records.Client
}

func NewOfferResponseService(client records.Client) OfferResponseService {
	return &offerResponseService{records: client}
}

// Resolve runs the response flow for one page load: check the offer's
// current status, then — only if the offer is still pending and an action
// was requested — submit the decision. The backend is the authority on the
// pending-only rule; a rejected submission overrides the pre-check.
func (s *offerResponseService) Resolve(ctx context.Context, email, action string) *ResponseResult {
	log := logger.WithService("offer_response")

	if email == "" {
		return &ResponseResult{State: domain.StateError, Message: msgInvalidLink}
	}

	offer, err := s.records.CheckOfferByEmail(ctx, email)
	if err != nil {
		log.Warn("offer status check failed", "email", email, "error", err)
		if apiErr, ok := records.AsAPIError(err); ok {
			msg := apiErr.Message
			if msg == "" {
				msg = msgVerifyFailed
			}
			return &ResponseResult{State: domain.StateError, Message: msg}
		}
		return &ResponseResult{State: domain.StateError, Message: msgConnectFailed}
	}

	if offer.Status != domain.OfferPending {
		switch offer.Status {
		case domain.OfferExpired:
			return &ResponseResult{State: domain.StateExpired, Message: msgExpired, Offer: offer}
		case domain.OfferDeclined:
			return &ResponseResult{State: domain.StateAlreadyProcessed, Message: msgAlreadyDeclined, Offer: offer}
		default:
			return &ResponseResult{State: domain.StateAlreadyProcessed, Message: msgAlreadyAccepted, Offer: offer}
		}
	}

	if action == "" {
		// Pending with no decision yet: render the prompt. The controls
		// re-enter this flow through a query-parameter navigation.
		encoded := url.QueryEscape(email)
		return &ResponseResult{
			State:      domain.StateChecking,
			Message:    msgAwaitingDecision,
			Offer:      offer,
			AcceptURL:  "/respond?email=" + encoded + "&status=accept",
			DeclineURL: "/respond?email=" + encoded + "&status=decline",
		}
	}

	requested := domain.ResponseAction(action)
	if !requested.Valid() {
		return &ResponseResult{State: domain.StateError, Message: msgInvalidLink}
	}

	return s.submit(ctx, email, requested)
}

func (s *offerResponseService) submit(ctx context.Context, email string, action domain.ResponseAction) *ResponseResult {
	log := logger.WithService("offer_response")

	if err := s.records.RespondToOffer(ctx, email, action); err != nil {
		log.Warn("response submission failed", "email", email, "action", action, "error", err)
		apiErr, ok := records.AsAPIError(err)
		if !ok {
			return &ResponseResult{State: domain.StateError, Message: msgSubmitFailed}
		}
		// The backend's verdict wins over the pre-check: the offer may have
		// been processed or expired between the two calls.
		switch {
		case apiErr.AlreadyProcessed():
			return &ResponseResult{State: domain.StateAlreadyProcessed, Message: msgAlreadyProcessed}
		case apiErr.Expired():
			return &ResponseResult{State: domain.StateExpired, Message: msgExpired}
		default:
			msg := apiErr.Message
			if msg == "" {
				msg = msgGenericError
			}
			return &ResponseResult{State: domain.StateError, Message: msg}
		}
	}

	msg := msgDeclineSuccess
	if action == domain.ActionAccept {
		msg = msgAcceptSuccess
	}
	// Location drops the action parameter so a reload cannot resubmit the
	// same decision. The real guard is the backend's pending-only check.
	return &ResponseResult{
		State:    domain.StateSuccess,
		Message:  msg,
		Location: "/respond?email=" + url.QueryEscape(email),
	}
}
