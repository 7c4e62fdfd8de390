package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"sandevex-hiring-backend/internal/config"
	"sandevex-hiring-backend/internal/domain"
	"sandevex-hiring-backend/internal/logger"
)

type emailService struct {
	apiKey string
	cfg    config.EmailConfig
}

func NewEmailService(cfg config.EmailConfig) EmailService {
	return &emailService{
		apiKey: cfg.APIKey,
		cfg:    cfg,
	}
}

// sendTemplate dispatches one dynamic-template send. SendGrid acknowledges
// accepted mail with 202; any other status is a failure even when the HTTP
// call itself succeeded.
func (s *emailService) sendTemplate(_ context.Context, to, toName, templateID string, data map[string]interface{}) error {
	from := mail.NewEmail(s.cfg.FromName, s.cfg.FromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewV3Mail()
	message.SetFrom(from)
	message.SetTemplateID(templateID)

	personalization := mail.NewPersonalization()
	personalization.AddTos(recipient)
	for key, value := range data {
		personalization.SetDynamicTemplateData(key, value)
	}
	message.AddPersonalizations(personalization)

	client := sendgrid.NewSendClient(s.apiKey)
	logger.ExternalServiceCall("sendgrid", "Send", "template", templateID, "to", to)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "Send", err, "template", templateID)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode != http.StatusAccepted {
		err := fmt.Errorf("sendgrid rejected send: status %d", response.StatusCode)
		logger.ExternalServiceResult("sendgrid", "Send", err, "template", templateID)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "Send", nil, "template", templateID, "status", response.StatusCode)
	return nil
}

// SendOfferEmail sends the offer letter email. Position, department, mode,
// type, and duration come from the configured program defaults, not from the
// candidate record.
func (s *emailService) SendOfferEmail(ctx context.Context, email, fullName string) error {
	defaults := s.cfg.Defaults
	return s.sendTemplate(ctx, email, fullName, s.cfg.OfferTemplateID, map[string]interface{}{
		"to_email":        email,
		"to_name":         fullName,
		"full_name":       fullName,
		"email":           email,
		"position":        defaults.Position,
		"department":      defaults.Department,
		"mode":            defaults.Mode,
		"internship_type": defaults.InternshipType,
		"duration":        defaults.Duration,
		"domain":          s.cfg.ResponseDomain,
		"reply_to":        s.cfg.FromEmail,
	})
}

// SendBookingInvite sends the slot-booking invitation for an accepted offer.
func (s *emailService) SendBookingInvite(ctx context.Context, email, fullName, position, candidateID string) error {
	bookingURL := fmt.Sprintf("%s/candidate/book-slot?name=%s&email=%s&position=%s&candidateId=%s",
		s.cfg.ResponseDomain,
		url.QueryEscape(fullName),
		url.QueryEscape(email),
		url.QueryEscape(position),
		url.QueryEscape(candidateID),
	)
	return s.sendTemplate(ctx, email, fullName, s.cfg.BookingTemplateID, map[string]interface{}{
		"to_email":       email,
		"subject":        "Book Your Offer Letter Collection Slot",
		"full_name":      fullName,
		"position":       position,
		"booking_url":    bookingURL,
		"office_address": s.cfg.OfficeAddressURL,
	})
}

// SendBookingConfirmation confirms a booked appointment.
func (s *emailService) SendBookingConfirmation(ctx context.Context, appt *domain.Appointment) error {
	return s.sendTemplate(ctx, appt.Email, appt.Name, s.cfg.BookingTemplateID, map[string]interface{}{
		"to_email":       appt.Email,
		"subject":        "Slot Confirmed",
		"full_name":      appt.Name,
		"date":           appt.Date,
		"slot":           string(appt.Slot),
		"office_address": s.cfg.OfficeAddressURL,
	})
}
