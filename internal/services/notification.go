package services

import (
	"context"
	"fmt"
	"log"

	"weddinginvite/internal/domain"
)

type notificationService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewNotificationService returns a NotificationService that uses the given Mailer and template renderer.
func NewNotificationService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.NotificationService {
	return &notificationService{mailer: mailer, renderer: renderer}
}

// RSVPReceived tells the hosts a family has answered, using the "rsvp_received" template.
func (s *notificationService) RSVPReceived(ctx context.Context, data *domain.RSVPReceivedEmailData) error {
	if data == nil {
		return fmt.Errorf("rsvp received data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("rsvp_received", data)
	if err != nil {
		return fmt.Errorf("failed to render rsvp_received template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send rsvp received email: %w", err)
	}
	log.Printf("[EMAIL] RSVP notification for %s sent to %s", data.FamilyID, data.Email)
	return nil
}
