package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RSVPReceivedEmailData holds data for the hosts' notification email.
type RSVPReceivedEmailData struct {
	Email      string
	FamilyID   string
	FamilyName string
	Lines      []string
	RSVPURL    string
}

// NotificationService sends domain-level notifications.
type NotificationService interface {
	RSVPReceived(ctx context.Context, data *RSVPReceivedEmailData) error
}
