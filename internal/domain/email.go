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

// DeliveryStatus classifies the outcome of one notification attempt.
type DeliveryStatus string

const (
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
	DeliverySkipped DeliveryStatus = "skipped"
)

// NotificationResult reports a single delivery attempt. Reason is set when the
// delivery failed or was skipped; it is admin-facing status, never an error.
// swagger:model NotificationResult
type NotificationResult struct {
	Status    DeliveryStatus `json:"status"`
	Recipient string         `json:"recipient,omitempty"`
	Reason    string         `json:"reason,omitempty"`
}

// BatchNotificationResult reports a reminder send across many recipients.
// Failed lists the recipients whose individual delivery failed; a failure for
// one recipient never aborts the remaining sends.
// swagger:model BatchNotificationResult
type BatchNotificationResult struct {
	Status DeliveryStatus `json:"status"`
	Sent   int            `json:"sent"`
	Failed []string       `json:"failed,omitempty"`
	Reason string         `json:"reason,omitempty"`
}

// RSVPNotificationEmailData holds data for the manager notification email.
type RSVPNotificationEmailData struct {
	EventName   string
	GuestName   string
	Attendance  string
	Adults      int
	Children    int
	GuestCount  int
	Message     string
	SubmittedAt string
}

// ReminderEmailData holds data for one guest reminder email.
type ReminderEmailData struct {
	GuestName    string
	EventName    string
	EventDate    string
	EventTime    string
	VenueAddress string
	Message      string
}

// Notifier is the notification dispatcher. It owns no persisted state and is
// purely a side-effecting pass-through; delivery failures surface only in the
// returned results, never as errors, so a notification outage can never make a
// persisted RSVP appear to fail.
type Notifier interface {
	NotifyRSVP(ctx context.Context, inv *Invitation, rec *RSVP) NotificationResult
	SendReminder(ctx context.Context, inv *Invitation, recipients []*RSVP, subject, message string) BatchNotificationResult
	// IsConfigured reports whether delivery credentials are present. When false,
	// both send operations short-circuit to skipped results.
	IsConfigured() bool
}
