package services

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"invitebox/internal/domain"
)

// emailRegex is a light format check on recipient addresses before a send is
// attempted; a bad address becomes a failed result, never an error.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type notificationService struct {
	mailer         domain.Mailer
	renderer       domain.EmailTemplateRenderer
	managerAddress string
	configured     bool
	logger         *slog.Logger
}

// NewNotificationService returns a Notifier that delivers through mailer.
// managerAddress is the fallback recipient for RSVP notifications when the
// invitation carries no manager email. configured=false makes every send a
// no-op that reports a skipped result.
func NewNotificationService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, managerAddress string, configured bool, logger *slog.Logger) domain.Notifier {
	return &notificationService{
		mailer:         mailer,
		renderer:       renderer,
		managerAddress: managerAddress,
		configured:     configured,
		logger:         logger,
	}
}

func (s *notificationService) IsConfigured() bool {
	return s.configured
}

func (s *notificationService) NotifyRSVP(ctx context.Context, inv *domain.Invitation, rec *domain.RSVP) domain.NotificationResult {
	if !s.configured {
		return domain.NotificationResult{Status: domain.DeliverySkipped, Reason: "mail transport not configured"}
	}

	recipient := strings.TrimSpace(inv.Event.ManagerEmail)
	if recipient == "" {
		recipient = s.managerAddress
	}
	if recipient == "" {
		return domain.NotificationResult{Status: domain.DeliverySkipped, Reason: "no manager address"}
	}
	if !emailRegex.MatchString(recipient) {
		return domain.NotificationResult{Status: domain.DeliveryFailed, Recipient: recipient, Reason: "invalid manager address"}
	}

	data := &domain.RSVPNotificationEmailData{
		EventName:   inv.Event.EventName,
		GuestName:   rec.GuestName,
		Attendance:  string(rec.Attendance),
		Adults:      rec.Adults,
		Children:    rec.Children,
		GuestCount:  rec.GuestCount,
		Message:     rec.Message,
		SubmittedAt: rec.SubmittedAt.Format(time.RFC1123),
	}
	subject, htmlBody, textBody, err := s.renderer.Render("rsvp_notification", data)
	if err != nil {
		s.logger.ErrorContext(ctx, "render rsvp notification", "invitation_id", inv.ID, "err", err)
		return domain.NotificationResult{Status: domain.DeliveryFailed, Recipient: recipient, Reason: err.Error()}
	}
	if err := s.mailer.Send(recipient, subject, htmlBody, textBody); err != nil {
		return domain.NotificationResult{Status: domain.DeliveryFailed, Recipient: recipient, Reason: err.Error()}
	}
	return domain.NotificationResult{Status: domain.DeliverySent, Recipient: recipient}
}

func (s *notificationService) SendReminder(ctx context.Context, inv *domain.Invitation, recipients []*domain.RSVP, subject, message string) domain.BatchNotificationResult {
	if !s.configured {
		return domain.BatchNotificationResult{Status: domain.DeliverySkipped, Reason: "mail transport not configured"}
	}

	// One individual send per guest: no group address, and one bad recipient
	// never stops the rest of the batch.
	var result domain.BatchNotificationResult
	for _, guest := range recipients {
		email := strings.TrimSpace(guest.GuestEmail)
		if !emailRegex.MatchString(email) {
			result.Failed = append(result.Failed, email)
			continue
		}
		data := &domain.ReminderEmailData{
			GuestName:    guest.GuestName,
			EventName:    inv.Event.EventName,
			EventDate:    inv.Event.EventDate,
			EventTime:    inv.Event.EventTime,
			VenueAddress: inv.Event.VenueAddress,
			Message:      message,
		}
		mailSubject, htmlBody, textBody, err := s.renderer.Render("reminder", data)
		if err != nil {
			s.logger.ErrorContext(ctx, "render reminder", "invitation_id", inv.ID, "err", err)
			result.Failed = append(result.Failed, email)
			continue
		}
		if subject != "" {
			mailSubject = subject
		}
		if err := s.mailer.Send(email, mailSubject, htmlBody, textBody); err != nil {
			s.logger.WarnContext(ctx, "reminder send failed", "invitation_id", inv.ID, "recipient", email, "err", err)
			result.Failed = append(result.Failed, email)
			continue
		}
		result.Sent++
	}
	if result.Sent > 0 {
		result.Status = domain.DeliverySent
	} else {
		result.Status = domain.DeliveryFailed
		result.Reason = "all deliveries failed"
	}
	return result
}
