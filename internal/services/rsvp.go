package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"invitebox/internal/domain"
)

type rsvpService struct {
	invitationRepo domain.InvitationRepository
	rsvpRepo       domain.RSVPRepository
	notifier       domain.Notifier
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewRSVPService returns an RSVPService over the given repositories and notifier.
func NewRSVPService(invitationRepo domain.InvitationRepository, rsvpRepo domain.RSVPRepository, notifier domain.Notifier, logger *slog.Logger, timeout time.Duration) domain.RSVPService {
	return &rsvpService{
		invitationRepo: invitationRepo,
		rsvpRepo:       rsvpRepo,
		notifier:       notifier,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func validateNewRSVP(in *domain.NewRSVP) (domain.Attendance, error) {
	if strings.TrimSpace(in.GuestName) == "" {
		return "", domain.NewValidationError("guest_name", "is required")
	}
	if strings.TrimSpace(in.GuestEmail) == "" {
		return "", domain.NewValidationError("guest_email", "is required")
	}
	attendance, ok := domain.ParseAttendance(in.Attendance)
	if !ok {
		return "", domain.NewValidationError("attendance", "must be one of yes, no, maybe")
	}
	if in.Adults < 0 {
		return "", domain.NewValidationError("adults", "must not be negative")
	}
	if in.Children < 0 {
		return "", domain.NewValidationError("children", "must not be negative")
	}
	if in.GuestCount < 0 {
		return "", domain.NewValidationError("guest_count", "must not be negative")
	}
	return attendance, nil
}

func (s *rsvpService) Append(ctx context.Context, invitationID string, in domain.NewRSVP) (*domain.RSVP, domain.NotificationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// The invitation must exist before anything is written.
	inv, err := s.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		return nil, domain.NotificationResult{}, err
	}

	attendance, err := validateNewRSVP(&in)
	if err != nil {
		return nil, domain.NotificationResult{}, err
	}

	guestCount := in.GuestCount
	if guestCount == 0 {
		guestCount = in.Adults + in.Children
	}

	rec := &domain.RSVP{
		ID:           uuid.NewString(),
		InvitationID: invitationID,
		GuestName:    strings.TrimSpace(in.GuestName),
		GuestEmail:   strings.TrimSpace(in.GuestEmail),
		Attendance:   attendance,
		Adults:       in.Adults,
		Children:     in.Children,
		GuestCount:   guestCount,
		Message:      in.Message,
		SubmittedAt:  time.Now().UTC(),
	}
	if err := s.rsvpRepo.Append(ctx, rec); err != nil {
		return nil, domain.NotificationResult{}, fmt.Errorf("append rsvp: %w", err)
	}

	// The record is persisted; from here on nothing may fail the submission.
	// The notifier bounds its own network timeout and reports through the
	// result, which travels with the response as secondary status only.
	result := s.notifier.NotifyRSVP(ctx, inv, rec)
	if result.Status == domain.DeliveryFailed {
		s.logger.Warn("rsvp notification failed",
			"invitation_id", invitationID, "recipient", result.Recipient, "reason", result.Reason)
	}
	return rec, result, nil
}

func (s *rsvpService) List(ctx context.Context, invitationID string) ([]*domain.RSVP, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.invitationRepo.GetByID(ctx, invitationID); err != nil {
		return nil, err
	}
	records, err := s.rsvpRepo.ListByInvitationID(ctx, invitationID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	return records, nil
}

func (s *rsvpService) Summary(ctx context.Context, invitationID string) (domain.Summary, error) {
	records, err := s.List(ctx, invitationID)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(records), nil
}

// csvHeader matches the manager-facing export: one row per RSVP in submission order.
var csvHeader = []string{"name", "email", "response", "adults", "kids", "total_guests", "message", "timestamp"}

func (s *rsvpService) ExportCSV(ctx context.Context, invitationID string) ([]byte, error) {
	records, err := s.List(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			r.GuestName,
			r.GuestEmail,
			string(r.Attendance),
			strconv.Itoa(r.Adults),
			strconv.Itoa(r.Children),
			strconv.Itoa(r.GuestCount),
			r.Message,
			r.SubmittedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *rsvpService) SendReminder(ctx context.Context, invitationID, subject, message string) (domain.BatchNotificationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	inv, err := s.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		return domain.BatchNotificationResult{}, err
	}
	records, err := s.rsvpRepo.ListByInvitationID(ctx, invitationID)
	if err != nil {
		return domain.BatchNotificationResult{}, fmt.Errorf("list rsvps: %w", err)
	}

	// Reminders go to guests who answered yes and left an email address.
	recipients := make([]*domain.RSVP, 0, len(records))
	for _, r := range records {
		if r.Attendance == domain.AttendanceYes && strings.TrimSpace(r.GuestEmail) != "" {
			recipients = append(recipients, r)
		}
	}
	if len(recipients) == 0 {
		return domain.BatchNotificationResult{
			Status: domain.DeliverySkipped,
			Reason: "no guests with yes responses",
		}, nil
	}

	result := s.notifier.SendReminder(ctx, inv, recipients, subject, message)
	if len(result.Failed) > 0 {
		s.logger.Warn("reminder delivery incomplete",
			"invitation_id", invitationID, "sent", result.Sent, "failed", len(result.Failed))
	}
	return result, nil
}
