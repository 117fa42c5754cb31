package domain

import (
	"context"
	"strings"
	"time"
)

// Attendance is a guest's answer to an invitation.
type Attendance string

const (
	AttendanceYes   Attendance = "yes"
	AttendanceNo    Attendance = "no"
	AttendanceMaybe Attendance = "maybe"
)

// ParseAttendance normalizes a free-form answer ("Yes", " MAYBE ") to an
// Attendance value. The second return is false for anything but yes/no/maybe.
func ParseAttendance(s string) (Attendance, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return AttendanceYes, true
	case "no":
		return AttendanceNo, true
	case "maybe":
		return AttendanceMaybe, true
	}
	return "", false
}

// RSVP is one guest response to an invitation. Records are append-only:
// a later response from the same guest email is a new record, not an update.
// swagger:model RSVP
type RSVP struct {
	ID           string     `json:"id"`
	InvitationID string     `json:"invitation_id"`
	GuestName    string     `json:"guest_name"`
	GuestEmail   string     `json:"guest_email"`
	Attendance   Attendance `json:"attendance"`
	Adults       int        `json:"adults"`
	Children     int        `json:"children"`
	GuestCount   int        `json:"guest_count"`
	Message      string     `json:"message,omitempty"`
	SubmittedAt  time.Time  `json:"submitted_at"`
}

// NewRSVP carries the guest-supplied fields of an RSVP submission.
// swagger:model NewRSVP
type NewRSVP struct {
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	Attendance string `json:"attendance"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	GuestCount int    `json:"guest_count"`
	Message    string `json:"message,omitempty"`
}

// RSVPRepository defines storage operations for RSVP records. Append must not
// interleave concurrent submissions for the same invitation; ListByInvitationID
// returns records in submission order.
type RSVPRepository interface {
	Append(ctx context.Context, rec *RSVP) error
	ListByInvitationID(ctx context.Context, invitationID string) ([]*RSVP, error)
}

// RSVPService defines guest- and manager-facing RSVP operations.
type RSVPService interface {
	// Append validates and persists a new RSVP, then triggers the manager
	// notification best-effort. The returned NotificationResult reports the
	// delivery outcome; a failed or skipped delivery is never an error.
	Append(ctx context.Context, invitationID string, in NewRSVP) (*RSVP, NotificationResult, error)
	List(ctx context.Context, invitationID string) ([]*RSVP, error)
	Summary(ctx context.Context, invitationID string) (Summary, error)
	// ExportCSV returns the invitation's RSVPs as a CSV document.
	ExportCSV(ctx context.Context, invitationID string) ([]byte, error)
	// SendReminder emails every guest who answered yes with a non-empty email.
	SendReminder(ctx context.Context, invitationID, subject, message string) (BatchNotificationResult, error)
}
