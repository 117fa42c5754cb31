package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitebox/internal/domain"
)

func TestTemplateRenderer_RSVPNotification(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("rsvp_notification", &domain.RSVPNotificationEmailData{
		EventName:   "Housewarming",
		GuestName:   "Asha",
		Attendance:  "yes",
		Adults:      2,
		Children:    1,
		GuestCount:  3,
		Message:     "So excited!",
		SubmittedAt: "Sat, 01 Nov 2025 10:00:00 UTC",
	})
	require.NoError(t, err)
	assert.Equal(t, "Housewarming - Asha - yes", subject)
	assert.Contains(t, html, "Asha")
	assert.Contains(t, html, "So excited!")
	assert.Contains(t, text, "Name: Asha")
	assert.Contains(t, text, "Total Guests: 3")
	assert.Contains(t, text, "Message: So excited!")
}

func TestTemplateRenderer_RSVPNotificationWithoutMessage(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, text, err := r.Render("rsvp_notification", &domain.RSVPNotificationEmailData{
		EventName:  "Housewarming",
		GuestName:  "Rao",
		Attendance: "no",
	})
	require.NoError(t, err)
	assert.NotContains(t, text, "Message:")
}

func TestTemplateRenderer_Reminder(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("reminder", &domain.ReminderEmailData{
		GuestName:    "Asha",
		EventName:    "Housewarming",
		EventDate:    "2025-11-13",
		EventTime:    "4:00 PM",
		VenueAddress: "3108 Honerywood Dr",
		Message:      "Starts at 4 PM sharp.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Reminder: Housewarming", subject)
	assert.Contains(t, text, "Dear Asha,")
	assert.Contains(t, text, "2025-11-13 at 4:00 PM")
	assert.Contains(t, html, "3108 Honerywood Dr")
}

func TestTemplateRenderer_HTMLEscaping(t *testing.T) {
	r := NewTemplateRenderer()

	_, html, text, err := r.Render("rsvp_notification", &domain.RSVPNotificationEmailData{
		EventName:  "Housewarming",
		GuestName:  "<script>alert(1)</script>",
		Attendance: "yes",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, text, "<script>alert(1)</script>")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()
	_, _, _, err := r.Render("nonexistent", nil)
	require.Error(t, err)
}
