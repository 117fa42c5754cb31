package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitebox/internal/domain"
)

func validEvent() domain.EventDetails {
	return domain.EventDetails{
		EventName:    "Housewarming",
		HostNames:    "Asha & Rao",
		EventDate:    "2025-11-13",
		EventTime:    "4:00 PM",
		VenueAddress: "3108 Honerywood Dr",
		Message:      "Please join us to bless our home.",
		ManagerEmail: "manager@example.com",
	}
}

func TestInvitationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and created_at and persists all fields", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		svc := NewInvitationService(repo, newFakeRSVPRepo(), time.Second)

		event := validEvent()
		pres := domain.Presentation{Theme: "Temple", FontScale: 1.2}
		inv, err := svc.Create(ctx, event, pres)
		require.NoError(t, err)
		require.NotEmpty(t, inv.ID)
		require.False(t, inv.CreatedAt.IsZero())
		assert.Equal(t, event, inv.Event)
		assert.Equal(t, pres, inv.Presentation)

		got, err := svc.Get(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, inv, got)
	})

	t.Run("missing required field", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		svc := NewInvitationService(repo, newFakeRSVPRepo(), time.Second)

		event := validEvent()
		event.VenueAddress = "  "
		_, err := svc.Create(ctx, event, domain.Presentation{})
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "venue_address", vErr.Field)
		assert.Empty(t, repo.byID)
	})

	t.Run("storage write failure surfaces", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		repo.createErr = domain.ErrStorageWrite
		svc := NewInvitationService(repo, newFakeRSVPRepo(), time.Second)

		_, err := svc.Create(ctx, validEvent(), domain.Presentation{})
		require.ErrorIs(t, err, domain.ErrStorageWrite)
	})
}

func TestInvitationService_Get_NotFound(t *testing.T) {
	svc := NewInvitationService(newFakeInvitationRepo(), newFakeRSVPRepo(), time.Second)
	_, err := svc.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvitationService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves id and created_at", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		svc := NewInvitationService(repo, newFakeRSVPRepo(), time.Second)

		inv, err := svc.Create(ctx, validEvent(), domain.Presentation{Theme: "Floral"})
		require.NoError(t, err)

		event := validEvent()
		event.EventName = "Gruha Pravesham"
		updated, err := svc.Update(ctx, inv.ID, event, domain.Presentation{Theme: "Classic Red"})
		require.NoError(t, err)
		assert.Equal(t, inv.ID, updated.ID)
		assert.Equal(t, inv.CreatedAt, updated.CreatedAt)
		assert.Equal(t, "Gruha Pravesham", updated.Event.EventName)
		assert.Equal(t, "Classic Red", updated.Presentation.Theme)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := NewInvitationService(newFakeInvitationRepo(), newFakeRSVPRepo(), time.Second)
		_, err := svc.Update(ctx, "missing", validEvent(), domain.Presentation{})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestInvitationService_PublicView(t *testing.T) {
	ctx := context.Background()
	invRepo := newFakeInvitationRepo()
	rsvpRepo := newFakeRSVPRepo()
	svc := NewInvitationService(invRepo, rsvpRepo, time.Second)

	inv, err := svc.Create(ctx, validEvent(), domain.Presentation{})
	require.NoError(t, err)

	require.NoError(t, rsvpRepo.Append(ctx, &domain.RSVP{
		ID: "r1", InvitationID: inv.ID, GuestName: "Asha", GuestEmail: "asha@x.com",
		Attendance: domain.AttendanceYes, GuestCount: 2, SubmittedAt: time.Now(),
	}))

	got, summary, err := svc.PublicView(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)
	assert.Equal(t, 1, summary.TotalResponses)
	assert.Equal(t, 2, summary.TotalGuestCount)

	_, _, err = svc.PublicView(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvitationService_Get_CorruptRecord(t *testing.T) {
	repo := newFakeInvitationRepo()
	repo.getErr = fmt.Errorf("%w: unreadable payload", domain.ErrCorruptRecord)
	svc := NewInvitationService(repo, newFakeRSVPRepo(), time.Second)

	_, err := svc.Get(context.Background(), "any")
	require.ErrorIs(t, err, domain.ErrCorruptRecord)
}
