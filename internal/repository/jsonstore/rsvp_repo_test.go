package jsonstore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitebox/internal/domain"
	"invitebox/internal/repository/kv"
)

func sampleRSVP(id string, submittedAt time.Time) *domain.RSVP {
	return &domain.RSVP{
		ID:           id,
		InvitationID: "inv-1",
		GuestName:    "Asha",
		GuestEmail:   "asha@x.com",
		Attendance:   domain.AttendanceYes,
		GuestCount:   2,
		SubmittedAt:  submittedAt,
	}
}

func TestRSVPRepository_AppendList(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewRSVPRepository(store)

	base := time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rec := sampleRSVP(fmt.Sprintf("r-%d", i), base.Add(time.Duration(i)*time.Minute))
		rec.GuestName = fmt.Sprintf("Guest %d", i)
		require.NoError(t, repo.Append(ctx, rec))
	}

	records, err := repo.ListByInvitationID(ctx, "inv-1")
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, r := range records {
		assert.Equal(t, fmt.Sprintf("Guest %d", i), r.GuestName)
	}
}

func TestRSVPRepository_ListOrdersBySubmissionTime(t *testing.T) {
	ctx := context.Background()
	repo := NewRSVPRepository(kv.NewMemoryStore())

	base := time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
	// Append out of chronological order; List comes back chronological.
	require.NoError(t, repo.Append(ctx, sampleRSVP("late", base.Add(time.Hour))))
	require.NoError(t, repo.Append(ctx, sampleRSVP("early", base)))

	records, err := repo.ListByInvitationID(ctx, "inv-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "early", records[0].ID)
	assert.Equal(t, "late", records[1].ID)
}

func TestRSVPRepository_ListScopedToInvitation(t *testing.T) {
	ctx := context.Background()
	repo := NewRSVPRepository(kv.NewMemoryStore())

	now := time.Now().UTC()
	require.NoError(t, repo.Append(ctx, sampleRSVP("r-1", now)))
	other := sampleRSVP("r-2", now)
	other.InvitationID = "inv-2"
	require.NoError(t, repo.Append(ctx, other))

	records, err := repo.ListByInvitationID(ctx, "inv-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "r-1", records[0].ID)

	records, err = repo.ListByInvitationID(ctx, "inv-empty")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRSVPRepository_ListCorruptRecord(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewRSVPRepository(store)

	require.NoError(t, repo.Append(ctx, sampleRSVP("r-1", time.Now().UTC())))
	require.NoError(t, store.Put(ctx, "rsvps/inv-1/zzz-bad", []byte(`{"guest_name":`)))

	_, err := repo.ListByInvitationID(ctx, "inv-1")
	assert.ErrorIs(t, err, domain.ErrCorruptRecord)
}

func TestRSVPRepository_AppendWriteFailure(t *testing.T) {
	store := kv.NewMemoryStore()
	store.PutErr = errors.New("disk full")
	repo := NewRSVPRepository(store)

	err := repo.Append(context.Background(), sampleRSVP("r-1", time.Now().UTC()))
	assert.ErrorIs(t, err, domain.ErrStorageWrite)
}
