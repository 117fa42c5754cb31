package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"

	"invitebox/internal/domain"
	"invitebox/internal/repository/kv"
)

const rsvpPrefix = "rsvps/"

// rsvpKey orders records by submission time: the zero-padded nanosecond
// timestamp sorts lexicographically, and the record id breaks ties. One key
// per record means an append never rewrites another guest's submission.
func rsvpKey(rec *domain.RSVP) string {
	return fmt.Sprintf("%s%s/%020d-%s", rsvpPrefix, rec.InvitationID, rec.SubmittedAt.UnixNano(), rec.ID)
}

type rsvpRepository struct {
	store kv.Store
}

// NewRSVPRepository returns an RSVPRepository backed by store.
func NewRSVPRepository(store kv.Store) domain.RSVPRepository {
	return &rsvpRepository{store: store}
}

func (r *rsvpRepository) Append(ctx context.Context, rec *domain.RSVP) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode rsvp: %w", err)
	}
	if err := r.store.Put(ctx, rsvpKey(rec), data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

func (r *rsvpRepository) ListByInvitationID(ctx context.Context, invitationID string) ([]*domain.RSVP, error) {
	entries, err := r.store.List(ctx, rsvpPrefix+invitationID+"/")
	if err != nil {
		return nil, err
	}
	records := make([]*domain.RSVP, 0, len(entries))
	for _, e := range entries {
		rec := &domain.RSVP{}
		if err := json.Unmarshal(e.Value, rec); err != nil {
			return nil, fmt.Errorf("%w: rsvp %s: %v", domain.ErrCorruptRecord, e.Key, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
