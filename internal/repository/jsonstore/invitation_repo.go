// Package jsonstore implements the invitation and RSVP repositories on top of
// a kv.Store, encoding every record as one self-contained JSON document.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"invitebox/internal/domain"
	"invitebox/internal/repository/kv"
)

const invitationPrefix = "invitations/"

func invitationKey(id string) string {
	return invitationPrefix + id
}

type invitationRepository struct {
	store kv.Store
}

// NewInvitationRepository returns an InvitationRepository backed by store.
func NewInvitationRepository(store kv.Store) domain.InvitationRepository {
	return &invitationRepository{store: store}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("encode invitation: %w", err)
	}
	if err := r.store.Put(ctx, invitationKey(inv.ID), data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

func (r *invitationRepository) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	data, err := r.store.Get(ctx, invitationKey(id))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	inv := &domain.Invitation{}
	if err := json.Unmarshal(data, inv); err != nil {
		return nil, fmt.Errorf("%w: invitation %s: %v", domain.ErrCorruptRecord, id, err)
	}
	if inv.ID == "" {
		// A record missing its own identifier was partially written.
		return nil, fmt.Errorf("%w: invitation %s: empty id", domain.ErrCorruptRecord, id)
	}
	return inv, nil
}

func (r *invitationRepository) Update(ctx context.Context, inv *domain.Invitation) error {
	if _, err := r.GetByID(ctx, inv.ID); err != nil {
		return err
	}
	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("encode invitation: %w", err)
	}
	if err := r.store.Put(ctx, invitationKey(inv.ID), data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	return nil
}
