package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"invitebox/internal/domain"
)

type invitationService struct {
	invitationRepo domain.InvitationRepository
	rsvpRepo       domain.RSVPRepository
	contextTimeout time.Duration
}

// NewInvitationService returns an InvitationService over the given repositories.
func NewInvitationService(invitationRepo domain.InvitationRepository, rsvpRepo domain.RSVPRepository, timeout time.Duration) domain.InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		rsvpRepo:       rsvpRepo,
		contextTimeout: timeout,
	}
}

// requiredEventFields are checked for presence on create and update. Beyond
// presence the event fields are opaque to the service and the storage layer.
var requiredEventFields = []struct {
	name  string
	value func(*domain.EventDetails) string
}{
	{"event_name", func(e *domain.EventDetails) string { return e.EventName }},
	{"host_names", func(e *domain.EventDetails) string { return e.HostNames }},
	{"event_date", func(e *domain.EventDetails) string { return e.EventDate }},
	{"event_time", func(e *domain.EventDetails) string { return e.EventTime }},
	{"venue_address", func(e *domain.EventDetails) string { return e.VenueAddress }},
	{"invitation_message", func(e *domain.EventDetails) string { return e.Message }},
}

func validateEventDetails(ev *domain.EventDetails) error {
	for _, f := range requiredEventFields {
		if strings.TrimSpace(f.value(ev)) == "" {
			return domain.NewValidationError(f.name, "is required")
		}
	}
	return nil
}

func (s *invitationService) Create(ctx context.Context, event domain.EventDetails, pres domain.Presentation) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEventDetails(&event); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inv := &domain.Invitation{
		ID:           uuid.NewString(),
		Event:        event,
		Presentation: pres,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}
	return inv, nil
}

func (s *invitationService) Get(ctx context.Context, id string) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	inv, err := s.invitationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invitationService) Update(ctx context.Context, id string, event domain.EventDetails, pres domain.Presentation) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEventDetails(&event); err != nil {
		return nil, err
	}

	existing, err := s.invitationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// ID and CreatedAt are immutable; everything else is overwritten.
	updated := &domain.Invitation{
		ID:           existing.ID,
		Event:        event,
		Presentation: pres,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.invitationRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update invitation: %w", err)
	}
	return updated, nil
}

func (s *invitationService) PublicView(ctx context.Context, id string) (*domain.Invitation, domain.Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	inv, err := s.invitationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Summary{}, err
	}
	records, err := s.rsvpRepo.ListByInvitationID(ctx, id)
	if err != nil {
		return nil, domain.Summary{}, fmt.Errorf("list rsvps: %w", err)
	}
	return inv, domain.Summarize(records), nil
}
