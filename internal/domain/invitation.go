package domain

import (
	"context"
	"time"
)

// EventDetails are the event-facing fields of an invitation. The storage layer
// treats them as opaque strings; only presence of the required ones is checked.
// swagger:model EventDetails
type EventDetails struct {
	EventName    string `json:"event_name"`
	HostNames    string `json:"host_names"`
	EventDate    string `json:"event_date"`
	EventTime    string `json:"event_time"`
	VenueAddress string `json:"venue_address"`
	Invocation   string `json:"invocation,omitempty"`
	Message      string `json:"invitation_message"`
	ManagerEmail string `json:"manager_email,omitempty"`
}

// Presentation holds theming and media choices for the public invitation page.
// Media fields are references to uploaded assets, opaque to storage.
// swagger:model Presentation
type Presentation struct {
	Theme           string  `json:"theme,omitempty"`
	TextColorMode   string  `json:"text_color_mode,omitempty"`
	CustomTextColor string  `json:"custom_text_color,omitempty"`
	FontScale       float64 `json:"font_scale,omitempty"`
	OverlayOpacity  float64 `json:"overlay_opacity,omitempty"`
	ImageRef        string  `json:"image_ref,omitempty"`
	AudioRef        string  `json:"audio_ref,omitempty"`
}

// Invitation is a created event invitation. ID is the opaque token that public
// share links carry; ID and CreatedAt never change after creation.
// swagger:model Invitation
type Invitation struct {
	ID           string       `json:"id"`
	Event        EventDetails `json:"event"`
	Presentation Presentation `json:"presentation"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// InvitationRepository defines storage operations for invitations.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	GetByID(ctx context.Context, id string) (*Invitation, error)
	Update(ctx context.Context, inv *Invitation) error
}

// InvitationService defines the invitation lifecycle operations.
type InvitationService interface {
	Create(ctx context.Context, event EventDetails, pres Presentation) (*Invitation, error)
	Get(ctx context.Context, id string) (*Invitation, error)
	// Update overwrites all fields except ID and CreatedAt.
	Update(ctx context.Context, id string, event EventDetails, pres Presentation) (*Invitation, error)
	// PublicView returns the invitation together with a freshly computed summary
	// of its RSVPs. It is the only read the guest-facing page needs.
	PublicView(ctx context.Context, id string) (*Invitation, Summary, error)
}
