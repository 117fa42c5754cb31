// Package postgres implements the invitation and RSVP repositories on
// PostgreSQL, for deployments that outgrow the flat-file store.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"invitebox/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

// NewInvitationRepository returns an InvitationRepository over db.
func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{DB: db}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (
			id, event_name, host_names, event_date, event_time, venue_address,
			invocation, invitation_message, manager_email,
			theme, text_color_mode, custom_text_color, font_scale, overlay_opacity,
			image_ref, audio_ref, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err := r.DB.ExecContext(ctx, query,
		inv.ID, inv.Event.EventName, inv.Event.HostNames, inv.Event.EventDate, inv.Event.EventTime,
		inv.Event.VenueAddress, inv.Event.Invocation, inv.Event.Message, inv.Event.ManagerEmail,
		inv.Presentation.Theme, inv.Presentation.TextColorMode, inv.Presentation.CustomTextColor,
		inv.Presentation.FontScale, inv.Presentation.OverlayOpacity,
		inv.Presentation.ImageRef, inv.Presentation.AudioRef, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

const invitationColumns = `
	id, event_name, host_names, event_date, event_time, venue_address,
	invocation, invitation_message, manager_email,
	theme, text_color_mode, custom_text_color, font_scale, overlay_opacity,
	image_ref, audio_ref, created_at, updated_at
`

func scanInvitation(row *sql.Row) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	err := row.Scan(
		&inv.ID, &inv.Event.EventName, &inv.Event.HostNames, &inv.Event.EventDate, &inv.Event.EventTime,
		&inv.Event.VenueAddress, &inv.Event.Invocation, &inv.Event.Message, &inv.Event.ManagerEmail,
		&inv.Presentation.Theme, &inv.Presentation.TextColorMode, &inv.Presentation.CustomTextColor,
		&inv.Presentation.FontScale, &inv.Presentation.OverlayOpacity,
		&inv.Presentation.ImageRef, &inv.Presentation.AudioRef, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`
	return scanInvitation(r.DB.QueryRowContext(ctx, query, id))
}

func (r *invitationRepository) Update(ctx context.Context, inv *domain.Invitation) error {
	query := `
		UPDATE invitations SET
			event_name = $2, host_names = $3, event_date = $4, event_time = $5,
			venue_address = $6, invocation = $7, invitation_message = $8, manager_email = $9,
			theme = $10, text_color_mode = $11, custom_text_color = $12,
			font_scale = $13, overlay_opacity = $14, image_ref = $15, audio_ref = $16,
			updated_at = $17
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		inv.ID, inv.Event.EventName, inv.Event.HostNames, inv.Event.EventDate, inv.Event.EventTime,
		inv.Event.VenueAddress, inv.Event.Invocation, inv.Event.Message, inv.Event.ManagerEmail,
		inv.Presentation.Theme, inv.Presentation.TextColorMode, inv.Presentation.CustomTextColor,
		inv.Presentation.FontScale, inv.Presentation.OverlayOpacity,
		inv.Presentation.ImageRef, inv.Presentation.AudioRef, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
