package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"invitebox/internal/domain"
)

type rsvpRepository struct {
	DB *sql.DB
}

// NewRSVPRepository returns an RSVPRepository over db.
func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{DB: db}
}

func (r *rsvpRepository) Append(ctx context.Context, rec *domain.RSVP) error {
	query := `
		INSERT INTO rsvps (
			id, invitation_id, guest_name, guest_email, attendance,
			adults, children, guest_count, message, submitted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		rec.ID, rec.InvitationID, rec.GuestName, rec.GuestEmail, string(rec.Attendance),
		rec.Adults, rec.Children, rec.GuestCount, rec.Message, rec.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

func (r *rsvpRepository) ListByInvitationID(ctx context.Context, invitationID string) ([]*domain.RSVP, error) {
	query := `
		SELECT id, invitation_id, guest_name, guest_email, attendance,
		       adults, children, guest_count, message, submitted_at
		FROM rsvps
		WHERE invitation_id = $1
		ORDER BY submitted_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, invitationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.RSVP, 0)
	for rows.Next() {
		rec := &domain.RSVP{}
		var attendance string
		if err := rows.Scan(
			&rec.ID, &rec.InvitationID, &rec.GuestName, &rec.GuestEmail, &attendance,
			&rec.Adults, &rec.Children, &rec.GuestCount, &rec.Message, &rec.SubmittedAt,
		); err != nil {
			return nil, err
		}
		rec.Attendance = domain.Attendance(attendance)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
