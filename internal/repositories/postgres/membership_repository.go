package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"luxerent/internal/models"
	"luxerent/internal/repositories/interfaces"
)

type membershipRepository struct {
	db *pgxpool.Pool
}

func NewMembershipRepository(db *pgxpool.Pool) interfaces.MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) GetByClientID(ctx context.Context, clientID int64) (*models.MembershipRecord, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, client_id, tier_id, status, renewal_date, created_at, updated_at
		FROM memberships
		WHERE client_id = $1`, clientID)

	var record models.MembershipRecord
	err := row.Scan(
		&record.ID, &record.ClientID, &record.TierID, &record.Status,
		&record.RenewalDate, &record.CreatedAt, &record.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *membershipRepository) Create(ctx context.Context, record *models.MembershipRecord) error {
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	return r.db.QueryRow(ctx, `
		INSERT INTO memberships (client_id, tier_id, status, renewal_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		record.ClientID, record.TierID, record.Status,
		record.RenewalDate, record.CreatedAt, record.UpdatedAt,
	).Scan(&record.ID)
}

func (r *membershipRepository) UpdateStatus(ctx context.Context, id int64, status models.MembershipStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE memberships
		SET status = $2, updated_at = $3
		WHERE id = $1`, id, status, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}
