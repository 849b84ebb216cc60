package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"luxerent/internal/models"
	"luxerent/internal/repositories/interfaces"
)

type bookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) interfaces.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	requestJSON, err := json.Marshal(booking.Request)
	if err != nil {
		return fmt.Errorf("failed to marshal booking request: %w", err)
	}
	breakdownJSON, err := json.Marshal(booking.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal pricing breakdown: %w", err)
	}

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	err = r.db.QueryRow(ctx, `
		INSERT INTO bookings (
			client_id, asset_id, status, currency,
			pickup_at, dropoff_at, request, breakdown,
			payment_ref, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		booking.ClientID,
		booking.AssetID,
		booking.Status,
		booking.Currency,
		booking.PickupAt,
		booking.DropoffAt,
		requestJSON,
		breakdownJSON,
		booking.PaymentRef,
		booking.CreatedAt,
		booking.UpdatedAt,
	).Scan(&booking.ID)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, client_id, asset_id, status, currency,
		       pickup_at, dropoff_at, request, breakdown,
		       payment_ref, created_at, updated_at
		FROM bookings
		WHERE id = $1`, id)

	booking, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *bookingRepository) GetByPaymentRef(ctx context.Context, paymentRef string) (*models.Booking, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, client_id, asset_id, status, currency,
		       pickup_at, dropoff_at, request, breakdown,
		       payment_ref, created_at, updated_at
		FROM bookings
		WHERE payment_ref = $1`, paymentRef)

	booking, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *bookingRepository) ListByClient(ctx context.Context, clientID int64, limit, offset int) ([]*models.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, client_id, asset_id, status, currency,
		       pickup_at, dropoff_at, request, breakdown,
		       payment_ref, created_at, updated_at
		FROM bookings
		WHERE client_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, clientID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status models.BookingStatus, paymentRef string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = $2, payment_ref = $3, updated_at = $4
		WHERE id = $1`, id, status, paymentRef, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var booking models.Booking
	var requestJSON, breakdownJSON []byte

	err := row.Scan(
		&booking.ID, &booking.ClientID, &booking.AssetID, &booking.Status,
		&booking.Currency, &booking.PickupAt, &booking.DropoffAt,
		&requestJSON, &breakdownJSON,
		&booking.PaymentRef, &booking.CreatedAt, &booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(requestJSON, &booking.Request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking request: %w", err)
	}
	if err := json.Unmarshal(breakdownJSON, &booking.Breakdown); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pricing breakdown: %w", err)
	}
	return &booking, nil
}
