package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"luxerent/internal/models"
	"luxerent/internal/repositories/interfaces"
)

type clientRepository struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) interfaces.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, first_name, last_name, phone, role, is_active, created_at, updated_at
		FROM clients
		WHERE id = $1`, id)
	return scanClient(row)
}

func (r *clientRepository) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, first_name, last_name, phone, role, is_active, created_at, updated_at
		FROM clients
		WHERE lower(email) = $1`, strings.ToLower(strings.TrimSpace(email)))
	return scanClient(row)
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	return r.db.QueryRow(ctx, `
		INSERT INTO clients (email, first_name, last_name, phone, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		client.Email, client.FirstName, client.LastName, client.Phone,
		client.Role, client.IsActive, client.CreatedAt, client.UpdatedAt,
	).Scan(&client.ID)
}

func scanClient(row pgx.Row) (*models.Client, error) {
	var client models.Client
	err := row.Scan(
		&client.ID, &client.Email, &client.FirstName, &client.LastName,
		&client.Phone, &client.Role, &client.IsActive,
		&client.CreatedAt, &client.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}
