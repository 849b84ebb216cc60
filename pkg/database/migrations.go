package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Migration struct {
	Version     int
	Description string
	Up          string
}

type Migrator struct {
	db         *pgxpool.Pool
	migrations []Migration
}

func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{
		db:         db,
		migrations: getMigrations(),
	}
}

func (m *Migrator) Up(ctx context.Context) error {
	if err := m.createVersionTable(ctx); err != nil {
		return err
	}

	currentVersion, err := m.getCurrentVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if migration.Version <= currentVersion {
			continue
		}
		log.Printf("Running migration %d: %s", migration.Version, migration.Description)

		if _, err := m.db.Exec(ctx, migration.Up); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}
		if _, err := m.db.Exec(ctx,
			`INSERT INTO schema_migrations (version) VALUES ($1)`, migration.Version); err != nil {
			return fmt.Errorf("failed to record migration version: %w", err)
		}
	}
	return nil
}

func (m *Migrator) createVersionTable(ctx context.Context) error {
	_, err := m.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (m *Migrator) getCurrentVersion(ctx context.Context) (int, error) {
	var version int
	err := m.db.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	return version, err
}

func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "create clients table",
			Up: `
				CREATE TABLE IF NOT EXISTS clients (
					id         BIGSERIAL PRIMARY KEY,
					email      TEXT NOT NULL UNIQUE,
					first_name TEXT NOT NULL,
					last_name  TEXT NOT NULL,
					phone      TEXT NOT NULL DEFAULT '',
					role       TEXT NOT NULL DEFAULT 'customer',
					is_active  BOOLEAN NOT NULL DEFAULT true,
					created_at TIMESTAMPTZ NOT NULL,
					updated_at TIMESTAMPTZ NOT NULL
				)`,
		},
		{
			Version:     2,
			Description: "create assets table",
			Up: `
				CREATE TABLE IF NOT EXISTS assets (
					id           BIGSERIAL PRIMARY KEY,
					type         TEXT NOT NULL,
					name         TEXT NOT NULL,
					brand        TEXT NOT NULL DEFAULT '',
					model        TEXT NOT NULL DEFAULT '',
					year         INT NOT NULL DEFAULT 0,
					status       TEXT NOT NULL DEFAULT 'available',
					daily_rates  JSONB NOT NULL DEFAULT '{}',
					deposit_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
					location     TEXT NOT NULL DEFAULT '',
					image_url    TEXT NOT NULL DEFAULT '',
					created_at   TIMESTAMPTZ NOT NULL,
					updated_at   TIMESTAMPTZ NOT NULL
				)`,
		},
		{
			Version:     3,
			Description: "create memberships table",
			Up: `
				CREATE TABLE IF NOT EXISTS memberships (
					id           BIGSERIAL PRIMARY KEY,
					client_id    BIGINT NOT NULL REFERENCES clients(id),
					tier_id      TEXT NOT NULL,
					status       TEXT NOT NULL,
					renewal_date TIMESTAMPTZ NOT NULL,
					created_at   TIMESTAMPTZ NOT NULL,
					updated_at   TIMESTAMPTZ NOT NULL,
					UNIQUE (client_id)
				)`,
		},
		{
			Version:     4,
			Description: "create bookings table",
			Up: `
				CREATE TABLE IF NOT EXISTS bookings (
					id          BIGSERIAL PRIMARY KEY,
					client_id   BIGINT REFERENCES clients(id),
					asset_id    BIGINT NOT NULL REFERENCES assets(id),
					status      TEXT NOT NULL,
					currency    TEXT NOT NULL,
					pickup_at   TIMESTAMPTZ NOT NULL,
					dropoff_at  TIMESTAMPTZ NOT NULL,
					request     JSONB NOT NULL,
					breakdown   JSONB NOT NULL,
					payment_ref TEXT NOT NULL DEFAULT '',
					created_at  TIMESTAMPTZ NOT NULL,
					updated_at  TIMESTAMPTZ NOT NULL
				)`,
		},
		{
			Version:     5,
			Description: "index bookings by client and pickup date",
			Up: `
				CREATE INDEX IF NOT EXISTS idx_bookings_client ON bookings (client_id, created_at DESC);
				CREATE INDEX IF NOT EXISTS idx_bookings_pickup ON bookings (asset_id, pickup_at)`,
		},
		{
			Version:     6,
			Description: "index bookings by payment reference for webhook lookups",
			Up: `
				CREATE INDEX IF NOT EXISTS idx_bookings_payment_ref ON bookings (payment_ref) WHERE payment_ref <> ''`,
		},
	}
}
