package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"luxerent/internal/models"
	"luxerent/internal/repositories/interfaces"
)

type assetRepository struct {
	db *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) interfaces.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) GetByID(ctx context.Context, id int64) (*models.Asset, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, type, name, brand, model, year, status,
		       daily_rates, deposit_rate, location, image_url,
		       created_at, updated_at
		FROM assets
		WHERE id = $1`, id)

	asset, err := scanAsset(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, interfaces.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return asset, nil
}

func (r *assetRepository) List(ctx context.Context, assetType models.AssetType, limit, offset int) ([]*models.Asset, error) {
	query := `
		SELECT id, type, name, brand, model, year, status,
		       daily_rates, deposit_rate, location, image_url,
		       created_at, updated_at
		FROM assets
		WHERE status = 'available'`
	args := []interface{}{}
	argn := 1

	if assetType != "" {
		query += fmt.Sprintf(" AND type = $%d", argn)
		args = append(args, assetType)
		argn++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argn, argn+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*models.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

func scanAsset(row pgx.Row) (*models.Asset, error) {
	var asset models.Asset
	var ratesJSON []byte

	err := row.Scan(
		&asset.ID, &asset.Type, &asset.Name, &asset.Brand, &asset.Model,
		&asset.Year, &asset.Status, &ratesJSON, &asset.DepositRate,
		&asset.Location, &asset.ImageURL, &asset.CreatedAt, &asset.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(ratesJSON, &asset.DailyRates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily rates: %w", err)
	}
	return &asset, nil
}
