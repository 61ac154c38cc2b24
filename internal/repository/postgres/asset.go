package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/repository"
)

type assetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) repository.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, a *domain.Asset) error {
	query := `INSERT INTO assets (org_id, name, description, type, total_quantity, available_quantity, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.OrgID, a.Name, a.Description, a.Type, a.TotalQuantity, a.AvailableQuantity, time.Now()).Scan(&a.ID)
}

func (r *assetRepository) GetByID(ctx context.Context, id int32) (*domain.Asset, error) {
	a := &domain.Asset{}
	query := `SELECT id, org_id, name, description, type, total_quantity, available_quantity, created_on, updated_on FROM assets WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.OrgID, &a.Name, &a.Description, &a.Type, &a.TotalQuantity, &a.AvailableQuantity, &a.CreatedOn, &a.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *assetRepository) Update(ctx context.Context, a *domain.Asset) error {
	query := `UPDATE assets SET name=$1, description=$2, type=$3, total_quantity=$4, available_quantity=$5, updated_on=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, a.Name, a.Description, a.Type, a.TotalQuantity, a.AvailableQuantity, time.Now(), a.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *assetRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *assetRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.Asset, error) {
	query := `SELECT id, org_id, name, description, type, total_quantity, available_quantity, created_on, updated_on
	          FROM assets WHERE org_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		var a domain.Asset
		if err := rows.Scan(&a.ID, &a.OrgID, &a.Name, &a.Description, &a.Type, &a.TotalQuantity, &a.AvailableQuantity, &a.CreatedOn, &a.UpdatedOn); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// Reserve takes one unit. The availability check is part of the write so
// concurrent reservations can never drive the count below zero.
func (r *assetRepository) Reserve(ctx context.Context, id int32) error {
	query := `UPDATE assets SET available_quantity = available_quantity - 1, updated_on = $1
	          WHERE id = $2 AND available_quantity > 0`
	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrOutOfStock
	}
	return nil
}

// Release gives one unit back, clamped at total_quantity. A release on an
// already-full asset affects no rows and is not an error.
func (r *assetRepository) Release(ctx context.Context, id int32) error {
	query := `UPDATE assets SET available_quantity = available_quantity + 1, updated_on = $1
	          WHERE id = $2 AND available_quantity < total_quantity`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *assetRepository) ListInvariantViolations(ctx context.Context) ([]domain.Asset, error) {
	query := `SELECT id, org_id, name, description, type, total_quantity, available_quantity, created_on, updated_on
	          FROM assets WHERE available_quantity < 0 OR available_quantity > total_quantity`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		var a domain.Asset
		if err := rows.Scan(&a.ID, &a.OrgID, &a.Name, &a.Description, &a.Type, &a.TotalQuantity, &a.AvailableQuantity, &a.CreatedOn, &a.UpdatedOn); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}
