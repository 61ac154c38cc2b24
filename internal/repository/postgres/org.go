package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, o *domain.Organization) error {
	query := `INSERT INTO orgs (name, admin_email, employee_limit, current_employee_count, subscription_tier, created_on)
	          VALUES ($1, $2, $3, 0, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, o.Name, o.AdminEmail, o.EmployeeLimit, o.SubscriptionTier, time.Now()).Scan(&o.ID)
}

func (r *organizationRepository) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	o := &domain.Organization{}
	query := `SELECT id, name, admin_email, employee_limit, current_employee_count, subscription_tier, created_on FROM orgs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Name, &o.AdminEmail, &o.EmployeeLimit, &o.CurrentEmployeeCount, &o.SubscriptionTier, &o.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *organizationRepository) SetCapacity(ctx context.Context, orgID, employeeLimit int32, tier string) error {
	query := `UPDATE orgs SET employee_limit = $1, subscription_tier = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, employeeLimit, tier, orgID)
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

func (r *organizationRepository) ListOverCapacity(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT id, name, admin_email, employee_limit, current_employee_count, subscription_tier, created_on
	          FROM orgs WHERE current_employee_count > employee_limit`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var o domain.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.AdminEmail, &o.EmployeeLimit, &o.CurrentEmployeeCount, &o.SubscriptionTier, &o.CreatedOn); err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}
