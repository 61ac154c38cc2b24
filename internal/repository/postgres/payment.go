package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Insert relies on the unique constraint on transaction_id. ON CONFLICT DO
// NOTHING makes the idempotency check and the insert one atomic statement,
// so a redelivered webhook can never record the payment twice — not even
// across process restarts.
func (r *paymentRepository) Insert(ctx context.Context, p *domain.Payment) (bool, error) {
	query := `INSERT INTO payments (transaction_id, org_id, package_id, amount_cents, completed_on)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (transaction_id) DO NOTHING RETURNING id`
	err := r.db.QueryRowContext(ctx, query, p.TransactionID, p.OrgID, p.PackageID, p.AmountCents, p.CompletedOn).Scan(&p.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *paymentRepository) MarkApplied(ctx context.Context, transactionID string) error {
	query := `UPDATE payments SET applied_on = $1 WHERE transaction_id = $2 AND applied_on IS NULL`
	_, err := r.db.ExecContext(ctx, query, time.Now(), transactionID)
	return err
}

const paymentColumns = `id, transaction_id, org_id, package_id, amount_cents, completed_on, applied_on`

func (r *paymentRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE org_id = $1 ORDER BY completed_on DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func (r *paymentRepository) ListUnapplied(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE applied_on IS NULL ORDER BY completed_on`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func collectPayments(rows *sql.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.TransactionID, &p.OrgID, &p.PackageID, &p.AmountCents, &p.CompletedOn, &p.AppliedOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

type packageRepository struct {
	db *sql.DB
}

func NewPackageRepository(db *sql.DB) repository.PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) GetByID(ctx context.Context, id string) (*domain.SubscriptionPackage, error) {
	p := &domain.SubscriptionPackage{}
	query := `SELECT id, name, employee_limit, tier, price_cents FROM subscription_packages WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.EmployeeLimit, &p.Tier, &p.PriceCents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUnknownPackage
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *packageRepository) List(ctx context.Context) ([]domain.SubscriptionPackage, error) {
	query := `SELECT id, name, employee_limit, tier, price_cents FROM subscription_packages ORDER BY employee_limit`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []domain.SubscriptionPackage
	for rows.Next() {
		var p domain.SubscriptionPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.EmployeeLimit, &p.Tier, &p.PriceCents); err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}
