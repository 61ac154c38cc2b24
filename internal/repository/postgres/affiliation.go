package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/repository"
)

type affiliationRepository struct {
	db *sql.DB
}

func NewAffiliationRepository(db *sql.DB) repository.AffiliationRepository {
	return &affiliationRepository{db: db}
}

func (r *affiliationRepository) GetActive(ctx context.Context, employeeID, orgID int32) (*domain.Affiliation, error) {
	af := &domain.Affiliation{}
	query := `SELECT id, employee_id, org_id, status, joined_on, deactivated_on
	          FROM affiliations WHERE employee_id = $1 AND org_id = $2 AND status = $3`
	err := r.db.QueryRowContext(ctx, query, employeeID, orgID, domain.AffiliationStatusActive).
		Scan(&af.ID, &af.EmployeeID, &af.OrgID, &af.Status, &af.JoinedOn, &af.DeactivatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return af, nil
}

// Deactivate flips the link and gives the capacity slot back in one
// transaction. The decrement is bounded at zero so a double deactivation
// can never drive the counter negative.
func (r *affiliationRepository) Deactivate(ctx context.Context, employeeID, orgID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE affiliations SET status = $1, deactivated_on = $2
		 WHERE employee_id = $3 AND org_id = $4 AND status = $5`,
		domain.AffiliationStatusInactive, time.Now(), employeeID, orgID, domain.AffiliationStatusActive)
	if err != nil {
		return fmt.Errorf("deactivate affiliation: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orgs SET current_employee_count = current_employee_count - 1
		 WHERE id = $1 AND current_employee_count > 0`, orgID)
	if err != nil {
		return fmt.Errorf("decrement employee count: %w", err)
	}

	return tx.Commit()
}

func (r *affiliationRepository) ListActiveByOrg(ctx context.Context, orgID int32) ([]domain.Affiliation, []domain.User, error) {
	query := `SELECT af.id, af.employee_id, af.org_id, af.status, af.joined_on, af.deactivated_on,
	                 u.id, u.name, u.email, u.created_on
	          FROM affiliations af JOIN users u ON u.id = af.employee_id
	          WHERE af.org_id = $1 AND af.status = $2 ORDER BY u.name`
	rows, err := r.db.QueryContext(ctx, query, orgID, domain.AffiliationStatusActive)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var affiliations []domain.Affiliation
	var users []domain.User
	for rows.Next() {
		var af domain.Affiliation
		var u domain.User
		if err := rows.Scan(&af.ID, &af.EmployeeID, &af.OrgID, &af.Status, &af.JoinedOn, &af.DeactivatedOn,
			&u.ID, &u.Name, &u.Email, &u.CreatedOn); err != nil {
			return nil, nil, err
		}
		affiliations = append(affiliations, af)
		users = append(users, u)
	}
	return affiliations, users, rows.Err()
}
