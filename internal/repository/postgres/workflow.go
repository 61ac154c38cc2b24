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

type workflowRepository struct {
	db *sql.DB
}

func NewWorkflowRepository(db *sql.DB) repository.WorkflowRepository {
	return &workflowRepository{db: db}
}

// ApproveRequest commits the whole approval in one transaction:
//
//  1. conditional status flip on the request (loser of a concurrent
//     resolution sees zero rows and gets ErrConflict);
//  2. admit-or-refresh the requester's affiliation — the capacity check is
//     expressed inside the increment statement so concurrent approvals can
//     never push current_employee_count past employee_limit;
//  3. reserve one inventory unit (bounded decrement);
//  4. insert the HELD assignment.
//
// Any failure rolls the transaction back, leaving the request PENDING and
// all counters untouched.
func (r *workflowRepository) ApproveRequest(ctx context.Context, requestID, adminID int32) (*domain.Assignment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		assetID   int32
		orgID     int32
		requester int32
		unitType  domain.AssetType
	)
	err = tx.QueryRowContext(ctx,
		`SELECT r.asset_id, r.requester_id, a.org_id, a.type
		 FROM requests r JOIN assets a ON a.id = r.asset_id
		 WHERE r.id = $1`, requestID).
		Scan(&assetID, &requester, &orgID, &unitType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load request: %w", err)
	}

	now := time.Now()

	res, err := tx.ExecContext(ctx,
		`UPDATE requests SET status = $1, resolved_on = $2, resolved_by = $3, org_id = $4
		 WHERE id = $5 AND status = $6`,
		domain.RequestStatusApproved, now, adminID, orgID, requestID, domain.RequestStatusPending)
	if err != nil {
		return nil, fmt.Errorf("resolve request: %w", err)
	}
	if rows, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if rows == 0 {
		return nil, domain.ErrConflict
	}

	var affiliationID int32
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM affiliations WHERE employee_id = $1 AND org_id = $2 AND status = $3`,
		requester, orgID, domain.AffiliationStatusActive).Scan(&affiliationID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// First approval between this employee and this organization:
		// claim a capacity slot and create the affiliation. The check and
		// the increment are one statement.
		res, err = tx.ExecContext(ctx,
			`UPDATE orgs SET current_employee_count = current_employee_count + 1
			 WHERE id = $1 AND current_employee_count < employee_limit`, orgID)
		if err != nil {
			return nil, fmt.Errorf("claim capacity slot: %w", err)
		}
		if rows, err := res.RowsAffected(); err != nil {
			return nil, err
		} else if rows == 0 {
			return nil, domain.ErrCapacityExceeded
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO affiliations (employee_id, org_id, status, joined_on) VALUES ($1, $2, $3, $4)`,
			requester, orgID, domain.AffiliationStatusActive, now)
		if err != nil {
			return nil, fmt.Errorf("create affiliation: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("check affiliation: %w", err)
	default:
		// Active affiliation already present — re-approval to the same
		// employee must not double-count capacity.
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE assets SET available_quantity = available_quantity - 1, updated_on = $1
		 WHERE id = $2 AND available_quantity > 0`, now, assetID)
	if err != nil {
		return nil, fmt.Errorf("reserve unit: %w", err)
	}
	if rows, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if rows == 0 {
		return nil, domain.ErrOutOfStock
	}

	as := &domain.Assignment{
		RequestID:  requestID,
		AssetID:    assetID,
		EmployeeID: requester,
		OrgID:      orgID,
		UnitType:   unitType,
		Status:     domain.AssignmentStatusHeld,
		AssignedOn: now,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO assignments (request_id, asset_id, employee_id, org_id, unit_type, status, assigned_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		as.RequestID, as.AssetID, as.EmployeeID, as.OrgID, as.UnitType, as.Status, as.AssignedOn).Scan(&as.ID)
	if err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit approval: %w", err)
	}
	return as, nil
}

// ReturnAssignment flips the assignment, releases the unit (returnable
// assets only) and closes out the originating request, all in one
// transaction. The HELD check rides on the assignment update so a double
// return loses cleanly with ErrAlreadyReturned.
func (r *workflowRepository) ReturnAssignment(ctx context.Context, assignmentID int32) (*domain.Assignment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	as := &domain.Assignment{}
	err = tx.QueryRowContext(ctx,
		`SELECT id, request_id, asset_id, employee_id, org_id, unit_type, status, assigned_on, returned_on
		 FROM assignments WHERE id = $1`, assignmentID).
		Scan(&as.ID, &as.RequestID, &as.AssetID, &as.EmployeeID, &as.OrgID, &as.UnitType, &as.Status, &as.AssignedOn, &as.ReturnedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load assignment: %w", err)
	}

	now := time.Now()

	res, err := tx.ExecContext(ctx,
		`UPDATE assignments SET status = $1, returned_on = $2 WHERE id = $3 AND status = $4`,
		domain.AssignmentStatusReturned, now, assignmentID, domain.AssignmentStatusHeld)
	if err != nil {
		return nil, fmt.Errorf("mark returned: %w", err)
	}
	if rows, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if rows == 0 {
		return nil, domain.ErrAlreadyReturned
	}

	if as.UnitType == domain.AssetTypeReturnable {
		_, err = tx.ExecContext(ctx,
			`UPDATE assets SET available_quantity = available_quantity + 1, updated_on = $1
			 WHERE id = $2 AND available_quantity < total_quantity`, now, as.AssetID)
		if err != nil {
			return nil, fmt.Errorf("release unit: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE requests SET status = $1 WHERE id = $2 AND status = $3`,
		domain.RequestStatusReturned, as.RequestID, domain.RequestStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("close request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit return: %w", err)
	}

	as.Status = domain.AssignmentStatusReturned
	as.ReturnedOn = &now
	return as, nil
}
