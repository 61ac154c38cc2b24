package postgres

import (
	"context"
	"database/sql"
	"errors"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/repository"
)

type assignmentRepository struct {
	db *sql.DB
}

func NewAssignmentRepository(db *sql.DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) GetByID(ctx context.Context, id int32) (*domain.Assignment, error) {
	as := &domain.Assignment{}
	query := `SELECT id, request_id, asset_id, employee_id, org_id, unit_type, status, assigned_on, returned_on
	          FROM assignments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&as.ID, &as.RequestID, &as.AssetID, &as.EmployeeID, &as.OrgID, &as.UnitType, &as.Status, &as.AssignedOn, &as.ReturnedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return as, nil
}

func (r *assignmentRepository) ListByEmployee(ctx context.Context, employeeID int32) ([]domain.Assignment, error) {
	query := `SELECT id, request_id, asset_id, employee_id, org_id, unit_type, status, assigned_on, returned_on
	          FROM assignments WHERE employee_id = $1 ORDER BY assigned_on DESC`
	rows, err := r.db.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		var as domain.Assignment
		if err := rows.Scan(&as.ID, &as.RequestID, &as.AssetID, &as.EmployeeID, &as.OrgID, &as.UnitType, &as.Status, &as.AssignedOn, &as.ReturnedOn); err != nil {
			return nil, err
		}
		assignments = append(assignments, as)
	}
	return assignments, rows.Err()
}
