package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/repository"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, asset_id, requester_id, org_id, asset_name, asset_type, status, note, submitted_on, resolved_on, resolved_by`

func scanRequest(row interface{ Scan(...any) error }, rq *domain.Request) error {
	return row.Scan(&rq.ID, &rq.AssetID, &rq.RequesterID, &rq.OrgID, &rq.AssetName, &rq.AssetType, &rq.Status, &rq.Note, &rq.SubmittedOn, &rq.ResolvedOn, &rq.ResolvedBy)
}

func (r *requestRepository) Create(ctx context.Context, rq *domain.Request) error {
	query := `INSERT INTO requests (asset_id, requester_id, org_id, asset_name, asset_type, status, note, submitted_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rq.AssetID, rq.RequesterID, rq.OrgID, rq.AssetName, rq.AssetType, rq.Status, rq.Note, rq.SubmittedOn).Scan(&rq.ID)
}

func (r *requestRepository) GetByID(ctx context.Context, id int32) (*domain.Request, error) {
	rq := &domain.Request{}
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	err := scanRequest(r.db.QueryRowContext(ctx, query, id), rq)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rq, nil
}

// UpdateNote only touches pending requests; resolving and editing the note
// race against each other, so the status check is part of the write.
func (r *requestRepository) UpdateNote(ctx context.Context, id int32, note string) error {
	query := `UPDATE requests SET note = $1 WHERE id = $2 AND status = $3`
	res, err := r.db.ExecContext(ctx, query, note, id, domain.RequestStatusPending)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *requestRepository) Resolve(ctx context.Context, id int32, status domain.RequestStatus, resolvedBy int32) error {
	query := `UPDATE requests SET status = $1, resolved_on = $2, resolved_by = $3 WHERE id = $4 AND status = $5`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), resolvedBy, id, domain.RequestStatusPending)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *requestRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM requests WHERE id = $1`, id)
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

func (r *requestRepository) ListByRequester(ctx context.Context, requesterID int32) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE requester_id = $1 ORDER BY submitted_on DESC`
	rows, err := r.db.QueryContext(ctx, query, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func (r *requestRepository) ListByAssetOrg(ctx context.Context, orgID int32, status string) ([]domain.Request, error) {
	query := `SELECT r.id, r.asset_id, r.requester_id, r.org_id, r.asset_name, r.asset_type, r.status, r.note, r.submitted_on, r.resolved_on, r.resolved_by
	          FROM requests r JOIN assets a ON a.id = r.asset_id WHERE a.org_id = $1`
	args := []any{orgID}
	if status != "" {
		query += ` AND r.status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY r.submitted_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func collectRequests(rows *sql.Rows) ([]domain.Request, error) {
	var reqs []domain.Request
	for rows.Next() {
		var rq domain.Request
		if err := scanRequest(rows, &rq); err != nil {
			return nil, err
		}
		reqs = append(reqs, rq)
	}
	return reqs, rows.Err()
}
