package postgres

import (
	"context"
	"testing"

	"assetdesk-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestResolve_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE requests SET status").
		WithArgs(domain.RequestStatusRejected, sqlmock.AnyArg(), int32(9), int32(5), domain.RequestStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRequestRepository(db)
	err = repo.Resolve(context.Background(), 5, domain.RequestStatusRejected, 9)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestResolve_LosesRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// another resolution landed first: the PENDING guard matches no rows
	mock.ExpectExec("UPDATE requests SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRequestRepository(db)
	err = repo.Resolve(context.Background(), 5, domain.RequestStatusApproved, 9)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRequestUpdateNote_ResolvedRequest(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE requests SET note").
		WithArgs("updated", int32(5), domain.RequestStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRequestRepository(db)
	err = repo.UpdateNote(context.Background(), 5, "updated")

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRequestGetByID_NullableFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id", "asset_id", "requester_id", "org_id", "asset_name", "asset_type", "status", "note", "submitted_on", "resolved_on", "resolved_by"}
	mock.ExpectQuery("SELECT (.+) FROM requests WHERE id").
		WithArgs(int32(5)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(5, 7, 42, nil, "Thinkpad X1", "RETURNABLE", "PENDING", "", testTime(), nil, nil))

	repo := NewRequestRepository(db)
	rq, err := repo.GetByID(context.Background(), 5)

	assert.NoError(t, err)
	assert.Nil(t, rq.OrgID)
	assert.Nil(t, rq.ResolvedOn)
	assert.Nil(t, rq.ResolvedBy)
	assert.Equal(t, domain.RequestStatusPending, rq.Status)
}

func TestRequestDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM requests").
		WithArgs(int32(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRequestRepository(db)
	err = repo.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
