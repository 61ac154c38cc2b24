package postgres

import (
	"context"
	"testing"

	"assetdesk-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffiliationDeactivate_ReleasesCapacitySlot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE affiliations SET status").
		WithArgs(domain.AffiliationStatusInactive, sqlmock.AnyArg(), int32(42), int32(3), domain.AffiliationStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE orgs SET current_employee_count = current_employee_count - 1").
		WithArgs(int32(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewAffiliationRepository(db)
	err = repo.Deactivate(context.Background(), 42, 3)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAffiliationDeactivate_NoActiveLink(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE affiliations SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := NewAffiliationRepository(db)
	err = repo.Deactivate(context.Background(), 42, 3)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAffiliationGetActive_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, employee_id, org_id").
		WithArgs(int32(42), int32(3), domain.AffiliationStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "org_id", "status", "joined_on", "deactivated_on"}))

	repo := NewAffiliationRepository(db)
	_, err = repo.GetActive(context.Background(), 42, 3)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
