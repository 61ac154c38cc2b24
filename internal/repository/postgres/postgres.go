package postgres

import (
	"database/sql"

	"assetdesk-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.OrganizationRepository
	repository.AssetRepository
	repository.RequestRepository
	repository.AffiliationRepository
	repository.AssignmentRepository
	repository.PaymentRepository
	repository.PackageRepository
	repository.WorkflowRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		OrganizationRepository: NewOrganizationRepository(db),
		AssetRepository:        NewAssetRepository(db),
		RequestRepository:      NewRequestRepository(db),
		AffiliationRepository:  NewAffiliationRepository(db),
		AssignmentRepository:   NewAssignmentRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		PackageRepository:      NewPackageRepository(db),
		WorkflowRepository:     NewWorkflowRepository(db),
	}
}
