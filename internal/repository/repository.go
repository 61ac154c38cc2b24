package repository

import (
	"context"

	"assetdesk-backend/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id int32) (*domain.Organization, error)
	// SetCapacity overwrites the employee limit and tier. The new limit
	// replaces the old one, it is never added to it.
	SetCapacity(ctx context.Context, orgID, employeeLimit int32, tier string) error
	// ListOverCapacity returns organizations whose current count exceeds
	// their limit. Used only by the audit job; a non-empty result means an
	// invariant was violated outside the atomic paths.
	ListOverCapacity(ctx context.Context) ([]domain.Organization, error)
}

type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	GetByID(ctx context.Context, id int32) (*domain.Asset, error)
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, id int32) error
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Asset, error)
	// Reserve atomically decrements available_quantity, failing with
	// domain.ErrOutOfStock when no unit is available.
	Reserve(ctx context.Context, id int32) error
	// Release atomically increments available_quantity, clamped at
	// total_quantity. Releasing an already-full asset is a no-op.
	Release(ctx context.Context, id int32) error
	// ListInvariantViolations returns assets whose counts fall outside
	// [0, total]. Audit job only.
	ListInvariantViolations(ctx context.Context) ([]domain.Asset, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id int32) (*domain.Request, error)
	// UpdateNote rewrites the note only while the request is still
	// pending; domain.ErrConflict otherwise.
	UpdateNote(ctx context.Context, id int32, note string) error
	// Resolve conditionally flips a PENDING request to the given terminal
	// decision, stamping resolver and timestamp. domain.ErrConflict when a
	// concurrent resolution won the race.
	Resolve(ctx context.Context, id int32, status domain.RequestStatus, resolvedBy int32) error
	Delete(ctx context.Context, id int32) error
	ListByRequester(ctx context.Context, requesterID int32) ([]domain.Request, error)
	// ListByAssetOrg returns requests targeting assets owned by the given
	// organization, optionally filtered by status.
	ListByAssetOrg(ctx context.Context, orgID int32, status string) ([]domain.Request, error)
}

type AffiliationRepository interface {
	GetActive(ctx context.Context, employeeID, orgID int32) (*domain.Affiliation, error)
	// Deactivate flips the active affiliation to INACTIVE and decrements
	// the organization's employee count in one transaction.
	// domain.ErrNotFound when no active affiliation exists.
	Deactivate(ctx context.Context, employeeID, orgID int32) error
	// ListActiveByOrg returns active affiliations joined with the public
	// employee profiles, index-aligned.
	ListActiveByOrg(ctx context.Context, orgID int32) ([]domain.Affiliation, []domain.User, error)
}

type AssignmentRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Assignment, error)
	ListByEmployee(ctx context.Context, employeeID int32) ([]domain.Assignment, error)
}

type PaymentRepository interface {
	// Insert records the payment. Returns false with no error when a
	// payment with the same transaction ID already exists (unique
	// constraint), which is how redelivered events are absorbed.
	Insert(ctx context.Context, p *domain.Payment) (bool, error)
	MarkApplied(ctx context.Context, transactionID string) error
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Payment, error)
	ListUnapplied(ctx context.Context) ([]domain.Payment, error)
}

type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*domain.SubscriptionPackage, error)
	List(ctx context.Context) ([]domain.SubscriptionPackage, error)
}

// WorkflowRepository holds the cross-aggregate transitions that must commit
// atomically across requests, affiliations, assets and assignments. Each
// method runs a single database transaction whose conditional writes carry
// the concurrency guarantees.
type WorkflowRepository interface {
	// ApproveRequest flips the request to APPROVED, admits the requester
	// into the asset owner's organization (idempotent when an active
	// affiliation already exists, domain.ErrCapacityExceeded when the
	// organization is full), reserves one inventory unit and creates the
	// HELD assignment. On any failure the transaction rolls back and the
	// request observably stays PENDING.
	ApproveRequest(ctx context.Context, requestID, adminID int32) (*domain.Assignment, error)
	// ReturnAssignment flips a HELD assignment to RETURNED, releases one
	// inventory unit when the unit type is returnable, and moves the
	// originating request to RETURNED. domain.ErrAlreadyReturned when the
	// assignment was already returned.
	ReturnAssignment(ctx context.Context, assignmentID int32) (*domain.Assignment, error)
}
