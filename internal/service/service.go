package service

import (
	"context"

	"assetdesk-backend/internal/domain"
)

type RequestService interface {
	Submit(ctx context.Context, requesterID, assetID int32, note string) (*domain.Request, error)
	Approve(ctx context.Context, adminID, adminOrgID, requestID int32) (*domain.Request, *domain.Assignment, error)
	Reject(ctx context.Context, adminID, adminOrgID, requestID int32) (*domain.Request, error)
	EditNote(ctx context.Context, requesterID, requestID int32, note string) error
	Delete(ctx context.Context, requesterID, requestID int32) error
	ListMine(ctx context.Context, requesterID int32) ([]domain.Request, error)
	ListOrgRequests(ctx context.Context, orgID int32, status string) ([]domain.Request, error)
}

type AffiliationService interface {
	Deactivate(ctx context.Context, adminOrgID, employeeID int32) error
	ListActiveEmployees(ctx context.Context, orgID int32) ([]domain.Affiliation, []domain.User, error)
}

type AssetService interface {
	Add(ctx context.Context, adminOrgID int32, asset *domain.Asset) error
	Get(ctx context.Context, id int32) (*domain.Asset, error)
	AdjustInventory(ctx context.Context, adminOrgID int32, asset *domain.Asset) error
	Remove(ctx context.Context, adminOrgID, id int32) error
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Asset, error)
}

type AssignmentService interface {
	Return(ctx context.Context, employeeID, assignmentID int32) (*domain.Assignment, error)
	ListMine(ctx context.Context, employeeID int32) ([]domain.Assignment, error)
}

type SubscriptionService interface {
	// Apply processes one payment-completed event, exactly once per
	// transaction ID. Redeliveries are absorbed silently.
	Apply(ctx context.Context, event domain.PaymentEvent) error
	// Reconcile retries capacity updates for recorded payments that have
	// not been applied yet; returns how many were applied.
	Reconcile(ctx context.Context) (int, error)
	ListOrgPayments(ctx context.Context, orgID int32) ([]domain.Payment, error)
	ListPackages(ctx context.Context) ([]domain.SubscriptionPackage, error)
}
