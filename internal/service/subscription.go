package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/logger"
	"assetdesk-backend/internal/repository"
)

type subscriptionService struct {
	paymentRepo repository.PaymentRepository
	packageRepo repository.PackageRepository
	orgRepo     repository.OrganizationRepository
}

func NewSubscriptionService(
	paymentRepo repository.PaymentRepository,
	packageRepo repository.PackageRepository,
	orgRepo repository.OrganizationRepository,
) SubscriptionService {
	return &subscriptionService{
		paymentRepo: paymentRepo,
		packageRepo: packageRepo,
		orgRepo:     orgRepo,
	}
}

// Apply records the payment and raises the organization's capacity. The
// unique-insert on the transaction ID absorbs redelivered events. If the
// capacity update cannot be applied (unknown package, store failure) the
// payment stays recorded with applied_on unset and the reconciliation job
// retries it; the money is never silently dropped.
func (s *subscriptionService) Apply(ctx context.Context, event domain.PaymentEvent) error {
	if strings.TrimSpace(event.TransactionID) == "" {
		return fmt.Errorf("%w: transaction id must not be empty", domain.ErrValidation)
	}
	if event.CompletedOn.IsZero() {
		event.CompletedOn = time.Now()
	}

	p := &domain.Payment{
		TransactionID: event.TransactionID,
		OrgID:         event.OrgID,
		PackageID:     event.PackageID,
		AmountCents:   event.AmountCents,
		CompletedOn:   event.CompletedOn,
	}
	inserted, err := s.paymentRepo.Insert(ctx, p)
	if err != nil {
		return fmt.Errorf("record payment: %w", err)
	}
	if !inserted {
		logger.Info("duplicate payment event absorbed", "transaction_id", event.TransactionID)
		return nil
	}

	if err := s.applyCapacity(ctx, p); err != nil {
		// Recorded but not applied; picked up again by reconciliation.
		logger.Error("capacity update deferred", "transaction_id", p.TransactionID, "org_id", p.OrgID, "package_id", p.PackageID, "error", err)
		return nil
	}

	logger.Info("subscription payment applied", "transaction_id", p.TransactionID, "org_id", p.OrgID, "package_id", p.PackageID)
	return nil
}

// applyCapacity overwrites the organization's limit and tier with the
// purchased package. The new limit replaces the old one.
func (s *subscriptionService) applyCapacity(ctx context.Context, p *domain.Payment) error {
	pkg, err := s.packageRepo.GetByID(ctx, p.PackageID)
	if err != nil {
		return err
	}
	if err := s.orgRepo.SetCapacity(ctx, p.OrgID, pkg.EmployeeLimit, pkg.Tier); err != nil {
		return fmt.Errorf("set capacity: %w", err)
	}
	return s.paymentRepo.MarkApplied(ctx, p.TransactionID)
}

// Reconcile retries the capacity update for every recorded payment whose
// application failed earlier. Invoked from the scheduled job.
func (s *subscriptionService) Reconcile(ctx context.Context) (int, error) {
	pending, err := s.paymentRepo.ListUnapplied(ctx)
	if err != nil {
		return 0, fmt.Errorf("list unapplied payments: %w", err)
	}

	applied := 0
	for i := range pending {
		p := &pending[i]
		if err := s.applyCapacity(ctx, p); err != nil {
			if errors.Is(err, domain.ErrUnknownPackage) {
				logger.Warn("payment references unknown package", "transaction_id", p.TransactionID, "package_id", p.PackageID)
				continue
			}
			return applied, err
		}
		applied++
	}
	return applied, nil
}

func (s *subscriptionService) ListOrgPayments(ctx context.Context, orgID int32) ([]domain.Payment, error) {
	return s.paymentRepo.ListByOrg(ctx, orgID)
}

func (s *subscriptionService) ListPackages(ctx context.Context) ([]domain.SubscriptionPackage, error) {
	return s.packageRepo.List(ctx)
}
