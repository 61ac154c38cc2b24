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

type requestService struct {
	requestRepo  repository.RequestRepository
	assetRepo    repository.AssetRepository
	affilRepo    repository.AffiliationRepository
	workflowRepo repository.WorkflowRepository
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	assetRepo repository.AssetRepository,
	affilRepo repository.AffiliationRepository,
	workflowRepo repository.WorkflowRepository,
) RequestService {
	return &requestService{
		requestRepo:  requestRepo,
		assetRepo:    assetRepo,
		affilRepo:    affilRepo,
		workflowRepo: workflowRepo,
	}
}

func (s *requestService) Submit(ctx context.Context, requesterID, assetID int32, note string) (*domain.Request, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("get asset: %w", err)
	}

	rq := &domain.Request{
		AssetID:     asset.ID,
		RequesterID: requesterID,
		AssetName:   asset.Name,
		AssetType:   asset.Type,
		Status:      domain.RequestStatusPending,
		Note:        strings.TrimSpace(note),
		SubmittedOn: time.Now(),
	}

	// First-time requesters have no sponsoring organization yet; the slot
	// is claimed at approval time.
	if af, err := s.affilRepo.GetActive(ctx, requesterID, asset.OrgID); err == nil {
		rq.OrgID = &af.OrgID
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("resolve affiliation: %w", err)
	}

	if err := s.requestRepo.Create(ctx, rq); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	logger.Info("request submitted", "request_id", rq.ID, "asset_id", assetID, "requester_id", requesterID)
	return rq, nil
}

func (s *requestService) Approve(ctx context.Context, adminID, adminOrgID, requestID int32) (*domain.Request, *domain.Assignment, error) {
	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.authorizeResolver(ctx, adminOrgID, rq); err != nil {
		return nil, nil, err
	}

	// The PENDING precondition is re-checked inside the transaction; of
	// two concurrent resolutions exactly one commits.
	as, err := s.workflowRepo.ApproveRequest(ctx, requestID, adminID)
	if err != nil {
		return nil, nil, err
	}

	approved, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("request approved", "request_id", requestID, "assignment_id", as.ID, "admin_id", adminID)
	return approved, as, nil
}

func (s *requestService) Reject(ctx context.Context, adminID, adminOrgID, requestID int32) (*domain.Request, error) {
	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeResolver(ctx, adminOrgID, rq); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Resolve(ctx, requestID, domain.RequestStatusRejected, adminID); err != nil {
		return nil, err
	}

	rejected, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	logger.Info("request rejected", "request_id", requestID, "admin_id", adminID)
	return rejected, nil
}

// authorizeResolver verifies the caller administers the organization that
// owns the requested asset. The request's own org field can be nil for
// first-time requesters, so authorization always follows the asset.
func (s *requestService) authorizeResolver(ctx context.Context, adminOrgID int32, rq *domain.Request) error {
	asset, err := s.assetRepo.GetByID(ctx, rq.AssetID)
	if err != nil {
		return fmt.Errorf("get asset: %w", err)
	}
	if asset.OrgID != adminOrgID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *requestService) EditNote(ctx context.Context, requesterID, requestID int32, note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return fmt.Errorf("%w: note must not be empty", domain.ErrValidation)
	}

	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if rq.RequesterID != requesterID {
		return domain.ErrForbidden
	}

	return s.requestRepo.UpdateNote(ctx, requestID, note)
}

func (s *requestService) Delete(ctx context.Context, requesterID, requestID int32) error {
	rq, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if rq.RequesterID != requesterID {
		return domain.ErrForbidden
	}
	// An approved request has a live assignment; it must be returned
	// before the request can be removed.
	if rq.Status == domain.RequestStatusApproved {
		return domain.ErrConflict
	}

	return s.requestRepo.Delete(ctx, requestID)
}

func (s *requestService) ListMine(ctx context.Context, requesterID int32) ([]domain.Request, error) {
	return s.requestRepo.ListByRequester(ctx, requesterID)
}

func (s *requestService) ListOrgRequests(ctx context.Context, orgID int32, status string) ([]domain.Request, error) {
	return s.requestRepo.ListByAssetOrg(ctx, orgID, status)
}
