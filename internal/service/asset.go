package service

import (
	"context"
	"fmt"
	"strings"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/logger"
	"assetdesk-backend/internal/repository"
)

type assetService struct {
	assetRepo repository.AssetRepository
}

func NewAssetService(assetRepo repository.AssetRepository) AssetService {
	return &assetService{assetRepo: assetRepo}
}

func validateAsset(a *domain.Asset) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: asset name must not be empty", domain.ErrValidation)
	}
	if !a.Type.Valid() {
		return fmt.Errorf("%w: unknown asset type %q", domain.ErrValidation, a.Type)
	}
	if a.TotalQuantity < 0 {
		return fmt.Errorf("%w: total quantity must not be negative", domain.ErrValidation)
	}
	if a.AvailableQuantity < 0 || a.AvailableQuantity > a.TotalQuantity {
		return fmt.Errorf("%w: available quantity must be within [0, total]", domain.ErrValidation)
	}
	return nil
}

func (s *assetService) Add(ctx context.Context, adminOrgID int32, a *domain.Asset) error {
	a.OrgID = adminOrgID
	if a.AvailableQuantity == 0 && a.TotalQuantity > 0 {
		a.AvailableQuantity = a.TotalQuantity
	}
	if err := validateAsset(a); err != nil {
		return err
	}
	if err := s.assetRepo.Create(ctx, a); err != nil {
		return fmt.Errorf("create asset: %w", err)
	}
	logger.Info("asset created", "asset_id", a.ID, "org_id", a.OrgID, "name", a.Name)
	return nil
}

func (s *assetService) Get(ctx context.Context, id int32) (*domain.Asset, error) {
	return s.assetRepo.GetByID(ctx, id)
}

func (s *assetService) AdjustInventory(ctx context.Context, adminOrgID int32, a *domain.Asset) error {
	existing, err := s.assetRepo.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing.OrgID != adminOrgID {
		return domain.ErrForbidden
	}

	a.OrgID = existing.OrgID
	if err := validateAsset(a); err != nil {
		return err
	}
	return s.assetRepo.Update(ctx, a)
}

func (s *assetService) Remove(ctx context.Context, adminOrgID, id int32) error {
	existing, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OrgID != adminOrgID {
		return domain.ErrForbidden
	}
	return s.assetRepo.Delete(ctx, id)
}

func (s *assetService) ListByOrg(ctx context.Context, orgID int32) ([]domain.Asset, error) {
	return s.assetRepo.ListByOrg(ctx, orgID)
}
