package service

import (
	"context"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/logger"
	"assetdesk-backend/internal/repository"
)

type affiliationService struct {
	affilRepo repository.AffiliationRepository
}

func NewAffiliationService(affilRepo repository.AffiliationRepository) AffiliationService {
	return &affiliationService{affilRepo: affilRepo}
}

func (s *affiliationService) Deactivate(ctx context.Context, adminOrgID, employeeID int32) error {
	if err := s.affilRepo.Deactivate(ctx, employeeID, adminOrgID); err != nil {
		return err
	}
	logger.Info("affiliation deactivated", "employee_id", employeeID, "org_id", adminOrgID)
	return nil
}

func (s *affiliationService) ListActiveEmployees(ctx context.Context, orgID int32) ([]domain.Affiliation, []domain.User, error) {
	return s.affilRepo.ListActiveByOrg(ctx, orgID)
}
