package service

import (
	"context"

	"assetdesk-backend/internal/domain"
	"assetdesk-backend/internal/logger"
	"assetdesk-backend/internal/repository"
)

type assignmentService struct {
	assignRepo   repository.AssignmentRepository
	workflowRepo repository.WorkflowRepository
}

func NewAssignmentService(
	assignRepo repository.AssignmentRepository,
	workflowRepo repository.WorkflowRepository,
) AssignmentService {
	return &assignmentService{
		assignRepo:   assignRepo,
		workflowRepo: workflowRepo,
	}
}

func (s *assignmentService) Return(ctx context.Context, employeeID, assignmentID int32) (*domain.Assignment, error) {
	as, err := s.assignRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if as.EmployeeID != employeeID {
		return nil, domain.ErrForbidden
	}
	// Non-returnable units stay held forever; there is no return
	// transition for them.
	if as.UnitType != domain.AssetTypeReturnable {
		return nil, domain.ErrConflict
	}

	returned, err := s.workflowRepo.ReturnAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	logger.Info("assignment returned", "assignment_id", assignmentID, "employee_id", employeeID, "asset_id", returned.AssetID)
	return returned, nil
}

func (s *assignmentService) ListMine(ctx context.Context, employeeID int32) ([]domain.Assignment, error) {
	return s.assignRepo.ListByEmployee(ctx, employeeID)
}
