package service

import (
	"context"
	"testing"

	"assetdesk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAssignmentFixture() (*MockAssignmentRepo, *MockWorkflowRepo, AssignmentService) {
	assignRepo := new(MockAssignmentRepo)
	workflowRepo := new(MockWorkflowRepo)
	return assignRepo, workflowRepo, NewAssignmentService(assignRepo, workflowRepo)
}

func TestReturn_Success(t *testing.T) {
	assignRepo, workflowRepo, svc := newAssignmentFixture()
	ctx := context.Background()

	held := &domain.Assignment{ID: 11, AssetID: 7, EmployeeID: 42, UnitType: domain.AssetTypeReturnable, Status: domain.AssignmentStatusHeld}
	returned := &domain.Assignment{ID: 11, AssetID: 7, EmployeeID: 42, UnitType: domain.AssetTypeReturnable, Status: domain.AssignmentStatusReturned}

	assignRepo.On("GetByID", ctx, int32(11)).Return(held, nil)
	workflowRepo.On("ReturnAssignment", ctx, int32(11)).Return(returned, nil)

	got, err := svc.Return(ctx, 42, 11)

	assert.NoError(t, err)
	assert.Equal(t, domain.AssignmentStatusReturned, got.Status)
	workflowRepo.AssertExpectations(t)
}

func TestReturn_NotHolder(t *testing.T) {
	assignRepo, workflowRepo, svc := newAssignmentFixture()
	ctx := context.Background()

	assignRepo.On("GetByID", ctx, int32(11)).
		Return(&domain.Assignment{ID: 11, EmployeeID: 42, UnitType: domain.AssetTypeReturnable}, nil)

	_, err := svc.Return(ctx, 43, 11)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	workflowRepo.AssertNotCalled(t, "ReturnAssignment", mock.Anything, mock.Anything)
}

func TestReturn_NonReturnableUnit(t *testing.T) {
	assignRepo, workflowRepo, svc := newAssignmentFixture()
	ctx := context.Background()

	assignRepo.On("GetByID", ctx, int32(11)).
		Return(&domain.Assignment{ID: 11, EmployeeID: 42, UnitType: domain.AssetTypeNonReturnable, Status: domain.AssignmentStatusHeld}, nil)

	_, err := svc.Return(ctx, 42, 11)

	assert.ErrorIs(t, err, domain.ErrConflict)
	workflowRepo.AssertNotCalled(t, "ReturnAssignment", mock.Anything, mock.Anything)
}

func TestReturn_AlreadyReturned(t *testing.T) {
	assignRepo, workflowRepo, svc := newAssignmentFixture()
	ctx := context.Background()

	assignRepo.On("GetByID", ctx, int32(11)).
		Return(&domain.Assignment{ID: 11, EmployeeID: 42, UnitType: domain.AssetTypeReturnable, Status: domain.AssignmentStatusReturned}, nil)
	workflowRepo.On("ReturnAssignment", ctx, int32(11)).Return(nil, domain.ErrAlreadyReturned)

	_, err := svc.Return(ctx, 42, 11)
	assert.ErrorIs(t, err, domain.ErrAlreadyReturned)
}
