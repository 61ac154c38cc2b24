package service

import (
	"context"
	"testing"

	"assetdesk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRequestFixture() (*MockRequestRepo, *MockAssetRepo, *MockAffiliationRepo, *MockWorkflowRepo, RequestService) {
	requestRepo := new(MockRequestRepo)
	assetRepo := new(MockAssetRepo)
	affilRepo := new(MockAffiliationRepo)
	workflowRepo := new(MockWorkflowRepo)
	svc := NewRequestService(requestRepo, assetRepo, affilRepo, workflowRepo)
	return requestRepo, assetRepo, affilRepo, workflowRepo, svc
}

func TestSubmit_SnapshotsAssetFields(t *testing.T) {
	requestRepo, assetRepo, affilRepo, _, svc := newRequestFixture()
	ctx := context.Background()

	asset := &domain.Asset{ID: 7, OrgID: 3, Name: "Thinkpad X1", Type: domain.AssetTypeReturnable}
	assetRepo.On("GetByID", ctx, int32(7)).Return(asset, nil)
	affilRepo.On("GetActive", ctx, int32(42), int32(3)).
		Return(&domain.Affiliation{ID: 1, EmployeeID: 42, OrgID: 3, Status: domain.AffiliationStatusActive}, nil)
	requestRepo.On("Create", ctx, mock.AnythingOfType("*domain.Request")).Return(nil)

	rq, err := svc.Submit(ctx, 42, 7, "  need it for onboarding  ")

	assert.NoError(t, err)
	assert.Equal(t, int32(7), rq.AssetID)
	assert.Equal(t, "Thinkpad X1", rq.AssetName)
	assert.Equal(t, domain.AssetTypeReturnable, rq.AssetType)
	assert.Equal(t, domain.RequestStatusPending, rq.Status)
	assert.Equal(t, "need it for onboarding", rq.Note)
	if assert.NotNil(t, rq.OrgID) {
		assert.Equal(t, int32(3), *rq.OrgID)
	}
	requestRepo.AssertExpectations(t)
}

func TestSubmit_FirstTimeRequesterHasNoOrg(t *testing.T) {
	requestRepo, assetRepo, affilRepo, _, svc := newRequestFixture()
	ctx := context.Background()

	asset := &domain.Asset{ID: 7, OrgID: 3, Name: "Desk Chair", Type: domain.AssetTypeNonReturnable}
	assetRepo.On("GetByID", ctx, int32(7)).Return(asset, nil)
	affilRepo.On("GetActive", ctx, int32(42), int32(3)).Return(nil, domain.ErrNotFound)
	requestRepo.On("Create", ctx, mock.AnythingOfType("*domain.Request")).Return(nil)

	rq, err := svc.Submit(ctx, 42, 7, "")

	assert.NoError(t, err)
	assert.Nil(t, rq.OrgID)
}

func TestSubmit_UnknownAsset(t *testing.T) {
	_, assetRepo, _, _, svc := newRequestFixture()
	ctx := context.Background()

	assetRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrNotFound)

	_, err := svc.Submit(ctx, 42, 99, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApprove_Success(t *testing.T) {
	requestRepo, assetRepo, _, workflowRepo, svc := newRequestFixture()
	ctx := context.Background()

	pending := &domain.Request{ID: 5, AssetID: 7, RequesterID: 42, Status: domain.RequestStatusPending}
	approved := &domain.Request{ID: 5, AssetID: 7, RequesterID: 42, Status: domain.RequestStatusApproved}
	assignment := &domain.Assignment{ID: 11, RequestID: 5, AssetID: 7, EmployeeID: 42, OrgID: 3, Status: domain.AssignmentStatusHeld}

	requestRepo.On("GetByID", ctx, int32(5)).Return(pending, nil).Once()
	assetRepo.On("GetByID", ctx, int32(7)).Return(&domain.Asset{ID: 7, OrgID: 3}, nil)
	workflowRepo.On("ApproveRequest", ctx, int32(5), int32(9)).Return(assignment, nil)
	requestRepo.On("GetByID", ctx, int32(5)).Return(approved, nil).Once()

	rq, as, err := svc.Approve(ctx, 9, 3, 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestStatusApproved, rq.Status)
	assert.Equal(t, int32(11), as.ID)
	workflowRepo.AssertExpectations(t)
}

func TestApprove_WrongOrgAdmin(t *testing.T) {
	requestRepo, assetRepo, _, workflowRepo, svc := newRequestFixture()
	ctx := context.Background()

	requestRepo.On("GetByID", ctx, int32(5)).
		Return(&domain.Request{ID: 5, AssetID: 7, Status: domain.RequestStatusPending}, nil)
	assetRepo.On("GetByID", ctx, int32(7)).Return(&domain.Asset{ID: 7, OrgID: 3}, nil)

	_, _, err := svc.Approve(ctx, 9, 4, 5)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	workflowRepo.AssertNotCalled(t, "ApproveRequest", mock.Anything, mock.Anything, mock.Anything)
}

func TestApprove_AlreadyResolved(t *testing.T) {
	requestRepo, assetRepo, _, workflowRepo, svc := newRequestFixture()
	ctx := context.Background()

	requestRepo.On("GetByID", ctx, int32(5)).
		Return(&domain.Request{ID: 5, AssetID: 7, Status: domain.RequestStatusRejected}, nil)
	assetRepo.On("GetByID", ctx, int32(7)).Return(&domain.Asset{ID: 7, OrgID: 3}, nil)
	workflowRepo.On("ApproveRequest", ctx, int32(5), int32(9)).Return(nil, domain.ErrConflict)

	_, _, err := svc.Approve(ctx, 9, 3, 5)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestApprove_CapacityExceeded(t *testing.T) {
	requestRepo, assetRepo, _, workflowRepo, svc := newRequestFixture()
	ctx := context.Background()

	requestRepo.On("GetByID", ctx, int32(5)).
		Return(&domain.Request{ID: 5, AssetID: 7, Status: domain.RequestStatusPending}, nil)
	assetRepo.On("GetByID", ctx, int32(7)).Return(&domain.Asset{ID: 7, OrgID: 3}, nil)
	workflowRepo.On("ApproveRequest", ctx, int32(5), int32(9)).Return(nil, domain.ErrCapacityExceeded)

	_, _, err := svc.Approve(ctx, 9, 3, 5)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestReject_Success(t *testing.T) {
	requestRepo, assetRepo, _, _, svc := newRequestFixture()
	ctx := context.Background()

	pending := &domain.Request{ID: 5, AssetID: 7, Status: domain.RequestStatusPending}
	rejected := &domain.Request{ID: 5, AssetID: 7, Status: domain.RequestStatusRejected}

	requestRepo.On("GetByID", ctx, int32(5)).Return(pending, nil).Once()
	assetRepo.On("GetByID", ctx, int32(7)).Return(&domain.Asset{ID: 7, OrgID: 3}, nil)
	requestRepo.On("Resolve", ctx, int32(5), domain.RequestStatusRejected, int32(9)).Return(nil)
	requestRepo.On("GetByID", ctx, int32(5)).Return(rejected, nil).Once()

	rq, err := svc.Reject(ctx, 9, 3, 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestStatusRejected, rq.Status)
}

func TestEditNote_EmptyNote(t *testing.T) {
	requestRepo, _, _, _, svc := newRequestFixture()

	err := svc.EditNote(context.Background(), 42, 5, "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
	requestRepo.AssertNotCalled(t, "UpdateNote", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditNote_NotOwner(t *testing.T) {
	requestRepo, _, _, _, svc := newRequestFixture()
	ctx := context.Background()

	requestRepo.On("GetByID", ctx, int32(5)).
		Return(&domain.Request{ID: 5, RequesterID: 42}, nil)

	err := svc.EditNote(ctx, 43, 5, "please expedite")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEditNote_Success(t *testing.T) {
	requestRepo, _, _, _, svc := newRequestFixture()
	ctx := context.Background()

	requestRepo.On("GetByID", ctx, int32(5)).
		Return(&domain.Request{ID: 5, RequesterID: 42, Status: domain.RequestStatusPending}, nil)
	requestRepo.On("UpdateNote", ctx, int32(5), "please expedite").Return(nil)

	err := svc.EditNote(ctx, 42, 5, " please expedite ")
	assert.NoError(t, err)
	requestRepo.AssertExpectations(t)
}

func TestDelete_ApprovedRequestBlocked(t *testing.T) {
	requestRepo, _, _, _, svc := newRequestFixture()
	ctx := context.Background()

	requestRepo.On("GetByID", ctx, int32(5)).
		Return(&domain.Request{ID: 5, RequesterID: 42, Status: domain.RequestStatusApproved}, nil)

	err := svc.Delete(ctx, 42, 5)

	assert.ErrorIs(t, err, domain.ErrConflict)
	requestRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_NotOwner(t *testing.T) {
	requestRepo, _, _, _, svc := newRequestFixture()
	ctx := context.Background()

	requestRepo.On("GetByID", ctx, int32(5)).
		Return(&domain.Request{ID: 5, RequesterID: 42, Status: domain.RequestStatusPending}, nil)

	err := svc.Delete(ctx, 43, 5)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDelete_PendingRequest(t *testing.T) {
	requestRepo, _, _, _, svc := newRequestFixture()
	ctx := context.Background()

	requestRepo.On("GetByID", ctx, int32(5)).
		Return(&domain.Request{ID: 5, RequesterID: 42, Status: domain.RequestStatusPending}, nil)
	requestRepo.On("Delete", ctx, int32(5)).Return(nil)

	err := svc.Delete(ctx, 42, 5)
	assert.NoError(t, err)
	requestRepo.AssertExpectations(t)
}
