package service

import (
	"context"

	"assetdesk-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, rq *domain.Request) error {
	args := m.Called(ctx, rq)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestRepo) UpdateNote(ctx context.Context, id int32, note string) error {
	args := m.Called(ctx, id, note)
	return args.Error(0)
}
func (m *MockRequestRepo) Resolve(ctx context.Context, id int32, status domain.RequestStatus, resolvedBy int32) error {
	args := m.Called(ctx, id, status, resolvedBy)
	return args.Error(0)
}
func (m *MockRequestRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRequestRepo) ListByRequester(ctx context.Context, requesterID int32) ([]domain.Request, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) ListByAssetOrg(ctx context.Context, orgID int32, status string) ([]domain.Request, error) {
	args := m.Called(ctx, orgID, status)
	return args.Get(0).([]domain.Request), args.Error(1)
}

// MockAssetRepo
type MockAssetRepo struct {
	mock.Mock
}

func (m *MockAssetRepo) Create(ctx context.Context, a *domain.Asset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAssetRepo) GetByID(ctx context.Context, id int32) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockAssetRepo) Update(ctx context.Context, a *domain.Asset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAssetRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAssetRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.Asset, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.Asset), args.Error(1)
}
func (m *MockAssetRepo) Reserve(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAssetRepo) Release(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAssetRepo) ListInvariantViolations(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Asset), args.Error(1)
}

// MockAffiliationRepo
type MockAffiliationRepo struct {
	mock.Mock
}

func (m *MockAffiliationRepo) GetActive(ctx context.Context, employeeID, orgID int32) (*domain.Affiliation, error) {
	args := m.Called(ctx, employeeID, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Affiliation), args.Error(1)
}
func (m *MockAffiliationRepo) Deactivate(ctx context.Context, employeeID, orgID int32) error {
	args := m.Called(ctx, employeeID, orgID)
	return args.Error(0)
}
func (m *MockAffiliationRepo) ListActiveByOrg(ctx context.Context, orgID int32) ([]domain.Affiliation, []domain.User, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.Affiliation), args.Get(1).([]domain.User), args.Error(2)
}

// MockAssignmentRepo
type MockAssignmentRepo struct {
	mock.Mock
}

func (m *MockAssignmentRepo) GetByID(ctx context.Context, id int32) (*domain.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}
func (m *MockAssignmentRepo) ListByEmployee(ctx context.Context, employeeID int32) ([]domain.Assignment, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

// MockWorkflowRepo
type MockWorkflowRepo struct {
	mock.Mock
}

func (m *MockWorkflowRepo) ApproveRequest(ctx context.Context, requestID, adminID int32) (*domain.Assignment, error) {
	args := m.Called(ctx, requestID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}
func (m *MockWorkflowRepo) ReturnAssignment(ctx context.Context, assignmentID int32) (*domain.Assignment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Insert(ctx context.Context, p *domain.Payment) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}
func (m *MockPaymentRepo) MarkApplied(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListUnapplied(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockPackageRepo
type MockPackageRepo struct {
	mock.Mock
}

func (m *MockPackageRepo) GetByID(ctx context.Context, id string) (*domain.SubscriptionPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriptionPackage), args.Error(1)
}
func (m *MockPackageRepo) List(ctx context.Context) ([]domain.SubscriptionPackage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SubscriptionPackage), args.Error(1)
}

// MockOrganizationRepo
type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}
func (m *MockOrganizationRepo) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) SetCapacity(ctx context.Context, orgID, employeeLimit int32, tier string) error {
	args := m.Called(ctx, orgID, employeeLimit, tier)
	return args.Error(0)
}
func (m *MockOrganizationRepo) ListOverCapacity(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Organization), args.Error(1)
}
