package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/core/services"
)

// --- Mock UserReader ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Mock PermissionReader ---
type MockPermissionReader struct {
	mock.Mock
}

func (m *MockPermissionReader) FindPermissionsByRole(ctx context.Context, role domain.UserRole) ([]domain.Permission, error) {
	args := m.Called(ctx, role)
	var perms []domain.Permission
	if args.Get(0) != nil {
		perms = args.Get(0).([]domain.Permission)
	}
	return perms, args.Error(1)
}

// --- Test Suite ---
type AccessControlServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserReader
	mockPermRepo *MockPermissionReader
	service      portssvc.AccessControlSvcFacade
}

func (suite *AccessControlServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserReader)
	suite.mockPermRepo = new(MockPermissionReader)
	// Zero backoff keeps the retry path instant in tests.
	suite.service = services.NewAccessControlService(suite.mockUserRepo, suite.mockPermRepo,
		services.WithResolveBackoff(func(int) time.Duration { return 0 }))
}

func ownerGrants() []domain.Permission {
	return []domain.Permission{
		{Role: domain.RoleOwner, Resource: domain.ResourceProperties, Action: domain.ActionRead},
		{Role: domain.RoleOwner, Resource: domain.ResourceProperties, Action: domain.ActionCreate},
		{Role: domain.RoleOwner, Resource: domain.ResourceTransactions, Action: domain.ActionRead},
	}
}

func (suite *AccessControlServiceTestSuite) TestResolve_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Role: domain.RoleOwner, IsAdmin: false}
	grants := ownerGrants()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockPermRepo.On("FindPermissionsByRole", ctx, domain.RoleOwner).Return(grants, nil).Once()

	resolution, err := suite.service.Resolve(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleOwner, resolution.Role)
	suite.False(resolution.IsAdminApproved)
	suite.Equal(grants, resolution.Permissions)
	suite.True(resolution.Can(domain.ActionRead, domain.ResourceProperties))
	suite.False(resolution.Can(domain.ActionDelete, domain.ResourceProperties))
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockPermRepo.AssertExpectations(suite.T())
}

func (suite *AccessControlServiceTestSuite) TestResolve_ApprovalFlagCollapsesRole() {
	ctx := context.Background()
	userID := uuid.NewString()
	// A directly edited row can carry the approval flag on a non-admin role;
	// the flag wins and the grants are the admin grants.
	user := &domain.User{UserID: userID, Role: domain.RoleOwner, IsAdmin: true}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockPermRepo.On("FindPermissionsByRole", ctx, domain.RoleAdmin).
		Return([]domain.Permission{}, nil).Once()

	resolution, err := suite.service.Resolve(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, resolution.Role)
	suite.True(resolution.IsAdmin())
	suite.mockPermRepo.AssertExpectations(suite.T())
}

func (suite *AccessControlServiceTestSuite) TestResolve_SuccessAfterTransientFailure() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Role: domain.RoleAdmin, IsAdmin: true}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, assert.AnError).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockPermRepo.On("FindPermissionsByRole", ctx, domain.RoleAdmin).
		Return([]domain.Permission{}, nil).Once()

	resolution, err := suite.service.Resolve(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, resolution.Role)
	suite.True(resolution.IsAdminApproved)
	suite.True(resolution.IsAdmin())
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockPermRepo.AssertExpectations(suite.T())
}

func (suite *AccessControlServiceTestSuite) TestResolve_FailsClosedAfterExhaustedRetries() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, assert.AnError).Times(3)

	resolution, err := suite.service.Resolve(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPermissionsUnavailable)
	suite.ErrorIs(err, assert.AnError)
	suite.Equal(domain.FailClosed(), resolution)
	suite.False(resolution.Can(domain.ActionRead, domain.ResourceProperties))
	suite.False(resolution.IsAdmin())
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertNumberOfCalls(suite.T(), "FindUserByID", 3)
}

func (suite *AccessControlServiceTestSuite) TestResolve_PermissionFetchFailureRetried() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Role: domain.RoleOwner}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Times(3)
	suite.mockPermRepo.On("FindPermissionsByRole", ctx, domain.RoleOwner).
		Return(nil, assert.AnError).Times(3)

	resolution, err := suite.service.Resolve(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPermissionsUnavailable)
	suite.Equal(domain.FailClosed(), resolution)
	suite.mockPermRepo.AssertExpectations(suite.T())
}

func (suite *AccessControlServiceTestSuite) TestResolve_MissingProfileNotRetried() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	resolution, err := suite.service.Resolve(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrPermissionsUnavailable)
	suite.Equal(domain.FailClosed(), resolution)
	suite.mockUserRepo.AssertNumberOfCalls(suite.T(), "FindUserByID", 1)
	suite.mockPermRepo.AssertNotCalled(suite.T(), "FindPermissionsByRole")
}

func (suite *AccessControlServiceTestSuite) TestResolve_Repeatable() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Role: domain.RoleOwner}
	grants := ownerGrants()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Twice()
	suite.mockPermRepo.On("FindPermissionsByRole", ctx, domain.RoleOwner).Return(grants, nil).Twice()

	first, err := suite.service.Resolve(ctx, userID)
	suite.Require().NoError(err)
	second, err := suite.service.Resolve(ctx, userID)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestAccessControlService(t *testing.T) {
	suite.Run(t, new(AccessControlServiceTestSuite))
}
