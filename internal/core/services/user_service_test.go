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
	"github.com/hostvana/property_management_app/internal/dto"
	"github.com/hostvana/property_management_app/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetAdminApproval(ctx context.Context, userID string, approved bool, updatedBy string) error {
	args := m.Called(ctx, userID, approved, updatedBy)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateResetToken(ctx context.Context, userID string, resetTokenHash string, resetTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, resetTokenHash, resetTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock AdminApprovalService ---
type MockAdminApprovalService struct {
	mock.Mock
}

func (m *MockAdminApprovalService) OpenRequest(ctx context.Context, userID string) (*domain.AdminRequest, error) {
	args := m.Called(ctx, userID)
	var request *domain.AdminRequest
	if args.Get(0) != nil {
		request = args.Get(0).(*domain.AdminRequest)
	}
	return request, args.Error(1)
}

func (m *MockAdminApprovalService) ListRequests(ctx context.Context, status domain.AdminRequestStatus, limit, offset int) ([]domain.AdminRequest, error) {
	args := m.Called(ctx, status, limit, offset)
	var requests []domain.AdminRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.AdminRequest)
	}
	return requests, args.Error(1)
}

func (m *MockAdminApprovalService) ApproveRequest(ctx context.Context, requestID string, decidedBy string) (*domain.AdminRequest, error) {
	args := m.Called(ctx, requestID, decidedBy)
	var request *domain.AdminRequest
	if args.Get(0) != nil {
		request = args.Get(0).(*domain.AdminRequest)
	}
	return request, args.Error(1)
}

func (m *MockAdminApprovalService) RejectRequest(ctx context.Context, requestID string, decidedBy string) (*domain.AdminRequest, error) {
	args := m.Called(ctx, requestID, decidedBy)
	var request *domain.AdminRequest
	if args.Get(0) != nil {
		request = args.Get(0).(*domain.AdminRequest)
	}
	return request, args.Error(1)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockApprovalSvc *MockAdminApprovalService
	service         portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockApprovalSvc = new(MockAdminApprovalService)
	suite.service = services.NewUserService(suite.mockUserRepo,
		services.WithAdminApprovalService(suite.mockApprovalSvc))
}

// --- RegisterUser Tests ---

func (suite *UserServiceTestSuite) TestRegisterUser_OwnerSuccess() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:       "owner@example.com",
		Password:    "password123",
		CompanyName: "Acme Rentals",
		Phone:       "+15550001111",
		Role:        string(domain.RoleOwner),
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == req.Email &&
			user.Role == domain.RoleOwner &&
			!user.IsAdmin &&
			user.PasswordHash != "" && user.PasswordHash != req.Password &&
			user.AuthProvider == domain.ProviderLocal
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.CompanyName, user.CompanyName)
	suite.False(user.IsAdmin)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockApprovalSvc.AssertNotCalled(suite.T(), "OpenRequest")
}

func (suite *UserServiceTestSuite) TestRegisterUser_AdminDeclarationOpensRequest() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:       "admin@example.com",
		Password:    "password123",
		CompanyName: "Head Office",
		Role:        string(domain.RoleAdmin),
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		// Declaring admin stores the role but never the approval flag.
		return user.Role == domain.RoleAdmin && !user.IsAdmin
	})).Return(nil).Once()
	suite.mockApprovalSvc.On("OpenRequest", ctx, mock.AnythingOfType("string")).
		Return(&domain.AdminRequest{RequestID: uuid.NewString()}, nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, user.Role)
	suite.False(user.IsAdmin)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockApprovalSvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_ApprovalFailureDoesNotRollBack() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:       "admin2@example.com",
		Password:    "password123",
		CompanyName: "Head Office",
		Role:        string(domain.RoleAdmin),
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()
	suite.mockApprovalSvc.On("OpenRequest", ctx, mock.AnythingOfType("string")).
		Return(nil, assert.AnError).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotNil(user)
	suite.mockApprovalSvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:       "taken@example.com",
		Password:    "password123",
		CompanyName: "Acme Rentals",
		Role:        string(domain.RoleOwner),
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_InvalidRole() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:       "who@example.com",
		Password:    "password123",
		CompanyName: "Acme Rentals",
		Role:        "superuser",
	}

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "owner@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "owner@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, "not-the-password")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "password123")

	suite.Require().Error(err)
	suite.Nil(got)
	// Lookup misses and bad passwords are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_DeletedAccount() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	deletedAt := time.Now().Add(-time.Hour)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "gone@example.com",
		PasswordHash: hash,
		DeletedAt:    &deletedAt,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, password)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- FindOrCreateGoogleUser Tests ---

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ExistingProviderIdentity() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-123", Email: "owner@example.com", Name: "Owner"}
	existing := &domain.User{UserID: uuid.NewString(), Email: info.Email}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, info.ID).
		Return(existing, nil).Once()

	got, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, got.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_LinksByEmail() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-123", Email: "local@example.com", Name: "Local"}
	existing := &domain.User{UserID: uuid.NewString(), Email: info.Email, AuthProvider: domain.ProviderLocal}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, info.ID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, info.Email).Return(existing, nil).Once()

	got, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, got.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesOwnerAccount() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-456", Email: "new@example.com", Name: "New Signup"}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, info.ID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, info.Email).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == info.Email &&
			user.Role == domain.RoleOwner &&
			user.AuthProvider == domain.ProviderGoogle &&
			user.ProviderUserID == info.ID
	})).Return(nil).Once()

	got, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleOwner, got.Role)
	suite.False(got.IsAdmin)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Password Reset Tests ---

func (suite *UserServiceTestSuite) TestInitiatePasswordReset_StoresHashNotToken() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Email: "owner@example.com"}

	var storedHash string
	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateResetToken", ctx, user.UserID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil).Once()

	rawToken, err := suite.service.InitiatePasswordReset(ctx, user.Email)

	suite.Require().NoError(err)
	suite.NotEmpty(rawToken)
	suite.NotEqual(rawToken, storedHash)
	suite.True(utils.CompareOpaqueTokenHash(rawToken, storedHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestInitiatePasswordReset_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	rawToken, err := suite.service.InitiatePasswordReset(ctx, "nobody@example.com")

	suite.Require().Error(err)
	suite.Empty(rawToken)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestCompletePasswordReset_Success() {
	ctx := context.Background()
	rawToken := "reset-token-value"
	expiry := time.Now().Add(10 * time.Minute)
	user := &domain.User{
		UserID:               uuid.NewString(),
		Email:                "owner@example.com",
		ResetTokenHash:       utils.HashOpaqueToken(rawToken),
		ResetTokenExpiryTime: &expiry,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdatePassword", ctx, user.UserID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("newpassword1", hash)
	})).Return(nil).Once()
	suite.mockUserRepo.On("ClearRefreshToken", ctx, user.UserID).Return(nil).Once()

	err := suite.service.CompletePasswordReset(ctx, user.Email, rawToken, "newpassword1")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCompletePasswordReset_ExpiredToken() {
	ctx := context.Background()
	rawToken := "reset-token-value"
	expiry := time.Now().Add(-time.Minute)
	user := &domain.User{
		UserID:               uuid.NewString(),
		Email:                "owner@example.com",
		ResetTokenHash:       utils.HashOpaqueToken(rawToken),
		ResetTokenExpiryTime: &expiry,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	err := suite.service.CompletePasswordReset(ctx, user.Email, rawToken, "newpassword1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword")
}

func (suite *UserServiceTestSuite) TestCompletePasswordReset_WrongToken() {
	ctx := context.Background()
	expiry := time.Now().Add(10 * time.Minute)
	user := &domain.User{
		UserID:               uuid.NewString(),
		Email:                "owner@example.com",
		ResetTokenHash:       utils.HashOpaqueToken("the-real-token"),
		ResetTokenExpiryTime: &expiry,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	err := suite.service.CompletePasswordReset(ctx, user.Email, "a-guess", "newpassword1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword")
}

// --- DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), userID).
		Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), userID).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
