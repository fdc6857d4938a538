package middleware_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/middleware"
)

// --- Mock AccessControlService ---
type MockAccessControlService struct {
	mock.Mock
}

func (m *MockAccessControlService) Resolve(ctx context.Context, userID string) (domain.AccessResolution, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.AccessResolution), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccessControlSvcFacade = (*MockAccessControlService)(nil)

// --- Test Suite ---
type RBACMiddlewareTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockAccessControl *MockAccessControlService
	jwtSecret         string
	userID            string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *RBACMiddlewareTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pma-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *RBACMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.mockAccessControl = new(MockAccessControlService)

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))
	suite.router.GET("/properties",
		middleware.RequirePermission(suite.mockAccessControl, domain.ActionRead, domain.ResourceProperties),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	suite.router.GET("/admin/requests",
		middleware.RequireAdmin(suite.mockAccessControl),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
}

// perform issues an authenticated request against the test router.
func (suite *RBACMiddlewareTestSuite) perform(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RBACMiddlewareTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var body map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.Require().NoError(err, "Failed to unmarshal response body")
	return body["error"]
}

// --- RequirePermission Tests ---

func (suite *RBACMiddlewareTestSuite) TestRequirePermission_Granted() {
	resolution := domain.AccessResolution{
		Role: domain.RoleOwner,
		Permissions: []domain.Permission{
			{Role: domain.RoleOwner, Resource: domain.ResourceProperties, Action: domain.ActionRead},
		},
	}
	suite.mockAccessControl.On("Resolve", mock.Anything, suite.userID).Return(resolution, nil).Once()

	w := suite.perform("/properties")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAccessControl.AssertExpectations(suite.T())
}

func (suite *RBACMiddlewareTestSuite) TestRequirePermission_MissingGrant() {
	resolution := domain.AccessResolution{
		Role: domain.RoleOwner,
		Permissions: []domain.Permission{
			{Role: domain.RoleOwner, Resource: domain.ResourceLeads, Action: domain.ActionRead},
		},
	}
	suite.mockAccessControl.On("Resolve", mock.Anything, suite.userID).Return(resolution, nil).Once()

	w := suite.perform("/properties")

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("You do not have permission to perform this action", suite.errorMessage(w))
}

func (suite *RBACMiddlewareTestSuite) TestRequirePermission_PermissionsUnavailable() {
	resolveErr := fmt.Errorf("%w: store unreachable", apperrors.ErrPermissionsUnavailable)
	suite.mockAccessControl.On("Resolve", mock.Anything, suite.userID).
		Return(domain.FailClosed(), resolveErr).Once()

	w := suite.perform("/properties")

	// An unanswerable check must read differently from a real denial.
	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("Failed to load permissions. Please refresh the page.", suite.errorMessage(w))
}

func (suite *RBACMiddlewareTestSuite) TestRequirePermission_MissingProfile() {
	suite.mockAccessControl.On("Resolve", mock.Anything, suite.userID).
		Return(domain.FailClosed(), apperrors.ErrNotFound).Once()

	w := suite.perform("/properties")

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("You do not have permission to perform this action", suite.errorMessage(w))
}

// --- RequireAdmin Tests ---

func (suite *RBACMiddlewareTestSuite) TestRequireAdmin_Approved() {
	resolution := domain.AccessResolution{Role: domain.RoleAdmin, IsAdminApproved: true}
	suite.mockAccessControl.On("Resolve", mock.Anything, suite.userID).Return(resolution, nil).Once()

	w := suite.perform("/admin/requests")

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RBACMiddlewareTestSuite) TestRequireAdmin_DeclaredButUnapproved() {
	resolution := domain.AccessResolution{Role: domain.RoleAdmin, IsAdminApproved: false}
	suite.mockAccessControl.On("Resolve", mock.Anything, suite.userID).Return(resolution, nil).Once()

	w := suite.perform("/admin/requests")

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("You do not have permission to perform this action", suite.errorMessage(w))
}

func (suite *RBACMiddlewareTestSuite) TestRequireAdmin_PermissionsUnavailable() {
	resolveErr := fmt.Errorf("%w: store unreachable", apperrors.ErrPermissionsUnavailable)
	suite.mockAccessControl.On("Resolve", mock.Anything, suite.userID).
		Return(domain.FailClosed(), resolveErr).Once()

	w := suite.perform("/admin/requests")

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("Failed to load permissions. Please refresh the page.", suite.errorMessage(w))
}

// --- Run Suite ---
func TestRBACMiddleware(t *testing.T) {
	suite.Run(t, new(RBACMiddlewareTestSuite))
}
