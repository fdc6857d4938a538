package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hostvana/property_management_app/internal/core/domain"
	"github.com/hostvana/property_management_app/internal/core/services"
)

// --- Mock PropertyRepository (reader side) ---
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	var property *domain.Property
	if args.Get(0) != nil {
		property = args.Get(0).(*domain.Property)
	}
	return property, args.Error(1)
}

func (m *MockPropertyRepository) FindPropertiesByOwner(ctx context.Context, ownerUserID string) ([]domain.Property, error) {
	args := m.Called(ctx, ownerUserID)
	var properties []domain.Property
	if args.Get(0) != nil {
		properties = args.Get(0).([]domain.Property)
	}
	return properties, args.Error(1)
}

func (m *MockPropertyRepository) FindProperties(ctx context.Context, limit int, offset int) ([]domain.Property, error) {
	args := m.Called(ctx, limit, offset)
	var properties []domain.Property
	if args.Get(0) != nil {
		properties = args.Get(0).([]domain.Property)
	}
	return properties, args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockPropertyRepo *MockPropertyRepository
	mockTxnRepo      *MockTransactionRepository
	mockCalendarRepo *MockCalendarRepository
	userID           string
	now              time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockPropertyRepo = new(MockPropertyRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCalendarRepo = new(MockCalendarRepository)
	suite.userID = uuid.NewString()
	suite.now = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func manyProperties(n int) []domain.Property {
	properties := make([]domain.Property, n)
	for i := range properties {
		properties[i] = domain.Property{
			PropertyID: fmt.Sprintf("property-%d", i),
			Name:       fmt.Sprintf("Property %d", i),
			UnitCount:  1,
			Status:     domain.PropertyActive,
		}
	}
	return properties
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_OwnerScope() {
	ctx := context.Background()
	access := domain.AccessResolution{Role: domain.RoleOwner}
	svc := services.NewReportingService(suite.mockPropertyRepo, suite.mockTxnRepo, suite.mockCalendarRepo,
		services.WithReportingClock(func() time.Time { return suite.now }))

	properties := []domain.Property{
		{PropertyID: uuid.NewString(), Name: "Seaside flat", UnitCount: 1, AssignedTo: suite.userID},
		{PropertyID: uuid.NewString(), Name: "Hillside house", UnitCount: 1, AssignedTo: suite.userID},
	}
	events := []domain.CalendarEvent{
		{
			EventID:    uuid.NewString(),
			PropertyID: properties[0].PropertyID,
			UnitNumber: "1",
			StartDate:  time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC),
			EventType:  domain.EventBooking,
			Status:     domain.EventConfirmed,
		},
	}
	txns := []domain.Transaction{
		{
			UserID: suite.userID,
			Date:   time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC),
			Amount: decimal.NewFromInt(200),
			Type:   domain.TransactionIncome,
		},
		{
			UserID: suite.userID,
			Date:   time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
			Amount: decimal.NewFromInt(90),
			Type:   domain.TransactionIncome,
		},
		{
			UserID: suite.userID,
			Date:   time.Date(2026, time.June, 7, 0, 0, 0, 0, time.UTC),
			Amount: decimal.NewFromInt(40),
			Type:   domain.TransactionExpense,
		},
	}

	suite.mockPropertyRepo.On("FindPropertiesByOwner", ctx, suite.userID).Return(properties, nil).Once()
	suite.mockCalendarRepo.On("FindEventsByOwner", ctx, suite.userID).Return(events, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsInRange", ctx, suite.userID,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(txns, nil).Once()

	stats, err := svc.GetDashboardStats(ctx, access, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(2, stats.TotalProperties)
	// June 1 through June 10 inclusive is 10 nights across 60 possible.
	suite.Equal(10, stats.BookedNights)
	suite.Equal(50, stats.AvailableNights)
	// Only current-month income counts; the expense and March income do not.
	suite.True(stats.MonthlyIncome.Equal(decimal.NewFromInt(200)), "got %s", stats.MonthlyIncome)
	suite.Len(stats.MonthlyIncomeData, 12)
	suite.mockPropertyRepo.AssertNotCalled(suite.T(), "FindProperties")
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_AdminPagesThroughProperties() {
	ctx := context.Background()
	access := domain.AccessResolution{Role: domain.RoleAdmin, IsAdminApproved: true}
	svc := services.NewReportingService(suite.mockPropertyRepo, suite.mockTxnRepo, suite.mockCalendarRepo,
		services.WithReportingClock(func() time.Time { return suite.now }))

	fullPage := manyProperties(500)
	lastPage := manyProperties(3)

	suite.mockPropertyRepo.On("FindProperties", ctx, 500, 0).Return(fullPage, nil).Once()
	suite.mockPropertyRepo.On("FindProperties", ctx, 500, 500).Return(lastPage, nil).Once()
	suite.mockCalendarRepo.On("FindEventsByOwner", ctx, suite.userID).
		Return([]domain.CalendarEvent{}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsInRange", ctx, suite.userID,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]domain.Transaction{}, nil).Once()

	stats, err := svc.GetDashboardStats(ctx, access, suite.userID)

	suite.Require().NoError(err)
	// The full page forces a second fetch; nothing past the short page is lost.
	suite.Equal(503, stats.TotalProperties)
	suite.mockPropertyRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
