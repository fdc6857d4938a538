package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/core/services"
	"github.com/hostvana/property_management_app/internal/dto"
)

// --- Mock CalendarRepository ---
type MockCalendarRepository struct {
	mock.Mock
}

func (m *MockCalendarRepository) FindEventByID(ctx context.Context, eventID string) (*domain.CalendarEvent, error) {
	args := m.Called(ctx, eventID)
	var event *domain.CalendarEvent
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.CalendarEvent)
	}
	return event, args.Error(1)
}

func (m *MockCalendarRepository) FindEventsByOwner(ctx context.Context, ownerUserID string) ([]domain.CalendarEvent, error) {
	args := m.Called(ctx, ownerUserID)
	var events []domain.CalendarEvent
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.CalendarEvent)
	}
	return events, args.Error(1)
}

func (m *MockCalendarRepository) FindEventsByProperty(ctx context.Context, propertyID string, from, to time.Time) ([]domain.CalendarEvent, error) {
	args := m.Called(ctx, propertyID, from, to)
	var events []domain.CalendarEvent
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.CalendarEvent)
	}
	return events, args.Error(1)
}

func (m *MockCalendarRepository) SaveEvent(ctx context.Context, event domain.CalendarEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockCalendarRepository) UpdateEvent(ctx context.Context, event domain.CalendarEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockCalendarRepository) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// --- Mock PropertyReader ---
type MockPropertyReader struct {
	mock.Mock
}

func (m *MockPropertyReader) GetPropertyByID(ctx context.Context, propertyID string, access domain.AccessResolution, requestingUserID string) (*domain.Property, error) {
	args := m.Called(ctx, propertyID, access, requestingUserID)
	var property *domain.Property
	if args.Get(0) != nil {
		property = args.Get(0).(*domain.Property)
	}
	return property, args.Error(1)
}

func (m *MockPropertyReader) ListProperties(ctx context.Context, access domain.AccessResolution, requestingUserID string, limit, offset int) ([]domain.Property, error) {
	args := m.Called(ctx, access, requestingUserID, limit, offset)
	var properties []domain.Property
	if args.Get(0) != nil {
		properties = args.Get(0).([]domain.Property)
	}
	return properties, args.Error(1)
}

// --- Test Suite ---
type CalendarServiceTestSuite struct {
	suite.Suite
	mockCalendarRepo *MockCalendarRepository
	mockPropertySvc  *MockPropertyReader
	service          portssvc.CalendarSvcFacade

	access     domain.AccessResolution
	userID     string
	propertyID string
}

func (suite *CalendarServiceTestSuite) SetupTest() {
	suite.mockCalendarRepo = new(MockCalendarRepository)
	suite.mockPropertySvc = new(MockPropertyReader)
	suite.service = services.NewCalendarService(suite.mockCalendarRepo, suite.mockPropertySvc)

	suite.userID = uuid.NewString()
	suite.propertyID = uuid.NewString()
	suite.access = domain.AccessResolution{
		Role: domain.RoleOwner,
		Permissions: []domain.Permission{
			{Role: domain.RoleOwner, Resource: domain.ResourceCalendar, Action: domain.ActionCreate},
			{Role: domain.RoleOwner, Resource: domain.ResourceCalendar, Action: domain.ActionRead},
		},
	}
}

func (suite *CalendarServiceTestSuite) expectPropertyAccessible() {
	suite.mockPropertySvc.On("GetPropertyByID", mock.Anything, suite.propertyID, suite.access, suite.userID).
		Return(&domain.Property{PropertyID: suite.propertyID}, nil)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- CreateEvent Tests ---

func (suite *CalendarServiceTestSuite) TestCreateEvent_Success() {
	ctx := context.Background()
	req := dto.CreateCalendarEventRequest{
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		Title:      "Smith booking",
		StartDate:  date(2026, time.March, 10),
		EndDate:    date(2026, time.March, 14),
		EventType:  string(domain.EventBooking),
	}

	suite.expectPropertyAccessible()
	suite.mockCalendarRepo.On("FindEventsByProperty", ctx, suite.propertyID, req.StartDate, req.EndDate).
		Return([]domain.CalendarEvent{}, nil).Once()
	suite.mockCalendarRepo.On("SaveEvent", ctx, mock.MatchedBy(func(event domain.CalendarEvent) bool {
		return event.PropertyID == suite.propertyID &&
			event.UnitNumber == "2A" &&
			event.Status == domain.EventConfirmed
	})).Return(nil).Once()

	event, err := suite.service.CreateEvent(ctx, req, suite.access, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(event.EventID)
	suite.Equal(domain.EventBooking, event.EventType)
	suite.Equal(5, event.Nights())
	suite.mockCalendarRepo.AssertExpectations(suite.T())
}

func (suite *CalendarServiceTestSuite) TestCreateEvent_OverlapConflict() {
	ctx := context.Background()
	req := dto.CreateCalendarEventRequest{
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		Title:      "Jones booking",
		StartDate:  date(2026, time.March, 12),
		EndDate:    date(2026, time.March, 16),
		EventType:  string(domain.EventBooking),
	}
	existing := domain.CalendarEvent{
		EventID:    uuid.NewString(),
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		Title:      "Smith booking",
		StartDate:  date(2026, time.March, 10),
		EndDate:    date(2026, time.March, 14),
		EventType:  domain.EventBooking,
		Status:     domain.EventConfirmed,
	}

	suite.expectPropertyAccessible()
	suite.mockCalendarRepo.On("FindEventsByProperty", ctx, suite.propertyID, req.StartDate, req.EndDate).
		Return([]domain.CalendarEvent{existing}, nil).Once()

	event, err := suite.service.CreateEvent(ctx, req, suite.access, suite.userID)

	suite.Require().Error(err)
	suite.Nil(event)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockCalendarRepo.AssertNotCalled(suite.T(), "SaveEvent")
}

func (suite *CalendarServiceTestSuite) TestCreateEvent_SameDaySpanConflicts() {
	ctx := context.Background()
	day := date(2026, time.March, 14)
	req := dto.CreateCalendarEventRequest{
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		Title:      "One night stay",
		StartDate:  day,
		EndDate:    day,
		EventType:  string(domain.EventBooking),
	}
	// Dates are inclusive on both ends, so the existing checkout day still
	// occupies the unit.
	existing := domain.CalendarEvent{
		EventID:    uuid.NewString(),
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		StartDate:  date(2026, time.March, 10),
		EndDate:    day,
		EventType:  domain.EventBooking,
		Status:     domain.EventConfirmed,
	}

	suite.expectPropertyAccessible()
	suite.mockCalendarRepo.On("FindEventsByProperty", ctx, suite.propertyID, day, day).
		Return([]domain.CalendarEvent{existing}, nil).Once()

	_, err := suite.service.CreateEvent(ctx, req, suite.access, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *CalendarServiceTestSuite) TestCreateEvent_CancelledEventDoesNotBlock() {
	ctx := context.Background()
	req := dto.CreateCalendarEventRequest{
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		Title:      "Jones booking",
		StartDate:  date(2026, time.March, 12),
		EndDate:    date(2026, time.March, 16),
		EventType:  string(domain.EventBooking),
	}
	cancelled := domain.CalendarEvent{
		EventID:    uuid.NewString(),
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		StartDate:  date(2026, time.March, 10),
		EndDate:    date(2026, time.March, 14),
		EventType:  domain.EventBooking,
		Status:     domain.EventCancelled,
	}

	suite.expectPropertyAccessible()
	suite.mockCalendarRepo.On("FindEventsByProperty", ctx, suite.propertyID, req.StartDate, req.EndDate).
		Return([]domain.CalendarEvent{cancelled}, nil).Once()
	suite.mockCalendarRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.CalendarEvent")).
		Return(nil).Once()

	event, err := suite.service.CreateEvent(ctx, req, suite.access, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(event)
	suite.mockCalendarRepo.AssertExpectations(suite.T())
}

func (suite *CalendarServiceTestSuite) TestCreateEvent_OtherUnitDoesNotBlock() {
	ctx := context.Background()
	req := dto.CreateCalendarEventRequest{
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		Title:      "Jones booking",
		StartDate:  date(2026, time.March, 12),
		EndDate:    date(2026, time.March, 16),
		EventType:  string(domain.EventBooking),
	}
	otherUnit := domain.CalendarEvent{
		EventID:    uuid.NewString(),
		PropertyID: suite.propertyID,
		UnitNumber: "3B",
		StartDate:  date(2026, time.March, 10),
		EndDate:    date(2026, time.March, 14),
		EventType:  domain.EventBooking,
		Status:     domain.EventConfirmed,
	}

	suite.expectPropertyAccessible()
	suite.mockCalendarRepo.On("FindEventsByProperty", ctx, suite.propertyID, req.StartDate, req.EndDate).
		Return([]domain.CalendarEvent{otherUnit}, nil).Once()
	suite.mockCalendarRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.CalendarEvent")).
		Return(nil).Once()

	_, err := suite.service.CreateEvent(ctx, req, suite.access, suite.userID)

	suite.Require().NoError(err)
	suite.mockCalendarRepo.AssertExpectations(suite.T())
}

func (suite *CalendarServiceTestSuite) TestCreateEvent_CancelledStatusSkipsAvailabilityCheck() {
	ctx := context.Background()
	req := dto.CreateCalendarEventRequest{
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		Title:      "Cancelled booking kept for records",
		StartDate:  date(2026, time.March, 12),
		EndDate:    date(2026, time.March, 16),
		EventType:  string(domain.EventBooking),
		Status:     string(domain.EventCancelled),
	}

	suite.expectPropertyAccessible()
	suite.mockCalendarRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.CalendarEvent")).
		Return(nil).Once()

	_, err := suite.service.CreateEvent(ctx, req, suite.access, suite.userID)

	suite.Require().NoError(err)
	suite.mockCalendarRepo.AssertNotCalled(suite.T(), "FindEventsByProperty")
}

func (suite *CalendarServiceTestSuite) TestCreateEvent_EndBeforeStart() {
	ctx := context.Background()
	req := dto.CreateCalendarEventRequest{
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		Title:      "Backwards",
		StartDate:  date(2026, time.March, 16),
		EndDate:    date(2026, time.March, 12),
		EventType:  string(domain.EventBooking),
	}

	event, err := suite.service.CreateEvent(ctx, req, suite.access, suite.userID)

	suite.Require().Error(err)
	suite.Nil(event)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCalendarRepo.AssertNotCalled(suite.T(), "SaveEvent")
}

func (suite *CalendarServiceTestSuite) TestCreateEvent_PropertyNotAccessible() {
	ctx := context.Background()
	req := dto.CreateCalendarEventRequest{
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		Title:      "Sneaky booking",
		StartDate:  date(2026, time.March, 12),
		EndDate:    date(2026, time.March, 16),
		EventType:  string(domain.EventBooking),
	}

	suite.mockPropertySvc.On("GetPropertyByID", mock.Anything, suite.propertyID, suite.access, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	event, err := suite.service.CreateEvent(ctx, req, suite.access, suite.userID)

	suite.Require().Error(err)
	suite.Nil(event)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCalendarRepo.AssertNotCalled(suite.T(), "SaveEvent")
}

// --- UpdateEvent Tests ---

func (suite *CalendarServiceTestSuite) TestUpdateEvent_SpanChangeExcludesSelf() {
	ctx := context.Background()
	eventID := uuid.NewString()
	existing := &domain.CalendarEvent{
		EventID:    eventID,
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		Title:      "Smith booking",
		StartDate:  date(2026, time.March, 10),
		EndDate:    date(2026, time.March, 14),
		EventType:  domain.EventBooking,
		Status:     domain.EventConfirmed,
	}
	newEnd := date(2026, time.March, 15)
	req := dto.UpdateCalendarEventRequest{EndDate: &newEnd}

	suite.expectPropertyAccessible()
	suite.mockCalendarRepo.On("FindEventByID", ctx, eventID).Return(existing, nil).Once()
	// The availability check sees the event's own row and must not treat it
	// as a conflict.
	suite.mockCalendarRepo.On("FindEventsByProperty", ctx, suite.propertyID, existing.StartDate, newEnd).
		Return([]domain.CalendarEvent{*existing}, nil).Once()
	suite.mockCalendarRepo.On("UpdateEvent", ctx, mock.MatchedBy(func(event domain.CalendarEvent) bool {
		return event.EventID == eventID && event.EndDate.Equal(newEnd)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateEvent(ctx, eventID, req, suite.access, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newEnd, updated.EndDate)
	suite.mockCalendarRepo.AssertExpectations(suite.T())
}

func (suite *CalendarServiceTestSuite) TestUpdateEvent_TitleOnlySkipsAvailabilityCheck() {
	ctx := context.Background()
	eventID := uuid.NewString()
	existing := &domain.CalendarEvent{
		EventID:    eventID,
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		Title:      "Smith booking",
		StartDate:  date(2026, time.March, 10),
		EndDate:    date(2026, time.March, 14),
		EventType:  domain.EventBooking,
		Status:     domain.EventConfirmed,
	}
	newTitle := "Smith family booking"
	req := dto.UpdateCalendarEventRequest{Title: &newTitle}

	suite.expectPropertyAccessible()
	suite.mockCalendarRepo.On("FindEventByID", ctx, eventID).Return(existing, nil).Once()
	suite.mockCalendarRepo.On("UpdateEvent", ctx, mock.AnythingOfType("domain.CalendarEvent")).
		Return(nil).Once()

	updated, err := suite.service.UpdateEvent(ctx, eventID, req, suite.access, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newTitle, updated.Title)
	suite.mockCalendarRepo.AssertNotCalled(suite.T(), "FindEventsByProperty")
}

// --- DeleteEvent Tests ---

func (suite *CalendarServiceTestSuite) TestDeleteEvent_Success() {
	ctx := context.Background()
	eventID := uuid.NewString()
	existing := &domain.CalendarEvent{
		EventID:    eventID,
		PropertyID: suite.propertyID,
		UnitNumber: "2A",
		StartDate:  date(2026, time.March, 10),
		EndDate:    date(2026, time.March, 14),
	}

	suite.expectPropertyAccessible()
	suite.mockCalendarRepo.On("FindEventByID", ctx, eventID).Return(existing, nil).Once()
	suite.mockCalendarRepo.On("DeleteEvent", ctx, eventID).Return(nil).Once()

	err := suite.service.DeleteEvent(ctx, eventID, suite.access, suite.userID)

	suite.Require().NoError(err)
	suite.mockCalendarRepo.AssertExpectations(suite.T())
}

func (suite *CalendarServiceTestSuite) TestDeleteEvent_NotFound() {
	ctx := context.Background()
	eventID := uuid.NewString()

	suite.mockCalendarRepo.On("FindEventByID", ctx, eventID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEvent(ctx, eventID, suite.access, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCalendarRepo.AssertNotCalled(suite.T(), "DeleteEvent")
}

// --- Run Suite ---
func TestCalendarService(t *testing.T) {
	suite.Run(t, new(CalendarServiceTestSuite))
}
