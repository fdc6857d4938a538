package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/dto"
)

// calendarService implements CalendarSvcFacade. Events belong to properties,
// so access checks delegate to the property service. Availability checking is
// read-then-write without a store-level exclusion constraint; concurrent
// writers can still race a double booking.
type calendarService struct {
	BaseService
	calendarRepo    portsrepo.CalendarRepositoryFacade
	propertyService portssvc.PropertyReaderSvc
}

// NewCalendarService creates a new calendar service.
func NewCalendarService(calendarRepo portsrepo.CalendarRepositoryFacade, propertyService portssvc.PropertyReaderSvc) portssvc.CalendarSvcFacade {
	return &calendarService{
		calendarRepo:    calendarRepo,
		propertyService: propertyService,
	}
}

// GetEventByID retrieves an event on a property the caller can access.
func (s *calendarService) GetEventByID(ctx context.Context, eventID string, access domain.AccessResolution, requestingUserID string) (*domain.CalendarEvent, error) {
	event, err := s.calendarRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}
	if _, err := s.propertyService.GetPropertyByID(ctx, event.PropertyID, access, requestingUserID); err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents retrieves a property's events intersecting [from, to].
func (s *calendarService) ListEvents(ctx context.Context, propertyID string, from, to time.Time, access domain.AccessResolution, requestingUserID string) ([]domain.CalendarEvent, error) {
	if _, err := s.propertyService.GetPropertyByID(ctx, propertyID, access, requestingUserID); err != nil {
		return nil, err
	}
	events, err := s.calendarRepo.FindEventsByProperty(ctx, propertyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return events, nil
}

// CreateEvent creates an event after checking that the unit is free for the
// inclusive date span. An active overlap on the same unit yields ErrConflict.
func (s *calendarService) CreateEvent(ctx context.Context, req dto.CreateCalendarEventRequest, access domain.AccessResolution, requestingUserID string) (*domain.CalendarEvent, error) {
	eventType := domain.CalendarEventType(req.EventType)
	if !eventType.IsValid() {
		return nil, fmt.Errorf("%w: invalid event type %q", apperrors.ErrValidation, req.EventType)
	}
	status := domain.EventConfirmed
	if req.Status != "" {
		status = domain.CalendarEventStatus(req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: invalid event status %q", apperrors.ErrValidation, req.Status)
		}
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", apperrors.ErrValidation)
	}

	if _, err := s.propertyService.GetPropertyByID(ctx, req.PropertyID, access, requestingUserID); err != nil {
		return nil, err
	}

	if status != domain.EventCancelled {
		if err := s.checkUnitAvailable(ctx, req.PropertyID, req.UnitNumber, req.StartDate, req.EndDate, ""); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	event := domain.CalendarEvent{
		EventID:    uuid.NewString(),
		PropertyID: req.PropertyID,
		UnitNumber: req.UnitNumber,
		Title:      req.Title,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		EventType:  eventType,
		Status:     status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.calendarRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to save calendar event", slog.String("property_id", req.PropertyID))
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	s.LogInfo(ctx, "Calendar event created",
		slog.String("event_id", event.EventID),
		slog.String("unit", event.UnitNumber))
	return &event, nil
}

// UpdateEvent updates an event, re-checking unit availability when the dates
// or unit change.
func (s *calendarService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateCalendarEventRequest, access domain.AccessResolution, requestingUserID string) (*domain.CalendarEvent, error) {
	event, err := s.GetEventByID(ctx, eventID, access, requestingUserID)
	if err != nil {
		return nil, err
	}

	spanChanged := false
	if req.UnitNumber != nil && *req.UnitNumber != event.UnitNumber {
		event.UnitNumber = *req.UnitNumber
		spanChanged = true
	}
	if req.StartDate != nil && !req.StartDate.Equal(event.StartDate) {
		event.StartDate = *req.StartDate
		spanChanged = true
	}
	if req.EndDate != nil && !req.EndDate.Equal(event.EndDate) {
		event.EndDate = *req.EndDate
		spanChanged = true
	}
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.EventType != nil {
		eventType := domain.CalendarEventType(*req.EventType)
		if !eventType.IsValid() {
			return nil, fmt.Errorf("%w: invalid event type %q", apperrors.ErrValidation, *req.EventType)
		}
		event.EventType = eventType
	}
	if req.Status != nil {
		status := domain.CalendarEventStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: invalid event status %q", apperrors.ErrValidation, *req.Status)
		}
		event.Status = status
	}
	if event.EndDate.Before(event.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", apperrors.ErrValidation)
	}

	if spanChanged && event.Status != domain.EventCancelled {
		if err := s.checkUnitAvailable(ctx, event.PropertyID, event.UnitNumber, event.StartDate, event.EndDate, event.EventID); err != nil {
			return nil, err
		}
	}

	event.LastUpdatedAt = time.Now()
	event.LastUpdatedBy = requestingUserID

	if err := s.calendarRepo.UpdateEvent(ctx, *event); err != nil {
		s.LogError(ctx, err, "Failed to update calendar event", slog.String("event_id", eventID))
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes an event on a property the caller can access.
func (s *calendarService) DeleteEvent(ctx context.Context, eventID string, access domain.AccessResolution, requestingUserID string) error {
	if _, err := s.GetEventByID(ctx, eventID, access, requestingUserID); err != nil {
		return err
	}
	if err := s.calendarRepo.DeleteEvent(ctx, eventID); err != nil {
		s.LogError(ctx, err, "Failed to delete calendar event", slog.String("event_id", eventID))
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	s.LogInfo(ctx, "Calendar event deleted", slog.String("event_id", eventID))
	return nil
}

// checkUnitAvailable reports ErrConflict when a non-cancelled event already
// occupies the unit for any part of the inclusive span. excludeEventID skips
// the event being updated.
func (s *calendarService) checkUnitAvailable(ctx context.Context, propertyID, unitNumber string, from, to time.Time, excludeEventID string) error {
	events, err := s.calendarRepo.FindEventsByProperty(ctx, propertyID, from, to)
	if err != nil {
		return fmt.Errorf("failed to check unit availability: %w", err)
	}
	for _, existing := range events {
		if existing.EventID == excludeEventID {
			continue
		}
		if existing.UnitNumber != unitNumber {
			continue
		}
		if existing.Status == domain.EventCancelled {
			continue
		}
		if existing.Overlaps(from, to) {
			return fmt.Errorf("%w: unit %s already has %q from %s to %s",
				apperrors.ErrConflict, unitNumber, existing.Title,
				existing.StartDate.Format("2006-01-02"), existing.EndDate.Format("2006-01-02"))
		}
	}
	return nil
}
