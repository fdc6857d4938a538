package services

import (
	"context"
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
	"github.com/hostvana/property_management_app/internal/dto"
)

// CalendarReaderSvc defines read operations for calendar events
type CalendarReaderSvc interface {
	// GetEventByID retrieves an event on a property the caller can access.
	GetEventByID(ctx context.Context, eventID string, access domain.AccessResolution, requestingUserID string) (*domain.CalendarEvent, error)

	// ListEvents retrieves a property's events intersecting [from, to].
	ListEvents(ctx context.Context, propertyID string, from, to time.Time, access domain.AccessResolution, requestingUserID string) ([]domain.CalendarEvent, error)
}

// CalendarWriterSvc defines write operations for calendar events
type CalendarWriterSvc interface {
	// CreateEvent creates an event after a best-effort check that the unit is
	// free for the inclusive date span. An active overlap yields ErrConflict.
	CreateEvent(ctx context.Context, req dto.CreateCalendarEventRequest, access domain.AccessResolution, requestingUserID string) (*domain.CalendarEvent, error)

	// UpdateEvent updates an event, re-checking unit availability when the
	// dates or unit change.
	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateCalendarEventRequest, access domain.AccessResolution, requestingUserID string) (*domain.CalendarEvent, error)

	// DeleteEvent removes an event on a property the caller can access.
	DeleteEvent(ctx context.Context, eventID string, access domain.AccessResolution, requestingUserID string) error
}

// CalendarSvcFacade combines all calendar service interfaces
type CalendarSvcFacade interface {
	CalendarReaderSvc
	CalendarWriterSvc
}
