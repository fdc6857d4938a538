package repositories

import (
	"context"
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// CalendarReader defines read operations for calendar events
type CalendarReader interface {
	// FindEventByID retrieves a specific calendar event.
	FindEventByID(ctx context.Context, eventID string) (*domain.CalendarEvent, error)

	// FindEventsByOwner retrieves all events for a user's properties.
	FindEventsByOwner(ctx context.Context, ownerUserID string) ([]domain.CalendarEvent, error)

	// FindEventsByProperty retrieves a property's events intersecting [from, to].
	FindEventsByProperty(ctx context.Context, propertyID string, from, to time.Time) ([]domain.CalendarEvent, error)
}

// CalendarWriter defines write operations for calendar events
type CalendarWriter interface {
	// SaveEvent persists a new calendar event.
	SaveEvent(ctx context.Context, event domain.CalendarEvent) error

	// UpdateEvent updates an existing calendar event.
	UpdateEvent(ctx context.Context, event domain.CalendarEvent) error

	// DeleteEvent removes a calendar event.
	DeleteEvent(ctx context.Context, eventID string) error
}

// CalendarRepositoryFacade combines all calendar repository interfaces
type CalendarRepositoryFacade interface {
	CalendarReader
	CalendarWriter
}
