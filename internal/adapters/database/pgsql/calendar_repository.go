package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
)

// PgxCalendarRepository persists calendar events.
type PgxCalendarRepository struct {
	BaseRepository
}

func newPgxCalendarRepository(db *pgxpool.Pool) portsrepo.CalendarRepositoryFacade {
	return &PgxCalendarRepository{BaseRepository: BaseRepository{Pool: db}}
}

const selectEventFields = `
	event_id, property_id, unit_number, title, start_date, end_date,
	event_type, status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanEvent(row pgx.Row) (*domain.CalendarEvent, error) {
	var e domain.CalendarEvent
	err := row.Scan(
		&e.EventID,
		&e.PropertyID,
		&e.UnitNumber,
		&e.Title,
		&e.StartDate,
		&e.EndDate,
		&e.EventType,
		&e.Status,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// SaveEvent persists a new calendar event.
func (r *PgxCalendarRepository) SaveEvent(ctx context.Context, event domain.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (
			event_id, property_id, unit_number, title, start_date, end_date,
			event_type, status,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.Pool.Exec(ctx, query,
		event.EventID,
		event.PropertyID,
		event.UnitNumber,
		event.Title,
		event.StartDate,
		event.EndDate,
		event.EventType,
		event.Status,
		event.CreatedAt,
		event.CreatedBy,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
	)
	return translateError(err, "failed to save calendar event")
}

// FindEventByID retrieves a specific calendar event.
func (r *PgxCalendarRepository) FindEventByID(ctx context.Context, eventID string) (*domain.CalendarEvent, error) {
	query := `SELECT ` + selectEventFields + ` FROM calendar_events WHERE event_id = $1`
	event, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		return nil, translateError(err, "failed to find calendar event by ID")
	}
	return event, nil
}

// FindEventsByOwner retrieves all events for a user's properties.
func (r *PgxCalendarRepository) FindEventsByOwner(ctx context.Context, ownerUserID string) ([]domain.CalendarEvent, error) {
	query := `
		SELECT ` + selectEventFields + `
		FROM calendar_events e
		WHERE EXISTS (
			SELECT 1 FROM properties p
			WHERE p.property_id = e.property_id AND p.assigned_to = $1
		)
		ORDER BY start_date ASC
	`
	return r.queryEvents(ctx, query, ownerUserID)
}

// FindEventsByProperty retrieves a property's events intersecting [from, to].
func (r *PgxCalendarRepository) FindEventsByProperty(ctx context.Context, propertyID string, from, to time.Time) ([]domain.CalendarEvent, error) {
	query := `
		SELECT ` + selectEventFields + `
		FROM calendar_events
		WHERE property_id = $1 AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date ASC
	`
	return r.queryEvents(ctx, query, propertyID, from, to)
}

func (r *PgxCalendarRepository) queryEvents(ctx context.Context, query string, args ...any) ([]domain.CalendarEvent, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "failed to query calendar events")
	}
	defer rows.Close()

	events := []domain.CalendarEvent{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan calendar event row")
		}
		events = append(events, *event)
	}
	if rows.Err() != nil {
		return nil, translateError(rows.Err(), "error iterating calendar event rows")
	}
	return events, nil
}

// UpdateEvent updates an existing calendar event.
func (r *PgxCalendarRepository) UpdateEvent(ctx context.Context, event domain.CalendarEvent) error {
	query := `
		UPDATE calendar_events
		SET unit_number = $1, title = $2, start_date = $3, end_date = $4,
			event_type = $5, status = $6, last_updated_at = $7, last_updated_by = $8
		WHERE event_id = $9
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		event.UnitNumber,
		event.Title,
		event.StartDate,
		event.EndDate,
		event.EventType,
		event.Status,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
		event.EventID,
	)
	if err != nil {
		return translateError(err, "failed to update calendar event")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEvent removes a calendar event.
func (r *PgxCalendarRepository) DeleteEvent(ctx context.Context, eventID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM calendar_events WHERE event_id = $1`, eventID)
	if err != nil {
		return translateError(err, "failed to delete calendar event")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
