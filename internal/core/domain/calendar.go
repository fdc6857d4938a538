package domain

import "time"

// CalendarEventType classifies what occupies a unit for a date range.
type CalendarEventType string

const (
	EventBooking     CalendarEventType = "booking"
	EventMaintenance CalendarEventType = "maintenance"
	EventBlocked     CalendarEventType = "blocked"
)

// IsValid reports whether the event type is known.
func (t CalendarEventType) IsValid() bool {
	return t == EventBooking || t == EventMaintenance || t == EventBlocked
}

// CalendarEventStatus tracks confirmation of a calendar event. Cancelled
// events are excluded from occupancy math.
type CalendarEventStatus string

const (
	EventConfirmed CalendarEventStatus = "confirmed"
	EventPending   CalendarEventStatus = "pending"
	EventCancelled CalendarEventStatus = "cancelled"
)

// IsValid reports whether the status is known.
func (s CalendarEventStatus) IsValid() bool {
	return s == EventConfirmed || s == EventPending || s == EventCancelled
}

// CalendarEvent occupies a (property, unit) for an inclusive date span.
type CalendarEvent struct {
	EventID    string              `json:"eventID"`
	PropertyID string              `json:"propertyID"`
	UnitNumber string              `json:"unitNumber"`
	Title      string              `json:"title"`
	StartDate  time.Time           `json:"startDate"`
	EndDate    time.Time           `json:"endDate"`
	EventType  CalendarEventType   `json:"eventType"`
	Status     CalendarEventStatus `json:"status"`
	AuditFields
}

// Nights returns the night-inclusive span of the event: a same-day start and
// end counts as one night.
func (e CalendarEvent) Nights() int {
	if e.EndDate.Before(e.StartDate) {
		return 0
	}
	return int(e.EndDate.Sub(e.StartDate).Hours()/24) + 1
}

// Overlaps reports whether the event's inclusive date span intersects [from, to].
func (e CalendarEvent) Overlaps(from, to time.Time) bool {
	return !e.StartDate.After(to) && !e.EndDate.Before(from)
}
