package dto

import (
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// CreateCalendarEventRequest defines the data needed to create a calendar event.
// Dates are inclusive on both ends.
type CreateCalendarEventRequest struct {
	PropertyID string    `json:"propertyID" binding:"required"`
	UnitNumber string    `json:"unitNumber" binding:"required"`
	Title      string    `json:"title" binding:"required"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	EndDate    time.Time `json:"endDate" binding:"required"`
	EventType  string    `json:"eventType" binding:"required,oneof=booking maintenance blocked"`
	Status     string    `json:"status" binding:"omitempty,oneof=confirmed pending cancelled"`
}

// UpdateCalendarEventRequest defines the data allowed for updating an event.
type UpdateCalendarEventRequest struct {
	UnitNumber *string    `json:"unitNumber"`
	Title      *string    `json:"title"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	EventType  *string    `json:"eventType" binding:"omitempty,oneof=booking maintenance blocked"`
	Status     *string    `json:"status" binding:"omitempty,oneof=confirmed pending cancelled"`
}

// CalendarEventResponse defines the data returned for a calendar event.
type CalendarEventResponse struct {
	EventID       string    `json:"eventID"`
	PropertyID    string    `json:"propertyID"`
	UnitNumber    string    `json:"unitNumber"`
	Title         string    `json:"title"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	EventType     string    `json:"eventType"`
	Status        string    `json:"status"`
	Nights        int       `json:"nights"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCalendarEventResponse converts a domain.CalendarEvent to its response DTO
func ToCalendarEventResponse(e *domain.CalendarEvent) CalendarEventResponse {
	return CalendarEventResponse{
		EventID:       e.EventID,
		PropertyID:    e.PropertyID,
		UnitNumber:    e.UnitNumber,
		Title:         e.Title,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		EventType:     string(e.EventType),
		Status:        string(e.Status),
		Nights:        e.Nights(),
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListCalendarEventsResponse converts a slice of domain.CalendarEvent to response DTOs
func ToListCalendarEventsResponse(events []domain.CalendarEvent) []CalendarEventResponse {
	res := make([]CalendarEventResponse, len(events))
	for i, e := range events {
		res[i] = ToCalendarEventResponse(&e)
	}
	return res
}

// ListCalendarEventsParams defines query parameters for listing a property's events.
type ListCalendarEventsParams struct {
	PropertyID string    `form:"propertyID"`
	From       time.Time `form:"from" time_format:"2006-01-02"`
	To         time.Time `form:"to" time_format:"2006-01-02"`
}
