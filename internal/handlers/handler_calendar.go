package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/dto"
	"github.com/hostvana/property_management_app/internal/middleware"
)

// calendarHandler handles HTTP requests for booking calendar events.
type calendarHandler struct {
	calendarService portssvc.CalendarSvcFacade
}

func newCalendarHandler(cs portssvc.CalendarSvcFacade) *calendarHandler {
	return &calendarHandler{calendarService: cs}
}

// registerCalendarRoutes registers routes related to calendar events.
func registerCalendarRoutes(rg *gin.RouterGroup, cs portssvc.CalendarSvcFacade, ac portssvc.AccessControlSvcFacade) {
	h := newCalendarHandler(cs)

	events := rg.Group("/calendar/events")
	{
		events.POST("", middleware.RequirePermission(ac, domain.ActionCreate, domain.ResourceCalendar), h.createEvent)
		events.GET("", middleware.RequirePermission(ac, domain.ActionRead, domain.ResourceCalendar), h.listEvents)
		events.GET("/:id", middleware.RequirePermission(ac, domain.ActionRead, domain.ResourceCalendar), h.getEvent)
		events.PUT("/:id", middleware.RequirePermission(ac, domain.ActionUpdate, domain.ResourceCalendar), h.updateEvent)
		events.DELETE("/:id", middleware.RequirePermission(ac, domain.ActionDelete, domain.ResourceCalendar), h.deleteEvent)
	}
}

// createEvent godoc
// @Summary Create a calendar event
// @Description Creates an event after a best-effort check that the unit is free for the inclusive date span. An active overlap answers 409.
// @Tags calendar
// @Accept json
// @Produce json
// @Param event body dto.CreateCalendarEventRequest true "Event details"
// @Success 201 {object} dto.CalendarEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Property not found"
// @Failure 409 {object} ErrorResponse "Unit already booked for the span"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /calendar/events [post]
func (h *calendarHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateCalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	event, err := h.calendarService.CreateEvent(c.Request.Context(), req, access, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Property not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create calendar event", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create event"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCalendarEventResponse(event))
}

// listEvents godoc
// @Summary List a property's calendar events
// @Description Lists events for a property intersecting the [from, to] window, typically one month.
// @Tags calendar
// @Produce json
// @Param propertyID query string true "Property ID"
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {array} dto.CalendarEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Property not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /calendar/events [get]
func (h *calendarHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListCalendarEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	if params.PropertyID == "" || params.From.IsZero() || params.To.IsZero() || params.To.Before(params.From) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "propertyID and a valid from/to window are required"})
		return
	}

	events, err := h.calendarService.ListEvents(c.Request.Context(), params.PropertyID, params.From, params.To, access, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Property not found"})
			return
		}
		logger.Error("Failed to list calendar events", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list events"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCalendarEventsResponse(events))
}

// getEvent godoc
// @Summary Get a calendar event by ID
// @Tags calendar
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.CalendarEventResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /calendar/events/{id} [get]
func (h *calendarHandler) getEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	event, err := h.calendarService.GetEventByID(c.Request.Context(), c.Param("id"), access, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
			return
		}
		logger.Error("Failed to get calendar event", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get event"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCalendarEventResponse(event))
}

// updateEvent godoc
// @Summary Update a calendar event
// @Description Updates an event, re-checking unit availability when the dates or unit change.
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body dto.UpdateCalendarEventRequest true "Fields to update"
// @Success 200 {object} dto.CalendarEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Unit already booked for the span"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /calendar/events/{id} [put]
func (h *calendarHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateCalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	event, err := h.calendarService.UpdateEvent(c.Request.Context(), c.Param("id"), req, access, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update calendar event", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update event"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCalendarEventResponse(event))
}

// deleteEvent godoc
// @Summary Delete a calendar event
// @Tags calendar
// @Param id path string true "Event ID"
// @Success 204 "Event deleted"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /calendar/events/{id} [delete]
func (h *calendarHandler) deleteEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.calendarService.DeleteEvent(c.Request.Context(), c.Param("id"), access, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
			return
		}
		logger.Error("Failed to delete calendar event", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete event"})
		return
	}

	c.Status(http.StatusNoContent)
}
