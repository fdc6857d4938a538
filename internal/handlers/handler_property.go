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

// propertyHandler handles HTTP requests related to properties.
type propertyHandler struct {
	propertyService portssvc.PropertySvcFacade
}

func newPropertyHandler(ps portssvc.PropertySvcFacade) *propertyHandler {
	return &propertyHandler{propertyService: ps}
}

// registerPropertyRoutes registers routes related to properties. Every route
// is gated on the matching (action, resource) grant; listing stays
// owner-scoped inside the service, admins see all rows.
func registerPropertyRoutes(rg *gin.RouterGroup, ps portssvc.PropertySvcFacade, ac portssvc.AccessControlSvcFacade) {
	h := newPropertyHandler(ps)

	properties := rg.Group("/properties")
	{
		properties.POST("", middleware.RequirePermission(ac, domain.ActionCreate, domain.ResourceProperties), h.createProperty)
		properties.GET("", middleware.RequirePermission(ac, domain.ActionRead, domain.ResourceProperties), h.listProperties)
		properties.GET("/:id", middleware.RequirePermission(ac, domain.ActionRead, domain.ResourceProperties), h.getProperty)
		properties.PUT("/:id", middleware.RequirePermission(ac, domain.ActionUpdate, domain.ResourceProperties), h.updateProperty)
		properties.DELETE("/:id", middleware.RequirePermission(ac, domain.ActionDelete, domain.ResourceProperties), h.deleteProperty)
	}
}

// createProperty godoc
// @Summary Create a property
// @Description Creates a property owned by the caller. The nightly rate is normalized to USD at write time.
// @Tags properties
// @Accept json
// @Produce json
// @Param property body dto.CreatePropertyRequest true "Property details"
// @Success 201 {object} dto.PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /properties [post]
func (h *propertyHandler) createProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	property, err := h.propertyService.CreateProperty(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create property", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPropertyResponse(property))
}

// listProperties godoc
// @Summary List properties
// @Description Lists the caller's properties; admins see every property.
// @Tags properties
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.PropertyResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /properties [get]
func (h *propertyHandler) listProperties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListPropertiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	properties, err := h.propertyService.ListProperties(c.Request.Context(), access, userID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list properties", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list properties"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPropertiesResponse(properties))
}

// getProperty godoc
// @Summary Get a property by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} dto.PropertyResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /properties/{id} [get]
func (h *propertyHandler) getProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	property, err := h.propertyService.GetPropertyByID(c.Request.Context(), c.Param("id"), access, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Property not found"})
			return
		}
		logger.Error("Failed to get property", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get property"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// updateProperty godoc
// @Summary Update a property
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param property body dto.UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} dto.PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /properties/{id} [put]
func (h *propertyHandler) updateProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	property, err := h.propertyService.UpdateProperty(c.Request.Context(), c.Param("id"), req, access, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Property not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update property", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update property"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// deleteProperty godoc
// @Summary Delete a property
// @Tags properties
// @Param id path string true "Property ID"
// @Success 204 "Property deleted"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /properties/{id} [delete]
func (h *propertyHandler) deleteProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.propertyService.DeleteProperty(c.Request.Context(), c.Param("id"), access, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Property not found"})
			return
		}
		logger.Error("Failed to delete property", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete property"})
		return
	}

	c.Status(http.StatusNoContent)
}
