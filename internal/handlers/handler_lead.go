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

// leadHandler handles HTTP requests related to leads.
type leadHandler struct {
	leadService portssvc.LeadSvcFacade
}

func newLeadHandler(ls portssvc.LeadSvcFacade) *leadHandler {
	return &leadHandler{leadService: ls}
}

// registerLeadRoutes registers routes related to leads and their discussion
// threads.
func registerLeadRoutes(rg *gin.RouterGroup, ls portssvc.LeadSvcFacade, ms portssvc.MessageSvcFacade, ac portssvc.AccessControlSvcFacade) {
	h := newLeadHandler(ls)

	leads := rg.Group("/leads")
	{
		leads.POST("", middleware.RequirePermission(ac, domain.ActionCreate, domain.ResourceLeads), h.createLead)
		leads.GET("", middleware.RequirePermission(ac, domain.ActionRead, domain.ResourceLeads), h.listLeads)
		leads.GET("/:id", middleware.RequirePermission(ac, domain.ActionRead, domain.ResourceLeads), h.getLead)
		leads.PUT("/:id", middleware.RequirePermission(ac, domain.ActionUpdate, domain.ResourceLeads), h.updateLead)
		leads.DELETE("/:id", middleware.RequirePermission(ac, domain.ActionDelete, domain.ResourceLeads), h.deleteLead)
	}

	registerMessageRoutes(leads, ms, ac)
}

// createLead godoc
// @Summary Create a lead
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body dto.CreateLeadRequest true "Lead details"
// @Success 201 {object} dto.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads [post]
func (h *leadHandler) createLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create lead", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create lead"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToLeadResponse(lead))
}

// listLeads godoc
// @Summary List leads
// @Description Lists the caller's leads; admins see every lead.
// @Tags leads
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.LeadResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads [get]
func (h *leadHandler) listLeads(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListLeadsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	leads, err := h.leadService.ListLeads(c.Request.Context(), access, userID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list leads", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list leads"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLeadsResponse(leads))
}

// getLead godoc
// @Summary Get a lead by ID
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} dto.LeadResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *leadHandler) getLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	lead, err := h.leadService.GetLeadByID(c.Request.Context(), c.Param("id"), access, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
			return
		}
		logger.Error("Failed to get lead", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get lead"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

// updateLead godoc
// @Summary Update a lead
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param lead body dto.UpdateLeadRequest true "Fields to update"
// @Success 200 {object} dto.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/{id} [put]
func (h *leadHandler) updateLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), c.Param("id"), req, access, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update lead", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update lead"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

// deleteLead godoc
// @Summary Delete a lead
// @Tags leads
// @Param id path string true "Lead ID"
// @Success 204 "Lead deleted"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/{id} [delete]
func (h *leadHandler) deleteLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.leadService.DeleteLead(c.Request.Context(), c.Param("id"), access, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
			return
		}
		logger.Error("Failed to delete lead", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete lead"})
		return
	}

	c.Status(http.StatusNoContent)
}
