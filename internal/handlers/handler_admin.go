package handlers

import (
	"context"
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

// adminHandler handles the back-office administration routes: the admin
// approval workflow, owner account creation and help-desk resolution.
type adminHandler struct {
	adminApprovalService portssvc.AdminApprovalSvcFacade
	userService          portssvc.UserSvcFacade
	supportService       portssvc.SupportSvcFacade
}

func newAdminHandler(as portssvc.AdminApprovalSvcFacade, us portssvc.UserSvcFacade, ss portssvc.SupportSvcFacade) *adminHandler {
	return &adminHandler{
		adminApprovalService: as,
		userService:          us,
		supportService:       ss,
	}
}

// registerAdminRoutes registers routes that require admin capability. The
// RequireAdmin gate demands both the declared role and the approval flag.
func registerAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAdminHandler(services.AdminApproval, services.User, services.Support)

	admin := rg.Group("/admin", middleware.RequireAdmin(services.AccessControl))
	{
		admin.GET("/requests", h.listAdminRequests)
		admin.POST("/requests/:id/approve", h.approveAdminRequest)
		admin.POST("/requests/:id/reject", h.rejectAdminRequest)
		admin.POST("/owners", h.createOwner)
		admin.GET("/users", h.listUsers)
		admin.GET("/support", h.listAllSupportRequests)
		admin.PUT("/support/:id", h.resolveSupportRequest)
	}
}

// listAdminRequests godoc
// @Summary List admin approval requests
// @Description Lists approval requests in a status, oldest first. Defaults to pending.
// @Tags admin
// @Produce json
// @Param status query string false "Request status" Enums(pending, approved, rejected) default(pending)
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.AdminRequestResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/requests [get]
func (h *adminHandler) listAdminRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAdminRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	requests, err := h.adminApprovalService.ListRequests(c.Request.Context(), domain.AdminRequestStatus(params.Status), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list admin requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list admin requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAdminRequestsResponse(requests))
}

// approveAdminRequest godoc
// @Summary Approve an admin access request
// @Description Flips the subject profile's admin approval flag, marks the request approved and notifies the user.
// @Tags admin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.AdminRequestResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already decided"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/requests/{id}/approve [post]
func (h *adminHandler) approveAdminRequest(c *gin.Context) {
	h.decideAdminRequest(c, h.adminApprovalService.ApproveRequest)
}

// rejectAdminRequest godoc
// @Summary Reject an admin access request
// @Description Marks the request rejected; the subject keeps the declared role without admin capability.
// @Tags admin
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.AdminRequestResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already decided"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/requests/{id}/reject [post]
func (h *adminHandler) rejectAdminRequest(c *gin.Context) {
	h.decideAdminRequest(c, h.adminApprovalService.RejectRequest)
}

// decideAdminRequest is the shared body of the approve and reject handlers.
func (h *adminHandler) decideAdminRequest(c *gin.Context, decide func(ctx context.Context, requestID, decidedBy string) (*domain.AdminRequest, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	decidedBy, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	request, err := decide(c.Request.Context(), c.Param("id"), decidedBy)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Request not found"})
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Request already decided"})
			return
		}
		logger.Error("Failed to decide admin request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to decide admin request"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminRequestResponse(request))
}

// createOwner godoc
// @Summary Create an owner account
// @Description Creates an owner account on someone's behalf. The account is created with the owner role and no admin capability.
// @Tags admin
// @Accept json
// @Produce json
// @Param owner body dto.CreateOwnerRequest true "Owner account details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/owners [post]
func (h *adminHandler) createOwner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), dto.RegisterRequest{
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
		Phone:       req.Phone,
		Role:        string(domain.RoleOwner),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create owner account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create owner account"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List user accounts
// @Tags admin
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// listAllSupportRequests godoc
// @Summary List all support requests
// @Tags admin
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.SupportRequestResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/support [get]
func (h *adminHandler) listAllSupportRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	requests, err := h.supportService.ListSupportRequests(c.Request.Context(), access, userID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list support requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list support requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSupportRequestsResponse(requests))
}

// resolveSupportRequest godoc
// @Summary Update a support request's status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Support request ID"
// @Param status body dto.UpdateSupportStatusRequest true "New status"
// @Success 200 {object} dto.SupportRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/support/{id} [put]
func (h *adminHandler) resolveSupportRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSupportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	request, err := h.supportService.ResolveSupportRequest(c.Request.Context(), c.Param("id"), domain.SupportRequestStatus(req.Status))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Support request not found"})
			return
		}
		logger.Error("Failed to update support request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update support request"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSupportRequestResponse(request))
}
