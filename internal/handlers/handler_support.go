package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/dto"
	"github.com/hostvana/property_management_app/internal/middleware"
)

// supportHandler handles HTTP requests for help-desk requests.
type supportHandler struct {
	supportService portssvc.SupportSvcFacade
}

func newSupportHandler(ss portssvc.SupportSvcFacade) *supportHandler {
	return &supportHandler{supportService: ss}
}

// registerSupportRoutes registers the user-facing support routes. Resolution
// lives under the admin routes.
func registerSupportRoutes(rg *gin.RouterGroup, ss portssvc.SupportSvcFacade) {
	h := newSupportHandler(ss)

	support := rg.Group("/support")
	{
		support.POST("", h.createSupportRequest)
		support.GET("", h.listSupportRequests)
	}
}

// createSupportRequest godoc
// @Summary File a support request
// @Tags support
// @Accept json
// @Produce json
// @Param request body dto.CreateSupportRequest true "Request details"
// @Success 201 {object} dto.SupportRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /support [post]
func (h *supportHandler) createSupportRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	request, err := h.supportService.CreateSupportRequest(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to create support request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create support request"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSupportRequestResponse(request))
}

// listSupportRequests godoc
// @Summary List support requests
// @Description Lists the caller's requests; admins see every request.
// @Tags support
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.SupportRequestResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /support [get]
func (h *supportHandler) listSupportRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	// This route is not RBAC-gated; the zero-value resolution scopes the
	// list to the caller's own rows.
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
