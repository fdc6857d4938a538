package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostvana/property_management_app/internal/apperrors"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/dto"
	"github.com/hostvana/property_management_app/internal/middleware"
)

// userHandler handles the self-service profile routes.
type userHandler struct {
	userService   portssvc.UserSvcFacade
	accessControl portssvc.AccessControlSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade, ac portssvc.AccessControlSvcFacade) *userHandler {
	return &userHandler{userService: us, accessControl: ac}
}

// registerUserRoutes registers the /me routes. Role and the admin approval
// flag are not editable here; they only change through the approval workflow.
func registerUserRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade, ac portssvc.AccessControlSvcFacade) {
	h := newUserHandler(us, ac)

	me := rg.Group("/me")
	{
		me.GET("", h.getMe)
		me.PUT("", h.updateMe)
		me.GET("/permissions", h.getMyPermissions)
		me.DELETE("", h.deleteMe)
	}
}

// getMe godoc
// @Summary Get the calling user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *userHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
			return
		}
		logger.Error("Failed to load profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateMe godoc
// @Summary Update the calling user's profile
// @Description Only company name and phone are editable.
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [put]
func (h *userHandler) updateMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
			return
		}
		logger.Error("Failed to update profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getMyPermissions godoc
// @Summary Get the calling user's resolved RBAC state
// @Description Resolves role, admin capability and the permission set, retrying transient store failures. Exhausted retries answer 503, never a permissive default.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.PermissionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Permissions could not be resolved"
// @Security BearerAuth
// @Router /me/permissions [get]
func (h *userHandler) getMyPermissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resolution, err := h.accessControl.Resolve(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPermissionsUnavailable) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Failed to load permissions. Please refresh the page."})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have permission to perform this action"})
			return
		}
		logger.Error("Failed to resolve permissions", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Failed to load permissions. Please refresh the page."})
		return
	}

	c.JSON(http.StatusOK, dto.ToPermissionsResponse(resolution))
}

// deleteMe godoc
// @Summary Delete the calling user's account
// @Description Soft-deletes the account; the row is retained for audit.
// @Tags profile
// @Success 204 "Account deleted"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [delete]
func (h *userHandler) deleteMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
			return
		}
		logger.Error("Failed to delete account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete account"})
		return
	}

	c.Status(http.StatusNoContent)
}
