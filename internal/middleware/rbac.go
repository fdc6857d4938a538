package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostvana/property_management_app/internal/apperrors"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
)

// Messages shown to the client for the two distinct denial modes. A failed
// resolution must read differently from a real denial: the first is "we could
// not find out", the second is "we found out and the answer is no".
const (
	msgPermissionsUnavailable = "Failed to load permissions. Please refresh the page."
	msgForbidden              = "You do not have permission to perform this action"
)

// resolveAccess resolves RBAC state for the authenticated user and stores it
// in the request context. It aborts the request on failure; resolution always
// completes (success or fail-closed) before any capability check runs.
func resolveAccess(c *gin.Context, ac portssvc.AccessControlSvcFacade) bool {
	logger := GetLoggerFromCtx(c.Request.Context())

	userID, ok := GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context for RBAC resolution")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return false
	}

	resolution, err := ac.Resolve(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPermissionsUnavailable) {
			logger.Error("RBAC resolution failed after retries, denying access")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": msgPermissionsUnavailable})
			return false
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			// Identity exists but has no profile row; deny rather than error.
			logger.Warn("No profile found for authenticated user")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msgForbidden})
			return false
		}
		logger.Error("Unexpected RBAC resolution error", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": msgPermissionsUnavailable})
		return false
	}

	ctx := context.WithValue(c.Request.Context(), accessResolutionKey, resolution)
	c.Request = c.Request.WithContext(ctx)
	return true
}

// RequirePermission gates a route on an exact (action, resource) grant for
// the caller's resolved role. Denies with 403 on a missing grant and 503 when
// permissions could not be resolved at all; never fails open.
func RequirePermission(ac portssvc.AccessControlSvcFacade, action, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !resolveAccess(c, ac) {
			return
		}
		resolution, _ := GetAccessResolutionFromContext(c)
		if !resolution.Can(action, resource) {
			logger := GetLoggerFromCtx(c.Request.Context())
			logger.Warn("Permission denied",
				slog.String("action", action),
				slog.String("resource", resource),
				slog.String("role", string(resolution.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msgForbidden})
			return
		}
		c.Next()
	}
}

// RequireAdmin gates a route on admin capability: resolved role admin AND the
// approval flag. A declared-but-unapproved admin is denied.
func RequireAdmin(ac portssvc.AccessControlSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !resolveAccess(c, ac) {
			return
		}
		resolution, _ := GetAccessResolutionFromContext(c)
		if !resolution.IsAdmin() {
			logger := GetLoggerFromCtx(c.Request.Context())
			logger.Warn("Admin capability denied", slog.String("role", string(resolution.Role)),
				slog.Bool("approved", resolution.IsAdminApproved))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msgForbidden})
			return
		}
		c.Next()
	}
}
