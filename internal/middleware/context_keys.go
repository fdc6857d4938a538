package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// accessResolutionKey is the key used to store the resolved RBAC state for the request.
const accessResolutionKey = contextKey("accessResolution")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetAccessResolutionFromContext retrieves the RBAC resolution stored by the
// RBAC middleware. The boolean is false when no resolution was performed for
// this request; callers must treat that as deny.
func GetAccessResolutionFromContext(c *gin.Context) (domain.AccessResolution, bool) {
	val := c.Request.Context().Value(accessResolutionKey)
	if val == nil {
		return domain.AccessResolution{}, false
	}
	res, ok := val.(domain.AccessResolution)
	return res, ok
}
