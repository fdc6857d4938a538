package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hostvana/property_management_app/cmd/docs"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/middleware"
	"github.com/hostvana/property_management_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", GetHome)

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, services.User, services.AccessControl)
	registerPropertyRoutes(v1, services.Property, services.AccessControl)
	registerTransactionRoutes(v1, services.Transaction, services.AccessControl)
	registerLeadRoutes(v1, services.Lead, services.Message, services.AccessControl)
	registerCalendarRoutes(v1, services.Calendar, services.AccessControl)
	registerReportingRoutes(v1, services.Dashboard, services.Analytics, services.AccessControl)
	registerNotificationRoutes(v1, services.Notification)
	registerSupportRoutes(v1, services.Support)
	registerAdminRoutes(v1, services)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// requestIdentity pulls the authenticated user ID and the RBAC resolution
// stored by the gate middleware from the request context. On routes without
// an RBAC gate the resolution is the zero value, which denies everything
// beyond the caller's own rows.
func requestIdentity(c *gin.Context) (string, domain.AccessResolution, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return "", domain.AccessResolution{}, false
	}
	access, _ := middleware.GetAccessResolutionFromContext(c)
	return userID, access, true
}
