package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostvana/property_management_app/internal/core/domain"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/dto"
	"github.com/hostvana/property_management_app/internal/middleware"
)

// reportingHandler serves the dashboard and analytics screens.
type reportingHandler struct {
	dashboardService portssvc.DashboardSvcFacade
	analyticsService portssvc.AnalyticsSvcFacade
}

func newReportingHandler(ds portssvc.DashboardSvcFacade, as portssvc.AnalyticsSvcFacade) *reportingHandler {
	return &reportingHandler{dashboardService: ds, analyticsService: as}
}

// registerReportingRoutes registers the dashboard and analytics routes.
func registerReportingRoutes(rg *gin.RouterGroup, ds portssvc.DashboardSvcFacade, as portssvc.AnalyticsSvcFacade, ac portssvc.AccessControlSvcFacade) {
	h := newReportingHandler(ds, as)

	rg.GET("/dashboard", middleware.RequirePermission(ac, domain.ActionRead, domain.ResourceDashboard), h.getDashboard)
	rg.GET("/analytics", middleware.RequirePermission(ac, domain.ActionRead, domain.ResourceAnalytics), h.getAnalytics)
}

// getDashboard godoc
// @Summary Get the portfolio overview
// @Description Aggregates property count, current-month occupancy, booked and available nights, current-month income and the trailing income series.
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context(), access, userID)
	if err != nil {
		logger.Error("Failed to build dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(stats))
}

// getAnalytics godoc
// @Summary Get the analytics report
// @Description Aggregates revenue, occupancy, bookings and per-property performance over a trailing six month window with month-over-month growth.
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics [get]
func (h *reportingHandler) getAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.analyticsService.GetAnalyticsReport(c.Request.Context(), access, userID)
	if err != nil {
		logger.Error("Failed to build analytics report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load analytics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(report))
}
