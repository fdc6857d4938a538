package services

import (
	"context"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

// DashboardSvcFacade produces the portfolio overview numbers.
type DashboardSvcFacade interface {
	// GetDashboardStats aggregates the caller's properties, bookings and
	// income into the current-month overview.
	GetDashboardStats(ctx context.Context, access domain.AccessResolution, requestingUserID string) (domain.DashboardStats, error)
}

// AnalyticsSvcFacade produces the analytics overview report.
type AnalyticsSvcFacade interface {
	// GetAnalyticsReport aggregates revenue, occupancy and per-property
	// performance over a trailing six month window.
	GetAnalyticsReport(ctx context.Context, access domain.AccessResolution, requestingUserID string) (domain.AnalyticsReport, error)
}
