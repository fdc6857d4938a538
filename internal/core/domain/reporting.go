package domain

import "github.com/shopspring/decimal"

// MonthlyAmount is one bucket of a monthly income series.
type MonthlyAmount struct {
	Month string          `json:"month"` // short month label, e.g. "Jan"
	Total decimal.Decimal `json:"total"` // USD
}

// DashboardStats is the data behind the portfolio overview screen.
type DashboardStats struct {
	TotalProperties   int             `json:"totalProperties"`
	OccupancyRate     int             `json:"occupancyRate"` // percent, current month
	BookedNights      int             `json:"bookedNights"`
	AvailableNights   int             `json:"availableNights"`
	MonthlyIncome     decimal.Decimal `json:"monthlyIncome"` // current month, USD
	MonthlyIncomeData []MonthlyAmount `json:"monthlyIncomeData"`
}

// PropertyPerformance is a per-property row in the analytics report.
type PropertyPerformance struct {
	PropertyID string          `json:"propertyID"`
	Name       string          `json:"name"`
	Revenue    decimal.Decimal `json:"revenue"` // current month, USD
	Occupancy  int             `json:"occupancy"`
	Rating     float64         `json:"rating"`
}

// AnalyticsReport is the data behind the analytics overview screen.
type AnalyticsReport struct {
	TotalRevenue        decimal.Decimal       `json:"totalRevenue"` // 6-month window, USD
	RevenueGrowth       decimal.Decimal       `json:"revenueGrowth"`
	OccupancyRate       int                   `json:"occupancyRate"`
	OccupancyGrowth     decimal.Decimal       `json:"occupancyGrowth"`
	TotalBookings       int                   `json:"totalBookings"`
	BookingsGrowth      decimal.Decimal       `json:"bookingsGrowth"`
	AverageStayNights   int                   `json:"averageStayNights"`
	PropertyPerformance []PropertyPerformance `json:"propertyPerformance"`
	MonthlyRevenue      []MonthlyAmount       `json:"monthlyRevenue"`
}

// TransactionSummary is income/expense/net totals for a date range.
type TransactionSummary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Net           decimal.Decimal `json:"net"`
}
