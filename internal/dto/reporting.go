package dto

import (
	"github.com/hostvana/property_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyAmountResponse is one bucket of a monthly income series.
type MonthlyAmountResponse struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// DashboardResponse is the data behind the portfolio overview screen.
type DashboardResponse struct {
	TotalProperties   int                     `json:"totalProperties"`
	OccupancyRate     int                     `json:"occupancyRate"`
	BookedNights      int                     `json:"bookedNights"`
	AvailableNights   int                     `json:"availableNights"`
	MonthlyIncome     decimal.Decimal         `json:"monthlyIncome"`
	MonthlyIncomeData []MonthlyAmountResponse `json:"monthlyIncomeData"`
}

// ToDashboardResponse converts domain.DashboardStats to its response DTO
func ToDashboardResponse(s domain.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalProperties:   s.TotalProperties,
		OccupancyRate:     s.OccupancyRate,
		BookedNights:      s.BookedNights,
		AvailableNights:   s.AvailableNights,
		MonthlyIncome:     s.MonthlyIncome,
		MonthlyIncomeData: toMonthlyAmounts(s.MonthlyIncomeData),
	}
}

// PropertyPerformanceResponse is a per-property row in the analytics report.
type PropertyPerformanceResponse struct {
	PropertyID string          `json:"propertyID"`
	Name       string          `json:"name"`
	Revenue    decimal.Decimal `json:"revenue"`
	Occupancy  int             `json:"occupancy"`
	Rating     float64         `json:"rating"`
}

// AnalyticsResponse is the data behind the analytics overview screen.
type AnalyticsResponse struct {
	TotalRevenue        decimal.Decimal               `json:"totalRevenue"`
	RevenueGrowth       decimal.Decimal               `json:"revenueGrowth"`
	OccupancyRate       int                           `json:"occupancyRate"`
	OccupancyGrowth     decimal.Decimal               `json:"occupancyGrowth"`
	TotalBookings       int                           `json:"totalBookings"`
	BookingsGrowth      decimal.Decimal               `json:"bookingsGrowth"`
	AverageStayNights   int                           `json:"averageStayNights"`
	PropertyPerformance []PropertyPerformanceResponse `json:"propertyPerformance"`
	MonthlyRevenue      []MonthlyAmountResponse       `json:"monthlyRevenue"`
}

// ToAnalyticsResponse converts domain.AnalyticsReport to its response DTO
func ToAnalyticsResponse(r domain.AnalyticsReport) AnalyticsResponse {
	perf := make([]PropertyPerformanceResponse, len(r.PropertyPerformance))
	for i, p := range r.PropertyPerformance {
		perf[i] = PropertyPerformanceResponse{
			PropertyID: p.PropertyID,
			Name:       p.Name,
			Revenue:    p.Revenue,
			Occupancy:  p.Occupancy,
			Rating:     p.Rating,
		}
	}
	return AnalyticsResponse{
		TotalRevenue:        r.TotalRevenue,
		RevenueGrowth:       r.RevenueGrowth,
		OccupancyRate:       r.OccupancyRate,
		OccupancyGrowth:     r.OccupancyGrowth,
		TotalBookings:       r.TotalBookings,
		BookingsGrowth:      r.BookingsGrowth,
		AverageStayNights:   r.AverageStayNights,
		PropertyPerformance: perf,
		MonthlyRevenue:      toMonthlyAmounts(r.MonthlyRevenue),
	}
}

func toMonthlyAmounts(data []domain.MonthlyAmount) []MonthlyAmountResponse {
	res := make([]MonthlyAmountResponse, len(data))
	for i, m := range data {
		res[i] = MonthlyAmountResponse{Month: m.Month, Total: m.Total}
	}
	return res
}
