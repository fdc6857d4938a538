package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hostvana/property_management_app/internal/core/domain"
	portsrepo "github.com/hostvana/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/utils/finance"
)

// analyticsWindowMonths is the trailing window for the analytics report.
const analyticsWindowMonths = 6

// dashboardWindowMonths is the income series length on the overview screen.
const dashboardWindowMonths = 12

// propertyPageSize is the batch size used when walking the full property
// table for admin-wide reports.
const propertyPageSize = 500

// reportingService implements both the dashboard and analytics facades. All
// money math is delegated to the finance package so the aggregation policy
// (USD normalization, growth and occupancy edge cases) lives in one place.
type reportingService struct {
	BaseService
	propertyRepo    portsrepo.PropertyReader
	transactionRepo portsrepo.TransactionReader
	calendarRepo    portsrepo.CalendarReader
	now             func() time.Time
}

// ReportingOption configures the reporting service.
type ReportingOption func(*reportingService)

// WithReportingClock overrides the wall clock, used to pin report windows in tests.
func WithReportingClock(now func() time.Time) ReportingOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates the combined dashboard/analytics service.
func NewReportingService(propertyRepo portsrepo.PropertyReader, transactionRepo portsrepo.TransactionReader, calendarRepo portsrepo.CalendarReader, opts ...ReportingOption) *reportingService {
	s := &reportingService{
		propertyRepo:    propertyRepo,
		transactionRepo: transactionRepo,
		calendarRepo:    calendarRepo,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ portssvc.DashboardSvcFacade = (*reportingService)(nil)
	_ portssvc.AnalyticsSvcFacade = (*reportingService)(nil)
)

// GetDashboardStats aggregates the caller's portfolio into the current-month
// overview: property count, occupancy, booked/available nights, income.
func (s *reportingService) GetDashboardStats(ctx context.Context, access domain.AccessResolution, requestingUserID string) (domain.DashboardStats, error) {
	now := s.now()
	monthStart, monthEnd := finance.MonthWindow(now)

	properties, err := s.listProperties(ctx, access, requestingUserID)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	events, err := s.calendarRepo.FindEventsByOwner(ctx, requestingUserID)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to load calendar events: %w", err)
	}

	bookedNights := finance.BookedNights(events, monthStart, monthEnd)
	totalPossibleNights := totalUnitNights(properties, finance.DaysInMonth(now))
	availableNights := totalPossibleNights - bookedNights
	if availableNights < 0 {
		availableNights = 0
	}

	seriesStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(dashboardWindowMonths - 1), 0)
	txns, err := s.transactionRepo.FindTransactionsInRange(ctx, requestingUserID, seriesStart, monthEnd)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to load transactions: %w", err)
	}

	monthlyIncome := decimal.Zero
	for _, txn := range txns {
		if txn.Type != domain.TransactionIncome {
			continue
		}
		if txn.Date.Before(monthStart) || txn.Date.After(monthEnd) {
			continue
		}
		monthlyIncome = monthlyIncome.Add(finance.ToUSD(txn))
	}

	return domain.DashboardStats{
		TotalProperties:   len(properties),
		OccupancyRate:     finance.OccupancyRate(bookedNights, totalPossibleNights),
		BookedNights:      bookedNights,
		AvailableNights:   availableNights,
		MonthlyIncome:     monthlyIncome,
		MonthlyIncomeData: finance.MonthlySeries(txns, dashboardWindowMonths, now),
	}, nil
}

// GetAnalyticsReport aggregates revenue, occupancy and per-property
// performance over the trailing six month window. Growth figures compare the
// current month to the previous month.
func (s *reportingService) GetAnalyticsReport(ctx context.Context, access domain.AccessResolution, requestingUserID string) (domain.AnalyticsReport, error) {
	now := s.now()
	monthStart, monthEnd := finance.MonthWindow(now)
	prevMonthStart, prevMonthEnd := finance.MonthWindow(monthStart.AddDate(0, 0, -1))
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(analyticsWindowMonths - 1), 0)

	properties, err := s.listProperties(ctx, access, requestingUserID)
	if err != nil {
		return domain.AnalyticsReport{}, err
	}

	txns, err := s.transactionRepo.FindTransactionsInRange(ctx, requestingUserID, windowStart, monthEnd)
	if err != nil {
		return domain.AnalyticsReport{}, fmt.Errorf("failed to load transactions: %w", err)
	}

	events, err := s.calendarRepo.FindEventsByOwner(ctx, requestingUserID)
	if err != nil {
		return domain.AnalyticsReport{}, fmt.Errorf("failed to load calendar events: %w", err)
	}

	totalRevenue := decimal.Zero
	currentRevenue, previousRevenue := decimal.Zero, decimal.Zero
	for _, txn := range txns {
		if txn.Type != domain.TransactionIncome {
			continue
		}
		usd := finance.ToUSD(txn)
		totalRevenue = totalRevenue.Add(usd)
		if !txn.Date.Before(monthStart) && !txn.Date.After(monthEnd) {
			currentRevenue = currentRevenue.Add(usd)
		}
		if !txn.Date.Before(prevMonthStart) && !txn.Date.After(prevMonthEnd) {
			previousRevenue = previousRevenue.Add(usd)
		}
	}

	daysInMonth := finance.DaysInMonth(now)
	totalPossibleNights := totalUnitNights(properties, daysInMonth)
	bookedNights := finance.BookedNights(events, monthStart, monthEnd)
	prevBookedNights := finance.BookedNights(events, prevMonthStart, prevMonthEnd)
	prevPossibleNights := totalUnitNights(properties, finance.DaysInMonth(prevMonthStart))

	currentBookings, previousBookings := 0, 0
	for _, e := range events {
		if e.Status == domain.EventCancelled || e.EventType != domain.EventBooking {
			continue
		}
		if e.Overlaps(monthStart, monthEnd) {
			currentBookings++
		}
		if e.Overlaps(prevMonthStart, prevMonthEnd) {
			previousBookings++
		}
	}

	performance := make([]domain.PropertyPerformance, 0, len(properties))
	for _, property := range properties {
		propertyTxns, err := s.transactionRepo.FindTransactionsByProperty(ctx, property.PropertyID, monthStart, monthEnd)
		if err != nil {
			return domain.AnalyticsReport{}, fmt.Errorf("failed to load property transactions: %w", err)
		}
		revenue := decimal.Zero
		for _, txn := range propertyTxns {
			if txn.Type == domain.TransactionIncome {
				revenue = revenue.Add(finance.ToUSD(txn))
			}
		}

		propertyEvents, err := s.calendarRepo.FindEventsByProperty(ctx, property.PropertyID, monthStart, monthEnd)
		if err != nil {
			return domain.AnalyticsReport{}, fmt.Errorf("failed to load property events: %w", err)
		}
		propertyBooked := finance.BookedNights(propertyEvents, monthStart, monthEnd)

		performance = append(performance, domain.PropertyPerformance{
			PropertyID: property.PropertyID,
			Name:       property.Name,
			Revenue:    revenue,
			Occupancy:  finance.OccupancyRate(propertyBooked, property.UnitCount*daysInMonth),
			Rating:     property.Rating,
		})
	}

	return domain.AnalyticsReport{
		TotalRevenue:      totalRevenue,
		RevenueGrowth:     finance.GrowthPercent(currentRevenue, previousRevenue),
		OccupancyRate:     finance.OccupancyRate(bookedNights, totalPossibleNights),
		OccupancyGrowth:   occupancyGrowth(bookedNights, totalPossibleNights, prevBookedNights, prevPossibleNights),
		TotalBookings:     currentBookings,
		BookingsGrowth:    finance.GrowthPercent(decimal.NewFromInt(int64(currentBookings)), decimal.NewFromInt(int64(previousBookings))),
		AverageStayNights: finance.AverageStayNights(events),

		PropertyPerformance: performance,
		MonthlyRevenue:      finance.MonthlySeries(txns, analyticsWindowMonths, now),
	}, nil
}

func (s *reportingService) listProperties(ctx context.Context, access domain.AccessResolution, requestingUserID string) ([]domain.Property, error) {
	if access.IsAdmin() {
		var properties []domain.Property
		for offset := 0; ; offset += propertyPageSize {
			page, err := s.propertyRepo.FindProperties(ctx, propertyPageSize, offset)
			if err != nil {
				return nil, fmt.Errorf("failed to load properties: %w", err)
			}
			properties = append(properties, page...)
			if len(page) < propertyPageSize {
				return properties, nil
			}
		}
	}
	properties, err := s.propertyRepo.FindPropertiesByOwner(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}
	return properties, nil
}

func totalUnitNights(properties []domain.Property, days int) int {
	total := 0
	for _, p := range properties {
		total += p.UnitCount * days
	}
	return total
}

func occupancyGrowth(booked, possible, prevBooked, prevPossible int) decimal.Decimal {
	current := decimal.NewFromInt(int64(finance.OccupancyRate(booked, possible)))
	previous := decimal.NewFromInt(int64(finance.OccupancyRate(prevBooked, prevPossible)))
	return finance.GrowthPercent(current, previous)
}
