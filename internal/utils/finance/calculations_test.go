package finance_test

import (
	"testing"
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
	"github.com/hostvana/property_management_app/internal/utils/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incomeTxn(date time.Time, amount string) domain.Transaction {
	return domain.Transaction{
		Type:   domain.TransactionIncome,
		Date:   date,
		Amount: decimal.RequireFromString(amount),
	}
}

func TestToUSD_TryConversion(t *testing.T) {
	original := decimal.RequireFromString("3539")
	txn := domain.Transaction{
		Amount:           decimal.RequireFromString("99.99"), // stale normalized value
		OriginalAmount:   &original,
		OriginalCurrency: domain.CurrencyTRY,
	}

	got := finance.ToUSD(txn)

	expected := decimal.RequireFromString("100")
	assert.True(t, got.Sub(expected).Abs().LessThan(decimal.RequireFromString("0.0001")),
		"expected ~100, got %s", got)
}

func TestToUSD_UsdPassthrough(t *testing.T) {
	txn := domain.Transaction{
		Amount:           decimal.RequireFromString("1200"),
		OriginalCurrency: domain.CurrencyUSD,
	}
	assert.True(t, finance.ToUSD(txn).Equal(decimal.RequireFromString("1200")))
}

func TestToUSD_PrefersOriginalAmount(t *testing.T) {
	original := decimal.RequireFromString("500")
	txn := domain.Transaction{
		Amount:           decimal.RequireFromString("450"), // stale
		OriginalAmount:   &original,
		OriginalCurrency: domain.CurrencyUSD,
	}
	assert.True(t, finance.ToUSD(txn).Equal(original))
}

func TestGrowthPercent(t *testing.T) {
	cases := []struct {
		name     string
		current  string
		previous string
		expected string
	}{
		{"both zero", "0", "0", "0"},
		{"fifty percent up", "150", "100", "50"},
		{"zero base", "100", "0", "0"},
		{"negative base", "100", "-50", "0"},
		{"decline", "50", "100", "-50"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := finance.GrowthPercent(
				decimal.RequireFromString(tc.current),
				decimal.RequireFromString(tc.previous),
			)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)),
				"expected %s, got %s", tc.expected, got)
		})
	}
}

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 0, finance.OccupancyRate(0, 0))
	assert.Equal(t, 50, finance.OccupancyRate(15, 30))
	assert.Equal(t, 100, finance.OccupancyRate(30, 30))
	assert.Equal(t, 33, finance.OccupancyRate(10, 30)) // rounded
}

func TestMonthlySeries_SingleRecentIncome(t *testing.T) {
	anchor := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	records := []domain.Transaction{
		incomeTxn(time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), "1200"),
	}

	series := finance.MonthlySeries(records, 6, anchor)

	require.Len(t, series, 6)
	for i := 0; i < 5; i++ {
		assert.True(t, series[i].Total.IsZero(), "bucket %d (%s) should be zero", i, series[i].Month)
	}
	assert.Equal(t, "Jun", series[5].Month)
	assert.True(t, series[5].Total.Equal(decimal.RequireFromString("1200")))
	assert.Equal(t, "Jan", series[0].Month)
}

func TestMonthlySeries_ExcludesExpensesAndOtherMonths(t *testing.T) {
	anchor := time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC)
	records := []domain.Transaction{
		incomeTxn(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), "300"),
		incomeTxn(time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC), "200"),
		incomeTxn(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), "999"), // outside 2-month window
		{
			Type:   domain.TransactionExpense,
			Date:   time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			Amount: decimal.RequireFromString("5000"),
		},
	}

	series := finance.MonthlySeries(records, 2, anchor)

	require.Len(t, series, 2)
	assert.Equal(t, "Feb", series[0].Month)
	assert.True(t, series[0].Total.Equal(decimal.RequireFromString("200")))
	assert.Equal(t, "Mar", series[1].Month)
	assert.True(t, series[1].Total.Equal(decimal.RequireFromString("300")))
}

func TestMonthlySeries_MixedCurrencies(t *testing.T) {
	anchor := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	tryAmount := decimal.RequireFromString("3539")
	records := []domain.Transaction{
		incomeTxn(time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), "100"),
		{
			Type:             domain.TransactionIncome,
			Date:             time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
			Amount:           decimal.RequireFromString("100"),
			OriginalAmount:   &tryAmount,
			OriginalCurrency: domain.CurrencyTRY,
		},
	}

	series := finance.MonthlySeries(records, 1, anchor)

	require.Len(t, series, 1)
	expected := decimal.RequireFromString("200")
	assert.True(t, series[0].Total.Sub(expected).Abs().LessThan(decimal.RequireFromString("0.0001")),
		"expected ~200, got %s", series[0].Total)
}

func TestBookedNights(t *testing.T) {
	from := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.May, 31, 23, 59, 59, 0, time.UTC)

	events := []domain.CalendarEvent{
		{
			StartDate: time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.May, 14, 0, 0, 0, 0, time.UTC),
			Status:    domain.EventConfirmed,
		},
		{
			// same-day span counts as one night
			StartDate: time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC),
			Status:    domain.EventPending,
		},
		{
			// cancelled events are excluded
			StartDate: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC),
			Status:    domain.EventCancelled,
		},
		{
			// outside the window
			StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
			Status:    domain.EventConfirmed,
		},
	}

	assert.Equal(t, 6, finance.BookedNights(events, from, to))
}

func TestAverageStayNights(t *testing.T) {
	assert.Equal(t, 0, finance.AverageStayNights(nil))

	events := []domain.CalendarEvent{
		{
			StartDate: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC),
			Status:    domain.EventConfirmed,
		},
		{
			StartDate: time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.May, 14, 0, 0, 0, 0, time.UTC),
			Status:    domain.EventConfirmed,
		},
	}
	assert.Equal(t, 4, finance.AverageStayNights(events))
}

func TestMonthWindowAndDaysInMonth(t *testing.T) {
	start, end := finance.MonthWindow(time.Date(2025, time.February, 14, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.February, end.Month())
	assert.Equal(t, 28, end.Day())
	assert.Equal(t, 28, finance.DaysInMonth(start))
	assert.Equal(t, 31, finance.DaysInMonth(time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)))
}
