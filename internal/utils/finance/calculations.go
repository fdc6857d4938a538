package finance

import (
	"math"
	"time"

	"github.com/hostvana/property_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UsdTryRate is the fixed USD/TRY conversion rate used to normalize TRY
// entries to USD. This is a deliberate precision trade-off: the back office
// keeps a single pinned rate instead of a live feed, so normalized totals
// drift from market rates between manual updates.
var UsdTryRate = decimal.RequireFromString("35.39")

// ToUSD returns the USD value of a transaction. The original entry amount is
// preferred over the stored normalized amount when present, because the
// stored amount may be stale relative to a corrected original. TRY amounts
// are divided by the pinned rate; anything else passes through.
func ToUSD(txn domain.Transaction) decimal.Decimal {
	amount := txn.Amount
	if txn.OriginalAmount != nil {
		amount = *txn.OriginalAmount
	}
	if txn.OriginalCurrency == domain.CurrencyTRY {
		return amount.Div(UsdTryRate)
	}
	return amount
}

// NormalizeAmount converts an entry amount in the given currency to USD.
func NormalizeAmount(amount decimal.Decimal, currency domain.Currency) decimal.Decimal {
	if currency == domain.CurrencyTRY {
		return amount.Div(UsdTryRate)
	}
	return amount
}

// MonthlySeries buckets income-type transactions into monthCount consecutive
// calendar months ending at anchor's month, oldest first. Each bucket total
// is the sum of ToUSD over records whose date falls within that calendar
// month, inclusive of both boundary timestamps.
func MonthlySeries(records []domain.Transaction, monthCount int, anchor time.Time) []domain.MonthlyAmount {
	if monthCount <= 0 {
		return []domain.MonthlyAmount{}
	}

	series := make([]domain.MonthlyAmount, 0, monthCount)
	for i := monthCount - 1; i >= 0; i-- {
		monthStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location()).AddDate(0, -i, 0)

		total := decimal.Zero
		for _, txn := range records {
			if txn.Type != domain.TransactionIncome {
				continue
			}
			d := txn.Date
			if d.Year() == monthStart.Year() && d.Month() == monthStart.Month() {
				total = total.Add(ToUSD(txn))
			}
		}

		series = append(series, domain.MonthlyAmount{
			Month: monthStart.Format("Jan"),
			Total: total,
		})
	}
	return series
}

// GrowthPercent returns ((current - previous) / previous) * 100, defined as
// zero when previous is zero or negative. The zero policy is deliberate: a
// month with no base produces "no growth", never Inf or NaN.
func GrowthPercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// OccupancyRate returns round(booked/totalPossible*100), or zero when there
// are no possible nights.
func OccupancyRate(bookedNights, totalPossibleNights int) int {
	if totalPossibleNights <= 0 {
		return 0
	}
	return int(math.Round(float64(bookedNights) / float64(totalPossibleNights) * 100))
}

// BookedNights sums the night-inclusive span of every non-cancelled event
// overlapping [from, to]. A same-day start/end event counts as one night.
// Overlapping events on the same unit double-count their nights; callers
// that need de-duplicated occupancy must merge spans first.
func BookedNights(events []domain.CalendarEvent, from, to time.Time) int {
	nights := 0
	for _, e := range events {
		if e.Status == domain.EventCancelled {
			continue
		}
		if !e.Overlaps(from, to) {
			continue
		}
		nights += e.Nights()
	}
	return nights
}

// AverageStayNights returns the mean night span of the non-cancelled events,
// rounded to the nearest whole night. Zero events yield zero.
func AverageStayNights(events []domain.CalendarEvent) int {
	total, count := 0, 0
	for _, e := range events {
		if e.Status == domain.EventCancelled {
			continue
		}
		total += e.Nights()
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}

// MonthWindow returns the inclusive bounds of t's calendar month: midnight on
// the first day through the last instant of the last day.
func MonthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// DaysInMonth returns the number of days in t's calendar month.
func DaysInMonth(t time.Time) int {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start.AddDate(0, 1, -1).Day()
}
