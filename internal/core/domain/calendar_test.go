package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hostvana/property_management_app/internal/core/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendarEvent_Nights(t *testing.T) {
	tests := []struct {
		name  string
		event domain.CalendarEvent
		want  int
	}{
		{
			name:  "same-day span counts one night",
			event: domain.CalendarEvent{StartDate: day(2026, time.March, 14), EndDate: day(2026, time.March, 14)},
			want:  1,
		},
		{
			name:  "multi-day span is inclusive on both ends",
			event: domain.CalendarEvent{StartDate: day(2026, time.March, 10), EndDate: day(2026, time.March, 14)},
			want:  5,
		},
		{
			name:  "end before start yields zero",
			event: domain.CalendarEvent{StartDate: day(2026, time.March, 14), EndDate: day(2026, time.March, 10)},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Nights())
		})
	}
}

func TestCalendarEvent_Overlaps(t *testing.T) {
	event := domain.CalendarEvent{
		StartDate: day(2026, time.March, 10),
		EndDate:   day(2026, time.March, 14),
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want bool
	}{
		{"fully inside", day(2026, time.March, 11), day(2026, time.March, 13), true},
		{"fully covering", day(2026, time.March, 1), day(2026, time.March, 31), true},
		{"touching start boundary", day(2026, time.March, 5), day(2026, time.March, 10), true},
		{"touching end boundary", day(2026, time.March, 14), day(2026, time.March, 20), true},
		{"before", day(2026, time.March, 1), day(2026, time.March, 9), false},
		{"after", day(2026, time.March, 15), day(2026, time.March, 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, event.Overlaps(tt.from, tt.to))
		})
	}
}
