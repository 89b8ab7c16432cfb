package service

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestCalculateProratedRent(t *testing.T) {
	assert.Equal(t, 1100.0, CalculateProratedRent(3000, 20, 30))
	// Starting on the 1st charges the whole month.
	assert.Equal(t, 3100.0, CalculateProratedRent(3100, 1, 31))
	// Starting on the last day charges one day.
	assert.Equal(t, 100.0, CalculateProratedRent(3000, 30, 30))
}

func TestDetermineFirstPaymentDate(t *testing.T) {
	tests := []struct {
		name     string
		landlord civil.Date
		want     civil.Date
	}{
		{"early in month", civil.Date{Year: 2025, Month: time.June, Day: 10}, civil.Date{Year: 2025, Month: time.June, Day: 25}},
		{"late in month", civil.Date{Year: 2025, Month: time.June, Day: 20}, civil.Date{Year: 2025, Month: time.July, Day: 25}},
		{"day 14 stays", civil.Date{Year: 2025, Month: time.June, Day: 14}, civil.Date{Year: 2025, Month: time.June, Day: 25}},
		{"day 15 rolls", civil.Date{Year: 2025, Month: time.June, Day: 15}, civil.Date{Year: 2025, Month: time.July, Day: 25}},
		{"december rolls year", civil.Date{Year: 2025, Month: time.December, Day: 28}, civil.Date{Year: 2026, Month: time.January, Day: 25}},
		{"first of month", civil.Date{Year: 2024, Month: time.February, Day: 1}, civil.Date{Year: 2024, Month: time.February, Day: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineFirstPaymentDate(tt.landlord))
		})
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2025, time.January))
	assert.Equal(t, 28, DaysIn(2025, time.February))
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 30, DaysIn(2025, time.April))
	assert.Equal(t, 31, DaysIn(2025, time.December))
}

func TestProratedFirstMonth(t *testing.T) {
	before := civil.Date{Year: 2025, Month: time.July, Day: 14}
	after := civil.Date{Year: 2025, Month: time.July, Day: 20}

	assert.False(t, RequiresProration(before))
	assert.Zero(t, ProratedFirstMonth(3100, before))

	assert.True(t, RequiresProration(after))
	// July has 31 days: 12 days remaining at 100 a day.
	assert.InDelta(t, 1200.0, ProratedFirstMonth(3100, after), 1e-9)
}
