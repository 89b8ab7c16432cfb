package service

import (
	"time"

	"cloud.google.com/go/civil"
)

// CalculateProratedRent charges rent for the days from startDay to the end of
// the month, both inclusive.
func CalculateProratedRent(monthlyRent float64, startDay, daysInMonth int) float64 {
	dailyRent := monthlyRent / float64(daysInMonth)
	daysRemaining := daysInMonth - startDay + 1
	return dailyRent * float64(daysRemaining)
}

// DetermineFirstPaymentDate returns the 25th of the landlord payment month
// when the landlord is paid on or before the 14th, otherwise the 25th of the
// following month.
func DetermineFirstPaymentDate(landlordPaymentDate civil.Date) civil.Date {
	month := landlordPaymentDate.Month
	if landlordPaymentDate.Day >= ProrationCutoffDay {
		month++
	}
	// time.Date normalises month 13 into January of the next year.
	t := time.Date(landlordPaymentDate.Year, month, FirstPaymentDay, 0, 0, 0, 0, time.UTC)
	return civil.DateOf(t)
}

// RequiresProration reports whether a partial first month is charged for a
// landlord paid on date.
func RequiresProration(landlordPaymentDate civil.Date) bool {
	return landlordPaymentDate.Day >= ProrationCutoffDay
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ProratedFirstMonth returns the prorated rent owed for the landlord payment
// month, or 0 when the landlord is paid before the cutoff.
func ProratedFirstMonth(monthlyRent float64, landlordPaymentDate civil.Date) float64 {
	if !RequiresProration(landlordPaymentDate) {
		return 0
	}
	days := DaysIn(landlordPaymentDate.Year, landlordPaymentDate.Month)
	return CalculateProratedRent(monthlyRent, landlordPaymentDate.Day, days)
}
