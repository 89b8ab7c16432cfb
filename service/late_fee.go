package service

import "time"

// LateFeeRate maps the current day of the month to a penalty rate.
//
//	25–31, 1–5  on time
//	6–12        10%
//	13–18       15%
//	19–24       25%
//
// Days outside 1–31 fall through to 0.
func LateFeeRate(dayOfMonth int) float64 {
	switch {
	case dayOfMonth >= PaymentWindowStartDay || dayOfMonth <= PaymentWindowEndDay:
		return 0
	case dayOfMonth >= 6 && dayOfMonth <= 12:
		return 0.10
	case dayOfMonth >= 13 && dayOfMonth <= 18:
		return 0.15
	case dayOfMonth >= 19 && dayOfMonth <= 24:
		return 0.25
	}
	return 0
}

// CalculateLatePaymentFee returns the penalty owed on amount when paying on
// dayOfMonth. dayOfMonth is today's day, not the due date.
func CalculateLatePaymentFee(amount float64, dayOfMonth int) float64 {
	rate := LateFeeRate(dayOfMonth)
	if rate == 0 {
		return 0
	}
	return amount * rate
}

// LatePaymentFeeOn is CalculateLatePaymentFee for the day of t.
func LatePaymentFeeOn(amount float64, t time.Time) float64 {
	return CalculateLatePaymentFee(amount, t.Day())
}

// IsWithinPaymentWindow reports whether a payment made on dayOfMonth falls in
// the 25th-to-5th window.
func IsWithinPaymentWindow(dayOfMonth int) bool {
	return dayOfMonth >= PaymentWindowStartDay || dayOfMonth <= PaymentWindowEndDay
}
