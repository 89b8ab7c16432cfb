package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// FeeBreakdown is the set of one-time charges for one stage of an application.
// Total is computed when the breakdown is produced and equals the sum of the
// components populated for that stage.
type FeeBreakdown struct {
	ServiceFee                 float64 `json:"serviceFee"`
	DocumentUploadFee          float64 `json:"documentUploadFee,omitempty"`
	PropertyInspectionFee      float64 `json:"propertyInspectionFee,omitempty"`
	RefundableRentSecurity     float64 `json:"refundableRentSecurity,omitempty"`
	ProratedRent               float64 `json:"proratedRent,omitempty"`
	MonthlyInterest            float64 `json:"monthlyInterest,omitempty"`
	MonthlyPaymentWithInterest float64 `json:"monthlyPaymentWithInterest,omitempty"`
	Interest                   float64 `json:"interest,omitempty"` // full term, informational
	Total                      float64 `json:"total"`
}

type FeeInput struct {
	MonthlyRent float64 `json:"monthlyRent"`
	PaymentTerm int     `json:"paymentTerm"`
}

type QuoteInput struct {
	MonthlyRent         float64    `json:"monthlyRent"`
	PaymentTerm         int        `json:"paymentTerm"`
	LandlordPaymentDate civil.Date `json:"landlordPaymentDate"`
}

// UpfrontQuote is what a tenant sees before committing: the initial fee
// bundle, the prorated first month when it applies, and the first due date.
type UpfrontQuote struct {
	Fees             FeeBreakdown `json:"fees"`
	ProratedRent     float64      `json:"proratedRent"`
	FirstPaymentDate civil.Date   `json:"firstPaymentDate"`
	Total            float64      `json:"total"`
	TotalFormatted   string       `json:"totalFormatted"`
	TotalInWords     string       `json:"totalInWords"`
	GeneratedAt      time.Time    `json:"generatedAt"`
}

type LateFeeInput struct {
	Amount     float64 `json:"amount"`
	DayOfMonth int     `json:"dayOfMonth"`
}

type LateFeeResult struct {
	Amount         float64 `json:"amount"`
	DayOfMonth     int     `json:"dayOfMonth"`
	Rate           float64 `json:"rate"`
	Penalty        float64 `json:"penalty"`
	WithinWindow   bool    `json:"withinWindow"`
	TotalDue       float64 `json:"totalDue"`
	TotalFormatted string  `json:"totalFormatted"`
}

type ProrationInput struct {
	MonthlyRent float64 `json:"monthlyRent"`
	StartDay    int     `json:"startDay"`
	DaysInMonth int     `json:"daysInMonth"`
}
