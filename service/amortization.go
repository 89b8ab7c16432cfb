package service

import (
	"math"
	"time"

	"rent-assist/domain"
)

// CalculateMonthlyPayment returns the fixed payment that amortizes
// totalAmount over months at an annual interestRate given in percent.
//
//	r       = interestRate / 100 / 12
//	payment = r * P / (1 - (1+r)^-n)
//
// A zero rate splits the amount evenly instead of dividing by zero.
func CalculateMonthlyPayment(totalAmount, interestRate float64, months int) float64 {
	monthlyRate := interestRate / 100 / 12
	if monthlyRate == 0 {
		return totalAmount / float64(months)
	}
	return (monthlyRate * totalAmount) / (1 - math.Pow(1+monthlyRate, -float64(months)))
}

// CalculatePaymentSchedule builds the schedule with payment dates counted
// from now.
func CalculatePaymentSchedule(
	totalAmount float64,
	interestRate float64,
	months int,
	discounts map[int]float64,
) domain.PaymentSchedule {
	return CalculatePaymentScheduleFrom(time.Now(), totalAmount, interestRate, months, discounts)
}

// CalculatePaymentScheduleFrom builds the month-by-month schedule. Payment n
// is due n months after start. discounts maps a payment number to an amount
// taken off that payment; it does not change the amortization itself.
// A term of zero or fewer months yields an empty schedule with zero totals.
func CalculatePaymentScheduleFrom(
	start time.Time,
	totalAmount float64,
	interestRate float64,
	months int,
	discounts map[int]float64,
) domain.PaymentSchedule {
	if months <= 0 {
		return domain.PaymentSchedule{Schedule: []domain.ScheduleEntry{}}
	}

	monthlyPayment := CalculateMonthlyPayment(totalAmount, interestRate, months)
	monthlyRate := interestRate / 100 / 12

	schedule := make([]domain.ScheduleEntry, 0, months)
	remaining := totalAmount

	for paymentNumber := 1; paymentNumber <= months; paymentNumber++ {
		interestPayment := remaining * monthlyRate
		principalPayment := monthlyPayment - interestPayment
		remaining -= principalPayment

		discount := discounts[paymentNumber]

		schedule = append(schedule, domain.ScheduleEntry{
			PaymentNumber:    paymentNumber,
			PaymentDate:      start.AddDate(0, paymentNumber, 0),
			PaymentAmount:    monthlyPayment - discount,
			PrincipalPayment: principalPayment,
			InterestPayment:  interestPayment,
			RemainingBalance: math.Max(0, remaining),
			Discount:         discount,
		})
	}

	totalPayments := monthlyPayment * float64(months)

	return domain.PaymentSchedule{
		MonthlyPayment: monthlyPayment,
		TotalPayments:  totalPayments,
		TotalInterest:  totalPayments - totalAmount,
		Schedule:       schedule,
	}
}
