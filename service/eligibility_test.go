package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-assist/domain"
)

func TestCheckRentEligibility(t *testing.T) {
	eligible := CheckRentEligibility(domain.RentEligibilityInput{
		MonthlyRent:      1000,
		MonthlySalary:    4000,
		CreditScore:      650,
		EmploymentMonths: 12,
	})
	assert.True(t, eligible.Eligible)
	assert.Empty(t, eligible.Reasons)

	boundary := CheckRentEligibility(domain.RentEligibilityInput{
		MonthlyRent:      250,
		MonthlySalary:    1000,
		CreditScore:      600,
		EmploymentMonths: 6,
	})
	assert.True(t, boundary.Eligible)
}

func TestCheckRentEligibility_ReportsEveryFailure(t *testing.T) {
	result := CheckRentEligibility(domain.RentEligibilityInput{
		MonthlyRent:      200,
		MonthlySalary:    900,
		CreditScore:      550,
		EmploymentMonths: 3,
	})

	assert.False(t, result.Eligible)
	require.Len(t, result.Reasons, 4)
	assert.Contains(t, result.Reasons[0], "GH₵250.00")
	assert.Contains(t, result.Reasons[2], "600")
}

func TestCalculateBNPLPlan(t *testing.T) {
	plan := CalculateBNPLPlan(domain.BNPLEligibilityInput{
		MonthlySalary:  3000,
		PurchaseAmount: 2000,
		TermMonths:     4,
	})

	assert.InDelta(t, 80, plan.MonthlyInterest, 1e-9)
	assert.InDelta(t, 320, plan.TotalInterest, 1e-9)
	assert.InDelta(t, 2320, plan.TotalRepayment, 1e-9)
	assert.InDelta(t, 580, plan.MonthlyInstallment, 1e-9)
	assert.InDelta(t, 580.0/3000, plan.PaymentToIncome, 1e-9)
	assert.True(t, plan.Eligibility.Eligible)
}

func TestCalculateBNPLPlan_TooExpensive(t *testing.T) {
	plan := CalculateBNPLPlan(domain.BNPLEligibilityInput{
		MonthlySalary:  1200,
		PurchaseAmount: 2000,
		TermMonths:     4,
	})

	// 580 / 1200 is above the 40% ceiling.
	assert.False(t, plan.Eligibility.Eligible)
	assert.Len(t, plan.Eligibility.Reasons, 1)
}

func TestCheckBNPLEligibility(t *testing.T) {
	assert.True(t, CheckBNPLEligibility(1000, 400).Eligible)
	assert.False(t, CheckBNPLEligibility(1000, 401).Eligible)
	assert.Len(t, CheckBNPLEligibility(999, 100).Reasons, 1)
	assert.Len(t, CheckBNPLEligibility(0, 100).Reasons, 2)
}

func TestEligibilityService(t *testing.T) {
	svc := NewEligibilityService(nil)

	_, err := svc.RentAssistance(domain.RentEligibilityInput{MonthlyRent: -1})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.BNPL(domain.BNPLEligibilityInput{MonthlySalary: 3000, PurchaseAmount: 2000, TermMonths: 0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.BNPL(domain.BNPLEligibilityInput{MonthlySalary: 3000, PurchaseAmount: 0, TermMonths: 4})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	plan, err := svc.BNPL(domain.BNPLEligibilityInput{MonthlySalary: 3000, PurchaseAmount: 2000, TermMonths: 4})
	require.NoError(t, err)
	assert.InDelta(t, 580, plan.MonthlyInstallment, 1e-9)
}
