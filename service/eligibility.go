package service

import (
	"fmt"

	"rent-assist/domain"
)

// CheckRentEligibility screens a tenant for rent assistance. Every failed
// rule is reported.
func CheckRentEligibility(input domain.RentEligibilityInput) domain.EligibilityResult {
	var reasons []string
	if input.MonthlyRent < RentMinMonthlyRent {
		reasons = append(reasons, fmt.Sprintf("monthly rent must be at least %s", FormatCurrency(RentMinMonthlyRent)))
	}
	if input.MonthlySalary < RentMinSalary {
		reasons = append(reasons, fmt.Sprintf("monthly salary must be at least %s", FormatCurrency(RentMinSalary)))
	}
	if input.CreditScore < RentMinCreditScore {
		reasons = append(reasons, fmt.Sprintf("credit score must be at least %d", RentMinCreditScore))
	}
	if input.EmploymentMonths < RentMinEmploymentMonths {
		reasons = append(reasons, fmt.Sprintf("employment must be at least %d months", RentMinEmploymentMonths))
	}
	return domain.EligibilityResult{Eligible: len(reasons) == 0, Reasons: reasons}
}

// CheckBNPLEligibility screens a BNPL purchase against the salary floor and
// the payment-to-income ceiling.
func CheckBNPLEligibility(monthlySalary, monthlyInstallment float64) domain.EligibilityResult {
	var reasons []string
	if monthlySalary < BNPLMinSalary {
		reasons = append(reasons, fmt.Sprintf("monthly salary must be at least %s", FormatCurrency(BNPLMinSalary)))
	}
	if monthlySalary <= 0 || monthlyInstallment/monthlySalary > BNPLMaxPaymentToIncome {
		reasons = append(reasons, fmt.Sprintf("installment must not exceed %.0f%% of monthly salary", BNPLMaxPaymentToIncome*100))
	}
	return domain.EligibilityResult{Eligible: len(reasons) == 0, Reasons: reasons}
}

// CalculateBNPLPlan charges flat monthly interest on the purchase amount for
// each month of the term and spreads the total evenly.
func CalculateBNPLPlan(input domain.BNPLEligibilityInput) domain.BNPLPlan {
	monthlyInterest := input.PurchaseAmount * BNPLMonthlyInterest
	totalInterest := monthlyInterest * float64(input.TermMonths)
	totalRepayment := input.PurchaseAmount + totalInterest
	installment := totalRepayment / float64(input.TermMonths)

	ratio := 0.0
	if input.MonthlySalary > 0 {
		ratio = installment / input.MonthlySalary
	}

	return domain.BNPLPlan{
		PurchaseAmount:     input.PurchaseAmount,
		TermMonths:         input.TermMonths,
		MonthlyInterest:    monthlyInterest,
		TotalInterest:      totalInterest,
		MonthlyInstallment: installment,
		TotalRepayment:     totalRepayment,
		PaymentToIncome:    ratio,
		Eligibility:        CheckBNPLEligibility(input.MonthlySalary, installment),
	}
}

type EligibilityService struct {
	recorder Recorder
}

func NewEligibilityService(recorder Recorder) *EligibilityService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &EligibilityService{recorder: recorder}
}

func (s *EligibilityService) RentAssistance(input domain.RentEligibilityInput) (domain.EligibilityResult, error) {
	if input.MonthlyRent < 0 || input.MonthlySalary < 0 || input.CreditScore < 0 || input.EmploymentMonths < 0 {
		return domain.EligibilityResult{}, invalid("eligibility figures must not be negative")
	}
	s.recorder.ObserveCalculation("rent_eligibility")
	return CheckRentEligibility(input), nil
}

func (s *EligibilityService) BNPL(input domain.BNPLEligibilityInput) (domain.BNPLPlan, error) {
	if err := validateAmount("purchase amount", input.PurchaseAmount, MaxLoanAmount); err != nil {
		return domain.BNPLPlan{}, err
	}
	if input.MonthlySalary < 0 {
		return domain.BNPLPlan{}, invalid("monthly salary must not be negative")
	}
	if err := validateTerm(input.TermMonths); err != nil {
		return domain.BNPLPlan{}, err
	}
	s.recorder.ObserveCalculation("bnpl")
	return CalculateBNPLPlan(input), nil
}
