package service

import (
	"fmt"
	"log/slog"
	"sort"

	"rent-assist/domain"
)

type TermRecommendationService struct {
	loanService *LoanService
	logger      *slog.Logger
}

func NewTermRecommendationService(loanService *LoanService) *TermRecommendationService {
	return &TermRecommendationService{
		loanService: loanService,
		logger:      loanService.logger,
	}
}

var preferences = map[string]bool{
	"minimize_interest": true,
	"minimize_payment":  true,
	"balanced":          true,
}

// RecommendTerm scores each offered term for repaying a rent advance and
// picks the best one for the tenant's preference. Terms whose installment would exceed the
// payment-to-income ceiling are left out.
func (s *TermRecommendationService) RecommendTerm(
	input domain.TermRecommendationInput,
) (domain.TermRecommendationResult, error) {
	if err := validateAmount("rent advance", input.RentAdvance, MaxLoanAmount); err != nil {
		return domain.TermRecommendationResult{}, err
	}
	if input.MonthlySalary <= 0 {
		return domain.TermRecommendationResult{}, invalid("monthly salary must be positive")
	}
	if !preferences[input.Preference] {
		return domain.TermRecommendationResult{}, invalid("unknown preference %q", input.Preference)
	}

	maxInstallment := input.MonthlySalary * BNPLMaxPaymentToIncome
	minTerm, maxTerm := OfferedTerms[0], OfferedTerms[len(OfferedTerms)-1]

	recommendations := []domain.TermRecommendation{}

	// Calcular escenarios para cada plazo
	for _, term := range OfferedTerms {
		loanInput := domain.LoanInput{
			Amount:       input.RentAdvance,
			InterestRate: AnnualInterestRate,
			TermMonths:   term,
		}

		result, err := s.loanService.CalculateLoan(loanInput)
		if err != nil {
			s.logger.Warn("failed to calculate loan for term", "term", term, "error", err)
			continue
		}

		if result.MonthlyPayment > maxInstallment {
			continue
		}

		recommendations = append(recommendations, domain.TermRecommendation{
			TermMonths:     term,
			MonthlyPayment: result.MonthlyPayment,
			TotalInterest:  result.TotalInterest,
			Score:          s.calculateScore(result, input, term, minTerm, maxTerm, maxInstallment),
			Reason:         s.generateReason(input.Preference),
		})
	}

	if len(recommendations) == 0 {
		return domain.TermRecommendationResult{}, fmt.Errorf(
			"%w: no term keeps the installment within %.0f%% of a %s salary",
			ErrInvalidArgument, BNPLMaxPaymentToIncome*100, FormatCurrency(input.MonthlySalary))
	}

	// Ordenar por score descendente
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	return domain.TermRecommendationResult{
		RecommendedTerm: recommendations[0].TermMonths,
		Recommendations: recommendations,
	}, nil
}

// calculateScore normalizes interest, installment and term length to 0–10
// and weights them by preference.
func (s *TermRecommendationService) calculateScore(
	result domain.LoanResult,
	input domain.TermRecommendationInput,
	term, minTerm, maxTerm int,
	maxInstallment float64,
) float64 {
	// The shortest term pays the least interest and the longest the smallest
	// installment.
	minInterest := totalInterestFor(input.RentAdvance, minTerm)
	maxInterest := totalInterestFor(input.RentAdvance, maxTerm)
	minPayment := CalculateMonthlyPayment(input.RentAdvance, AnnualInterestRate, maxTerm)

	interestScore := 0.0
	paymentScore := 0.0
	termScore := 0.0

	if interestRange := maxInterest - minInterest; interestRange > 0 {
		interestScore = 10.0 * (1.0 - (result.TotalInterest-minInterest)/interestRange)
	}
	if paymentRange := maxInstallment - minPayment; paymentRange > 0 {
		paymentScore = 10.0 * (1.0 - (result.MonthlyPayment-minPayment)/paymentRange)
	}
	if maxTerm > minTerm {
		termScore = 10.0 * (1.0 - float64(term-minTerm)/float64(maxTerm-minTerm))
	}

	var score float64
	switch input.Preference {
	case "minimize_interest":
		score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
	case "minimize_payment":
		score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
	case "balanced":
		score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
	}
	return RoundTo2Decimals(score)
}

func totalInterestFor(amount float64, term int) float64 {
	return CalculateMonthlyPayment(amount, AnnualInterestRate, term)*float64(term) - amount
}

func (s *TermRecommendationService) generateReason(preference string) string {
	switch preference {
	case "minimize_interest":
		return "Shortest affordable term, lowest total interest"
	case "minimize_payment":
		return "Lowest monthly installment within your budget"
	case "balanced":
		return "Balance between monthly installment and total interest"
	}
	return "Recommendation based on the provided figures"
}
