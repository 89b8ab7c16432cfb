package service

import (
	"time"

	"cloud.google.com/go/civil"

	"rent-assist/domain"
)

// FeeService validates tenant input before handing it to the fee, late fee
// and proration calculators.
type FeeService struct {
	recorder Recorder
	now      func() time.Time
}

func NewFeeService(recorder Recorder) *FeeService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &FeeService{recorder: recorder, now: time.Now}
}

func (s *FeeService) InitialPayment(input domain.FeeInput) (domain.FeeBreakdown, error) {
	term, err := rentInput(input)
	if err != nil {
		return domain.FeeBreakdown{}, err
	}
	s.recorder.ObserveCalculation("initial_payment")
	return CalculateInitialPayment(input.MonthlyRent, term), nil
}

func (s *FeeService) DocumentReviewFee(input domain.FeeInput) (domain.FeeBreakdown, error) {
	if _, err := rentInput(input); err != nil {
		return domain.FeeBreakdown{}, err
	}
	s.recorder.ObserveCalculation("document_review_fee")
	return CalculateDocumentReviewFee(input.MonthlyRent), nil
}

func (s *FeeService) DepositAndInterest(input domain.FeeInput) (domain.FeeBreakdown, error) {
	term, err := rentInput(input)
	if err != nil {
		return domain.FeeBreakdown{}, err
	}
	s.recorder.ObserveCalculation("deposit_and_interest")
	return CalculateDepositAndInterest(input.MonthlyRent, term), nil
}

// Quote is everything a tenant pays before the first scheduled payment.
func (s *FeeService) Quote(input domain.QuoteInput) (domain.UpfrontQuote, error) {
	term, err := rentInput(domain.FeeInput{MonthlyRent: input.MonthlyRent, PaymentTerm: input.PaymentTerm})
	if err != nil {
		return domain.UpfrontQuote{}, err
	}
	if !input.LandlordPaymentDate.IsValid() {
		return domain.UpfrontQuote{}, invalid("landlord payment date %q is not a valid date", input.LandlordPaymentDate)
	}

	fees := CalculateInitialPayment(input.MonthlyRent, term)
	prorated := ProratedFirstMonth(input.MonthlyRent, input.LandlordPaymentDate)
	fees.ProratedRent = prorated
	fees.Total += prorated
	total := fees.Total

	s.recorder.ObserveCalculation("quote")

	return domain.UpfrontQuote{
		Fees:             fees,
		ProratedRent:     prorated,
		FirstPaymentDate: DetermineFirstPaymentDate(input.LandlordPaymentDate),
		Total:            total,
		TotalFormatted:   FormatCurrency(total),
		TotalInWords:     AmountInWords(total),
		GeneratedAt:      s.now().UTC(),
	}, nil
}

func (s *FeeService) LateFee(input domain.LateFeeInput) (domain.LateFeeResult, error) {
	if err := validateAmount("amount", input.Amount, MaxLoanAmount); err != nil {
		return domain.LateFeeResult{}, err
	}
	day := input.DayOfMonth
	if day == 0 {
		day = s.now().Day()
	}
	if err := validateDay(day); err != nil {
		return domain.LateFeeResult{}, err
	}

	penalty := CalculateLatePaymentFee(input.Amount, day)
	s.recorder.ObserveCalculation("late_fee")

	return domain.LateFeeResult{
		Amount:         input.Amount,
		DayOfMonth:     day,
		Rate:           LateFeeRate(day),
		Penalty:        penalty,
		WithinWindow:   IsWithinPaymentWindow(day),
		TotalDue:       input.Amount + penalty,
		TotalFormatted: FormatCurrency(input.Amount + penalty),
	}, nil
}

func (s *FeeService) ProratedRent(input domain.ProrationInput) (float64, error) {
	if err := validateAmount("monthly rent", input.MonthlyRent, MaxMonthlyRent); err != nil {
		return 0, err
	}
	if input.DaysInMonth < 28 || input.DaysInMonth > 31 {
		return 0, invalid("days in month must be between 28 and 31")
	}
	if input.StartDay < 1 || input.StartDay > input.DaysInMonth {
		return 0, invalid("start day must be between 1 and %d", input.DaysInMonth)
	}
	s.recorder.ObserveCalculation("proration")
	return CalculateProratedRent(input.MonthlyRent, input.StartDay, input.DaysInMonth), nil
}

func (s *FeeService) FirstPaymentDate(landlordPaymentDate civil.Date) (civil.Date, error) {
	if !landlordPaymentDate.IsValid() {
		return civil.Date{}, invalid("landlord payment date %q is not a valid date", landlordPaymentDate)
	}
	return DetermineFirstPaymentDate(landlordPaymentDate), nil
}

// rentInput validates rent and term, and defaults a missing term.
func rentInput(input domain.FeeInput) (int, error) {
	if err := validateAmount("monthly rent", input.MonthlyRent, MaxMonthlyRent); err != nil {
		return 0, err
	}
	term := input.PaymentTerm
	if term == 0 {
		term = DefaultPaymentTerm
	}
	if err := validateTerm(term); err != nil {
		return 0, err
	}
	return term, nil
}
