package service

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-assist/domain"
)

func TestFeeService_InitialPaymentDefaultsTerm(t *testing.T) {
	svc := NewFeeService(nil)

	defaulted, err := svc.InitialPayment(domain.FeeInput{MonthlyRent: 1000})
	require.NoError(t, err)
	explicit, err := svc.InitialPayment(domain.FeeInput{MonthlyRent: 1000, PaymentTerm: 12})
	require.NoError(t, err)

	assert.Equal(t, explicit, defaulted)
}

func TestFeeService_Validation(t *testing.T) {
	svc := NewFeeService(nil)

	_, err := svc.InitialPayment(domain.FeeInput{MonthlyRent: 0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.DepositAndInterest(domain.FeeInput{MonthlyRent: 1000, PaymentTerm: -2})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.DocumentReviewFee(domain.FeeInput{MonthlyRent: MaxMonthlyRent + 1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFeeService_Quote(t *testing.T) {
	svc := NewFeeService(nil)

	early, err := svc.Quote(domain.QuoteInput{
		MonthlyRent:         1000,
		LandlordPaymentDate: civil.Date{Year: 2025, Month: time.June, Day: 10},
	})
	require.NoError(t, err)
	assert.Zero(t, early.ProratedRent)
	assert.InDelta(t, 3751.6, early.Total, 1e-9)
	assert.Equal(t, "GH₵3,751.60", early.TotalFormatted)
	assert.Equal(t, civil.Date{Year: 2025, Month: time.June, Day: 25}, early.FirstPaymentDate)
	assert.NotEmpty(t, early.TotalInWords)

	// June has 30 days; 11 days from the 20th at 100 a day.
	late, err := svc.Quote(domain.QuoteInput{
		MonthlyRent:         3000,
		PaymentTerm:         6,
		LandlordPaymentDate: civil.Date{Year: 2025, Month: time.June, Day: 20},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1100, late.ProratedRent, 1e-9)
	assert.Equal(t, late.ProratedRent, late.Fees.ProratedRent)
	assert.Equal(t, late.Fees.Total, late.Total)
	// 3000 rent: 7684.80 security, 3000 service fee, 65 document fee, 125 inspection
	// and 1100 prorated.
	assert.InDelta(t, 11974.8, late.Total, 1e-9)
	assert.Equal(t, civil.Date{Year: 2025, Month: time.July, Day: 25}, late.FirstPaymentDate)

	_, err = svc.Quote(domain.QuoteInput{MonthlyRent: 1000, LandlordPaymentDate: civil.Date{Year: 2025, Month: time.February, Day: 30}})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFeeService_Quote_FeesTotalIsSumOfComponents(t *testing.T) {
	svc := NewFeeService(nil)

	for _, day := range []int{1, 5, 6, 20, 30} {
		quote, err := svc.Quote(domain.QuoteInput{
			MonthlyRent:         3000,
			LandlordPaymentDate: civil.Date{Year: 2025, Month: time.June, Day: day},
		})
		require.NoError(t, err)

		f := quote.Fees
		want := f.ServiceFee + f.DocumentUploadFee + f.PropertyInspectionFee + f.RefundableRentSecurity + f.ProratedRent
		assert.InDelta(t, want, f.Total, 1e-9, "landlord paid on day %d", day)
		assert.Equal(t, f.Total, quote.Total)
	}
}

func TestFeeService_LateFee(t *testing.T) {
	svc := NewFeeService(nil)

	result, err := svc.LateFee(domain.LateFeeInput{Amount: 1000, DayOfMonth: 15})
	require.NoError(t, err)
	assert.Equal(t, 150.0, result.Penalty)
	assert.Equal(t, 0.15, result.Rate)
	assert.Equal(t, 1150.0, result.TotalDue)
	assert.Equal(t, "GH₵1,150.00", result.TotalFormatted)
	assert.False(t, result.WithinWindow)

	_, err = svc.LateFee(domain.LateFeeInput{Amount: 1000, DayOfMonth: 32})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFeeService_LateFeeDefaultsToToday(t *testing.T) {
	svc := NewFeeService(nil)
	svc.now = func() time.Time { return time.Date(2025, time.May, 8, 9, 0, 0, 0, time.UTC) }

	result, err := svc.LateFee(domain.LateFeeInput{Amount: 1000})
	require.NoError(t, err)
	assert.Equal(t, 8, result.DayOfMonth)
	assert.Equal(t, 100.0, result.Penalty)
}

func TestFeeService_ProratedRent(t *testing.T) {
	svc := NewFeeService(nil)

	got, err := svc.ProratedRent(domain.ProrationInput{MonthlyRent: 3000, StartDay: 20, DaysInMonth: 30})
	require.NoError(t, err)
	assert.Equal(t, 1100.0, got)

	_, err = svc.ProratedRent(domain.ProrationInput{MonthlyRent: 3000, StartDay: 31, DaysInMonth: 30})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.ProratedRent(domain.ProrationInput{MonthlyRent: 3000, StartDay: 1, DaysInMonth: 27})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFeeService_FirstPaymentDate(t *testing.T) {
	svc := NewFeeService(nil)

	got, err := svc.FirstPaymentDate(civil.Date{Year: 2025, Month: time.December, Day: 16})
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2026, Month: time.January, Day: 25}, got)

	_, err = svc.FirstPaymentDate(civil.Date{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
