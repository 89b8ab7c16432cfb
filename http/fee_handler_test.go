package http

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-assist/domain"
)

func TestFeeHandlers(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/fees/initial", domain.FeeInput{MonthlyRent: 1000, PaymentTerm: 12})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 3751.6, decode[domain.FeeBreakdown](t, rec).Total, 1e-9)

	rec = postJSON(t, router, "/fees/document-review", domain.FeeInput{MonthlyRent: 1000})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 65.0, decode[domain.FeeBreakdown](t, rec).Total)

	rec = postJSON(t, router, "/fees/deposit", domain.FeeInput{MonthlyRent: 1000, PaymentTerm: 12})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 3686.6, decode[domain.FeeBreakdown](t, rec).Total, 1e-9)

	rec = postJSON(t, router, "/fees/initial", domain.FeeInput{MonthlyRent: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/fees/quote", domain.QuoteInput{
		MonthlyRent:         3000,
		LandlordPaymentDate: civil.Date{Year: 2025, Month: time.June, Day: 20},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	quote := decode[domain.UpfrontQuote](t, rec)
	assert.InDelta(t, 1100, quote.ProratedRent, 1e-9)
	assert.Equal(t, civil.Date{Year: 2025, Month: time.July, Day: 25}, quote.FirstPaymentDate)
	assert.True(t, strings.HasPrefix(quote.TotalFormatted, "GH₵"), quote.TotalFormatted)
}

func TestLateFeeHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/fees/late", domain.LateFeeInput{Amount: 1000, DayOfMonth: 22})
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[domain.LateFeeResult](t, rec)
	assert.Equal(t, 250.0, result.Penalty)
	assert.Equal(t, 1250.0, result.TotalDue)

	rec = postJSON(t, router, "/fees/late", domain.LateFeeInput{Amount: 1000, DayOfMonth: 40})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProrationHandlers(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/rent/prorate", domain.ProrationInput{MonthlyRent: 3000, StartDay: 20, DaysInMonth: 30})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"proratedRent":1100,"formatted":"GH₵1,100.00"}`, rec.Body.String())

	rec = postJSON(t, router, "/rent/first-payment-date", map[string]string{"landlordPaymentDate": "2025-12-20"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"firstPaymentDate":"2026-01-25","requiresProration":true}`, rec.Body.String())

	rec = postJSON(t, router, "/rent/first-payment-date", map[string]string{"landlordPaymentDate": "2025-13-01"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
