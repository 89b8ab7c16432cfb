package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rent-assist/domain"
)

func TestCalculateLoanHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/loan/calculate", domain.LoanInput{Amount: 12000, InterestRate: 28.08, TermMonths: 12})
	require.Equal(t, http.StatusOK, rec.Code)

	result := decode[domain.LoanResult](t, rec)
	assert.Equal(t, 1158.54, result.MonthlyPayment)

	rec = postJSON(t, router, "/loan/calculate", domain.LoanInput{Amount: -5, InterestRate: 28.08, TermMonths: 12})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleLifecycle(t *testing.T) {
	router := newTestRouter(t)
	start := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	rec := postJSON(t, router, "/schedule/generate", domain.ScheduleInput{
		TotalAmount:  12000,
		InterestRate: 28.08,
		Months:       12,
		Discounts:    map[int]float64{3: 50},
		StartDate:    &start,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	record := decode[domain.ScheduleRecord](t, rec)
	require.Len(t, record.Result.Schedule, 12)
	assert.Equal(t, 50.0, record.Result.Schedule[2].Discount)

	rec = get(router, "/schedule?id="+record.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, record.ID, decode[domain.ScheduleRecord](t, rec).ID)

	rec = get(router, "/schedule?id="+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(router, "/schedule?id=nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(router, "/schedule/export?id="+record.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), record.ID.String())

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Payment Schedule")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(rows), 13)
}

func TestAdjustScheduleHandlers(t *testing.T) {
	router := newTestRouter(t)
	start := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	rec := postJSON(t, router, "/schedule/generate", domain.ScheduleInput{
		TotalAmount: 6000, InterestRate: 28.08, Months: 6, StartDate: &start,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	schedule := decode[domain.ScheduleRecord](t, rec).Result.Schedule

	rec = postJSON(t, router, "/schedule/discount", domain.DiscountInput{
		Schedule: schedule, PaymentNumber: 2, Amount: 40, Reason: "promo",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	discounted := decode[[]domain.ScheduleEntry](t, rec)
	assert.InDelta(t, schedule[1].PaymentAmount-40, discounted[1].PaymentAmount, 1e-9)
	assert.Equal(t, "promo", discounted[1].DiscountReason)

	rec = postJSON(t, router, "/schedule/bonus", domain.BonusInput{
		Schedule: schedule, Criteria: "paymentNumber >= 5", Amount: 10, Reason: "loyal",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	bonused := decode[[]domain.ScheduleEntry](t, rec)
	assert.Zero(t, bonused[3].Bonus)
	assert.Equal(t, 10.0, bonused[4].Bonus)
	assert.Equal(t, 10.0, bonused[5].Bonus)

	rec = postJSON(t, router, "/schedule/bonus", domain.BonusInput{Schedule: schedule, Criteria: "((", Amount: 10})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendTermHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/loan/recommend-term", domain.TermRecommendationInput{
		RentAdvance: 6000, MonthlySalary: 5000, Preference: "minimize_interest",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, decode[domain.TermRecommendationResult](t, rec).RecommendedTerm)

	req := httptest.NewRequest(http.MethodPost, "/loan/recommend-term", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}
