package http

import (
	"net/http"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Loan               *LoanHandler
	Fee                *FeeHandler
	Eligibility        *EligibilityHandler
	Application        *ApplicationHandler
	TermRecommendation *TermRecommendationHandler
	Metrics            http.Handler
}

// NewRouter mounts the calculation and application endpoints behind the rate
// limiter. /health and /metrics are not rate limited.
func NewRouter(h Handlers, limiter *RateLimiter, onLimited func()) *http.ServeMux {
	mux := http.NewServeMux()

	limited := func(path string, fn http.HandlerFunc) {
		mux.Handle(path, RateLimitMiddleware(limiter, onLimited, fn))
	}

	limited("/loan/calculate", h.Loan.CalculateLoan)
	limited("/loan/recommend-term", h.TermRecommendation.RecommendTerm)

	limited("/schedule", h.Loan.GetSchedule)
	limited("/schedule/generate", h.Loan.GenerateSchedule)
	limited("/schedule/discount", h.Loan.ApplyDiscount)
	limited("/schedule/bonus", h.Loan.ApplyBonus)
	limited("/schedule/export", h.Loan.ExportSchedule)

	limited("/fees/initial", h.Fee.InitialPayment)
	limited("/fees/document-review", h.Fee.DocumentReviewFee)
	limited("/fees/deposit", h.Fee.DepositAndInterest)
	limited("/fees/quote", h.Fee.Quote)
	limited("/fees/late", h.Fee.LateFee)
	limited("/rent/prorate", h.Fee.ProratedRent)
	limited("/rent/first-payment-date", h.Fee.FirstPaymentDate)

	limited("/eligibility/rent", h.Eligibility.RentAssistance)
	limited("/eligibility/bnpl", h.Eligibility.BNPL)

	limited("/applications", h.Application.Get)
	limited("/applications/start", h.Application.Start)
	limited("/applications/advance", h.Application.Advance)
	limited("/applications/approve", h.Application.Approve)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if h.Metrics != nil {
		mux.Handle("/metrics", h.Metrics)
	}

	return mux
}
