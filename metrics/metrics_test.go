package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveCalculation("loan")
	m.ObserveCalculation("loan")
	m.ObserveCalculation("quote")
	m.ObserveCache(true)
	m.ObserveCache(false)
	m.ObserveCache(false)
	m.ObserveRateLimited()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calculations.WithLabelValues("loan")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues("quote")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cache.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cache.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rateLimited))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveCalculation("schedule")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `rent_assist_calculations_total{operation="schedule"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
