package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
)

// RateLimitMiddleware rejects clients that have used up their window with
// 429 and a Retry-After header. Allowed responses carry the client's
// remaining quota. onLimited, if set, is called per rejection.
func RateLimitMiddleware(
	limiter *RateLimiter,
	onLimited func(),
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		decision := limiter.Allow(ip)
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		if !decision.Allowed {
			if onLimited != nil {
				onLimited()
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(decision.RetryAfter.Seconds()))))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		next.ServeHTTP(w, r)
	})
}
