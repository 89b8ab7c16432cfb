package http

import (
	"context"
	"sync"
	"time"
)

const minSweepInterval = time.Minute

// RateLimiter gives each client capacity requests per window. A client's
// window opens with its first request and resets in full when it closes.
type RateLimiter struct {
	capacity int
	window   time.Duration
	now      func() time.Time

	mu      sync.Mutex
	windows map[string]*clientWindow

	cancel context.CancelFunc
	done   chan struct{}
}

type clientWindow struct {
	used    int
	resetAt time.Time
}

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	ctx, cancel := context.WithCancel(context.Background())
	rl := &RateLimiter{
		capacity: capacity,
		window:   window,
		now:      time.Now,
		windows:  make(map[string]*clientWindow),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go rl.sweepEvery(ctx, max(window, minSweepInterval))
	return rl
}

func (r *RateLimiter) sweepEvery(ctx context.Context, interval time.Duration) {
	defer close(r.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

// sweep forgets clients whose window has closed. Their next request opens a
// fresh window either way.
func (r *RateLimiter) sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	evicted := 0
	for client, w := range r.windows {
		if !now.Before(w.resetAt) {
			delete(r.windows, client)
			evicted++
		}
	}
	return evicted
}

// Stop ends the sweeper and waits for it to exit. Later calls are no-ops.
func (r *RateLimiter) Stop() {
	r.cancel()
	<-r.done
}

func (r *RateLimiter) Limit() int {
	return r.capacity
}

// Allow counts a request against client's current window.
func (r *RateLimiter) Allow(client string) Decision {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	w, ok := r.windows[client]
	if !ok || !now.Before(w.resetAt) {
		w = &clientWindow{resetAt: now.Add(r.window)}
		r.windows[client] = w
	}

	if w.used >= r.capacity {
		return Decision{RetryAfter: w.resetAt.Sub(now)}
	}
	w.used++
	return Decision{Allowed: true, Remaining: r.capacity - w.used}
}
