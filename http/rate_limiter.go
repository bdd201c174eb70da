package http

import (
	"sync"
	"time"
)

// Windows idle for this long are evicted even when the refill period is short.
const minIdleEviction = 10 * time.Minute

// window counts the requests a client made since start.
type window struct {
	start time.Time
	used  int
}

// RateLimiter admits at most limit requests per client in each fixed window
// of length period. A client's window opens with its first request.
type RateLimiter struct {
	limit  int
	period time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*window

	done     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter starts a limiter with a background sweeper. Call Stop to
// release it.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := newRateLimiter(limit, period, time.Now)
	go rl.sweep(rl.idleAfter())
	return rl
}

func newRateLimiter(limit int, period time.Duration, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		period:  period,
		now:     now,
		windows: make(map[string]*window),
		done:    make(chan struct{}),
	}
}

func (r *RateLimiter) idleAfter() time.Duration {
	return max(2*r.period, minIdleEviction)
}

func (r *RateLimiter) sweep(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-t.C:
			r.evictIdle()
		}
	}
}

func (r *RateLimiter) evictIdle() {
	cutoff := r.now().Add(-r.idleAfter())

	r.mu.Lock()
	defer r.mu.Unlock()
	for key, w := range r.windows {
		if w.start.Before(cutoff) {
			delete(r.windows, key)
		}
	}
}

// Stop ends the sweeper. Calling it again is a no-op.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
}

// Allow records a request from key. A rejected call also returns the time
// left until the client's window resets.
func (r *RateLimiter) Allow(key string) (bool, time.Duration) {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.windows[key]
	if !ok || now.Sub(w.start) >= r.period {
		w = &window{start: now}
		r.windows[key] = w
	}

	if w.used >= r.limit {
		return false, w.start.Add(r.period).Sub(now)
	}
	w.used++
	return true, 0
}
