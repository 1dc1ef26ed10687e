package ratelimiter

import (
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]*window
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewFixedWindowLimiter(limit int, frame time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		window:  frame,
		now:     time.Now,
	}
}

func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, exists := rl.clients[key]
	if !exists || now.Sub(w.start) >= rl.window {
		rl.evict(now)
		w = &window{start: now}
		rl.clients[key] = w
	}

	if w.count >= rl.limit {
		return false, w.start.Add(rl.window).Sub(now)
	}

	w.count++
	return true, 0
}

// evict drops expired windows so idle clients do not accumulate.
func (rl *FixedWindowRateLimiter) evict(now time.Time) {
	for key, w := range rl.clients {
		if now.Sub(w.start) >= rl.window {
			delete(rl.clients, key)
		}
	}
}
