package ratelimiter

import "time"

type Limiter interface {
	// Allow reports whether a request from key may proceed and, if not, how
	// long until the next window opens.
	Allow(key string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}
