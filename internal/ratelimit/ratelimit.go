// Package ratelimit bounds login attempts with a single shared token bucket.
// The limit is global, not per user or per IP.
package ratelimit

import "golang.org/x/time/rate"

type Limiter struct {
	limiter *rate.Limiter
}

// New creates a limiter refilling at perSecond permits with the given burst.
func New(perSecond float64, burst int) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Allow consumes one permit if available. Safe for concurrent use; permits
// are never over-granted under contention.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
