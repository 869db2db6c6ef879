package ratelimit

import (
	"context"
	"time"
)

// Policy caps admissions per identifier within a window.
type Policy struct {
	Requests int
	Window   time.Duration
}

// DefaultPolicy is a deployment constant, not runtime configuration.
var DefaultPolicy = Policy{
	Requests: 2,
	Window:   5 * time.Minute,
}

// Limiter decides whether a request from an identifier is admitted at a
// given instant. Implementations must be safe for concurrent use.
type Limiter interface {
	Allow(ctx context.Context, identifier string, now time.Time) bool
}
