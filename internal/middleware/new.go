package middleware

import (
	"golang.org/x/oauth2"

	"events-portal/pkg/log"
)

type Middleware struct {
	l            log.Logger
	serviceToken oauth2.TokenSource
	limiter      *rateLimiter
}

// Config is the dependency bag passed to New().
type Config struct {
	// ServiceToken is used when a request carries no credential of its own. Optional.
	ServiceToken oauth2.TokenSource

	// RateLimitPerMin enables per-client rate limiting when > 0.
	RateLimitPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:            l,
		serviceToken: cfg.ServiceToken,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
