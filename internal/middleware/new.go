package middleware

import (
	"golang.org/x/time/rate"

	"kube-query-agent/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New builds the middleware set. ratePerMin caps requests across all
// clients; zero or negative disables the limiter.
func New(l log.Logger, ratePerMin int) Middleware {
	var limiter *rate.Limiter
	if ratePerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(ratePerMin)/60.0), ratePerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
