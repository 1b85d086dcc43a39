package middleware

import (
	"smart-task-input/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the shared middleware set. A perMin of 0 disables rate limiting.
func New(l log.Logger, perMin int) Middleware {
	mw := Middleware{l: l}
	if perMin > 0 {
		mw.limiter = newRateLimiter(perMin)
	}
	return mw
}
