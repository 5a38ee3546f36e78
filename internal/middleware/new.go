package middleware

import (
	"smart-task-manager/config"
	"smart-task-manager/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled && cfg.PerMin > 0 {
		mw.limiter = newRateLimiter(cfg.PerMin)
	}
	return mw
}
