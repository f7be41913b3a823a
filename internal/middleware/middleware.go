package middleware

import (
	appcontext "github.com/SeakMengs/WorkshopHub/internal/app_context"
	ratelimiter "github.com/SeakMengs/WorkshopHub/internal/rate_limiter"
)

type Middleware struct {
	app         *appcontext.Application
	rateLimiter *ratelimiter.FixedWindowRateLimiter
}

func NewMiddleware(app *appcontext.Application, rateLimiter *ratelimiter.FixedWindowRateLimiter) *Middleware {
	return &Middleware{
		app:         app,
		rateLimiter: rateLimiter,
	}
}
