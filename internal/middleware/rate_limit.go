package middleware

import (
	"net/http"

	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

func (m *Middleware) RateLimiterMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		allow, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
		if !allow {
			ctx.Header("Retry-After", retryAfter.String())
			util.ResponseFailed(ctx, http.StatusTooManyRequests, "Rate limit exceeded, retry after "+retryAfter.String(), nil, nil)
			return
		}

		ctx.Next()
	}
}
