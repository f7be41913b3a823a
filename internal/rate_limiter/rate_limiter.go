package ratelimiter

import (
	"sync"
	"time"

	"github.com/SeakMengs/WorkshopHub/internal/config"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"go.uber.org/zap"
)

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger()
	}

	return NewFixedWindowLimiter(cfg, logger)
}

// FixedWindowRateLimiter counts requests per client within a fixed time
// window. Counts reset when the window rolls over.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	frame   time.Duration
	enabled bool
	logger  *zap.SugaredLogger
}

type window struct {
	count    int
	resetsAt time.Time
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   cfg.RequestsPerTimeFrame,
		frame:   cfg.TimeFrame,
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Allow reports whether the client may proceed, and how long to wait when it
// may not.
func (rl *FixedWindowRateLimiter) Allow(clientKey string) (bool, time.Duration) {
	if !rl.enabled {
		return true, 0
	}

	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.clients[clientKey]
	if !ok || now.After(w.resetsAt) {
		rl.clients[clientKey] = &window{count: 1, resetsAt: now.Add(rl.frame)}
		return true, 0
	}

	if w.count >= rl.limit {
		rl.logger.Debugf("Rate limit exceeded for client: %s", clientKey)
		return false, time.Until(w.resetsAt)
	}

	w.count++
	return true, 0
}
