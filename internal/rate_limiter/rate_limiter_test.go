package ratelimiter

import (
	"testing"
	"time"

	"github.com/SeakMengs/WorkshopHub/internal/config"
)

func TestFixedWindowLimiterBlocksAfterLimit(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 3,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, nil)

	for i := 0; i < 3; i++ {
		allow, _ := rl.Allow("10.0.0.1")
		if !allow {
			t.Fatalf("request %d blocked before the limit", i+1)
		}
	}

	allow, retryAfter := rl.Allow("10.0.0.1")
	if allow {
		t.Fatal("request over the limit was allowed")
	}
	if retryAfter <= 0 {
		t.Errorf("retryAfter = %v, want > 0", retryAfter)
	}

	// other clients keep their own window
	if allow, _ := rl.Allow("10.0.0.2"); !allow {
		t.Error("a different client was blocked")
	}
}

func TestFixedWindowLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            time.Minute,
		Enabled:              false,
	}, nil)

	for i := 0; i < 10; i++ {
		if allow, _ := rl.Allow("10.0.0.1"); !allow {
			t.Fatalf("disabled limiter blocked request %d", i+1)
		}
	}
}

func TestFixedWindowLimiterResetsAfterWindow(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            10 * time.Millisecond,
		Enabled:              true,
	}, nil)

	if allow, _ := rl.Allow("10.0.0.1"); !allow {
		t.Fatal("first request blocked")
	}
	if allow, _ := rl.Allow("10.0.0.1"); allow {
		t.Fatal("second request in window allowed")
	}

	time.Sleep(15 * time.Millisecond)

	if allow, _ := rl.Allow("10.0.0.1"); !allow {
		t.Error("request after window rollover blocked")
	}
}
