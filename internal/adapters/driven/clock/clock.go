package clock

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
)

// Ensure the adapters implement their interfaces.
var (
	_ driven.Clock   = System{}
	_ driven.Clock   = (*Fixed)(nil)
	_ driven.Delayer = (*Delayer)(nil)
	_ driven.Delayer = Instant{}
)

// System reads the wall clock.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time { return time.Now() }

// Fixed is a manually advanced clock.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed creates a clock stopped at t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

// Now returns the clock's current time.
func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// Delayer waits for scaled durations. When a limiter is set, each delay
// first takes a token, so bursts of operations are spread out.
type Delayer struct {
	scale   float64
	limiter *rate.Limiter
}

// NewDelayer creates a delayer that multiplies every duration by scale.
// A nil limiter disables pacing.
func NewDelayer(scale float64, limiter *rate.Limiter) *Delayer {
	if scale < 0 {
		scale = 0
	}
	return &Delayer{scale: scale, limiter: limiter}
}

// NewLimiter builds a limiter from rate limit settings.
// Returns nil when pacing is disabled.
func NewLimiter(cfg domain.RateLimitSettings) *rate.Limiter {
	if cfg.PerSecond <= 0 {
		return nil
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.PerSecond), burst)
}

// FromSettings builds the delayer described by the latency and rate limit
// settings. Disabled latency yields Instant.
func FromSettings(s domain.AppSettings) driven.Delayer {
	if !s.Latency.Enabled {
		return Instant{}
	}
	return NewDelayer(s.Latency.Scale, NewLimiter(s.RateLimit))
}

// Delay blocks for d times the scale, or until ctx is done.
func (d *Delayer) Delay(ctx context.Context, dur time.Duration) error {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	scaled := time.Duration(float64(dur) * d.scale)
	if scaled <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Instant never waits. It still reports a cancelled context.
type Instant struct{}

// Delay returns immediately.
func (Instant) Delay(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
