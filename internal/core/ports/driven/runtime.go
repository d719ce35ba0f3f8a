package driven

import (
	"context"
	"time"
)

// RandomSource supplies pseudo-random integers.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Delayer simulates processing latency.
type Delayer interface {
	// Delay waits for d or until ctx is done, whichever comes first.
	// Returns ctx.Err() when the wait was cut short.
	Delay(ctx context.Context, d time.Duration) error
}
