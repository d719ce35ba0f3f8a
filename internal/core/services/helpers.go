package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
)

// Simulated processing times.
const (
	matchLatency   = 2500 * time.Millisecond
	refineLatency  = 1500 * time.Millisecond
	reportLatency  = 2 * time.Second
	improveLatency = 2500 * time.Millisecond
	uploadLatency  = 800 * time.Millisecond
	parseLatency   = 1200 * time.Millisecond
	extractLatency = time.Second
)

// newID returns a time-ordered identifier.
// Overridden in tests that need stable IDs.
var newID = func() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// wait blocks on the delayer, or returns immediately when none is wired.
func wait(ctx context.Context, d driven.Delayer, dur time.Duration) error {
	if d == nil {
		return ctx.Err()
	}
	return d.Delay(ctx, dur)
}

// pick returns a uniformly chosen element of options.
func pick[T any](r driven.RandomSource, options []T) T {
	if r == nil || len(options) < 2 {
		return options[0]
	}
	return options[r.IntN(len(options))]
}

// between returns a uniform integer in [lo, hi].
func between(r driven.RandomSource, lo, hi int) int {
	if r == nil || hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// firstSentence returns the text before the first period.
func firstSentence(s string) string {
	before, _, _ := strings.Cut(s, ".")
	return before
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// orDefault returns s, or fallback when s is blank.
func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
