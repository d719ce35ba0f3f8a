// Package clock provides the time-related driven adapters: the wall clock,
// a delayer that sleeps for scaled durations with optional token-bucket
// pacing, and an instant delayer for tests and --instant runs.
package clock
