// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Randomness, time and simulated latency all arrive through driven ports,
// so services are deterministic under test.
package services
