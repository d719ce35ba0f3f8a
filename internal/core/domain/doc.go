// Package domain defines the core business entities for pitchmatch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Project: A founder's company profile and outreach history
//   - Investor: An immutable venture investor record from the catalog
//   - MatchResult: An investor decorated with a compatibility score
//   - OutreachMessage, Reply, Meeting: The founder/investor conversation
//   - Report: A synthesised founder report attached to a message
//   - PitchDocument: The text read from an uploaded pitch document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
