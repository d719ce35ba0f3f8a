// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - InvestorCatalog: Read-only investor records (embedded YAML, YAML file or SQLite)
//   - ProjectStore: Project persistence for the lifetime of a session
//   - MessageStore: Outreach message persistence
//   - ReplyStore: Investor reply persistence
//   - MeetingStore: Scheduled meeting persistence
//   - RandomSource: Pseudo-random choices for scoring and templates
//   - Clock: Timestamps for created and sent records
//   - Delayer: Simulated processing latency
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SearchStore: Remembers the most recent match run. Without it, searches are not recorded.
//   - NormaliserRegistry: Reads uploaded pitch documents. Without it, parsed
//     profiles use the built-in defaults.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
