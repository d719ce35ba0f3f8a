// Package sqlite provides an SQLite-backed investor catalog.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. The catalog is read by sessions and written only by Import, which replaces
// the stored investors in a single transaction.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the migrations/
// directory. Each migration is a pair of .up.sql and .down.sql files. List-valued
// investor fields live in investor_tags, keyed by kind and ordered by position.
//
// # Thread Safety
//
// All operations are thread-safe. The store relies on the locking provided by
// SQLite in WAL mode.
package sqlite
