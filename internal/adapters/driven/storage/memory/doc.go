// Package memory holds the in-memory driven adapters that make up a session:
// projects, outreach messages, replies, meetings, the current search and
// configuration. Nothing here outlives the process.
package memory
