// Package sqlite provides a SQLite-backed implementation of the run-history
// store. The database lives under the linecull data directory and is created
// on first use, with schema migrations embedded in the binary.
//
// SQLite is opened in WAL mode with a busy timeout so that a CLI run and a
// concurrent history query do not trip over each other.
package sqlite
