// Package store exposes the SQLite-backed column store consumed by the
// compute engines: a named column out, side-effecting SQL in.
package store

import (
	internalstore "github.com/quarrydb/quarry/internal/store"
)

// Store wraps one SQLite database handle.
type Store = internalstore.Store

// Open opens or creates the database at path. Use ":memory:" for an
// in-memory database.
func Open(path string) (*Store, error) {
	return internalstore.Open(path)
}
