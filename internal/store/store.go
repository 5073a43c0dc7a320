// Package store is the relational collaborator of the compute engines: it
// extracts a named column from a SQLite table as a flat float32 sequence and
// persists side-effecting SQL. It never touches device buffers; the engines
// never parse SQL.
package store

import (
	"database/sql"
	"regexp"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // pure-Go sqlite driver

	"github.com/quarrydb/quarry/internal/engine"
)

// identPattern is what this store accepts as a table or column name.
// Identifiers cannot be bound as SQL placeholders, so they are validated
// before interpolation.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Store wraps one SQLite database handle.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path. Use ":memory:" for an
// in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, engine.E("store.Open", engine.ErrDatabase,
			errors.Wrapf(err, "open %s", path))
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, engine.E("store.Open", engine.ErrDatabase,
			errors.Wrapf(err, "ping %s", path))
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return engine.E("store.Close", engine.ErrDatabase, err)
	}
	return nil
}

// Exec runs a side-effecting statement (DDL, insert, update). Changes are
// persisted by SQLite.
func (s *Store) Exec(query string, args ...any) error {
	if _, err := s.db.Exec(query, args...); err != nil {
		return engine.E("store.Exec", engine.ErrDatabase,
			errors.Wrap(err, "exec"))
	}
	return nil
}

// QueryValues returns the non-null values of column in table, in storage
// order, as float32. Non-numeric content fails with ErrInvalidData.
func (s *Store) QueryValues(table, column string) ([]float32, error) {
	if !identPattern.MatchString(table) {
		return nil, engine.E("queryValues", engine.ErrInvalidData,
			errors.Errorf("bad table name %q", table))
	}
	if !identPattern.MatchString(column) {
		return nil, engine.E("queryValues", engine.ErrInvalidData,
			errors.Errorf("bad column name %q", column))
	}

	rows, err := s.db.Query("SELECT " + column + " FROM " + table)
	if err != nil {
		return nil, engine.E("queryValues", engine.ErrDatabase,
			errors.Wrapf(err, "select %s from %s", column, table))
	}
	defer rows.Close()

	values := make([]float32, 0, 64)
	for rows.Next() {
		var v sql.NullFloat64
		if err := rows.Scan(&v); err != nil {
			return nil, engine.E("queryValues", engine.ErrInvalidData,
				errors.Wrapf(err, "scan %s.%s", table, column))
		}
		if !v.Valid {
			continue
		}
		values = append(values, float32(v.Float64))
	}
	if err := rows.Err(); err != nil {
		return nil, engine.E("queryValues", engine.ErrDatabase,
			errors.Wrap(err, "iterate rows"))
	}
	return values, nil
}
