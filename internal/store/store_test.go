package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/internal/engine"
)

func openSeeded(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })

	require.NoError(t, s.Exec(`CREATE TABLE readings (id INTEGER PRIMARY KEY, temp REAL, label TEXT)`))
	for _, row := range []struct {
		temp  any
		label string
	}{
		{21.5, "a"},
		{nil, "gap"},
		{-3.25, "b"},
		{nil, "gap"},
		{100.0, "c"},
	} {
		require.NoError(t, s.Exec(`INSERT INTO readings (temp, label) VALUES (?, ?)`, row.temp, row.label))
	}
	return s
}

func TestQueryValuesSkipsNulls(t *testing.T) {
	s := openSeeded(t)

	values, err := s.QueryValues("readings", "temp")
	require.NoError(t, err)
	// Non-null values only, in storage order.
	require.Equal(t, []float32{21.5, -3.25, 100}, values)
}

func TestQueryValuesEmptyTable(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Exec(`CREATE TABLE empty (v REAL)`))
	values, err := s.QueryValues("empty", "v")
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestQueryValuesMissingTable(t *testing.T) {
	s := openSeeded(t)

	_, err := s.QueryValues("nope", "temp")
	require.ErrorIs(t, err, engine.ErrDatabase)
}

func TestQueryValuesRejectsBadIdentifiers(t *testing.T) {
	s := openSeeded(t)

	for _, bad := range []string{"", "1abc", "a b", "t;drop", "x-y", `a"b`} {
		_, err := s.QueryValues(bad, "temp")
		require.ErrorIs(t, err, engine.ErrInvalidData, "table %q", bad)

		_, err = s.QueryValues("readings", bad)
		require.ErrorIs(t, err, engine.ErrInvalidData, "column %q", bad)
	}
}

func TestQueryValuesNonNumericColumn(t *testing.T) {
	s := openSeeded(t)

	_, err := s.QueryValues("readings", "label")
	require.ErrorIs(t, err, engine.ErrInvalidData)
}

func TestExecPersistsRows(t *testing.T) {
	s := openSeeded(t)

	require.NoError(t, s.Exec(`INSERT INTO readings (temp, label) VALUES (?, ?)`, 7.5, "d"))
	values, err := s.QueryValues("readings", "temp")
	require.NoError(t, err)
	require.Equal(t, float32(7.5), values[len(values)-1])
}

func TestExecError(t *testing.T) {
	s := openSeeded(t)
	err := s.Exec(`INSERT INTO nope (v) VALUES (1)`)
	require.ErrorIs(t, err, engine.ErrDatabase)
}
