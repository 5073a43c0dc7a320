package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/engine"
)

func TestCPUEngineSurface(t *testing.T) {
	eng := engine.NewCPU()
	defer eng.Release()

	sum, err := eng.Sum([]float32{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, float32(6), sum)

	_, _, err = eng.MinMax(nil)
	require.ErrorIs(t, err, engine.ErrEmptyResult)

	got, err := eng.Filter([]float32{1, 5, 3, 8, 2, 9, 4},
		engine.Predicate{Op: engine.GT, Threshold: 5})
	require.NoError(t, err)
	require.Equal(t, []float32{8, 9}, got)
}

func TestParsePredicateReexport(t *testing.T) {
	p, err := engine.ParsePredicate(">=", 2.5)
	require.NoError(t, err)
	require.Equal(t, engine.GE, p.Op)

	_, err = engine.ParsePredicate("between", 0)
	require.ErrorIs(t, err, engine.ErrInvalidData)
}

func TestNewGPUWhenUnavailable(t *testing.T) {
	if engine.GPUAvailable() {
		t.Skip("WebGPU available on this machine")
	}
	_, err := engine.NewGPU()
	require.ErrorIs(t, err, engine.ErrDeviceNotFound)
}
