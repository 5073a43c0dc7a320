package cpu

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/internal/engine"
)

func randomColumn(t *testing.T, n int, seed int64) []float32 {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([]float32, n)
	for i := range values {
		values[i] = float32(rng.NormFloat64() * 100)
	}
	return values
}

// requireSorted checks monotonicity in the requested direction.
func requireSorted(t *testing.T, values []float32, ascending bool) {
	t.Helper()
	for i := 1; i < len(values); i++ {
		if ascending {
			require.LessOrEqual(t, values[i-1], values[i], "index %d", i)
		} else {
			require.GreaterOrEqual(t, values[i-1], values[i], "index %d", i)
		}
	}
}

// requirePermutation checks that got and want hold the same multiset of
// bit-exact values.
func requirePermutation(t *testing.T, want, got []float32) {
	t.Helper()
	require.Len(t, got, len(want))
	counts := make(map[uint32]int, len(want))
	for _, v := range want {
		counts[math.Float32bits(v)]++
	}
	for _, v := range got {
		counts[math.Float32bits(v)]--
	}
	for bits, n := range counts {
		require.Zero(t, n, "value %v", math.Float32frombits(bits))
	}
}

func TestSumKnownValues(t *testing.T) {
	eng := New()

	sum, err := eng.Sum([]float32{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, float32(15), sum)

	sum, err = eng.Sum([]float32{42})
	require.NoError(t, err)
	require.Equal(t, float32(42), sum)

	sum, err = eng.Sum(nil)
	require.NoError(t, err)
	require.Equal(t, float32(0), sum)
}

func TestAvg(t *testing.T) {
	eng := New()

	avg, err := eng.Avg([]float32{2, 4, 6, 8, 10})
	require.NoError(t, err)
	require.Equal(t, float32(6), avg)

	avg, err = eng.Avg(nil)
	require.NoError(t, err)
	require.Equal(t, float32(0), avg)

	values := randomColumn(t, 1000, 7)
	avg, err = eng.Avg(values)
	require.NoError(t, err)
	var want float64
	for _, v := range values {
		want += float64(v)
	}
	want /= float64(len(values))
	require.Empty(t, cmp.Diff(float32(want), avg, cmpopts.EquateApprox(1e-4, 1e-3)))
}

func TestMinMax(t *testing.T) {
	eng := New()

	lo, hi, err := eng.MinMax([]float32{3, -1, 7, 0})
	require.NoError(t, err)
	require.Equal(t, float32(-1), lo)
	require.Equal(t, float32(7), hi)

	lo, hi, err = eng.MinMax([]float32{42})
	require.NoError(t, err)
	require.Equal(t, float32(42), lo)
	require.Equal(t, float32(42), hi)

	_, _, err = eng.MinMax(nil)
	require.ErrorIs(t, err, engine.ErrEmptyResult)
}

func TestCount(t *testing.T) {
	eng := New()
	require.Equal(t, 0, eng.Count(nil))
	require.Equal(t, 3, eng.Count([]float32{1, 2, 3}))
}

func TestCountWhere(t *testing.T) {
	eng := New()
	n, err := eng.CountWhere([]float32{1, 5, 3, 8, 2, 9, 4},
		engine.Predicate{Op: engine.GT, Threshold: 5})
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestSortProperties(t *testing.T) {
	eng := New()

	// 37 is deliberately not a power of two.
	for _, n := range []int{0, 1, 2, 37, 64, 1000} {
		for _, ascending := range []bool{true, false} {
			values := randomColumn(t, n, int64(n))
			sorted, err := eng.Sort(values, ascending)
			require.NoError(t, err)
			requireSorted(t, sorted, ascending)
			requirePermutation(t, values, sorted)
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	eng := New()
	values := randomColumn(t, 128, 3)

	once, err := eng.Sort(values, true)
	require.NoError(t, err)
	twice, err := eng.Sort(once, true)
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	eng := New()
	values := []float32{3, 1, 2}
	_, err := eng.Sort(values, true)
	require.NoError(t, err)
	require.Equal(t, []float32{3, 1, 2}, values)
}

func TestFilterPreservesOrder(t *testing.T) {
	eng := New()

	got, err := eng.Filter([]float32{1, 5, 3, 8, 2, 9, 4},
		engine.Predicate{Op: engine.GT, Threshold: 5})
	require.NoError(t, err)
	require.Equal(t, []float32{8, 9}, got)
}

func TestFilterEmptyInput(t *testing.T) {
	eng := New()
	for _, op := range []engine.CompareOp{engine.EQ, engine.NE, engine.LT, engine.LE, engine.GT, engine.GE} {
		got, err := eng.Filter(nil, engine.Predicate{Op: op, Threshold: 1})
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

func TestFilterRoundTrip(t *testing.T) {
	eng := New()
	values := randomColumn(t, 200, 11)

	once, err := eng.Filter(values, engine.Predicate{Op: engine.GT, Threshold: 0})
	require.NoError(t, err)

	// A predicate that accepts everything returns the same sequence.
	again, err := eng.Filter(once, engine.Predicate{Op: engine.GE, Threshold: float32(math.Inf(-1))})
	require.NoError(t, err)
	require.Equal(t, once, again)
}
