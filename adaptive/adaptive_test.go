// Package adaptive_test exercises the adaptive sampling constructor via
// the public API: end-to-end coverage, weight and distinctness
// invariants, determinism, and validation outcomes.
package adaptive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvca/adaptive"
	"github.com/katalvlaran/lvca/cover"
)

// requireFullCover recomputes coverage from scratch and asserts the
// returned array covers the whole (n, tau) universe.
func requireFullCover(t *testing.T, res cover.Result) {
	t.Helper()

	idx := cover.IndexCombos(res.N, res.Tau)
	union := make(map[cover.Combo]struct{})
	for _, r := range res.CoveringArray {
		for combo := range cover.RowCoverage(r, idx) {
			union[combo] = struct{}{}
		}
	}
	require.Len(t, union, cover.UniverseSize(res.N, res.Tau))
}

// requireRowInvariants asserts the weight bound and pairwise distinctness.
func requireRowInvariants(t *testing.T, rows []cover.Row, n, maxWeight int) {
	t.Helper()

	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		require.Len(t, r, n)
		w := r.Weight()
		require.GreaterOrEqual(t, w, 1)
		require.LessOrEqual(t, w, maxWeight)

		_, dup := seen[r.Key()]
		require.False(t, dup, "duplicate row %s", r)
		seen[r.Key()] = struct{}{}
	}
}

func TestConstruct_EndToEnd_N6Tau2K3(t *testing.T) {
	opts := adaptive.DefaultOptions()
	opts.Seed = 1

	res, err := adaptive.Construct(6, 2, 3, opts)
	require.NoError(t, err)
	require.True(t, res.Covered)
	require.Equal(t, 1.0, res.CoveragePercentage)
	require.Equal(t, len(res.CoveringArray), res.NumRows)

	lb, err := cover.LowerBound(6, 2, 3)
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.NumRows, lb)

	requireFullCover(t, res)
	requireRowInvariants(t, res.CoveringArray, 6, 3)
	require.GreaterOrEqual(t, res.Time, 0.0)
}

func TestConstruct_Deterministic(t *testing.T) {
	opts := adaptive.DefaultOptions()
	opts.Seed = 99

	a, err := adaptive.Construct(8, 2, 3, opts)
	require.NoError(t, err)
	b, err := adaptive.Construct(8, 2, 3, opts)
	require.NoError(t, err)

	require.Equal(t, a.CoveringArray, b.CoveringArray)
	require.Equal(t, a.NumRows, b.NumRows)
	require.Equal(t, a.Covered, b.Covered)
}

func TestConstruct_WeightExactMode(t *testing.T) {
	opts := adaptive.DefaultOptions()
	opts.Seed = 5
	opts.Mode = adaptive.WeightExact

	res, err := adaptive.Construct(6, 2, 3, opts)
	require.NoError(t, err)
	require.True(t, res.Covered)
	for _, r := range res.CoveringArray {
		require.Equal(t, 3, r.Weight())
	}
	requireFullCover(t, res)
}

func TestConstruct_MinimizedOutputIsIrreducible(t *testing.T) {
	opts := adaptive.DefaultOptions()
	opts.Seed = 3

	res, err := adaptive.Construct(7, 2, 3, opts)
	require.NoError(t, err)
	require.True(t, res.Covered)

	// The post-pass already ran; a second pass must remove nothing.
	idx := cover.IndexCombos(7, 2)
	require.Equal(t, res.CoveringArray, cover.Minimize(res.CoveringArray, idx))
}

func TestConstruct_SkipMinimize(t *testing.T) {
	base := adaptive.DefaultOptions()
	base.Seed = 3

	skip := base
	skip.SkipMinimize = true

	minimized, err := adaptive.Construct(7, 2, 3, base)
	require.NoError(t, err)
	raw, err := adaptive.Construct(7, 2, 3, skip)
	require.NoError(t, err)

	// Same seed, same appended rows; minimization can only shrink.
	require.True(t, raw.Covered)
	require.LessOrEqual(t, minimized.NumRows, raw.NumRows)
	requireFullCover(t, raw)
}

func TestConstruct_ValidationError(t *testing.T) {
	// tau > k must be rejected up front: those combos are uncoverable.
	res, err := adaptive.Construct(6, 3, 2, adaptive.DefaultOptions())
	require.ErrorIs(t, err, cover.ErrWeightRange)
	require.False(t, res.Covered)
	require.NotEmpty(t, res.Error)
	require.Zero(t, res.NumRows)
	require.Empty(t, res.CoveringArray)

	_, err = adaptive.Construct(0, 1, 1, adaptive.DefaultOptions())
	require.ErrorIs(t, err, cover.ErrNonPositiveN)
}

func TestConstruct_InputsEchoed(t *testing.T) {
	res, err := adaptive.Construct(5, 2, 2, adaptive.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 5, res.N)
	require.Equal(t, 2, res.Tau)
	require.Equal(t, 2, res.K)
}
