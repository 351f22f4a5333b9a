package cover_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvca/cover"
)

func TestRow_WeightCloneKeyString(t *testing.T) {
	r := rowOf("1010")
	require.Equal(t, 2, r.Weight())
	require.Equal(t, "1010", r.String())
	require.Equal(t, 0, rowOf("0000").Weight())

	c := r.Clone()
	require.Equal(t, r, c)
	c[0] = 0
	require.Equal(t, 2, r.Weight(), "clone must not alias the original")

	require.Equal(t, rowOf("1010").Key(), r.Key())
	require.NotEqual(t, rowOf("0101").Key(), r.Key())
}

func TestValidateParams_Table(t *testing.T) {
	cases := []struct {
		name      string
		n, tau, k int
		want      error
	}{
		{"ok", 6, 2, 3, nil},
		{"ok_tau_equals_k", 4, 2, 2, nil},
		{"ok_k_equals_n", 4, 2, 4, nil},
		{"zero_n", 0, 1, 1, cover.ErrNonPositiveN},
		{"tau_zero", 4, 0, 2, cover.ErrTauRange},
		{"tau_above_n", 4, 5, 4, cover.ErrTauRange},
		{"k_below_tau", 6, 3, 2, cover.ErrWeightRange},
		{"k_above_n", 4, 2, 5, cover.ErrWeightRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cover.ValidateParams(tc.n, tc.tau, tc.k)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestResult_JSONContractFieldNames(t *testing.T) {
	res := cover.Result{
		N: 6, Tau: 2, K: 3,
		NumRows:            7,
		LowerBound:         5,
		Covered:            true,
		CoveragePercentage: 1.0,
		Time:               0.25,
		CoveringArray:      []cover.Row{rowOf("111000")},
	}

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{
		"n", "tau", "k", "num_rows", "lower_bound", "reached_lower_bound",
		"covered", "coverage_percentage", "time", "covering_array",
	} {
		require.Containsf(t, m, key, "contract field %q", key)
	}
	require.NotContains(t, m, "error", "error is omitted when empty")

	// Rows marshal as 0/1 arrays, not base64 byte strings.
	arr, ok := m["covering_array"].([]any)
	require.True(t, ok)
	require.Len(t, arr, 1)
	require.Equal(t, []any{1.0, 1.0, 1.0, 0.0, 0.0, 0.0}, arr[0])
}

func TestResult_JSONOmitsAbsentFields(t *testing.T) {
	// Uncovered run: num_rows absent; non-SA run: lower_bound absent.
	res := cover.Result{
		N: 6, Tau: 2, K: 3,
		Covered:            false,
		CoveragePercentage: 0.8,
		Error:              cover.ErrWeightRange.Error(),
	}

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	require.NotContains(t, m, "num_rows")
	require.NotContains(t, m, "lower_bound")
	require.Contains(t, m, "error")
	require.Equal(t, false, m["covered"])
}
