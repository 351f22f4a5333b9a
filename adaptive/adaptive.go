// Package adaptive - frequency-balanced adaptive sampling constructor.
//
// Each iteration builds one row: parameter indices are ranked by how often
// they have been set to one so far (least-used first), a random-sized
// least-used group receives roughly half of the row's ones, and the rest
// are sampled from the remaining indices. Rarely-used parameters are
// therefore pulled into new rows first, which balances column frequencies
// and speeds up coverage of the remaining combos.
//
// Policy decisions (one canonical variant):
//   - Ones count per row: c ~ U[1, k] (WeightAtMost) or c = k (WeightExact).
//   - Duplicate rows are skipped, never retried in place; a bounded run of
//     consecutive duplicates (Options.MaxStagnation) terminates the run
//     with partial coverage, so the loop cannot spin forever once the
//     bounded-weight row space is exhausted.
//   - On full coverage the Minimize post-pass prunes redundant rows.
//
// Complexity: O(rows * (n log n + C(n,tau) * tau)) plus the final
// minimization pass.
package adaptive

import (
	"sort"
	"time"

	"github.com/katalvlaran/lvca/cover"
)

// Construct builds a covering array for (n, tau, k) by adaptive sampling.
//
// Contracts: n >= 1, 1 <= tau <= n, tau <= k <= n. Violations are
// returned as sentinel errors from cover and mirrored into Result.Error;
// no structurally valid input panics.
//
// The returned Result always echoes the inputs and reports elapsed time;
// Covered=false with a shorter-than-universe array signals stagnation.
func Construct(n, tau, k int, opts Options) (cover.Result, error) {
	start := time.Now()
	res := cover.Result{N: n, Tau: tau, K: k}

	if err := cover.ValidateParams(n, tau, k); err != nil {
		res.Error = err.Error()
		res.Time = time.Since(start).Seconds()

		return res, err
	}

	maxStagnation := opts.MaxStagnation
	if maxStagnation < 1 {
		maxStagnation = defaultMaxStagnation
	}

	rng := cover.NewRNG(opts.Seed)
	idxCombos := cover.IndexCombos(n, tau)
	uncovered := cover.Universe(n, tau)
	uSize := len(uncovered)

	var (
		rows []cover.Row
		seen = make(map[string]struct{})
		// freq counts how often each index has been set to one across the
		// accepted rows; owned by this run, never shared.
		freq     = make([]int, n)
		order    = make([]int, n)
		stagnant int
	)
	for i := range order {
		order[i] = i
	}

	for len(uncovered) > 0 {
		// 1) Ones budget for this row.
		c := k
		if opts.Mode == WeightAtMost {
			c = 1 + rng.Intn(k)
		}

		// 2) Rank indices by ascending ones frequency, ties by index so
		//    the ordering is deterministic.
		sort.SliceStable(order, func(a, b int) bool {
			if freq[order[a]] != freq[order[b]] {
				return freq[order[a]] < freq[order[b]]
			}

			return order[a] < order[b]
		})
		m := 1 + rng.Intn((n+1)/2)
		least := order[:m]
		others := order[m:]

		// 3) Split c between the groups: about half to the least-used
		//    group, the remainder to the others, clipped to group sizes.
		//    Clipping keeps the weight bound; it never raises it.
		c1 := (c + 1) / 2
		if c1 > m {
			c1 = m
		}
		c2 := c - c1
		if c2 > len(others) {
			c2 = len(others)
		}

		row := make(cover.Row, n)
		for _, i := range cover.SampleIndices(rng, least, c1) {
			row[i] = 1
		}
		for _, i := range cover.SampleIndices(rng, others, c2) {
			row[i] = 1
		}

		// 4) Skip duplicates; a bounded streak of them ends the run.
		if _, dup := seen[row.Key()]; dup {
			stagnant++
			if stagnant >= maxStagnation {
				break
			}
			continue
		}
		stagnant = 0

		seen[row.Key()] = struct{}{}
		rows = append(rows, row)
		for i, v := range row {
			if v != 0 {
				freq[i]++
			}
		}
		for combo := range cover.RowCoverage(row, idxCombos) {
			delete(uncovered, combo)
		}
	}

	covered := len(uncovered) == 0
	if covered && !opts.SkipMinimize {
		rows = cover.Minimize(rows, idxCombos)
	}

	res.Covered = covered
	if covered {
		res.NumRows = len(rows)
	}
	res.CoveragePercentage = float64(uSize-len(uncovered)) / float64(uSize)
	res.CoveringArray = rows
	res.Time = time.Since(start).Seconds()

	return res, nil
}
