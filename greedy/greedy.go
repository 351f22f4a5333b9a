// Package greedy - randomized greedy covering-array constructor.
//
// Each iteration draws SampleBudget random weight-constrained rows, scores
// every candidate by how many currently-uncovered combos it would newly
// cover, and appends the best one. The scan is deterministic: ties keep
// the earliest generated candidate, so a seed fully determines the run.
//
// Stagnation (no candidate with a positive score) terminates the run and
// is reported through Result.Covered=false - it is a sampling-budget
// signal, not an error. Appended rows are implicitly distinct: a duplicate
// of an existing row covers nothing new and can never score above zero.
//
// Complexity: O(rows * SampleBudget * C(n,tau) * tau).
package greedy

import (
	"time"

	"github.com/katalvlaran/lvca/cover"
)

// Construct builds a covering array for (n, tau, k) by sampled greedy
// selection. Row weights are drawn uniformly from [1, k].
//
// Contracts: n >= 1, 1 <= tau <= n, tau <= k <= n, SampleBudget >= 0.
// Violations are returned as sentinel errors and mirrored into
// Result.Error; no structurally valid input panics.
func Construct(n, tau, k int, opts Options) (cover.Result, error) {
	start := time.Now()
	res := cover.Result{N: n, Tau: tau, K: k}

	if err := cover.ValidateParams(n, tau, k); err != nil {
		res.Error = err.Error()
		res.Time = time.Since(start).Seconds()

		return res, err
	}
	budget := opts.SampleBudget
	if budget == 0 {
		budget = defaultSampleBudget
	}
	if budget < 0 {
		res.Error = ErrSampleBudget.Error()
		res.Time = time.Since(start).Seconds()

		return res, ErrSampleBudget
	}

	rng := cover.NewRNG(opts.Seed)
	idxCombos := cover.IndexCombos(n, tau)
	uncovered := cover.Universe(n, tau)
	uSize := len(uncovered)

	var rows []cover.Row
	for len(uncovered) > 0 {
		var (
			bestRow   cover.Row
			bestScore = -1
		)
		var (
			s     int
			c     int
			row   cover.Row
			score int
			combo cover.Combo
			ok    bool
		)
		for s = 0; s < budget; s++ {
			c = 1 + rng.Intn(k)
			row = cover.RandomRow(rng, n, c)

			score = 0
			for _, idxs := range idxCombos {
				if combo, ok = cover.ComboOf(row, idxs); !ok {
					continue
				}
				if _, ok = uncovered[combo]; ok {
					score++
				}
			}
			if score > bestScore {
				bestScore = score
				bestRow = row
			}
		}

		if bestScore <= 0 {
			// Stagnation: the sampling budget produced no progress.
			break
		}

		rows = append(rows, bestRow)
		for combo := range cover.RowCoverage(bestRow, idxCombos) {
			delete(uncovered, combo)
		}
	}

	covered := len(uncovered) == 0
	res.Covered = covered
	if covered {
		res.NumRows = len(rows)
	}
	res.CoveragePercentage = float64(uSize-len(uncovered)) / float64(uSize)
	res.CoveringArray = rows
	res.Time = time.Since(start).Seconds()

	return res, nil
}
