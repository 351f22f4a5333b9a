// Package anneal builds binary covering arrays by simulated annealing
// with incremental coverage-delta tracking and iterative row-count
// reduction toward the theoretical lower bound.
//
// 🚀 Idea:
//
//	Start from an oversized set of unique random weight-k rows. While
//	coverage is incomplete, perturb one row per step by a 1-bit/0-bit
//	swap and accept by the Metropolis criterion under geometric cooling.
//	Each time full coverage is reached, remember the set, delete one row
//	at random and try to recover - until the lower bound is hit or a
//	recovery attempt exhausts its step budget.
//
// ✨ Key properties:
//   - deterministic given (n, tau, k, Options.Seed, schedule)
//   - every row has weight exactly k; rows stay pairwise distinct
//   - coverage deltas are evaluated against a multiplicity counter,
//     never by recomputing coverage inside the loop
//   - recovery exhaustion returns the last fully covering set (or a
//     partial result), never an error
//
// ⚙️ Usage:
//
//	opts := anneal.DefaultOptions() // T0=10, cooling=0.995, floor=1e-5
//	opts.Seed = 1
//	res, err := anneal.Construct(6, 2, 3, opts)
//	if err == nil && res.ReachedLowerBound {
//	  // res.NumRows == res.LowerBound
//	}
package anneal
