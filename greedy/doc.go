// Package greedy builds binary covering arrays by randomized greedy
// selection over sampled candidate rows.
//
// 🚀 Idea:
//
//	Instead of enumerating the full weight-constrained row space, each
//	step scores a fixed random sample of candidate rows against the
//	uncovered combo set and keeps the best. SampleBudget trades runtime
//	for solution quality.
//
// ✨ Key properties:
//   - deterministic given (n, tau, k, Options.Seed, SampleBudget)
//   - row weight always in [1, k]; appended rows are pairwise distinct
//   - stagnation is a reported outcome (Covered=false), not an error
//
// ⚙️ Usage:
//
//	opts := greedy.DefaultOptions() // 5000 candidates per row
//	opts.Seed = 1
//	res, err := greedy.Construct(6, 2, 3, opts)
package greedy
