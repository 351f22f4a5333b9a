// Package adaptive builds binary covering arrays by frequency-balanced
// adaptive sampling.
//
// 🚀 Idea:
//
//	Rows are generated one at a time. Parameters that have appeared as
//	one least often are preferred when placing the next row's ones, so
//	column frequencies stay balanced and the tail of rare combos is
//	covered sooner than with uniform sampling.
//
// ✨ Key properties:
//   - deterministic given (n, tau, k, Options.Seed)
//   - weight bound never violated: row weight in [1, k] (WeightAtMost)
//     or exactly k (WeightExact)
//   - bounded duplicate streak guarantees termination; stagnation is
//     reported via Result.Covered=false, never as an error
//   - fully covering arrays are pruned by cover.Minimize
//
// ⚙️ Usage:
//
//	res, err := adaptive.Construct(6, 2, 3, adaptive.DefaultOptions())
//	if err != nil {
//	  // invalid (n, tau, k): see cover sentinels
//	}
//	fmt.Println(res.NumRows, res.CoveragePercentage)
package adaptive
