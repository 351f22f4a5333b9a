// Package lvca synthesizes binary covering arrays for combinatorial
// interaction testing: row sets over n boolean parameters in which every
// non-all-zero tau-way value assignment appears at least once, under a
// per-row weight constraint k.
//
// 🚀 What is lvca?
//
//	A small, deterministic engine with three interchangeable construction
//	strategies sharing one coverage data model and one result contract:
//		• adaptive/ — frequency-balanced adaptive sampling
//		• greedy/   — randomized greedy over sampled candidate rows
//		• anneal/   — simulated annealing with incremental delta tracking
//		              and row-count reduction toward the lower bound
//		• cover/    — combo universe, coverage oracle, multiplicity
//		              counter, minimizer, lower bound, Result contract
//
// ✨ Why choose lvca?
//
//   - Reproducible – every run is a pure function of (n, tau, k, seed, options)
//   - Honest results – stagnation and recovery exhaustion are reported
//     through the result contract, never raised as errors
//   - Pure Go – no cgo, no I/O, no goroutines; runs are embarrassingly
//     parallel at the caller's discretion
//
// Quick example:
//
//	res, err := anneal.Construct(6, 2, 3, anneal.DefaultOptions())
//	if err != nil { ... }          // invalid (n, tau, k)
//	if res.Covered { ... }         // res.CoveringArray covers everything
//
// Heuristic minimality only: no strategy guarantees a globally minimum
// array, and the engine is binary-alphabet only by design.
package lvca
