// Package cover provides the shared data model of the covering-array
// engine: the combo universe, the row-coverage oracle, the multiplicity
// counter, the redundancy-pruning minimizer, the theoretical lower bound,
// and the Result contract every constructor returns.
//
// 🚀 What is a covering array here?
//
//	A set of binary rows over n boolean parameters such that every
//	tau-way value assignment over distinct parameters - except the
//	all-zero one - appears in at least one row, while each row carries
//	at most (or exactly) k ones.
//
// ✨ Building blocks:
//   - IndexCombos / Universe / UniverseSize — enumerate the coverage target
//   - RowCoverage / ComboOf — the oracle mapping a row to satisfied combos
//   - Counter / BuildCoverage — combo multiplicities for delta tracking
//   - Minimize — multiplicity-based redundancy pruning (insertion order)
//   - LowerBound — ceil(C(n,tau)/C(k,tau)), domain tau <= k <= n-tau+1
//   - NewRNG / SampleIndices / RandomRow — deterministic seeded sampling
//
// ⚙️ Usage:
//
//	idx := cover.IndexCombos(n, tau)          // precompute once per run
//	uncovered := cover.Universe(n, tau)       // coverage target
//	covSet := cover.RowCoverage(row, idx)     // what one row satisfies
//	rows = cover.Minimize(rows, idx)          // drop redundant rows
//
// All functions are pure or operate on caller-owned state; the package
// holds no globals, performs no I/O and spawns no goroutines, so
// independent runs are embarrassingly parallel at the caller's discretion.
package cover
