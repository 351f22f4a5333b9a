package cover_test

import (
	"testing"

	"github.com/katalvlaran/lvca/cover"
)

// Benchmarks for the oracle hot path: coverage evaluation dominates every
// constructor, so regressions here hit all three strategies.

func BenchmarkRowCoverage_N16Tau2(b *testing.B) {
	idx := cover.IndexCombos(16, 2)
	row := cover.RandomRow(cover.NewRNG(1), 16, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cover.RowCoverage(row, idx)
	}
}

func BenchmarkRowCoverage_N12Tau3(b *testing.B) {
	idx := cover.IndexCombos(12, 3)
	row := cover.RandomRow(cover.NewRNG(1), 12, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cover.RowCoverage(row, idx)
	}
}

func BenchmarkMinimize_N10Tau2(b *testing.B) {
	idx := cover.IndexCombos(10, 2)
	rng := cover.NewRNG(3)
	rows := make([]cover.Row, 0, 40)
	seen := make(map[string]struct{})
	for len(rows) < 40 {
		r := cover.RandomRow(rng, 10, 3)
		if _, dup := seen[r.Key()]; dup {
			continue
		}
		seen[r.Key()] = struct{}{}
		rows = append(rows, r)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cover.Minimize(rows, idx)
	}
}
