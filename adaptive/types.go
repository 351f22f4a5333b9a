// Package adaptive defines options for the adaptive sampling constructor.
package adaptive

// WeightMode selects how many ones each generated row carries.
//
//   - WeightAtMost — draw c uniformly from [1, k] per row (default).
//   - WeightExact  — every row carries exactly k ones.
type WeightMode int

const (
	// WeightAtMost draws the ones count uniformly from [1, k] per row.
	WeightAtMost WeightMode = iota

	// WeightExact fixes the ones count of every row to k.
	WeightExact
)

// defaultMaxStagnation bounds consecutive rejected (duplicate) rows
// before the run gives up and reports partial coverage.
const defaultMaxStagnation = 1000

// Options configures Construct.
//
// Fields:
//   - Seed          — RNG seed; 0 selects the fixed default seed.
//   - Mode          — WeightAtMost (default) or WeightExact.
//   - MaxStagnation — consecutive duplicate rows tolerated before the run
//     stops with partial coverage; values < 1 fall back to the default.
//   - SkipMinimize  — when true, the redundancy-pruning post-pass is not
//     applied to a fully covering array.
type Options struct {
	Seed          int64
	Mode          WeightMode
	MaxStagnation int
	SkipMinimize  bool
}

// DefaultOptions returns the canonical configuration: WeightAtMost rows,
// default stagnation bound, minimization enabled.
func DefaultOptions() Options {
	return Options{MaxStagnation: defaultMaxStagnation}
}
