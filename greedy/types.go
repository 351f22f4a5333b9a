// Package greedy defines options for the randomized greedy constructor.
package greedy

import "errors"

// ErrSampleBudget is returned when Options.SampleBudget is negative.
// Zero means "use the default budget".
var ErrSampleBudget = errors.New("greedy: sample budget must be positive")

// defaultSampleBudget is the number of candidate rows scored per
// iteration when Options.SampleBudget is left at zero.
const defaultSampleBudget = 5000

// Options configures Construct.
//
// Fields:
//   - Seed         — RNG seed; 0 selects the fixed default seed.
//   - SampleBudget — candidate rows generated and scored per appended row;
//     a tunable trade-off between runtime and solution quality.
//     0 => defaultSampleBudget; negative => ErrSampleBudget.
type Options struct {
	Seed         int64
	SampleBudget int
}

// DefaultOptions returns the canonical configuration.
func DefaultOptions() Options {
	return Options{SampleBudget: defaultSampleBudget}
}
