// Package anneal defines options and defaults for the simulated
// annealing constructor.
package anneal

// Default temperature schedule and sizing constants; see Options.
const (
	defaultInitialTemp = 10.0
	defaultCooling     = 0.995
	defaultTempFloor   = 1e-5

	// Recovery-step auto-sizing: clamp(100*initRows, min, max).
	minRecoverySteps = 20000
	maxRecoverySteps = 120000

	// uniqueRowAttemptsFactor bounds initial unique-row generation:
	// at most factor*count draws before the init set is used as-is.
	uniqueRowAttemptsFactor = 100
)

// Options configures Construct.
//
// Fields:
//   - Seed          — RNG seed; 0 selects the fixed default seed.
//   - InitialTemp   — starting temperature T0 of each recovery loop.
//   - Cooling       — geometric cooling factor applied every step.
//   - TempFloor     — lower clamp on T; keeps exp((curr-new)/T) well-posed.
//   - RecoverySteps — local-search step cap per recovery loop;
//     0 => clamp(100*initRows, 20000, 120000).
//   - InitRows      — initial row-set size; 0 => lowerBound * 2^(tau-1),
//     capped at C(n,k) distinct weight-k rows.
//
// Non-positive InitialTemp/Cooling/TempFloor fall back to the defaults.
type Options struct {
	Seed          int64
	InitialTemp   float64
	Cooling       float64
	TempFloor     float64
	RecoverySteps int
	InitRows      int
}

// DefaultOptions returns the canonical schedule: T0=10, cooling 0.995,
// floor 1e-5, auto-sized init rows and recovery steps.
func DefaultOptions() Options {
	return Options{
		InitialTemp: defaultInitialTemp,
		Cooling:     defaultCooling,
		TempFloor:   defaultTempFloor,
	}
}
