// Package anneal - simulated annealing covering-array constructor.
//
// Three phases over a row set of fixed weight k:
//
//   - Init: generate InitRows unique random weight-k rows, oversized
//     relative to the theoretical lower bound so full coverage is likely.
//   - Recovery loop: while coverage is incomplete, perturb one random row
//     per step by swapping a single 1-bit with a single 0-bit (weight is
//     invariant under the move), evaluate the coverage delta incrementally
//     against the multiplicity counter, and accept by the Metropolis
//     criterion under a geometrically cooled, floored temperature.
//   - Shrink loop: whenever coverage is complete, snapshot the row set as
//     best, remove one random row and re-enter recovery; stop at the
//     theoretical lower bound or on the first failed recovery.
//
// Delta evaluation never recomputes coverage from scratch inside the loop:
// replacing row r by candidate c loses the combos only r covered that c
// does not retain, and gains the combos c covers that nothing covered
// before. The counter, the per-row coverage cache and the covered count
// are updated together on acceptance, so len(counter) always equals the
// covered-combo count of the current row set.
//
// Bounded-search discipline: duplicate or infeasible candidates skip the
// step (the temperature still cools), unique-row generation caps its
// attempts, and every loop has an explicit step budget.
//
// Complexity: O(steps * C(n,tau) * tau) per recovery loop plus one
// O(rows * C(n,tau) * tau) coverage rebuild per shrink round.
package anneal

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvca/cover"
)

// acceptHook, when non-nil, observes the run after every accepted move.
// White-box test seam; nil in production.
var acceptHook func(rows []cover.Row, counter cover.Counter)

// Construct builds a covering array for (n, tau, k) by simulated
// annealing with iterative row-count reduction. Every row carries exactly
// k ones.
//
// Contracts: n >= 1, 1 <= tau <= n, tau <= k <= n - tau + 1 (the lower
// bound domain). Violations are returned as sentinel errors from cover
// and mirrored into Result.Error; no structurally valid input panics.
//
// Outcomes:
//   - Covered=true, ReachedLowerBound=true: best set hit the bound.
//   - Covered=true: recovery failed after at least one full cover; the
//     last fully covering set is returned.
//   - Covered=false: no fully covering set was ever reached within the
//     step budget; the final partial set is returned with NumRows absent.
func Construct(n, tau, k int, opts Options) (cover.Result, error) {
	start := time.Now()
	res := cover.Result{N: n, Tau: tau, K: k}

	lb, err := cover.LowerBound(n, tau, k)
	if err != nil {
		res.Error = err.Error()
		res.Time = time.Since(start).Seconds()

		return res, err
	}
	res.LowerBound = lb

	t0 := opts.InitialTemp
	if t0 <= 0 {
		t0 = defaultInitialTemp
	}
	cooling := opts.Cooling
	if cooling <= 0 {
		cooling = defaultCooling
	}
	floor := opts.TempFloor
	if floor <= 0 {
		floor = defaultTempFloor
	}

	rng := cover.NewRNG(opts.Seed)
	idxCombos := cover.IndexCombos(n, tau)
	uSize := cover.UniverseSize(n, tau)

	// Initial set size: a power-of-two multiple of the lower bound,
	// capped at the number of distinct weight-k rows.
	maxRows := cover.Binomial(n, k)
	initRows := opts.InitRows
	if initRows <= 0 {
		initRows = lb
		for i := 1; i < tau && initRows < maxRows; i++ {
			initRows <<= 1
		}
	}
	if initRows > maxRows {
		initRows = maxRows
	}

	steps := opts.RecoverySteps
	if steps <= 0 {
		steps = 100 * initRows
		if steps < minRecoverySteps {
			steps = minRecoverySteps
		}
		if steps > maxRecoverySteps {
			steps = maxRecoverySteps
		}
	}

	curr := uniqueRandomRows(rng, n, k, initRows)

	var (
		best    []cover.Row
		reached bool
	)

	for {
		// Per-round rebuild; inside the recovery loop everything is
		// updated incrementally.
		cache, counter := cover.BuildCoverage(curr, idxCombos)
		coveredCount := counter.Covered()

		if coveredCount < uSize {
			if !recoverCoverage(rng, curr, cache, counter, idxCombos, recoveryParams{
				uSize:   uSize,
				steps:   steps,
				t0:      t0,
				cooling: cooling,
				floor:   floor,
			}) {
				break
			}
		}

		// Fully covered: snapshot and try one row fewer.
		best = cloneRows(curr)
		if len(best) == lb {
			reached = true
			break
		}
		drop := rng.Intn(len(curr))
		curr = append(curr[:drop], curr[drop+1:]...)
	}

	final := best
	if len(final) == 0 {
		final = curr
	}
	finalCovered := unionSize(final, idxCombos)

	res.Covered = finalCovered == uSize
	if res.Covered {
		res.NumRows = len(final)
	}
	res.ReachedLowerBound = reached
	if uSize > 0 {
		res.CoveragePercentage = float64(finalCovered) / float64(uSize)
	}
	res.CoveringArray = final
	res.Time = time.Since(start).Seconds()

	return res, nil
}

// recoveryParams bundles the loop constants of one recovery attempt.
type recoveryParams struct {
	uSize   int
	steps   int
	t0      float64
	cooling float64
	floor   float64
}

// recoverCoverage runs the annealed local search until full coverage or
// step exhaustion. curr, cache and counter are mutated in place and stay
// mutually consistent after every accepted move. Returns true on full
// coverage.
func recoverCoverage(
	rng *rand.Rand,
	curr []cover.Row,
	cache []map[cover.Combo]struct{},
	counter cover.Counter,
	idxCombos [][]int,
	p recoveryParams,
) bool {
	coveredCount := counter.Covered()
	if coveredCount == p.uSize {
		return true
	}
	if len(curr) == 0 {
		return false
	}

	// Row keys of the current set; a candidate equal to any existing row
	// is rejected to keep the array duplicate-free.
	rowKeys := make(map[string]struct{}, len(curr))
	for _, r := range curr {
		rowKeys[r.Key()] = struct{}{}
	}

	n := len(curr[0])
	ones := make([]int, 0, n)
	zeros := make([]int, 0, n)

	temp := p.t0
	var (
		step, ri         int
		toOne, toZero    int
		lost, gained     int
		newCoveredCount  int
		target, cand     cover.Row
		oldCov, candCov  map[cover.Combo]struct{}
		combo            cover.Combo
		retained, accept bool
	)
	for step = 0; step < p.steps; step++ {
		temp *= p.cooling
		if temp < p.floor {
			temp = p.floor
		}

		// One swap candidate per step: 1-bit -> 0, 0-bit -> 1.
		ri = rng.Intn(len(curr))
		target = curr[ri]
		ones = ones[:0]
		zeros = zeros[:0]
		for i, v := range target {
			if v != 0 {
				ones = append(ones, i)
			} else {
				zeros = append(zeros, i)
			}
		}
		if len(ones) == 0 || len(zeros) == 0 {
			// Infeasible move on this row; skip the step.
			continue
		}
		toOne = zeros[rng.Intn(len(zeros))]
		toZero = ones[rng.Intn(len(ones))]

		cand = target.Clone()
		cand[toOne] = 1
		cand[toZero] = 0
		if _, dup := rowKeys[cand.Key()]; dup {
			continue
		}

		// Incremental delta: combos uniquely covered by target that the
		// candidate does not retain are lost; combos the candidate covers
		// that currently have multiplicity zero are gained.
		oldCov = cache[ri]
		candCov = cover.RowCoverage(cand, idxCombos)

		lost = 0
		for combo = range oldCov {
			if counter[combo] == 1 {
				if _, retained = candCov[combo]; !retained {
					lost++
				}
			}
		}
		gained = 0
		for combo = range candCov {
			if counter[combo] == 0 {
				gained++
			}
		}
		newCoveredCount = coveredCount - lost + gained

		// Metropolis: accept strict improvement of the uncovered count,
		// otherwise accept with probability exp(-delta/T).
		accept = newCoveredCount > coveredCount
		if !accept {
			accept = rng.Float64() < math.Exp(float64(newCoveredCount-coveredCount)/temp)
		}
		if !accept {
			continue
		}

		delete(rowKeys, target.Key())
		rowKeys[cand.Key()] = struct{}{}
		curr[ri] = cand
		counter.Remove(oldCov)
		counter.Add(candCov)
		cache[ri] = candCov
		coveredCount = newCoveredCount

		if acceptHook != nil {
			acceptHook(curr, counter)
		}

		if coveredCount == p.uSize {
			return true
		}
	}

	return false
}

// uniqueRandomRows draws count distinct weight-k rows of length n.
// Attempts are capped, so near-exhaustive requests (count close to
// C(n,k)) terminate even when the RNG keeps re-drawing known rows; the
// result may then hold fewer than count rows.
func uniqueRandomRows(rng *rand.Rand, n, k, count int) []cover.Row {
	rows := make([]cover.Row, 0, count)
	seen := make(map[string]struct{}, count)

	maxAttempts := uniqueRowAttemptsFactor * count
	var attempts int
	for attempts = 0; len(rows) < count && attempts < maxAttempts; attempts++ {
		row := cover.RandomRow(rng, n, k)
		if _, dup := seen[row.Key()]; dup {
			continue
		}
		seen[row.Key()] = struct{}{}
		rows = append(rows, row)
	}

	return rows
}

// cloneRows deep-copies a row set.
func cloneRows(rows []cover.Row) []cover.Row {
	out := make([]cover.Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}

	return out
}

// unionSize recomputes the covered-combo count of rows from scratch.
// Used once per run for the final result, never inside the search loops.
func unionSize(rows []cover.Row, idxCombos [][]int) int {
	union := make(map[cover.Combo]struct{})
	for _, r := range rows {
		for combo := range cover.RowCoverage(r, idxCombos) {
			union[combo] = struct{}{}
		}
	}

	return len(union)
}
