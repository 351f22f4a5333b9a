// Package cover - RNG utilities shared by all constructors.
//
// Randomness policy:
//   - Determinism: one *rand.Rand per run, created from the explicit seed;
//     same (n, tau, k, seed, options) => identical output.
//   - seed == 0 selects a fixed default seed rather than a time source,
//     so the zero value of every Options struct is still reproducible.
//   - math/rand.Rand is not goroutine-safe; a run owns its generator
//     exclusively and never shares it.
package cover

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand for the given seed.
// Policy: seed==0 => defaultRNGSeed; otherwise the seed is used verbatim.
func NewRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// SampleIndices draws c distinct elements from pool without replacement
// using a partial Fisher-Yates pass over a copy. c is clamped to
// [0, len(pool)], so the call never panics on an oversized request.
//
// Complexity: O(len(pool)) time and space.
func SampleIndices(rng *rand.Rand, pool []int, c int) []int {
	if c > len(pool) {
		c = len(pool)
	}
	if c <= 0 {
		return nil
	}

	buf := make([]int, len(pool))
	copy(buf, pool)

	var i, j int
	for i = 0; i < c; i++ {
		j = i + rng.Intn(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf[:c]
}

// RandomRow returns a length-n row with exactly c ones placed uniformly
// at random. c is clamped to [0, n].
//
// Complexity: O(n).
func RandomRow(rng *rand.Rand, n, c int) Row {
	row := make(Row, n)

	// Partial Fisher-Yates over 0..n-1 picks the c one-positions.
	pos := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		pos[i] = i
	}
	if c > n {
		c = n
	}
	for i = 0; i < c; i++ {
		j = i + rng.Intn(n-i)
		pos[i], pos[j] = pos[j], pos[i]
		row[pos[i]] = 1
	}

	return row
}
