// Package cover - combo universe enumeration and the row-coverage oracle.
//
// The universe for (n, tau) is every tau-sized selection of parameter
// indices combined with every non-all-zero 0/1 assignment over them:
// C(n,tau) * (2^tau - 1) combos in total. A row covers a combo when the
// row, restricted to the combo's indices, equals the combo's values.
//
// Hot-path discipline: the C(n,tau) index tuples are enumerated once per
// run via IndexCombos and reused by every coverage evaluation; re-deriving
// them per call is the dominant inefficiency this layout avoids.
package cover

// IndexCombos returns all tau-element subsets of [0, n) in ascending
// lexicographic order, each subset itself sorted ascending.
//
// Contracts: 1 <= tau <= n (validated upstream; out-of-range input yields
// an empty list rather than a panic).
//
// Complexity: O(C(n,tau) * tau) time and space.
func IndexCombos(n, tau int) [][]int {
	if tau < 1 || tau > n {
		return nil
	}

	out := make([][]int, 0, Binomial(n, tau))

	// idx holds the current subset; advance it like an odometer.
	idx := make([]int, tau)
	var i int
	for i = 0; i < tau; i++ {
		idx[i] = i
	}

	for {
		tuple := make([]int, tau)
		copy(tuple, idx)
		out = append(out, tuple)

		// Find the rightmost position that can still be incremented.
		i = tau - 1
		for i >= 0 && idx[i] == n-tau+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for i++; i < tau; i++ {
			idx[i] = idx[i-1] + 1
		}
	}

	return out
}

// UniverseSize returns C(n,tau) * (2^tau - 1), the number of combos in
// the (n, tau) universe. Returns 0 for out-of-range tau.
func UniverseSize(n, tau int) int {
	if tau < 1 || tau > n {
		return 0
	}

	return Binomial(n, tau) * ((1 << tau) - 1)
}

// Universe enumerates the full combo set for (n, tau), excluding the
// all-zero assignment of every index tuple.
//
// Complexity: O(C(n,tau) * 2^tau * tau) time; the returned set holds
// UniverseSize(n, tau) entries.
func Universe(n, tau int) map[Combo]struct{} {
	idxCombos := IndexCombos(n, tau)
	out := make(map[Combo]struct{}, UniverseSize(n, tau))

	buf := make([]byte, 3*tau)
	var (
		idxs []int
		mask int
		j    int
	)
	for _, idxs = range idxCombos {
		// mask enumerates value assignments; 0 (all-zero) is excluded.
		for mask = 1; mask < 1<<tau; mask++ {
			for j = 0; j < tau; j++ {
				buf[3*j] = byte(idxs[j] >> 8)
				buf[3*j+1] = byte(idxs[j])
				buf[3*j+2] = byte(mask >> j & 1)
			}
			out[Combo(buf)] = struct{}{}
		}
	}

	return out
}

// ComboOf encodes the combo obtained by restricting row to idxs.
// The second return is false when the restriction is all-zero, which is
// not a combo by definition.
func ComboOf(row Row, idxs []int) (Combo, bool) {
	buf := make([]byte, 3*len(idxs))
	var (
		nonzero bool
		j       int
		idx     int
	)
	for j, idx = range idxs {
		v := row[idx]
		if v != 0 {
			nonzero = true
		}
		buf[3*j] = byte(idx >> 8)
		buf[3*j+1] = byte(idx)
		buf[3*j+2] = v
	}
	if !nonzero {
		return "", false
	}

	return Combo(buf), true
}

// RowCoverage is the coverage oracle: the set of combos row satisfies,
// one per index tuple whose restriction is not all-zero.
//
// idxCombos must come from IndexCombos(len(row), tau).
//
// Complexity: O(C(n,tau) * tau) time per row.
func RowCoverage(row Row, idxCombos [][]int) map[Combo]struct{} {
	out := make(map[Combo]struct{}, len(idxCombos))
	var (
		combo Combo
		ok    bool
	)
	for _, idxs := range idxCombos {
		if combo, ok = ComboOf(row, idxs); ok {
			out[combo] = struct{}{}
		}
	}

	return out
}
