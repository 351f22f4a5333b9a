package cover

// Minimize prunes redundant rows from a candidate array using multiplicity
// counting. A row is removable iff every combo it covers has multiplicity
// greater than one, i.e. is also covered by some other surviving row.
//
// Rows are examined in original insertion order (first appended, first
// examined); the order is part of the contract because scanning in reverse
// can yield a different minimized set. Removal decrements the combos of
// the dropped row before the next row is examined, so the result depends
// only on the input order, never on map iteration.
//
// Minimize is idempotent: after one pass every surviving row covers at
// least one combo of multiplicity one, so a second pass removes nothing.
// The union of coverage is preserved exactly.
//
// Complexity: O(len(rows) * C(n,tau) * tau).
func Minimize(rows []Row, idxCombos [][]int) []Row {
	if len(rows) == 0 {
		return nil
	}

	cache, counter := BuildCoverage(rows, idxCombos)

	kept := make([]Row, 0, len(rows))
	var (
		i         int
		removable bool
		combo     Combo
	)
	for i = range rows {
		removable = true
		for combo = range cache[i] {
			if counter[combo] <= 1 {
				removable = false
				break
			}
		}
		if removable {
			counter.Remove(cache[i])
		} else {
			kept = append(kept, rows[i])
		}
	}

	return kept
}
