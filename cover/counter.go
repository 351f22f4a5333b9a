package cover

// Counter tracks combo multiplicities: how many rows of the current array
// cover each combo. Entries are removed when their multiplicity reaches
// zero, so len(counter) is always the covered-combo count. This is the
// central invariant structure for incremental (delta-based) search: after
// every accepted move the counter must equal coverage recomputed from
// scratch over the current row set.
type Counter map[Combo]int

// Add increments the multiplicity of every combo in set.
func (c Counter) Add(set map[Combo]struct{}) {
	for combo := range set {
		c[combo]++
	}
}

// Remove decrements the multiplicity of every combo in set, deleting
// entries that reach zero.
func (c Counter) Remove(set map[Combo]struct{}) {
	for combo := range set {
		if c[combo] <= 1 {
			delete(c, combo)
		} else {
			c[combo]--
		}
	}
}

// Covered returns the number of combos with multiplicity >= 1.
func (c Counter) Covered() int {
	return len(c)
}

// BuildCoverage computes, in one pass, the per-row coverage cache and the
// multiplicity counter for rows. The cache is index-aligned with rows.
//
// Complexity: O(len(rows) * C(n,tau) * tau).
func BuildCoverage(rows []Row, idxCombos [][]int) ([]map[Combo]struct{}, Counter) {
	cache := make([]map[Combo]struct{}, len(rows))
	counter := make(Counter)
	var i int
	for i = range rows {
		cache[i] = RowCoverage(rows[i], idxCombos)
		counter.Add(cache[i])
	}

	return cache, counter
}
