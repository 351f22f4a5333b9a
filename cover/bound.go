package cover

// Binomial returns C(n, k) computed with the multiplicative formula.
// Returns 0 when k < 0 or k > n. Intended for the moderate n of covering
// array synthesis; no overflow guard beyond int width.
//
// Complexity: O(min(k, n-k)).
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	var (
		out = 1
		i   int
	)
	for i = 1; i <= k; i++ {
		// Multiply before dividing; the running product is always an
		// exact binomial, so the division is exact.
		out = out * (n - k + i) / i
	}

	return out
}

// LowerBound returns ceil(C(n,tau) / C(k,tau)), a lower bound on the row
// count of any covering array whose rows have weight k.
//
// Domain: ValidateParams(n, tau, k) must hold and k <= n-tau+1; outside
// that range the formula is invalid and ErrBoundDomain is returned.
func LowerBound(n, tau, k int) (int, error) {
	if err := ValidateParams(n, tau, k); err != nil {
		return 0, err
	}
	if k > n-tau+1 {
		return 0, ErrBoundDomain
	}

	num := Binomial(n, tau)
	den := Binomial(k, tau)

	return (num + den - 1) / den, nil
}
