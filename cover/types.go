// Package cover - shared types, sentinel errors and the result contract.
//
// All constructors (adaptive, greedy, anneal) speak in these types and
// return the same Result shape, so downstream tooling can consume any
// strategy interchangeably.
package cover

import "errors"

// Sentinel errors for parameter validation. Constructors return these
// verbatim and mirror the message into Result.Error.
var (
	// ErrNonPositiveN is returned when n < 1.
	ErrNonPositiveN = errors.New("cover: n must be positive")

	// ErrTauRange is returned when tau is outside [1, n].
	ErrTauRange = errors.New("cover: tau must satisfy 1 <= tau <= n")

	// ErrWeightRange is returned when k is outside [tau, n].
	// k < tau makes the all-ones combos uncoverable, so no run could terminate.
	ErrWeightRange = errors.New("cover: k must satisfy tau <= k <= n")

	// ErrBoundDomain is returned by LowerBound when k > n-tau+1,
	// outside the domain of the ceil(C(n,tau)/C(k,tau)) formula.
	ErrBoundDomain = errors.New("cover: lower bound requires tau <= k <= n-tau+1")
)

// Row is a binary vector of length n; entry values are 0 or 1.
type Row []uint8

// Weight returns the number of ones in r.
func (r Row) Weight() int {
	var w int
	for _, v := range r {
		if v != 0 {
			w++
		}
	}

	return w
}

// Clone returns an independent copy of r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)

	return out
}

// Key returns a compact form of r usable as a map key.
// Rows are equal iff their keys are equal.
func (r Row) Key() string {
	return string(r)
}

// MarshalJSON renders r as a JSON array of 0/1 integers, the form the
// external tooling consumes. Without it, encoding/json would base64-encode
// the underlying byte slice.
func (r Row) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2*len(r)+2)
	buf = append(buf, '[')
	for i, v := range r {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '0'+v)
	}

	return append(buf, ']'), nil
}

// String renders r as a run of '0'/'1' characters, e.g. "1100".
func (r Row) String() string {
	buf := make([]byte, len(r))
	var i int
	for i = 0; i < len(r); i++ {
		buf[i] = '0' + r[i]
	}

	return string(buf)
}

// Combo is the canonical key of a tau-way value assignment: the sorted
// (index, value) pairs encoded as 3 bytes each (index big-endian uint16,
// then the value byte). Index tuples are always generated in ascending
// order, so equal assignments encode to equal keys regardless of how they
// were produced. Requires n < 65536.
type Combo string

// Result is the common output contract of every constructor. The JSON
// field names are fixed; external comparison and aggregation tooling
// consumes exactly this shape.
//
// NumRows is present (non-zero) iff Covered is true. LowerBound and
// ReachedLowerBound are populated by the annealing constructor only.
type Result struct {
	N   int `json:"n"`
	Tau int `json:"tau"`
	K   int `json:"k"`

	NumRows           int  `json:"num_rows,omitempty"`
	LowerBound        int  `json:"lower_bound,omitempty"`
	ReachedLowerBound bool `json:"reached_lower_bound"`

	// Covered is true iff every combo in the universe is covered.
	Covered bool `json:"covered"`

	// CoveragePercentage is covered combos divided by the universe size,
	// in [0, 1].
	CoveragePercentage float64 `json:"coverage_percentage"`

	// Time is elapsed wall-clock seconds for the whole run.
	Time float64 `json:"time"`

	CoveringArray []Row `json:"covering_array"`

	// Error carries the validation diagnostic when a run was rejected.
	Error string `json:"error,omitempty"`
}

// ValidateParams checks the shared (n, tau, k) domain used by every
// constructor: n >= 1, 1 <= tau <= n, tau <= k <= n.
func ValidateParams(n, tau, k int) error {
	if n < 1 {
		return ErrNonPositiveN
	}
	if tau < 1 || tau > n {
		return ErrTauRange
	}
	if k < tau || k > n {
		return ErrWeightRange
	}

	return nil
}
