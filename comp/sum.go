package comp

// Sum is a compensated running total: hi holds the working value, lo holds
// the accumulated rounding error Neumaier's algorithm would otherwise drop.
// The zero value is a valid empty sum.
type Sum struct {
	hi float64 // working total
	lo float64 // running correction term
}

// NewSum returns a Sum initialized to v.
// Complexity: O(1).
func NewSum(v float64) Sum {
	return Sum{hi: v}
}

// AddFloat adds a single plain value to the running total.
// Stage 1 (Execute): Neumaier-corrected addition into hi, tracking the
// rounding residual in lo.
// Complexity: O(1).
func (s *Sum) AddFloat(x float64) {
	t := s.hi + x
	// Branch on which operand dominates in magnitude to recover the part
	// of x (or s.hi) that the addition above rounded away.
	if abs(s.hi) >= abs(x) {
		s.lo += (s.hi - t) + x
	} else {
		s.lo += (x - t) + s.hi
	}
	s.hi = t
}

// AddProduct adds the exact product a*b to the running total using a
// Dekker two-product split, so that dot products computed term-by-term do
// not lose the low bits a naive `sum += a*b` would.
// Stage 1 (Execute): split a and b into high/low halves.
// Stage 2 (Execute): reconstruct a*b's rounding error and fold it in
// alongside the plain product via AddFloat.
// Complexity: O(1).
func (s *Sum) AddProduct(a, b float64) {
	p := a * b
	ah, al := split(a)
	bh, bl := split(b)
	// err reconstructs the part of a*b lost to float64 rounding.
	err := ((ah*bh - p) + ah*bl + al*bh) + al*bl
	s.AddFloat(p)
	s.AddFloat(err)
}

// DivScalar divides the running total by x in place.
// Complexity: O(1).
func (s *Sum) DivScalar(x float64) {
	s.hi /= x
	s.lo /= x
}

// MulScalar multiplies the running total by x in place.
// Complexity: O(1).
func (s *Sum) MulScalar(x float64) {
	s.hi *= x
	s.lo *= x
}

// Renormalize folds the correction term back into hi, resetting lo.
// Call this between long chains of operations to keep the magnitude of lo
// bounded relative to hi.
// Complexity: O(1).
func (s *Sum) Renormalize() {
	t := s.hi + s.lo
	s.lo = s.lo - (t - s.hi)
	s.hi = t
}

// Float64 returns the lossy plain-double view of the running total.
// Complexity: O(1).
func (s Sum) Float64() float64 {
	return s.hi + s.lo
}

// split implements Dekker's algorithm, dividing x into a high part and a
// low part such that x == hi+lo and hi holds the top 26 significant bits.
const splitter = 134217729.0 // 2^27 + 1

func split(x float64) (hi, lo float64) {
	c := splitter * x
	hi = c - (c - x)
	lo = x - hi
	return hi, lo
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
