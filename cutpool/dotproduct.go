package cutpool

import (
	"math"

	"github.com/solvekit/cutpost/comp"
)

// normAndMaxAbs computes ||val||_2 and max|val_j| with compensated
// summation, so the norm used to normalize a row's dot products does not
// drift from accumulated rounding across long rows.
func normAndMaxAbs(val []float64) (norm, maxAbs float64) {
	var sq comp.Sum
	for _, v := range val {
		sq.AddProduct(v, v)
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	return math.Sqrt(sq.Float64()), maxAbs
}

// mergeDot computes the compensated dot product of two rows given as
// sorted (index, value) pairs, using a merge traversal so only matching
// column indices contribute — the same technique a merge-style sparse
// matrix-vector product uses.
func mergeDot(aIdx []int32, aVal []float64, bIdx []int32, bVal []float64) float64 {
	var s comp.Sum
	i, j := 0, 0
	for i < len(aIdx) && j < len(bIdx) {
		switch {
		case aIdx[i] == bIdx[j]:
			s.AddProduct(aVal[i], bVal[j])
			i++
			j++
		case aIdx[i] < bIdx[j]:
			i++
		default:
			j++
		}
	}
	return s.Float64()
}

// denseDot computes the compensated dot product of a sparse row against a
// dense vector x, a·x, using x indexed by each entry's column index.
func denseDot(idx []int32, val []float64, x []float64) float64 {
	var s comp.Sum
	for k, c := range idx {
		s.AddProduct(val[k], x[c])
	}
	return s.Float64()
}
