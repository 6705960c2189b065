package postsolve

import (
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/solution"
)

// linearTransform undoes a presolved substitution x_orig = scale*x_pre +
// constant applied to a single column.
type linearTransform struct {
	col      int32
	scale    float64
	constant float64
}

// PushLinearTransform records that col's presolved value relates to its
// original value by x_orig = scale*x_pre + constant.
func (s *Stack) PushLinearTransform(col int32, scale, constant float64) {
	s.records = append(s.records, linearTransform{col: col, scale: scale, constant: constant})
}

func (r linearTransform) undo(_ config.Options, sol *solution.Solution, _ *solution.Basis) {
	sol.ColValue[r.col] = r.scale*sol.ColValue[r.col] + r.constant
	if sol.DualValid {
		sol.ColDual[r.col] = sol.ColDual[r.col] / r.scale
	}
}

// transform projects an original-space value into the presolved space:
// the inverse of undo's primal map, x_pre = (x_orig - constant)/scale.
func (r linearTransform) transform(colValue []float64) {
	colValue[r.col] = (colValue[r.col] - r.constant) / r.scale
}
