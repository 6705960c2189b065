package postsolve

import (
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/solution"
)

// record is one entry in the postsolve log: a tagged variant carrying the
// minimal data needed to invert a single presolve transformation. undo
// mutates sol and basis in place, using cfg's tolerances where a
// reduction's inversion needs to compare against a feasibility bound.
type record interface {
	undo(cfg config.Options, sol *solution.Solution, basis *solution.Basis)
}

// forward is implemented by the subset of variants that can project an
// original-space primal value into the presolved space (spec's
// TransformToPresolvedSpace, used for warm starts). Variants that cannot
// meaningfully run forward (most of them: the reduction destroys
// information undo alone reconstructs) simply don't implement it and are
// skipped by TransformToPresolvedSpace.
type forward interface {
	transform(colValue []float64)
}
