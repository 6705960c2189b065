package postsolve

import (
	"math"

	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/logging"
	"github.com/solvekit/cutpost/solution"
)

// residualTolerance is the feasibility bar a DuplicateColumn split must
// clear: |col + scale*col2 - z| <= residualTolerance.
const residualTolerance = 1e-12

// duplicateColumn undoes merging col2 into col as z = col + scale*col2.
// col_value[col] holds the merged value z at the time undo runs; undo
// splits it back into (col_value[col], col_value[col2]) subject to both
// columns' bounds and integrality.
type duplicateColumn struct {
	col, duplicateCol int32
	scale             float64
	colLower, colUpper       float64
	dupColLower, dupColUpper float64
	colIntegral, dupColIntegral bool
}

// PushDuplicateColumn records that duplicateCol was merged into col as
// z = col + scale*duplicateCol, along with both columns' bounds and
// integrality — everything okMerge needed to accept the merge in the
// first place and undo needs to invert it.
func (s *Stack) PushDuplicateColumn(col, duplicateCol int32, scale float64, colLower, colUpper, dupColLower, dupColUpper float64, colIntegral, dupColIntegral bool) {
	s.records = append(s.records, duplicateColumn{
		col: col, duplicateCol: duplicateCol, scale: scale,
		colLower: colLower, colUpper: colUpper,
		dupColLower: dupColLower, dupColUpper: dupColUpper,
		colIntegral: colIntegral, dupColIntegral: dupColIntegral,
	})
}

// OkMerge reports whether scale is a legal merge factor for two columns
// with the given bounds and integrality, per spec's compatibility rule:
// an integer column can only absorb another in multiples a later
// undoFix enumeration can actually recover, and a continuous column can
// only absorb an integer one (or vice versa) at a scale the arithmetic
// can invert without ambiguity.
func OkMerge(scale float64, xIntegral bool, xLower, xUpper float64, yIntegral bool, yLower, yUpper float64) bool {
	if scale == 0 {
		return false
	}
	switch {
	case xIntegral && yIntegral:
		return isIntegerValued(scale) && math.Abs(scale) <= (xUpper-xLower)+1
	case xIntegral && !yIntegral:
		return math.Abs(scale) >= 1/(yUpper-yLower)
	case !xIntegral && yIntegral:
		return math.Abs(scale) <= xUpper-xLower
	default:
		return true
	}
}

func isIntegerValued(v float64) bool {
	return math.Abs(v-math.Round(v)) < 1e-9
}

func (r duplicateColumn) undo(cfg config.Options, sol *solution.Solution, basis *solution.Basis) {
	z := sol.ColValue[r.col]

	colVal, dupVal, ok := r.split(cfg, z, sol, basis)
	if !ok {
		logging.PostsolveResidual(r.col, r.duplicateCol, colVal+r.scale*dupVal-z, r.scale)
		return
	}

	sol.ColValue[r.col] = colVal
	sol.ColValue[r.duplicateCol] = dupVal

	if !basis.Valid {
		return
	}
	r.assignStatuses(cfg, basis, colVal, dupVal)
}

// split implements the primal recovery algorithm: the nonbasic fast path,
// the basic-column heuristic, and the undoFix fallback, in that order,
// returning ok=false only if nothing within tolerance was found.
func (r duplicateColumn) split(cfg config.Options, z float64, sol *solution.Solution, basis *solution.Basis) (colVal, dupVal float64, ok bool) {
	if basis.Valid && (basis.ColStatus[r.col] == solution.Lower || basis.ColStatus[r.col] == solution.Upper) {
		colVal = r.boundValue(basis.ColStatus[r.col])
		dupVal = (z - colVal) / r.scale
		if r.feasible(colVal, dupVal, z, cfg) {
			return colVal, dupVal, true
		}
	}

	colVal = r.colLower
	if cfg.IsInf(-r.colLower) {
		colVal = 0
	}
	dupVal = (z - colVal) / r.scale
	colVal, dupVal = r.clampAndRerive(colVal, dupVal, z)
	colVal, dupVal = r.roundForIntegrality(colVal, dupVal, z)

	if r.feasible(colVal, dupVal, z, cfg) {
		return colVal, dupVal, true
	}

	return r.undoFix(z, cfg)
}

// clampAndRerive clamps col2 to whichever of its bounds was violated and
// recomputes col from the clamped value.
func (r duplicateColumn) clampAndRerive(colVal, dupVal, z float64) (float64, float64) {
	switch {
	case dupVal < r.dupColLower:
		dupVal = r.dupColLower
		colVal = z - r.scale*dupVal
	case dupVal > r.dupColUpper:
		dupVal = r.dupColUpper
		colVal = z - r.scale*dupVal
	}
	return colVal, dupVal
}

// roundForIntegrality nudges the split toward integer values where
// required, recomputing the other side after each nudge.
func (r duplicateColumn) roundForIntegrality(colVal, dupVal, z float64) (float64, float64) {
	if r.dupColIntegral && !isIntegerValued(dupVal) {
		dupVal = math.Floor(dupVal)
		colVal = z - r.scale*dupVal
	}
	if r.colIntegral && !isIntegerValued(colVal) {
		colVal = math.Ceil(colVal - 1e-9)
		dupVal = (z - colVal) / r.scale
	}
	return colVal, dupVal
}

// undoFix is the exhaustive fallback: enumerate the integer grid of
// whichever side is integer and bounded (preferring col when both are),
// testing feasibility and the residual tolerance at each point. When no
// side is both integer and bounded, solve it as the continuous-continuous
// case by trying col2 at each of its own finite bounds and keeping
// whichever passes the same feasibility test.
func (r duplicateColumn) undoFix(z float64, cfg config.Options) (colVal, dupVal float64, ok bool) {
	switch {
	case r.colIntegral && !cfg.IsInf(r.colUpper) && !cfg.IsInf(-r.colLower):
		for c := math.Ceil(r.colLower); c <= r.colUpper+1e-9; c++ {
			d := (z - c) / r.scale
			if r.feasible(c, d, z, cfg) {
				return c, d, true
			}
		}
	case r.dupColIntegral && !cfg.IsInf(r.dupColUpper) && !cfg.IsInf(-r.dupColLower):
		for d := math.Ceil(r.dupColLower); d <= r.dupColUpper+1e-9; d++ {
			c := z - r.scale*d
			if r.feasible(c, d, z, cfg) {
				return c, d, true
			}
		}
	default:
		for _, d := range []float64{r.dupColLower, r.dupColUpper} {
			if cfg.IsInf(d) || cfg.IsInf(-d) {
				continue
			}
			c := z - r.scale*d
			if r.feasible(c, d, z, cfg) {
				return c, d, true
			}
		}
	}
	return 0, 0, false
}

func (r duplicateColumn) feasible(colVal, dupVal, z float64, cfg config.Options) bool {
	if colVal < r.colLower-cfg.MIPFeasibilityTolerance() || colVal > r.colUpper+cfg.MIPFeasibilityTolerance() {
		return false
	}
	if dupVal < r.dupColLower-cfg.MIPFeasibilityTolerance() || dupVal > r.dupColUpper+cfg.MIPFeasibilityTolerance() {
		return false
	}
	if r.colIntegral && !isIntegerValued(colVal) {
		return false
	}
	if r.dupColIntegral && !isIntegerValued(dupVal) {
		return false
	}
	residual := colVal + r.scale*dupVal - z
	return math.Abs(residual) <= residualTolerance
}

// transform projects an original-space primal vector into the presolved
// space: col absorbs duplicateCol back into the merged value z = col +
// scale*col2 it held before the merge's undo ever ran.
func (r duplicateColumn) transform(colValue []float64) {
	colValue[r.col] += r.scale * colValue[r.duplicateCol]
}

func (r duplicateColumn) boundValue(status solution.Status) float64 {
	if status == solution.Upper {
		return r.colUpper
	}
	return r.colLower
}

// assignStatuses marks exactly one of col, col2 Basic and the other at
// whichever bound its recovered value matches (Zero if free and the
// value landed at zero).
func (r duplicateColumn) assignStatuses(cfg config.Options, basis *solution.Basis, colVal, dupVal float64) {
	colAtBound := isNear(colVal, r.colLower) || isNear(colVal, r.colUpper)
	if colAtBound {
		basis.ColStatus[r.col] = boundStatus(cfg, colVal, r.colLower, r.colUpper)
		basis.ColStatus[r.duplicateCol] = solution.Basic
		return
	}
	basis.ColStatus[r.col] = solution.Basic
	basis.ColStatus[r.duplicateCol] = boundStatus(cfg, dupVal, r.dupColLower, r.dupColUpper)
}

func boundStatus(cfg config.Options, v, lower, upper float64) solution.Status {
	if cfg.IsInf(-lower) && cfg.IsInf(upper) && isNear(v, 0) {
		return solution.Zero
	}
	if isNear(v, lower) {
		return solution.Lower
	}
	return solution.Upper
}

func isNear(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}
