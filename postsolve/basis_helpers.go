package postsolve

import (
	"github.com/solvekit/cutpost/comp"
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/solution"
)

// statusBySign resolves FixedCol's Nonbasic hint and any other
// "pick the bound that matches the sign of the reduced cost" decision:
// a non-negative reduced cost means increasing the variable cannot
// improve a minimization objective, consistent with sitting at its lower
// bound; negative means it would, consistent with its upper bound.
func statusBySign(reducedCost float64) solution.Status {
	if reducedCost >= 0 {
		return solution.Lower
	}
	return solution.Upper
}

// rowStatusBySign picks a row's basis status from the sign of its dual
// value, using the same convention as statusBySign: a non-negative dual
// means the row is binding at its lower sense, negative at its upper
// sense.
func rowStatusBySign(rowDual float64) solution.Status {
	if rowDual >= 0 {
		return solution.Lower
	}
	return solution.Upper
}

// rowStatusForType picks the nonbasic row status a row takes when a
// reduction fixes it structurally (not by dual sign but by the row's own
// sense): an Eq row falls back to dual sign, Geq rows bind at Lower, Leq
// rows bind at Upper.
func rowStatusForType(rt RowType, rowDual float64) solution.Status {
	switch rt {
	case Geq:
		return solution.Lower
	case Leq:
		return solution.Upper
	default:
		return rowStatusBySign(rowDual)
	}
}

// resolvedColStatus derives col's basis status from the sign of its dual
// relative to the dual feasibility tolerance, refreshing basis.ColStatus
// to match whenever the dual is clearly nonzero. A dual within tolerance
// of zero leaves the existing status (or Basic, if there is no basis to
// read) since the column isn't clearly bound to a side.
func resolvedColStatus(cfg config.Options, dual float64, col int32, basis *solution.Basis) solution.Status {
	tol := cfg.DualFeasibilityTolerance()
	switch {
	case dual > tol:
		if basis.Valid {
			basis.ColStatus[col] = solution.Lower
		}
		return solution.Lower
	case dual < -tol:
		if basis.Valid {
			basis.ColStatus[col] = solution.Upper
		}
		return solution.Upper
	default:
		if basis.Valid {
			return basis.ColStatus[col]
		}
		return solution.Basic
	}
}

// dot evaluates Σ entries[i].Value * v[entries[i].Index] with compensated
// summation, the recurring "recompute from saved entries against an
// already-known dual/value vector" operation every undo in this package
// performs.
func dot(entries []Nonzero, v []float64) float64 {
	var s comp.Sum
	for _, e := range entries {
		s.AddProduct(e.Value, v[e.Index])
	}
	return s.Float64()
}
