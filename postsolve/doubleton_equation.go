package postsolve

import (
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/solution"
)

// doubletonEquation undoes eliminating colSubst via a two-variable
// equation coef*col + coefSubst*colSubst = rhs. row is the equation row's
// id if it still has one to receive a dual, or -1 if the row itself was
// also fully eliminated.
type doubletonEquation struct {
	row, col, colSubst int32
	coef, coefSubst    float64
	rhs                float64
	substCost          float64
	upperTightened     bool
	lowerTightened     bool
	savedColEntries    []Nonzero // colSubst's entries in other rows
}

// PushDoubletonEquation records that colSubst was eliminated via the
// two-variable equation coef*col + coefSubst*colSubst = rhs, noting
// whether the reduction tightened col's upper or lower bound.
func (s *Stack) PushDoubletonEquation(row, col, colSubst int32, coef, coefSubst, rhs, substCost float64, upperTightened, lowerTightened bool, savedColEntries []Nonzero) {
	s.records = append(s.records, doubletonEquation{
		row: row, col: col, colSubst: colSubst,
		coef: coef, coefSubst: coefSubst, rhs: rhs, substCost: substCost,
		upperTightened: upperTightened, lowerTightened: lowerTightened,
		savedColEntries: savedColEntries,
	})
	s.linearlyTransformable[colSubst] = false
}

func (r doubletonEquation) undo(cfg config.Options, sol *solution.Solution, basis *solution.Basis) {
	sol.ColValue[r.colSubst] = (r.rhs - r.coef*sol.ColValue[r.col]) / r.coefSubst

	// Primal-only postsolve, or the equation row itself was eliminated too:
	// nothing left to recover a dual for.
	if r.row < 0 || !sol.DualValid {
		return
	}

	colStatus := resolvedColStatus(cfg, sol.ColDual[r.col], r.col, basis)

	// Each row entry of colSubst implicitly moved dual mass onto this
	// doubleton equation row via the -coef_i/coefSubst scale used to
	// eliminate colSubst from it.
	rowDualBase := -dot(r.savedColEntries, sol.RowDual) / r.coefSubst

	// The equation was also added to the objective, so col's reduced cost
	// needs the same shift before deciding which column becomes basic.
	sol.ColDual[r.colSubst] = r.substCost
	sol.ColDual[r.col] += r.substCost * r.coef / r.coefSubst

	tightened := (r.upperTightened && colStatus == solution.Upper) ||
		(r.lowerTightened && colStatus == solution.Lower)

	if tightened {
		// col's current bound isn't usable: zero its reduced cost by
		// shifting the row's dual to absorb it instead.
		rowDualDelta := sol.ColDual[r.col] / r.coef
		sol.RowDual[r.row] = rowDualBase + rowDualDelta
		sol.ColDual[r.col] = 0
		sol.ColDual[r.colSubst] -= rowDualDelta * r.coefSubst

		if basis.Valid {
			basis.ColStatus[r.colSubst] = doubletonSubstBound(r.coef, r.coefSubst, colStatus)
			basis.ColStatus[r.col] = solution.Basic
		}
	} else {
		// Otherwise zero colSubst's reduced cost instead and make it basic.
		rowDualDelta := sol.ColDual[r.colSubst] / r.coefSubst
		sol.RowDual[r.row] = rowDualBase + rowDualDelta
		sol.ColDual[r.colSubst] = 0
		sol.ColDual[r.col] -= rowDualDelta * r.coef

		if basis.Valid {
			basis.ColStatus[r.colSubst] = solution.Basic
		}
	}

	if !basis.Valid {
		return
	}
	basis.RowStatus[r.row] = rowStatusBySign(sol.RowDual[r.row])
}

// doubletonSubstBound picks colSubst's bound in the tightened branch: when
// coef and coefSubst have the same sign it is the opposite of col's
// pre-Basic Upper/Lower status, and when their signs differ it is the
// same as col's status.
func doubletonSubstBound(coef, coefSubst float64, colStatus solution.Status) solution.Status {
	sameSign := (coef < 0) == (coefSubst < 0)
	if (sameSign && colStatus == solution.Upper) || (!sameSign && colStatus == solution.Lower) {
		return solution.Lower
	}
	return solution.Upper
}
