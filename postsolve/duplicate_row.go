package postsolve

import (
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/solution"
)

// duplicateRow undoes merging row2 (duplicateRow) into row1 (row) when
// row2 was discovered to be a scaled duplicate of row1: duplicateRow's
// coefficients equal scale*row1's coefficients.
type duplicateRow struct {
	row, duplicateRow int32
	scale             float64
	rowUpperTightened bool
	rowLowerTightened bool
}

// PushDuplicateRow records that dupRow = scale*row was merged away,
// noting whether doing so tightened row's upper or lower side.
func (s *Stack) PushDuplicateRow(row, dupRow int32, scale float64, rowUpperTightened, rowLowerTightened bool) {
	s.records = append(s.records, duplicateRow{
		row: row, duplicateRow: dupRow, scale: scale,
		rowUpperTightened: rowUpperTightened, rowLowerTightened: rowLowerTightened,
	})
}

func (r duplicateRow) undo(cfg config.Options, sol *solution.Solution, basis *solution.Basis) {
	if !sol.DualValid {
		return
	}

	if !r.rowUpperTightened && !r.rowLowerTightened {
		// row2 was simply redundant: it gets a zero dual and is made basic,
		// row1 is untouched.
		sol.RowDual[r.duplicateRow] = 0
		if basis.Valid {
			basis.RowStatus[r.duplicateRow] = solution.Basic
		}
		return
	}

	// At least one bound of row1 was tightened using row2's scaled bound, so
	// row2 can only become the binding (nonbasic) row if row1's own
	// preserved status sits at the side that was actually tightened.
	switch status := r.preservedRowStatus(cfg, sol, basis); status {
	case solution.Upper:
		if r.rowUpperTightened {
			r.transferDual(sol, basis, status)
			return
		}
	case solution.Lower:
		if r.rowLowerTightened {
			r.transferDual(sol, basis, status)
			return
		}
	}

	sol.RowDual[r.duplicateRow] = 0
	if basis.Valid {
		basis.RowStatus[r.duplicateRow] = solution.Basic
	}
}

// preservedRowStatus resolves row1's basis status from the sign of its
// dual relative to the dual feasibility tolerance, refreshing
// basis.RowStatus[row] to match whenever the dual is clearly nonzero. A
// dual within tolerance of zero leaves the existing status (or Basic, if
// there is no basis to read) since row1 isn't clearly bound to a side.
func (r duplicateRow) preservedRowStatus(cfg config.Options, sol *solution.Solution, basis *solution.Basis) solution.Status {
	tol := cfg.DualFeasibilityTolerance()
	dual := sol.RowDual[r.row]

	if !basis.Valid {
		switch {
		case dual < -tol:
			return solution.Upper
		case dual > tol:
			return solution.Lower
		default:
			return solution.Basic
		}
	}

	switch {
	case dual < -tol:
		basis.RowStatus[r.row] = solution.Upper
	case dual > tol:
		basis.RowStatus[r.row] = solution.Lower
	}
	return basis.RowStatus[r.row]
}

// transferDual makes row1 basic and moves its dual onto row2 at the
// inverse scale. row2 takes row1's preserved side (status) when scale is
// positive and the opposite side when scale is negative.
func (r duplicateRow) transferDual(sol *solution.Solution, basis *solution.Basis, status solution.Status) {
	sol.RowDual[r.duplicateRow] = sol.RowDual[r.row] / r.scale
	sol.RowDual[r.row] = 0

	if !basis.Valid {
		return
	}
	basis.RowStatus[r.row] = solution.Basic
	switch {
	case r.scale > 0:
		basis.RowStatus[r.duplicateRow] = status
	case status == solution.Upper:
		basis.RowStatus[r.duplicateRow] = solution.Lower
	default:
		basis.RowStatus[r.duplicateRow] = solution.Upper
	}
}
