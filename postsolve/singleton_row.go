package postsolve

import (
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/solution"
)

// singletonRow undoes removing a one-variable row coef*col that tightened
// col's bound, restoring the row's own dual and basis status when that
// bound is still active.
type singletonRow struct {
	row, col          int32
	coef              float64
	colLowerTightened bool
	colUpperTightened bool
}

// PushSingletonRow records that row, containing only col with
// coefficient coef, tightened one of col's bounds.
func (s *Stack) PushSingletonRow(row, col int32, coef float64, colLowerTightened, colUpperTightened bool) {
	s.records = append(s.records, singletonRow{
		row: row, col: col, coef: coef,
		colLowerTightened: colLowerTightened, colUpperTightened: colUpperTightened,
	})
}

func (r singletonRow) undo(cfg config.Options, sol *solution.Solution, basis *solution.Basis) {
	if !sol.DualValid {
		return
	}

	colStatus := resolvedColStatus(cfg, sol.ColDual[r.col], r.col, basis)

	atTightenedBound := (r.colLowerTightened && colStatus == solution.Lower) ||
		(r.colUpperTightened && colStatus == solution.Upper)

	if !atTightenedBound {
		sol.RowDual[r.row] = 0
		if basis.Valid {
			basis.RowStatus[r.row] = solution.Basic
		}
		return
	}

	sol.RowDual[r.row] = sol.ColDual[r.col] / r.coef
	sol.ColDual[r.col] = 0

	if !basis.Valid {
		return
	}
	// The row's status depends on which side col was tightened to and the
	// sign of coef: a positive coefficient preserves that side's sense, a
	// negative one flips it.
	switch colStatus {
	case solution.Lower:
		if r.coef > 0 {
			basis.RowStatus[r.row] = solution.Lower
		} else {
			basis.RowStatus[r.row] = solution.Upper
		}
	case solution.Upper:
		if r.coef > 0 {
			basis.RowStatus[r.row] = solution.Upper
		} else {
			basis.RowStatus[r.row] = solution.Lower
		}
	}
	basis.ColStatus[r.col] = solution.Basic
}
