package postsolve

import (
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/solution"
)

// freeColSubstitution undoes eliminating col by solving the equation row
// for it: the row's other entries (savedRowEntries) and col's own
// coefficient (coef) in that row reconstruct col's value, and col's
// entries in the rest of the matrix (savedColEntries) reconstruct the
// row's dual via the stationarity condition on col's reduced cost.
type freeColSubstitution struct {
	row, col        int32
	coef            float64
	rhs             float64
	colCost         float64
	rowType         RowType
	savedRowEntries []Nonzero // row's other entries, excluding col
	savedColEntries []Nonzero // col's entries in other rows, excluding row
}

// PushFreeColSubstitution records that col was eliminated using equation
// row, of the given sense, at the moment its other row entries and
// column entries were removed from the working matrix.
func (s *Stack) PushFreeColSubstitution(row, col int32, coef, rhs, colCost float64, rowType RowType, savedRowEntries, savedColEntries []Nonzero) {
	s.records = append(s.records, freeColSubstitution{
		row: row, col: col, coef: coef, rhs: rhs, colCost: colCost, rowType: rowType,
		savedRowEntries: savedRowEntries, savedColEntries: savedColEntries,
	})
	s.linearlyTransformable[col] = false
}

func (r freeColSubstitution) undo(_ config.Options, sol *solution.Solution, basis *solution.Basis) {
	// Row values aren't fully postsolved at every point in the stack, but
	// records undone after this one can read row_value (ForcingColumn
	// does), so this write happens regardless of whether this particular
	// record's caller needs it.
	rowValue := dot(r.savedRowEntries, sol.ColValue)
	sol.RowValue[r.row] = rowValue
	sol.ColValue[r.col] = (r.rhs - rowValue) / r.coef

	if !sol.DualValid {
		return
	}

	colDualContrib := dot(r.savedColEntries, sol.RowDual)
	sol.RowDual[r.row] = (r.colCost - colDualContrib) / r.coef
	sol.ColDual[r.col] = 0

	if !basis.Valid {
		return
	}
	basis.ColStatus[r.col] = solution.Basic
	basis.RowStatus[r.row] = rowStatusForType(r.rowType, sol.RowDual[r.row])
}
