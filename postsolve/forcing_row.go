package postsolve

import (
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/solution"
)

// forcingRow undoes removing a row whose bounds forced every one of its
// variables to a bound (each column's own fix is undone by its own
// FixedCol record, pushed after this one and therefore undone before it
// in reverse order — so by the time this runs, the columns' values and
// reduced costs are already restored).
type forcingRow struct {
	row             int32
	rowType         RowType
	savedRowEntries []Nonzero
}

// PushForcingRow records that row, of the given sense, forced every
// variable in savedRowEntries to a bound.
func (s *Stack) PushForcingRow(row int32, rowType RowType, savedRowEntries []Nonzero) {
	s.records = append(s.records, forcingRow{row: row, rowType: rowType, savedRowEntries: savedRowEntries})
}

func (r forcingRow) undo(_ config.Options, sol *solution.Solution, basis *solution.Basis) {
	if !sol.DualValid {
		return
	}

	basicCol, dualDelta, found := r.wrongSignShift(sol)
	if !found {
		sol.RowDual[r.row] = 0
		if basis.Valid {
			basis.RowStatus[r.row] = solution.Basic
		}
		return
	}

	sol.RowDual[r.row] += dualDelta
	for _, e := range r.savedRowEntries {
		sol.ColDual[e.Index] -= dualDelta * e.Value
	}
	sol.ColDual[basicCol] = 0

	if !basis.Valid {
		return
	}
	basis.ColStatus[basicCol] = solution.Basic
	if r.rowType == Geq {
		basis.RowStatus[r.row] = solution.Lower
	} else {
		basis.RowStatus[r.row] = solution.Upper
	}
}

// wrongSignShift walks the row's saved entries looking for columns whose
// reduced cost, after the shift accumulated so far, is dual infeasible
// for coef's sign: for a Leq row that means colDual*coef < 0, for every
// other row type colDual*coef > 0. Each match updates the running shift
// to zero that column's reduced cost and becomes the row's provisional
// new basic column, independent of any basis — the row's own dual and
// the saved columns' duals get adjusted regardless of whether a basis is
// tracked at all.
func (r forcingRow) wrongSignShift(sol *solution.Solution) (basicCol int32, dualDelta float64, found bool) {
	basicCol = -1
	for _, e := range r.savedRowEntries {
		colDual := sol.ColDual[e.Index] - e.Value*dualDelta
		infeasible := colDual*e.Value < 0
		if r.rowType != Leq {
			infeasible = colDual*e.Value > 0
		}
		if infeasible {
			dualDelta = sol.ColDual[e.Index] / e.Value
			basicCol = e.Index
		}
	}
	return basicCol, dualDelta, basicCol != -1
}
