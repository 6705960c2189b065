package postsolve

import (
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/solution"
)

// forcingColumnRemovedRow undoes removing one row that a ForcingColumn
// reduction made redundant: the row is restored, basic, with zero dual,
// and its activity recomputed from the saved entries against whatever
// column values are already known at this point in the undo pass.
type forcingColumnRemovedRow struct {
	row             int32
	rhs             float64
	savedRowEntries []Nonzero
}

// PushForcingColumnRemovedRow records that row, with the given right-hand
// side, was removed as a consequence of fixing the forcing column that
// appears in it.
func (s *Stack) PushForcingColumnRemovedRow(row int32, rhs float64, savedRowEntries []Nonzero) {
	s.records = append(s.records, forcingColumnRemovedRow{row: row, rhs: rhs, savedRowEntries: savedRowEntries})
}

func (r forcingColumnRemovedRow) undo(_ config.Options, sol *solution.Solution, basis *solution.Basis) {
	// Row values aren't fully postsolved at every point in the stack, but
	// a later record may still read row_value[row], so recompute it here
	// regardless.
	sol.RowValue[r.row] = dot(r.savedRowEntries, sol.ColValue)

	if sol.DualValid {
		sol.RowDual[r.row] = 0
	}
	if basis.Valid {
		basis.RowStatus[r.row] = solution.Basic
	}
}
