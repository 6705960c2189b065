package postsolve

import (
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/solution"
)

// redundantRow undoes removing a row presolve proved could never bind.
type redundantRow struct {
	row int32
}

// PushRedundantRow records that row was removed as structurally
// redundant.
func (s *Stack) PushRedundantRow(row int32) {
	s.records = append(s.records, redundantRow{row: row})
}

func (r redundantRow) undo(_ config.Options, sol *solution.Solution, basis *solution.Basis) {
	if sol.DualValid {
		sol.RowDual[r.row] = 0
	}
	if basis.Valid {
		basis.RowStatus[r.row] = solution.Basic
	}
}
