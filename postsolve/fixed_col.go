package postsolve

import (
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/solution"
)

// fixedCol undoes fixing col at a constant value during presolve,
// restoring its reduced cost from the rows that still reference it.
type fixedCol struct {
	col             int32
	fixValue        float64
	colCost         float64
	fixType         FixType
	savedColEntries []Nonzero // col's entries across the rows it still appears in
}

// PushFixedCol records that col was fixed at fixValue, with fixType
// hinting which bound it should resolve to on undo if the caller doesn't
// request a sign-based resolution.
func (s *Stack) PushFixedCol(col int32, fixValue, colCost float64, fixType FixType, savedColEntries []Nonzero) {
	s.records = append(s.records, fixedCol{
		col: col, fixValue: fixValue, colCost: colCost, fixType: fixType, savedColEntries: savedColEntries,
	})
}

func (r fixedCol) undo(_ config.Options, sol *solution.Solution, basis *solution.Basis) {
	sol.ColValue[r.col] = r.fixValue

	if !sol.DualValid {
		return
	}
	sol.ColDual[r.col] = r.colCost - dot(r.savedColEntries, sol.RowDual)

	if !basis.Valid {
		return
	}
	switch r.fixType {
	case NonbasicAny:
		basis.ColStatus[r.col] = statusBySign(sol.ColDual[r.col])
	case FixAtLower:
		basis.ColStatus[r.col] = solution.Lower
	case FixAtUpper:
		basis.ColStatus[r.col] = solution.Upper
	}
}
