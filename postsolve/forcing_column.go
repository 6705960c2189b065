package postsolve

import (
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/logging"
	"github.com/solvekit/cutpost/solution"
)

// forcingColumn undoes driving col to one of its bounds because every row
// it appears in would otherwise be infeasible. savedColEntries is col's
// column vector at the moment those rows were removed (each one undone by
// its own ForcingColumnRemovedRow record, pushed earlier and therefore
// undone after this one — so the row values this undo reads are whatever
// they were left at before ForcingColumnRemovedRow gets a chance to
// recompute them; this mirrors the original implementation's own ordering,
// caveat and all).
type forcingColumn struct {
	col             int32
	colBound        float64
	atInfiniteUpper bool
	savedColEntries []Nonzero
}

// PushForcingColumn records that col was fixed at colBound because every
// row referencing it (savedColEntries) would force it there; atInfinite
// Upper says whether col had no finite upper bound, which flips which
// direction "extremal" means when choosing the binding row on undo.
func (s *Stack) PushForcingColumn(col int32, colBound float64, atInfiniteUpper bool, savedColEntries []Nonzero) {
	s.records = append(s.records, forcingColumn{
		col: col, colBound: colBound, atInfiniteUpper: atInfiniteUpper, savedColEntries: savedColEntries,
	})
}

func (r forcingColumn) undo(cfg config.Options, sol *solution.Solution, basis *solution.Basis) {
	nonbasicRow := int32(-1)
	var nonbasicRowStatus solution.Status
	colVal := r.colBound

	if r.atInfiniteUpper {
		// The column has no finite upper bound: the largest value any row
		// still permits is the feasible one, so pick the row that maximizes
		// row_value[index]/coef.
		for _, e := range r.savedColEntries {
			colValFromRow := sol.RowValue[e.Index] / e.Value
			if cfg.IsInf(colValFromRow) {
				logging.NumericOverflow("forcing_column: row_value/coef", colValFromRow)
				continue
			}
			if colValFromRow > colVal {
				nonbasicRow = e.Index
				colVal = colValFromRow
				if e.Value > 0 {
					nonbasicRowStatus = solution.Lower
				} else {
					nonbasicRowStatus = solution.Upper
				}
			}
		}
	} else {
		for _, e := range r.savedColEntries {
			colValFromRow := sol.RowValue[e.Index] / e.Value
			if cfg.IsInf(colValFromRow) {
				logging.NumericOverflow("forcing_column: row_value/coef", colValFromRow)
				continue
			}
			if colValFromRow < colVal {
				nonbasicRow = e.Index
				colVal = colValFromRow
				if e.Value > 0 {
					nonbasicRowStatus = solution.Upper
				} else {
					nonbasicRowStatus = solution.Lower
				}
			}
		}
	}

	sol.ColValue[r.col] = colVal

	if !sol.DualValid {
		return
	}
	sol.ColDual[r.col] = 0

	if !basis.Valid {
		return
	}
	if nonbasicRow == -1 {
		if r.atInfiniteUpper {
			basis.ColStatus[r.col] = solution.Lower
		} else {
			basis.ColStatus[r.col] = solution.Upper
		}
		return
	}
	basis.ColStatus[r.col] = solution.Basic
	basis.RowStatus[nonbasicRow] = nonbasicRowStatus
}
