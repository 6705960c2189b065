package postsolve_test

import (
	"testing"

	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/postsolve"
	"github.com/solvekit/cutpost/solution"
	"github.com/stretchr/testify/require"
)

func TestFreeColSubstitution_RecoversValueAndDual(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(1, 2)
	// Row: 2*col + 1*other = 10. col's own entries elsewhere: none.
	s.PushFreeColSubstitution(0, 0, 2, 10, 3, postsolve.Eq,
		[]postsolve.Nonzero{{Index: 1, Value: 1}}, nil)

	sol := solution.NewSolution(2, 1)
	sol.ColValue[1] = 4
	sol.DualValid = true

	basis := solution.NewBasis(2, 1)
	basis.Valid = true

	s.Undo(cfg, sol, basis)

	require.InDelta(t, 4.0, sol.RowValue[0], 1e-12) // 1*4
	require.InDelta(t, 3.0, sol.ColValue[0], 1e-12) // (10-4)/2
	require.InDelta(t, 1.5, sol.RowDual[0], 1e-12)   // (3-0)/2
	require.Equal(t, solution.Basic, basis.ColStatus[0])
	require.Equal(t, solution.Lower, basis.RowStatus[0])
}

func TestFixedCol_NonbasicAnyResolvesBySign(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(1, 1)
	s.PushFixedCol(0, 2, 5, postsolve.NonbasicAny, []postsolve.Nonzero{{Index: 0, Value: 1}})

	sol := solution.NewSolution(1, 1)
	sol.RowDual[0] = 1
	sol.DualValid = true

	basis := solution.NewBasis(1, 1)
	basis.Valid = true

	s.Undo(cfg, sol, basis)

	require.InDelta(t, 2.0, sol.ColValue[0], 1e-12)
	require.InDelta(t, 4.0, sol.ColDual[0], 1e-12) // 5 - 1*1
	require.Equal(t, solution.Lower, basis.ColStatus[0])
}

func TestSingletonRow_TightenedBoundRestoresRowDual(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(1, 1)
	s.PushSingletonRow(0, 0, 2, true, false)

	sol := solution.NewSolution(1, 1)
	sol.ColDual[0] = 4
	sol.DualValid = true

	basis := solution.NewBasis(1, 1)
	basis.Valid = true
	basis.ColStatus[0] = solution.Lower

	s.Undo(cfg, sol, basis)

	require.InDelta(t, 2.0, sol.RowDual[0], 1e-12) // 4/2
	require.InDelta(t, 0.0, sol.ColDual[0], 1e-12)
	require.Equal(t, solution.Lower, basis.RowStatus[0])
	require.Equal(t, solution.Basic, basis.ColStatus[0])
}

func TestSingletonRow_UntightenedBoundLeavesRowBasic(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(1, 1)
	s.PushSingletonRow(0, 0, 2, true, false)

	sol := solution.NewSolution(1, 1)
	sol.DualValid = true

	basis := solution.NewBasis(1, 1)
	basis.Valid = true
	basis.ColStatus[0] = solution.Basic // column not at the tightened bound

	s.Undo(cfg, sol, basis)

	require.InDelta(t, 0.0, sol.RowDual[0], 1e-12)
	require.Equal(t, solution.Basic, basis.RowStatus[0])
}

func TestRedundantRow_UndoZerosDualAndMakesBasic(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(1, 0)
	s.PushRedundantRow(0)

	sol := solution.NewSolution(0, 1)
	sol.RowDual[0] = 99
	sol.DualValid = true
	basis := solution.NewBasis(0, 1)
	basis.Valid = true
	basis.RowStatus[0] = solution.Upper

	s.Undo(cfg, sol, basis)

	require.InDelta(t, 0.0, sol.RowDual[0], 1e-12)
	require.Equal(t, solution.Basic, basis.RowStatus[0])
}

func TestEqualityRowAdditions_AccumulatesAcrossAllTargets(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(3, 0)
	s.PushEqualityRowAdditions(2, nil, []postsolve.EqRowTarget{
		{TargetRow: 0, Scale: 1},
		{TargetRow: 1, Scale: -2},
	})

	sol := solution.NewSolution(0, 3)
	sol.RowDual[0] = 3
	sol.RowDual[1] = 5
	sol.DualValid = true

	s.Undo(cfg, sol, solution.NewBasis(0, 3))

	require.InDelta(t, 1*3+(-2)*5, sol.RowDual[2], 1e-12)
}

func TestForcingColumnAndRemovedRow_ExtremalRowBeatsBound(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	// col 0's forcing column entries reference row 0, a row that survives
	// (its row_value already holds a valid activity by the time this undo
	// runs); row 1 is the one removed as a consequence of forcing col 0,
	// pushed before ForcingColumn so it is undone after it.
	s.InitializeIndexMaps(2, 1)
	s.PushForcingColumnRemovedRow(1, 10, []postsolve.Nonzero{{Index: 0, Value: 2}})
	s.PushForcingColumn(0, 5, false, []postsolve.Nonzero{{Index: 0, Value: 2}})

	sol := solution.NewSolution(1, 2)
	sol.RowValue[0] = 3 // implies col_value 3/2 = 1.5, smaller than the bound 5
	sol.DualValid = true
	basis := solution.NewBasis(1, 2)
	basis.Valid = true

	s.Undo(cfg, sol, basis)

	require.InDelta(t, 1.5, sol.ColValue[0], 1e-12)
	require.Equal(t, solution.Basic, basis.ColStatus[0])
	require.Equal(t, solution.Upper, basis.RowStatus[0]) // coefficient positive, non-infinite-upper case
	require.InDelta(t, 3.0, sol.RowValue[1], 1e-12)       // 2*1.5, recomputed by the removed row's own undo
	require.Equal(t, solution.Basic, basis.RowStatus[1])
}

func TestForcingColumn_NoExtremalCandidateFallsBackToBound(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(1, 1)
	s.PushForcingColumn(0, 5, false, nil)

	sol := solution.NewSolution(1, 1)
	sol.DualValid = true
	basis := solution.NewBasis(1, 1)
	basis.Valid = true

	s.Undo(cfg, sol, basis)

	require.InDelta(t, 5.0, sol.ColValue[0], 1e-12)
	require.Equal(t, solution.Upper, basis.ColStatus[0])
}

func TestForcingColumn_OverflowingCandidateIsExcludedFromExtremalSearch(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(2, 1)
	// row 0's coefficient is tiny enough that row_value/coef crosses the
	// infinity sentinel; it must be skipped rather than winning the search,
	// leaving row 1's ordinary candidate as the extremal one.
	s.PushForcingColumn(0, 5, false, []postsolve.Nonzero{
		{Index: 0, Value: 1e-30},
		{Index: 1, Value: 2},
	})

	sol := solution.NewSolution(1, 2)
	sol.RowValue[0] = 1 // 1/1e-30 would be far beyond cfg.Infinity()
	sol.RowValue[1] = 3 // implies 1.5, smaller than the bound 5
	sol.DualValid = true
	basis := solution.NewBasis(1, 2)
	basis.Valid = true

	s.Undo(cfg, sol, basis)

	require.InDelta(t, 1.5, sol.ColValue[0], 1e-12)
	require.Equal(t, solution.Basic, basis.ColStatus[0])
	require.Equal(t, solution.Upper, basis.RowStatus[1])
}

func TestDuplicateRow_UntightenedRowLeavesDupBasicZeroDual(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(2, 0)
	s.PushDuplicateRow(0, 1, 2, false, false)

	sol := solution.NewSolution(0, 2)
	sol.RowDual[1] = 7 // stale, must be zeroed
	sol.DualValid = true
	basis := solution.NewBasis(0, 2)
	basis.Valid = true

	s.Undo(cfg, sol, basis)

	require.InDelta(t, 0.0, sol.RowDual[1], 1e-12)
	require.Equal(t, solution.Basic, basis.RowStatus[1])
}

func TestDuplicateRow_TightenedRowSplitsDualByScale(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(2, 0)
	s.PushDuplicateRow(0, 1, 2, true, false)

	sol := solution.NewSolution(0, 2)
	sol.RowDual[0] = -6 // negative dual derives row1's preserved status as Upper
	sol.DualValid = true
	basis := solution.NewBasis(0, 2)
	basis.Valid = true

	s.Undo(cfg, sol, basis)

	require.InDelta(t, -3.0, sol.RowDual[1], 1e-12) // -6/2
	require.InDelta(t, 0.0, sol.RowDual[0], 1e-12)
	require.Equal(t, solution.Basic, basis.RowStatus[0])
	require.Equal(t, solution.Upper, basis.RowStatus[1]) // positive scale preserves sense
}

func TestDuplicateRow_TightenedSideMismatchLeavesDupBasicZeroDual(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(2, 0)
	// Only the upper side was tightened, but row1's dual derives to Lower —
	// row2's bound was never the binding one, so no transfer happens.
	s.PushDuplicateRow(0, 1, 2, true, false)

	sol := solution.NewSolution(0, 2)
	sol.RowDual[0] = 6 // positive dual derives row1's preserved status as Lower
	sol.RowDual[1] = 9 // stale, must be zeroed
	sol.DualValid = true
	basis := solution.NewBasis(0, 2)
	basis.Valid = true

	s.Undo(cfg, sol, basis)

	require.InDelta(t, 0.0, sol.RowDual[1], 1e-12)
	require.InDelta(t, 6.0, sol.RowDual[0], 1e-12) // row1 untouched
	require.Equal(t, solution.Basic, basis.RowStatus[1])
	require.Equal(t, solution.Lower, basis.RowStatus[0]) // derived, not overwritten
}
