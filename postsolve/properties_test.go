package postsolve_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/postsolve"
	"github.com/solvekit/cutpost/solution"
	"github.com/stretchr/testify/require"
)

// property 6: TransformToPresolvedSpace followed by Undo round-trips a
// value through a LinearTransform record.
func TestProperty_RoundTripThroughForwardAndUndo(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(0, 1)
	s.PushLinearTransform(0, 4, -1)

	original := []float64{19}
	presolved := append([]float64(nil), original...)
	s.TransformToPresolvedSpace(presolved)

	sol := solution.NewSolution(1, 0)
	sol.ColValue[0] = presolved[0]
	s.Undo(cfg, sol, solution.NewBasis(1, 0))

	require.InDelta(t, original[0], sol.ColValue[0], 1e-9)
}

// property 7: every undo must leave column values inside their bounds;
// DuplicateColumn's residual-guarded split is the variant most likely to
// violate this, so it is the one exercised here across several merged
// values.
func TestProperty_DuplicateColumnUndoRespectsBounds(t *testing.T) {
	cfg := config.New()
	for _, z := range []float64{0, 1, 3, 5, 7} {
		s := postsolve.NewStack()
		s.InitializeIndexMaps(0, 2)
		s.PushDuplicateColumn(0, 1, 2, 0, 3, 0, 2, true, true)

		sol := solution.NewSolution(2, 0)
		sol.ColValue[0] = z
		s.Undo(cfg, sol, solution.NewBasis(2, 0))

		x, y := sol.ColValue[0], sol.ColValue[1]
		require.GreaterOrEqual(t, x, -1e-9)
		require.LessOrEqual(t, x, 3+1e-9)
		require.GreaterOrEqual(t, y, -1e-9)
		require.LessOrEqual(t, y, 2+1e-9)
	}
}

// property 8: complementary slackness — a column pinned at a bound by
// FixedCol's undo must end up Nonbasic, never Basic, regardless of which
// bound the sign of its reduced cost selects.
func TestProperty_FixedColComplementarySlackness(t *testing.T) {
	cfg := config.New()
	for _, rowDual := range []float64{2, -2} {
		s := postsolve.NewStack()
		s.InitializeIndexMaps(1, 1)
		s.PushFixedCol(0, 1, 0, postsolve.NonbasicAny, []postsolve.Nonzero{{Index: 0, Value: 1}})

		sol := solution.NewSolution(1, 1)
		sol.RowDual[0] = rowDual
		sol.DualValid = true
		basis := solution.NewBasis(1, 1)
		basis.Valid = true

		s.Undo(cfg, sol, basis)

		require.NotEqual(t, solution.Basic, basis.ColStatus[0])
	}
}

// property 9: basis consistency — after undoing a full set of reductions
// spanning several variants, exactly one row ends Basic: the redundant
// row. The free-column equation row ends nonbasic, its basic position
// having passed to the substituted column.
func TestProperty_BasisConsistencyAcrossMixedRecords(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(2, 2)
	s.PushRedundantRow(0)
	s.PushFreeColSubstitution(1, 0, 1, 5, 0, postsolve.Eq, nil, nil)

	sol := solution.NewSolution(2, 2)
	sol.DualValid = true
	basis := solution.NewBasis(2, 2)
	basis.Valid = true

	s.Undo(cfg, sol, basis)

	want := []solution.Status{solution.Basic, solution.Lower} // row 1 resolves to Lower via Eq's dual-sign fallback
	if diff := cmp.Diff(want, basis.RowStatus); diff != "" {
		t.Fatalf("basis.RowStatus mismatch (-want +got):\n%s", diff)
	}

	basicRows := 0
	for _, st := range basis.RowStatus {
		if st == solution.Basic {
			basicRows++
		}
	}
	require.Equal(t, 1, basicRows)
}
