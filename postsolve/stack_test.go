package postsolve_test

import (
	"testing"

	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/postsolve"
	"github.com/solvekit/cutpost/solution"
	"github.com/stretchr/testify/require"
)

// scenario (f): x_orig = 2*x_pre + 3. Undo maps presolved 4 back to 11;
// TransformToPresolvedSpace is the exact inverse.
func TestLinearTransform_UndoAndForwardAreInverses(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(0, 1)
	s.PushLinearTransform(0, 2, 3)

	sol := solution.NewSolution(1, 0)
	sol.ColValue[0] = 4
	sol.ColDual[0] = 0.5
	sol.DualValid = true
	s.Undo(cfg, sol, solution.NewBasis(1, 0))
	require.InDelta(t, 11.0, sol.ColValue[0], 1e-12)
	require.InDelta(t, 0.25, sol.ColDual[0], 1e-12)

	forward := []float64{11}
	s.TransformToPresolvedSpace(forward)
	require.InDelta(t, 4.0, forward[0], 1e-12)
}

func TestStack_UndoDrainsInStrictReverseOrder(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(0, 1)

	// Two linear transforms stacked on the same column: x0 = 2*x1 + 1,
	// then x1 = 3*x2 + 5. Pushed in that order, undo must apply the second
	// first (x1 = 3*x2+5) and only then the first (x0 = 2*x1+1).
	s.PushLinearTransform(0, 2, 1)
	s.PushLinearTransform(0, 3, 5)

	sol := solution.NewSolution(1, 0)
	sol.ColValue[0] = 2
	s.Undo(cfg, sol, solution.NewBasis(1, 0))

	// Reverse order: first undo the second transform (3*2+5=11), then the
	// first (2*11+1=23).
	require.InDelta(t, 23.0, sol.ColValue[0], 1e-12)
}

func TestDuplicateColumn_UndoAndForwardAreInverses(t *testing.T) {
	cfg := config.New()
	s := postsolve.NewStack()
	s.InitializeIndexMaps(0, 2)
	require.True(t, postsolve.OkMerge(2, false, 0, 10, false, 0, 10))
	s.PushDuplicateColumn(0, 1, 2, 0, 10, 0, 10, false, false)

	sol := solution.NewSolution(2, 0)
	sol.ColValue[0] = 9 // merged value z = col + 2*col2
	s.Undo(cfg, sol, solution.NewBasis(2, 0))

	require.InDelta(t, 0.0, sol.ColValue[0], 1e-12)
	require.InDelta(t, 4.5, sol.ColValue[1], 1e-12)

	forward := []float64{sol.ColValue[0], sol.ColValue[1]}
	s.TransformToPresolvedSpace(forward)
	require.InDelta(t, 9.0, forward[0], 1e-12) // col absorbs col2 back into z
}

func TestCompressIndexMaps_DropsDeletedAndShiftsSurvivors(t *testing.T) {
	s := postsolve.NewStack()
	s.InitializeIndexMaps(3, 3)

	// Row 1 deleted; rows 0 and 2 survive, shifting to 0 and 1.
	s.CompressIndexMaps([]int32{0, -1, 1}, []int32{0, 1, 2})

	require.Equal(t, int32(0), s.OrigRow(0))
	require.Equal(t, int32(2), s.OrigRow(1))
}
