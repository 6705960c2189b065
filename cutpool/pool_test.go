package cutpool_test

import (
	"errors"
	"testing"

	"github.com/solvekit/cutpost/cutpool"
	"github.com/solvekit/cutpost/rowmat"
	"github.com/stretchr/testify/require"
)

// observerFunc adapts a plain function to cutpool.Observer.
type observerFunc func(rowmat.RowID)

func (f observerFunc) CutAdded(id rowmat.RowID) { f(id) }

// scenario (a): add 2x0+3x1<=5 then the same cut again; the second must be
// rejected as a duplicate.
func TestAddCut_RejectsExactDuplicate(t *testing.T) {
	p := cutpool.New(2)

	id, err := p.AddCut([]int32{0, 1}, []float64{2, 3}, 5, false)
	require.NoError(t, err)
	require.GreaterOrEqual(t, int(id), 0)

	_, err = p.AddCut([]int32{0, 1}, []float64{2, 3}, 5, false)
	require.ErrorIs(t, err, cutpool.ErrDuplicateCut)
}

func TestAddCut_AcceptsNonParallelSameSupport(t *testing.T) {
	p := cutpool.New(2)

	_, err := p.AddCut([]int32{0, 1}, []float64{2, 3}, 5, false)
	require.NoError(t, err)

	// Same support, different direction: not parallel, should be accepted.
	id2, err := p.AddCut([]int32{0, 1}, []float64{3, -1}, 4, false)
	require.NoError(t, err)
	require.GreaterOrEqual(t, int(id2), 0)
}

// property 1: ||a_r||_2 * norm_inv[r] == 1 within tolerance.
func TestAddCut_NormInvIsReciprocalOfNorm(t *testing.T) {
	p := cutpool.New(3)
	id, err := p.AddCut([]int32{0, 1, 2}, []float64{3, 4, 0}, 1, false)
	require.NoError(t, err)

	require.InDelta(t, 1.0, p.GetParallelism(id, id), 1e-10)
}

// property 4: get_parallelism(r,r) == 1 and is symmetric.
func TestGetParallelism_SelfAndSymmetric(t *testing.T) {
	p := cutpool.New(3)
	id1, err := p.AddCut([]int32{0, 1}, []float64{1, 1}, 1, false)
	require.NoError(t, err)
	id2, err := p.AddCut([]int32{0, 1, 2}, []float64{1, 1, 0.0001}, 1, false)
	require.NoError(t, err)

	require.InDelta(t, 1.0, p.GetParallelism(id1, id1), 1e-10)
	require.InDelta(t, p.GetParallelism(id1, id2), p.GetParallelism(id2, id1), 1e-12)
}

// scenario (b): pool holds x0+x1<=1 and x0+x1+0.0001x2<=1; with
// x*=(0.6,0.6,0), both violated by about 0.2, only one selected because
// their parallelism exceeds the 0.1 threshold.
func TestSeparate_NearParallelRowsOnlyOneSelected(t *testing.T) {
	p := cutpool.New(3)
	_, err := p.AddCut([]int32{0, 1}, []float64{1, 1}, 1, false)
	require.NoError(t, err)
	_, err = p.AddCut([]int32{0, 1, 2}, []float64{1, 1, 0.0001}, 1, false)
	require.NoError(t, err)

	x := []float64{0.6, 0.6, 0}
	lb := []float64{0, 0, 0}
	ub := []float64{1, 1, 1}

	cs := p.Separate(x, lb, ub, 1e-9)
	require.Equal(t, 1, cs.NumCuts())
}

// property 3: a newly-added violated cut with no competing near-parallel
// row must be selected.
func TestSeparate_IncludesNewlyViolatedCutWithNoCompetitors(t *testing.T) {
	p := cutpool.New(2)
	id, err := p.AddCut([]int32{0, 1}, []float64{1, 1}, 1, false)
	require.NoError(t, err)

	x := []float64{0.9, 0.9}
	lb := []float64{0, 0}
	ub := []float64{1, 1}

	cs := p.Separate(x, lb, ub, 1e-9)
	require.Equal(t, 1, cs.NumCuts())
	require.Equal(t, id, cs.CutIndices[0])
	require.Equal(t, 1.0, cs.Upper[0])
}

func TestSeparate_EmitsConsistentCSRLayout(t *testing.T) {
	p := cutpool.New(3)
	_, err := p.AddCut([]int32{0, 1}, []float64{1, 1}, 1, false)
	require.NoError(t, err)
	_, err = p.AddCut([]int32{0, 2}, []float64{1, 2}, 3, false)
	require.NoError(t, err)

	x := []float64{0.9, 0.9, 0.9}
	lb := []float64{0, 0, 0}
	ub := []float64{1, 1, 1}

	cs := p.Separate(x, lb, ub, 1e-9)
	total := 0
	for i := 0; i < cs.NumCuts(); i++ {
		total += cs.ARstart[i+1] - cs.ARstart[i]
	}
	require.Equal(t, len(cs.ARindex), total)
	require.Equal(t, cs.ARstart[cs.NumCuts()], len(cs.ARindex))
}

// property 5: after AgeLimit+1 aging ticks with no separation, every
// previously live cut is evicted.
func TestPerformAging_EvictsAfterAgeLimitExceeded(t *testing.T) {
	p := cutpool.New(2, cutpool.WithAgeLimit(3))
	id, err := p.AddCut([]int32{0, 1}, []float64{1, 1}, 1, false)
	require.NoError(t, err)
	require.True(t, p.IsLive(id))

	for i := 0; i < 4; i++ {
		p.PerformAging()
	}

	require.False(t, p.IsLive(id))
}

func TestLPCutRemoved_MakesOwnedCutEligibleAgain(t *testing.T) {
	p := cutpool.New(2)
	id, err := p.AddCut([]int32{0, 1}, []float64{1, 1}, 1, false)
	require.NoError(t, err)

	// Select the cut into the LP: it stays in the matrix but leaves the
	// pool's active separation set (age == -1).
	x := []float64{0.9, 0.9}
	lb := []float64{0, 0}
	ub := []float64{1, 1}
	cs := p.Separate(x, lb, ub, 1e-9)
	require.Equal(t, 1, cs.NumCuts())
	require.False(t, p.IsLive(id))

	p.LPCutRemoved(id)
	require.True(t, p.IsLive(id))
}

func TestRegisterObserver_NotifiedOnAddCut(t *testing.T) {
	p := cutpool.New(2)
	var got []rowmat.RowID
	obs := observerFunc(func(id rowmat.RowID) { got = append(got, id) })
	h := p.RegisterObserver(obs)
	defer p.UnregisterObserver(h)

	id, err := p.AddCut([]int32{0, 1}, []float64{1, 1}, 1, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, id, got[0])
}

func TestUnregisterObserver_StopsNotifications(t *testing.T) {
	p := cutpool.New(2)
	var calls int
	obs := observerFunc(func(rowmat.RowID) { calls++ })
	h := p.RegisterObserver(obs)
	p.UnregisterObserver(h)

	_, err := p.AddCut([]int32{0, 1}, []float64{1, 1}, 1, false)
	require.NoError(t, err)
	require.Equal(t, 0, calls)
}

func TestAddCut_PanicsOnMismatchedLengths(t *testing.T) {
	p := cutpool.New(2)
	require.Panics(t, func() {
		p.AddCut([]int32{0, 1}, []float64{1}, 1, false)
	})
}

func TestErrDuplicateCut_IsSentinel(t *testing.T) {
	require.True(t, errors.Is(cutpool.ErrDuplicateCut, cutpool.ErrDuplicateCut))
}
