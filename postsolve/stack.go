package postsolve

import (
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/solution"
)

// Stack is an append-only log of reduction records plus the index-map
// bookkeeping presolve needs to keep current row/column numbering
// traceable back to the original problem. There is no random access:
// records are pushed in the order presolve applies them and undone in
// strict reverse.
type Stack struct {
	records []record

	origRowIndex []int32
	origColIndex []int32

	// linearlyTransformable[col] marks whether col is still eligible for
	// a LinearTransform substitution. Once a column has been eliminated
	// by FreeColSubstitution or as the substituted column of a
	// DoubletonEquation, it is no longer a plain variable a later
	// presolve pass could linearly transform.
	linearlyTransformable []bool
}

// NewStack returns an empty Stack. Call InitializeIndexMaps before
// pushing any reduction that touches row or column numbering.
func NewStack() *Stack {
	return &Stack{}
}

// InitializeIndexMaps sets up identity row/column index maps for a
// problem with nRow rows and nCol columns, and marks every column
// eligible for linear transforms.
// Complexity: O(nRow + nCol).
func (s *Stack) InitializeIndexMaps(nRow, nCol int) {
	s.origRowIndex = make([]int32, nRow)
	s.origColIndex = make([]int32, nCol)
	for i := range s.origRowIndex {
		s.origRowIndex[i] = int32(i)
	}
	for i := range s.origColIndex {
		s.origColIndex[i] = int32(i)
	}
	s.linearlyTransformable = make([]bool, nCol)
	for i := range s.linearlyTransformable {
		s.linearlyTransformable[i] = true
	}
}

// CompressIndexMaps renumbers rows and columns after presolve deletes
// some of them. newRowIndex[i] (respectively newColIndex[i]) is the
// post-deletion index of what is currently row/col i, or -1 if i was
// deleted. Surviving entries are written to their new position in place;
// the maps are then truncated to the surviving length.
// Complexity: O(nRow + nCol).
func (s *Stack) CompressIndexMaps(newRowIndex, newColIndex []int32) {
	s.origRowIndex = compress(s.origRowIndex, newRowIndex)
	s.origColIndex = compress(s.origColIndex, newColIndex)
}

// compress applies one index-renumbering pass: for every surviving i
// (newIndex[i] != -1), orig[newIndex[i]] = orig[i]; deleted entries
// decrement the logical length. The result is truncated to the number of
// survivors.
func compress(orig []int32, newIndex []int32) []int32 {
	length := len(orig)
	for i := 0; i < len(newIndex); i++ {
		if newIndex[i] == -1 {
			length--
			continue
		}
		orig[newIndex[i]] = orig[i]
	}
	return orig[:length]
}

// OrigRow returns the original problem's row index for current row i.
func (s *Stack) OrigRow(i int32) int32 { return s.origRowIndex[i] }

// OrigCol returns the original problem's column index for current col i.
func (s *Stack) OrigCol(i int32) int32 { return s.origColIndex[i] }

// Len reports how many reduction records have been pushed.
func (s *Stack) Len() int { return len(s.records) }

// Undo drains the log in strict reverse insertion order, mutating sol and
// basis in place so that, once every record has been processed, they
// describe a solution and basis in the original problem's space.
// Complexity: O(Σ size of each record's saved data).
func (s *Stack) Undo(cfg config.Options, sol *solution.Solution, basis *solution.Basis) {
	for i := len(s.records) - 1; i >= 0; i-- {
		s.records[i].undo(cfg, sol, basis)
	}
}

// TransformToPresolvedSpace projects an original-space primal vector into
// the presolved space by applying every forward-capable record in
// insertion order, the mirror image of Undo's reverse pass. Records that
// cannot meaningfully run forward are skipped; the caller gets the
// projection forward-capable records can produce, which is sufficient for
// warm-starting since the remaining columns already sit at the values the
// presolved problem expects.
func (s *Stack) TransformToPresolvedSpace(colValue []float64) {
	for _, r := range s.records {
		if f, ok := r.(forward); ok {
			f.transform(colValue)
		}
	}
}
