package rowmat

import "fmt"

// RowID identifies a row within a Matrix. RowIDs are assigned in insertion
// order starting at 0 and are never reused, even after RemoveRow.
type RowID int32

// InvalidRowID is the RowID that names no row; cutpool.AddCut returns it
// together with ErrDuplicateCut.
const InvalidRowID RowID = -1

// rowSpan is the [start, end) range of a row's entries within the
// Matrix's flat colIndex/coeff backing slices. A tombstoned row has
// start == end == 0, which iterates as an empty range without a branch.
type rowSpan struct {
	start, end int32
}

func (s rowSpan) len() int { return int(s.end - s.start) }

// contractViolation reports a violated data-structure invariant (unsorted
// column indices, a RowID outside the table, mismatched lengths on
// ReplaceRowValues). These are programmer errors, not recoverable input
// conditions, so callers never see a returned error for them — the
// function panics instead, the same distinction the teacher's
// `denseErrorf`-wrapped sentinel errors draw between user-facing
// validation and internal bugs, just resolved the other way because
// there is no well-formed return value to give back here.
func contractViolation(format string, args ...interface{}) {
	panic(fmt.Sprintf("rowmat: contract violation: "+format, args...))
}
