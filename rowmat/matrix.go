package rowmat

// Matrix is an append-only, row-major sparse matrix of column-index/
// coefficient pairs. It never reorders existing rows and never recycles a
// RowID, matching the invariant the cut pool depends on: a RowID handed
// out once stays meaningful for the rest of the Matrix's lifetime.
type Matrix struct {
	colIndex []int32   // flat backing storage for all rows' column indices
	coeff    []float64 // flat backing storage for all rows' coefficients, same length as colIndex
	spans    []rowSpan // spans[id] is the [start,end) range for RowID(id)
}

// New returns an empty Matrix.
// Complexity: O(1).
func New() *Matrix {
	return &Matrix{}
}

// NumRows returns the number of RowIDs ever assigned, including tombstoned
// ones. Iterate ids in [0, NumRows) to visit every row slot.
// Complexity: O(1).
func (m *Matrix) NumRows() int {
	return len(m.spans)
}

// AppendRow stores a new row with the given column indices and
// coefficients and returns its RowID.
//
// Stage 1 (Validate): idx and val must be the same length and idx must be
// strictly ascending — both are contract invariants of the matrix, not
// user input, so violations panic rather than returning an error.
// Stage 2 (Execute): append into the flat backing slices and record the
// new row's span.
// Complexity: O(n) where n = len(idx).
func (m *Matrix) AppendRow(idx []int32, val []float64) RowID {
	if len(idx) != len(val) {
		contractViolation("AppendRow: len(idx)=%d != len(val)=%d", len(idx), len(val))
	}
	for i := 1; i < len(idx); i++ {
		if idx[i] <= idx[i-1] {
			contractViolation("AppendRow: column indices not strictly ascending at position %d", i)
		}
	}

	start := int32(len(m.colIndex))
	m.colIndex = append(m.colIndex, idx...)
	m.coeff = append(m.coeff, val...)
	end := int32(len(m.colIndex))

	id := RowID(len(m.spans))
	m.spans = append(m.spans, rowSpan{start: start, end: end})

	return id
}

// RemoveRow tombstones id: its entries become an empty range, but the id
// itself stays valid (reading it yields zero entries) and is never
// reassigned to another row.
// Complexity: O(1).
func (m *Matrix) RemoveRow(id RowID) {
	m.checkID(id)
	m.spans[id] = rowSpan{}
}

// IsTombstoned reports whether id has been removed.
// Complexity: O(1).
func (m *Matrix) IsTombstoned(id RowID) bool {
	m.checkID(id)
	return m.spans[id].len() == 0
}

// ReplaceRowValues overwrites id's coefficients in place, keeping the same
// support (column indices). len(val) must equal the row's current length.
// Complexity: O(n) where n is the row length.
func (m *Matrix) ReplaceRowValues(id RowID, val []float64) {
	m.checkID(id)
	span := m.spans[id]
	if span.len() != len(val) {
		contractViolation("ReplaceRowValues: row %d has length %d, got %d new values", id, span.len(), len(val))
	}
	copy(m.coeff[span.start:span.end], val)
}

// Entries returns id's column indices and coefficients as views into the
// matrix's backing storage. Do not mutate the returned slices; use
// ReplaceRowValues instead. A tombstoned row returns two empty slices.
// Complexity: O(1).
func (m *Matrix) Entries(id RowID) (idx []int32, val []float64) {
	m.checkID(id)
	span := m.spans[id]
	return m.colIndex[span.start:span.end], m.coeff[span.start:span.end]
}

// Len returns id's row length (number of non-zeros), 0 if tombstoned.
// Complexity: O(1).
func (m *Matrix) Len(id RowID) int {
	m.checkID(id)
	return m.spans[id].len()
}

func (m *Matrix) checkID(id RowID) {
	if id < 0 || int(id) >= len(m.spans) {
		contractViolation("row id %d out of range [0,%d)", id, len(m.spans))
	}
}
