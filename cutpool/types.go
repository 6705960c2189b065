package cutpool

import "github.com/solvekit/cutpost/rowmat"

// Observer is notified synchronously, on the calling goroutine, whenever a
// new row is added to the pool. Observers must not re-enter the pool from
// inside CutAdded.
type Observer interface {
	CutAdded(id rowmat.RowID)
}

// ObserverHandle identifies a registered Observer for later
// UnregisterObserver calls.
type ObserverHandle int

// CutSet is the CSR-layout output of Separate: ARstart[0..k] delimits each
// selected row's entries inside ARindex/ARvalue, Upper holds each row's
// right-hand side, and CutIndices holds each row's pool RowID, all in
// selection order. ARstart[len(Upper)] == len(ARindex) == len(ARvalue).
type CutSet struct {
	ARstart    []int
	ARindex    []int32
	ARvalue    []float64
	Upper      []float64
	CutIndices []rowmat.RowID
}

// NumCuts returns the number of rows carried in the set.
func (cs CutSet) NumCuts() int {
	return len(cs.Upper)
}

// candidate is a scored separation candidate awaiting the greedy
// parallelism-bounded selection pass.
type candidate struct {
	row      rowmat.RowID
	efficacy float64
}
