package main

import (
	"fmt"
	"io"

	"github.com/solvekit/cutpost/cutpool"
)

// Report summarizes one run's outcome: how many cuts were accepted into
// the pool, how many were rejected as duplicates, and what Separate
// selected against the scenario's point.
type Report struct {
	CutsAccepted int
	CutsRejected int
	Selected     cutpool.CutSet
}

// Print writes a human-readable summary to w.
func (r Report) Print(w io.Writer) {
	fmt.Fprintf(w, "cuts accepted: %d\n", r.CutsAccepted)
	fmt.Fprintf(w, "cuts rejected (duplicate): %d\n", r.CutsRejected)
	fmt.Fprintf(w, "separation round selected: %d cut(s)\n", r.Selected.NumCuts())
	for i, id := range r.Selected.CutIndices {
		start, end := r.Selected.ARstart[i], r.Selected.ARstart[i+1]
		fmt.Fprintf(w, "  cut %d: %d nonzero(s), rhs=%.6g\n", id, end-start, r.Selected.Upper[i])
	}
}
