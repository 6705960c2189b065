package postsolve

import (
	"github.com/solvekit/cutpost/config"
	"github.com/solvekit/cutpost/solution"
)

// equalityRowAddition undoes adding a scaled multiple of an equality row
// into one target row. Basis is never touched: by the time this kind of
// record exists, the basis has not yet been made valid for this stack
// (an invariant of the presolve pass that generates it, not something
// this record can check).
type equalityRowAddition struct {
	targetRow  int32
	addedEqRow int32
	eqRowScale float64
}

// PushEqualityRowAddition records that scale times eqRow's coefficients
// were added into targetRow.
func (s *Stack) PushEqualityRowAddition(targetRow, addedEqRow int32, eqRowScale float64, _savedEqRowEntries []Nonzero) {
	s.records = append(s.records, equalityRowAddition{
		targetRow: targetRow, addedEqRow: addedEqRow, eqRowScale: eqRowScale,
	})
}

func (r equalityRowAddition) undo(_ config.Options, sol *solution.Solution, _ *solution.Basis) {
	if !sol.DualValid {
		return
	}
	sol.RowDual[r.addedEqRow] += r.eqRowScale * sol.RowDual[r.targetRow]
}

// equalityRowAdditions undoes the same reduction applied against several
// target rows at once, sharing one equality row.
type equalityRowAdditions struct {
	addedEqRow int32
	targets    []EqRowTarget
}

// EqRowTarget is one (target row, scale) pair the shared equality row was
// added into.
type EqRowTarget struct {
	TargetRow int32
	Scale     float64
}

// PushEqualityRowAdditions records that the given equality row was added,
// at its paired scale, into each of several target rows.
func (s *Stack) PushEqualityRowAdditions(addedEqRow int32, _savedEqRowEntries []Nonzero, targets []EqRowTarget) {
	s.records = append(s.records, equalityRowAdditions{addedEqRow: addedEqRow, targets: targets})
}

func (r equalityRowAdditions) undo(_ config.Options, sol *solution.Solution, _ *solution.Basis) {
	if !sol.DualValid {
		return
	}
	var total float64
	for _, tgt := range r.targets {
		total += tgt.Scale * sol.RowDual[tgt.TargetRow]
	}
	sol.RowDual[r.addedEqRow] += total
}
