package cutpool

import "errors"

// ErrDuplicateCut is returned by AddCut when the proposed row is parallel,
// within tolerance, to an already-pooled row of identical support. It
// carries the same meaning as spec's -1 sentinel return, expressed as a Go
// error so callers use the usual errors.Is check instead of a magic value.
var ErrDuplicateCut = errors.New("cutpool: duplicate or near-parallel cut rejected")
