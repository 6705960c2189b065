// Package cutpool implements a dynamic collection of linear cuts generated
// during branch-and-cut: it deduplicates near-parallel rows, scores and
// ranks cuts for violation-based separation, ages and evicts cuts that go
// unused, and keeps a sparse row matrix consistent under constant churn.
//
// A CutPool owns its row matrix and per-row metadata exclusively; callers
// serialize access to it externally (see the module's concurrency notes).
// Observers registered with RegisterObserver are notified synchronously,
// on the calling goroutine, whenever a new row is added.
package cutpool
