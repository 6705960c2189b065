// Package logging gives the cut pool and postsolve stack a single place to
// emit the diagnostic lines spec §7 requires (an unresolved DuplicateColumn
// undo, a numeric-overflow report) without forcing every consumer of this
// module to wire up a logger. The default Logger discards everything;
// callers that want the diagnostics call SetLogger once at startup.
package logging
