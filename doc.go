// Package cutpost is the auxiliary machinery of a mixed-integer / linear
// programming solver: a cut pool that curates the inequalities generated
// during branch-and-cut, and a postsolve stack that records presolve
// reductions and reverses them to map a reduced problem's optimal
// solution back to the original problem's space.
//
// Under the hood:
//
//	comp/      — compensated summation, the numerical substrate every
//	             dot product and norm in this module is built on
//	rowmat/    — the append-only sparse row matrix backing the cut pool
//	cutpool/   — duplicate screening, separation, aging and eviction
//	postsolve/ — the reduction-record log and its per-variant undo logic
//	solution/  — the primal/dual/basis types postsolve mutates in place
//	config/    — shared tolerances and the infinity sentinel
//	logging/   — structured diagnostics for conditions the spec treats
//	             as reportable rather than fatal
//	cmd/cutpost-bench/ — a small CLI harness for running YAML-described
//	             cut-pool scenarios (it runs no postsolve reductions)
package cutpost
