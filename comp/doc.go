// Package comp provides compensated floating-point summation for the
// dot products, norms, and dual-value recomputations that run through the
// cut pool and postsolve stack.
//
// A plain float64 accumulator loses low-order bits under repeated addition
// of terms with mixed magnitude or sign; Sum carries a running correction
// term (Neumaier's variant of Kahan summation) so that norms, row
// activities, and dual corrections stay accurate across the accumulation
// lengths a cut pool or a postsolve undo pass can reach.
package comp
