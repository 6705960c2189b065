// Package solution defines the primal/dual solution and basis types that
// the postsolve stack mutates in place while undoing presolve reductions.
package solution
