// Package postsolve records presolve reductions as they happen and later
// reverses them, in strict reverse insertion order, to map an optimal
// solution of a reduced problem back into the original problem's space —
// recovering primal values and a dual/basis pair consistent with
// complementary slackness on the original model.
//
// The stack is a heterogeneous, append-only log: each reduction kind
// stores exactly the data its own inversion needs, including any
// non-zero matrix entries the reduction removed from the working problem
// at the moment it was applied. Undo dispatches on each record's kind in
// reverse order; there is no random access into the log.
package postsolve
