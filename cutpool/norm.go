package cutpool

import "github.com/solvekit/cutpost/comp"

// effectiveNormSquared computes ||a_r||_eff^2, excluding coefficients that
// sit at their minimal-activity bound: a positive coefficient whose
// column is already at (or within feastol of) its lower bound, or a
// negative coefficient whose column is already at its upper bound,
// cannot be pushed any further toward violation, so it should not be
// counted against the cut's efficacy. This keeps a cut that dominates a
// simpler one (by carrying extra near-zero-activity terms) from scoring
// worse than the simpler cut would.
func effectiveNormSquared(idx []int32, val []float64, x, lb, ub []float64, feastol float64) float64 {
	var sq comp.Sum
	for k, c := range idx {
		a := val[k]
		switch {
		case a > 0 && x[c]-feastol > lb[c]:
			sq.AddProduct(a, a)
		case a < 0 && x[c]+feastol < ub[c]:
			sq.AddProduct(a, a)
		}
	}
	return sq.Float64()
}
