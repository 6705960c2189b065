package config

const (
	// defaultPrimalFeasibilityTolerance matches the LP-relaxation-scale
	// tolerance a real branch-and-cut solver runs with.
	defaultPrimalFeasibilityTolerance = 1e-7
	defaultDualFeasibilityTolerance   = 1e-7
	defaultMIPFeasibilityTolerance    = 1e-6
	// defaultInfinity is the platform-specific "large constant" spec §6
	// calls for in place of a true IEEE infinity, so arithmetic on bounds
	// never produces NaN from inf-inf.
	defaultInfinity = 1e30
)

// Options carries the tolerances and sentinel constants the postsolve
// stack consumes (the cut pool takes its feasibility tolerance as a
// Separate argument instead). Build one with New; the zero value is
// not meaningful (it has a zero Infinity, which would make every bound
// look finite and tight).
type Options struct {
	primalFeasibilityTolerance float64
	dualFeasibilityTolerance   float64
	mipFeasibilityTolerance    float64
	infinity                   float64
}

// Option configures an Options during construction.
type Option func(*Options)

// WithPrimalFeasibilityTolerance overrides the default primal tolerance.
func WithPrimalFeasibilityTolerance(tol float64) Option {
	return func(o *Options) { o.primalFeasibilityTolerance = tol }
}

// WithDualFeasibilityTolerance overrides the default dual tolerance.
func WithDualFeasibilityTolerance(tol float64) Option {
	return func(o *Options) { o.dualFeasibilityTolerance = tol }
}

// WithMIPFeasibilityTolerance overrides the default integrality tolerance.
func WithMIPFeasibilityTolerance(tol float64) Option {
	return func(o *Options) { o.mipFeasibilityTolerance = tol }
}

// WithInfinity overrides the sentinel value treated as +infinity.
func WithInfinity(inf float64) Option {
	return func(o *Options) { o.infinity = inf }
}

// New builds an Options with the given overrides applied over the
// defaults.
// Complexity: O(len(opts)).
func New(opts ...Option) Options {
	o := Options{
		primalFeasibilityTolerance: defaultPrimalFeasibilityTolerance,
		dualFeasibilityTolerance:   defaultDualFeasibilityTolerance,
		mipFeasibilityTolerance:    defaultMIPFeasibilityTolerance,
		infinity:                   defaultInfinity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// PrimalFeasibilityTolerance returns the configured primal tolerance.
func (o Options) PrimalFeasibilityTolerance() float64 { return o.primalFeasibilityTolerance }

// DualFeasibilityTolerance returns the configured dual tolerance.
func (o Options) DualFeasibilityTolerance() float64 { return o.dualFeasibilityTolerance }

// MIPFeasibilityTolerance returns the configured integrality tolerance.
func (o Options) MIPFeasibilityTolerance() float64 { return o.mipFeasibilityTolerance }

// Infinity returns the sentinel value treated as +infinity.
func (o Options) Infinity() float64 { return o.infinity }

// IsInf reports whether x is at or beyond the configured infinity sentinel
// in magnitude, the bound-agnostic test every module uses instead of
// comparing against math.Inf directly.
func (o Options) IsInf(x float64) bool {
	return x >= o.infinity || x <= -o.infinity
}
