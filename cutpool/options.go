package cutpool

const (
	// defaultAgeLimit is how many separation/aging rounds a dormant cut
	// may go unselected before eviction.
	defaultAgeLimit = 10
	// defaultDuplicateParallelismThreshold is the cosine-similarity bar a
	// same-support candidate row must clear to be rejected as a
	// duplicate: spec's 1 - 1e-6.
	defaultDuplicateParallelismThreshold = 1 - 1e-6
	// defaultSelectionParallelismThreshold is the cosine-similarity bar
	// that disqualifies a separation candidate against an
	// already-selected row: spec's 0.1.
	defaultSelectionParallelismThreshold = 0.1
)

// Option configures a CutPool at construction time.
type Option func(*CutPool)

// WithAgeLimit overrides the number of rounds a dormant cut may go
// unselected before eviction.
func WithAgeLimit(limit int32) Option {
	return func(p *CutPool) { p.ageLimit = limit }
}

// WithDuplicateParallelismThreshold overrides the cosine-similarity bar
// used to reject a new cut as a duplicate of an existing one.
func WithDuplicateParallelismThreshold(threshold float64) Option {
	return func(p *CutPool) { p.duplicateParallelismThreshold = threshold }
}

// WithSelectionParallelismThreshold overrides the cosine-similarity bar
// used to disqualify a separation candidate against an already-selected
// row.
func WithSelectionParallelismThreshold(threshold float64) Option {
	return func(p *CutPool) { p.selectionParallelismThreshold = threshold }
}
