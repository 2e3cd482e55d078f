package distancefield

// Options configures Build. See Option constructors below.
type Options struct {
	// SuppressionRadius is expressed in multiples of max_spacing; spokes
	// within this radius of the boundary (on either side) are zeroed.
	// Defaults to 1.5, per spec §4.2.
	SuppressionRadius float64
}

// Option mutates Options; see WithSuppressionRadius.
type Option func(*Options)

// DefaultOptions returns the spec-mandated defaults.
func DefaultOptions() Options {
	return Options{SuppressionRadius: 1.5}
}

// WithSuppressionRadius overrides the spoke-zeroing radius (in multiples
// of max_spacing). Primarily useful for tests that want to observe raw
// spokes near the boundary.
func WithSuppressionRadius(r float64) Option {
	return func(o *Options) { o.SuppressionRadius = r }
}
