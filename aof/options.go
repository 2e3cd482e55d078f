package aof

// Options configures Compute.
type Options struct {
	// DirectionCount is N, the number of quasi-uniform directions. Defaults
	// to DefaultDirectionCount (60).
	DirectionCount int
	// Seed drives the PRNG used to seed non-fixed directions, so runs are
	// reproducible for a given seed.
	Seed int64
	// InteriorMultiplier scales min_spacing to determine the "strictly
	// interior" cutoff (distance(p) > InteriorMultiplier*min_spacing).
	// Defaults to 1.5, per spec §4.3.
	InteriorMultiplier float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the spec-mandated defaults.
func DefaultOptions() Options {
	return Options{DirectionCount: DefaultDirectionCount, Seed: 1, InteriorMultiplier: 1.5}
}

// WithDirectionCount overrides N.
func WithDirectionCount(n int) Option {
	return func(o *Options) { o.DirectionCount = n }
}

// WithSeed overrides the direction-set PRNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithInteriorMultiplier overrides the strictly-interior cutoff multiplier.
func WithInteriorMultiplier(m float64) Option {
	return func(o *Options) { o.InteriorMultiplier = m }
}
