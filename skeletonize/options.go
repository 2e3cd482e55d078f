package skeletonize

// EndKind selects one of spec §4.4.2's four end-criterion variants.
type EndKind int

const (
	// CurveNone is the unanchored medial-curve criterion.
	CurveNone EndKind = iota
	// SurfaceNone is the unanchored medial-surface criterion.
	SurfaceNone
	// CurveAofAnchored anchors curve ends with the AOF field.
	CurveAofAnchored
	// SurfaceAofAnchored anchors surface ends with the AOF field.
	SurfaceAofAnchored
)

// Options configures Run, per spec §6's configuration table.
type Options struct {
	// EndKind selects the end criterion. Defaults to CurveNone.
	EndKind EndKind
	// AOFThreshold is the anchor cutoff; ignored unless EndKind is one of
	// the AOF-anchored variants. Zero means "use the per-kind default"
	// (-30 for curves, 0 for surfaces, per spec §6).
	AOFThreshold float64
	// AOFThresholdSet distinguishes an explicit zero threshold (valid for
	// surfaces) from "unset" (fall back to the per-kind default).
	AOFThresholdSet bool
	// RadiusWeighted: output is thickness-weighted rather than binary.
	RadiusWeighted bool
	// Quick restricts AOF-anchored seeding to voxels with AOF < 0; it has no
	// effect for the non-anchored EndKinds.
	Quick bool
	// AOFSeed drives the AOF engine's direction-set PRNG.
	AOFSeed int64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns CurveNone, unweighted, non-quick defaults.
func DefaultOptions() Options {
	return Options{EndKind: CurveNone, AOFSeed: 1}
}

// WithEndKind selects the end criterion.
func WithEndKind(k EndKind) Option {
	return func(o *Options) { o.EndKind = k }
}

// WithAOFThreshold overrides the anchor cutoff.
func WithAOFThreshold(t float64) Option {
	return func(o *Options) { o.AOFThreshold = t; o.AOFThresholdSet = true }
}

// WithRadiusWeighted enables thickness-weighted output.
func WithRadiusWeighted() Option {
	return func(o *Options) { o.RadiusWeighted = true }
}

// WithQuick enables AOF-anchored quick-mode seeding.
func WithQuick() Option {
	return func(o *Options) { o.Quick = true }
}

// WithAOFSeed overrides the AOF direction-set PRNG seed.
func WithAOFSeed(seed int64) Option {
	return func(o *Options) { o.AOFSeed = seed }
}
