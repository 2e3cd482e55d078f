// Package endcriteria provides the pluggable end-criterion strategies
// consumed by the thinning core's Ordered variant (spec §4.4.2): curve,
// surface, and their AOF-anchored counterparts. Each criterion is a plain
// function value — a strategy record, not a class hierarchy — taking the
// current skeleton, a candidate voxel, and an optional AOF field.
package endcriteria
