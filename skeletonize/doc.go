// Package skeletonize is the dispatcher/façade binding user options
// (dimension, end-criterion kind, anchoring, weighting) to a concrete
// thinning engine instance and end criterion, per spec §2 component 6 and
// §6's external interfaces. It owns no algorithm of its own: it wires
// distancefield, aof, endcriteria, and thinning together in the order
// spec §2 describes (raw image → binary mask → distance & spoke → (AOF)
// → thinning core → thin image).
package skeletonize
