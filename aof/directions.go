package aof

import (
	"math/rand"

	"github.com/skeltools/skeltools/voxel"
)

// DefaultDirectionCount is N from spec §4.3.
const DefaultDirectionCount = 60

// relaxIterations is the number of Coulomb-repulsion passes applied to the
// randomly seeded directions, per the reference implementation.
const relaxIterations = 50

// GenerateDirections returns n approximately uniform unit directions on the
// (dim-1)-sphere. The first direction is always (1, 0, ..., 0); the rest
// are seeded via a deterministic PRNG (for reproducible tests) and relaxed
// by pairwise inverse-square repulsion.
func GenerateDirections(n, dim int, seed int64) []voxel.Vector {
	rng := rand.New(rand.NewSource(seed))

	points := make([]voxel.Vector, n)
	first := make(voxel.Vector, dim)
	first[0] = 1.0
	points[0] = first
	for i := 1; i < n; i++ {
		points[i] = randomUnitVector(rng, dim)
	}

	forces := make([]voxel.Vector, n)
	for i := range forces {
		forces[i] = make(voxel.Vector, dim)
	}

	for iter := 0; iter < relaxIterations; iter++ {
		for i := 1; i < n; i++ {
			for d := range forces[i] {
				forces[i][d] = 0
			}
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				delta := points[i].Sub(points[j])
				r := delta.Norm()
				r *= r
				if r == 0 {
					continue
				}
				forces[i] = forces[i].Add(delta.Scale(1 / r))
			}
		}
		for i := 1; i < n; i++ {
			points[i] = points[i].Add(forces[i]).Normalize()
		}
	}
	return points
}

func randomUnitVector(rng *rand.Rand, dim int) voxel.Vector {
	v := make(voxel.Vector, dim)
	for {
		var norm float64
		for d := range v {
			v[d] = rng.NormFloat64()
			norm += v[d] * v[d]
		}
		if norm > 1e-12 {
			break
		}
	}
	return v.Normalize()
}
