package shapes

import (
	"math"

	"github.com/skeltools/skeltools/voxel"
)

// Solid fills every voxel of the mask foreground — the "filled square" /
// "solid cube" scenarios of spec §8 scenarios 1 and 3, parametrized by the
// mask's own size rather than a separate argument.
func Solid() Constructor {
	return func(mask *voxel.BinaryMask) error {
		mask.Each(func(p voxel.Index) { mask.Set(p, 1) })
		return nil
	}
}

// Ring fills a 2D annulus centered in the mask between innerRadius and
// outerRadius (spec §8 scenario 2: outer 6, inner 2).
func Ring(outerRadius, innerRadius float64) Constructor {
	return func(mask *voxel.BinaryMask) error {
		if innerRadius <= 0 || outerRadius <= innerRadius {
			return ErrInvalidParameter
		}
		dims := mask.Size()
		if len(dims) != 2 {
			return ErrInvalidParameter
		}
		cx, cy := float64(dims[0]-1)/2, float64(dims[1]-1)/2
		mask.Each(func(p voxel.Index) {
			dx, dy := float64(p[0])-cx, float64(p[1])-cy
			r := math.Sqrt(dx*dx + dy*dy)
			if r >= innerRadius && r <= outerRadius {
				mask.Set(p, 1)
			}
		})
		return nil
	}
}

// Cylinder fills a solid 3D cylinder of the given radius, axis along the
// last (z) dimension (spec §8 scenario 4).
func Cylinder(radius float64) Constructor {
	return func(mask *voxel.BinaryMask) error {
		if radius <= 0 {
			return ErrInvalidParameter
		}
		dims := mask.Size()
		if len(dims) != 3 {
			return ErrInvalidParameter
		}
		cx, cy := float64(dims[0]-1)/2, float64(dims[1]-1)/2
		mask.Each(func(p voxel.Index) {
			dx, dy := float64(p[0])-cx, float64(p[1])-cy
			if dx*dx+dy*dy <= radius*radius {
				mask.Set(p, 1)
			}
		})
		return nil
	}
}

// Torus fills a solid torus: revolution of a tube of radius tubeRadius
// around a ring of radius outerRadius in the xy-plane, centered in z
// (spec §8 scenario 5: one through-hole).
func Torus(outerRadius, tubeRadius float64) Constructor {
	return func(mask *voxel.BinaryMask) error {
		if outerRadius <= 0 || tubeRadius <= 0 {
			return ErrInvalidParameter
		}
		dims := mask.Size()
		if len(dims) != 3 {
			return ErrInvalidParameter
		}
		cx, cy, cz := float64(dims[0]-1)/2, float64(dims[1]-1)/2, float64(dims[2]-1)/2
		mask.Each(func(p voxel.Index) {
			dx, dy, dz := float64(p[0])-cx, float64(p[1])-cy, float64(p[2])-cz
			rho := math.Sqrt(dx*dx + dy*dy)
			radial := rho - outerRadius
			if radial*radial+dz*dz <= tubeRadius*tubeRadius {
				mask.Set(p, 1)
			}
		})
		return nil
	}
}

// TShape builds a 3D T: a vertical stem along z (length armLen, centered
// in x/y) meeting a horizontal crossbar spanning the full x extent at the
// stem's top, giving three free ends and one curve-curve junction (spec
// §8 scenario 6).
func TShape(armLen int) Constructor {
	return func(mask *voxel.BinaryMask) error {
		if armLen <= 0 {
			return ErrInvalidParameter
		}
		dims := mask.Size()
		if len(dims) != 3 {
			return ErrInvalidParameter
		}
		cx, cy := dims[0]/2, dims[1]/2
		top := armLen - 1
		if top >= dims[2] {
			top = dims[2] - 1
		}
		for z := 0; z <= top; z++ {
			mask.Set(voxel.Index{cx, cy, z}, 1)
		}
		for x := 0; x < dims[0]; x++ {
			mask.Set(voxel.Index{x, cy, top}, 1)
		}
		return nil
	}
}
