package voxel

// Image is a dense, row-major, strided D-dimensional grid of values of type
// T. D is len(dims) and is fixed at construction (2 or 3 for this module's
// purposes, though the type itself does not enforce that).
//
// Complexity: At/Set are O(1); NewImage is O(size); Clone is O(size).
type Image[T any] struct {
	dims    []int
	spacing []float64
	origin  []float64
	strides []int
	data    []T
	border  T // value returned for out-of-bounds reads
}

// NewImage allocates a zero-valued Image with the given per-axis size,
// spacing, and origin. spacing and origin default to 1.0 and 0.0 per axis
// when nil. Returns ErrEmptyDims if dims is empty or any axis size ≤ 0,
// ErrLengthMismatch if spacing/origin are non-nil but disagree in length
// with dims, or ErrBadSpacing if any spacing component is non-positive.
func NewImage[T any](dims []int, spacing, origin []float64) (*Image[T], error) {
	if len(dims) == 0 {
		return nil, ErrEmptyDims
	}
	size := 1
	for _, n := range dims {
		if n <= 0 {
			return nil, ErrEmptyDims
		}
		size *= n
	}
	if spacing == nil {
		spacing = make([]float64, len(dims))
		for d := range spacing {
			spacing[d] = 1.0
		}
	} else if len(spacing) != len(dims) {
		return nil, ErrLengthMismatch
	}
	for _, s := range spacing {
		if s <= 0 {
			return nil, ErrBadSpacing
		}
	}
	if origin == nil {
		origin = make([]float64, len(dims))
	} else if len(origin) != len(dims) {
		return nil, ErrLengthMismatch
	}

	strides := make([]int, len(dims))
	acc := 1
	for d := len(dims) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= dims[d]
	}

	return &Image[T]{
		dims:    append([]int(nil), dims...),
		spacing: append([]float64(nil), spacing...),
		origin:  append([]float64(nil), origin...),
		strides: strides,
		data:    make([]T, size),
	}, nil
}

// Dim returns the image's dimensionality D.
func (img *Image[T]) Dim() int { return len(img.dims) }

// Size returns a copy of the per-axis extent.
func (img *Image[T]) Size() []int { return append([]int(nil), img.dims...) }

// Spacing returns a copy of the per-axis physical voxel size.
func (img *Image[T]) Spacing() []float64 { return append([]float64(nil), img.spacing...) }

// Origin returns a copy of the per-axis physical origin.
func (img *Image[T]) Origin() []float64 { return append([]float64(nil), img.origin...) }

// SetBorder sets the value returned by At/Get for out-of-bounds indices.
// Defaults to the zero value of T.
func (img *Image[T]) SetBorder(v T) { img.border = v }

// InBounds reports whether idx lies within the image's extent.
func (img *Image[T]) InBounds(idx Index) bool {
	if len(idx) != len(img.dims) {
		return false
	}
	for d, c := range idx {
		if c < 0 || c >= img.dims[d] {
			return false
		}
	}
	return true
}

func (img *Image[T]) linear(idx Index) int {
	off := 0
	for d, c := range idx {
		off += c * img.strides[d]
	}
	return off
}

// At returns the value at idx, or the configured border value if idx is
// out of bounds.
func (img *Image[T]) At(idx Index) T {
	if !img.InBounds(idx) {
		return img.border
	}
	return img.data[img.linear(idx)]
}

// Set writes v at idx. It is a no-op if idx is out of bounds (callers that
// need to know should check InBounds first).
func (img *Image[T]) Set(idx Index, v T) {
	if !img.InBounds(idx) {
		return
	}
	img.data[img.linear(idx)] = v
}

// Data exposes the backing slice directly for bulk iteration. Callers must
// not retain it past the image's lifetime assumptions (row-major order).
func (img *Image[T]) Data() []T { return img.data }

// Clone returns a deep, independent copy of img.
func (img *Image[T]) Clone() *Image[T] {
	out := &Image[T]{
		dims:    append([]int(nil), img.dims...),
		spacing: append([]float64(nil), img.spacing...),
		origin:  append([]float64(nil), img.origin...),
		strides: append([]int(nil), img.strides...),
		data:    append([]T(nil), img.data...),
		border:  img.border,
	}
	return out
}

// Each calls fn for every Index in row-major order. fn may read img.At(idx)
// but must not call img.Set on the same image while iterating via the
// shared index buffer (a fresh Index is allocated for each call, so it is
// in fact safe, but sequential use is the intended pattern).
func (img *Image[T]) Each(fn func(idx Index)) {
	idx := make(Index, len(img.dims))
	img.eachRec(idx, 0, fn)
}

func (img *Image[T]) eachRec(idx Index, axis int, fn func(Index)) {
	if axis == len(img.dims) {
		cp := idx.Clone()
		fn(cp)
		return
	}
	for c := 0; c < img.dims[axis]; c++ {
		idx[axis] = c
		img.eachRec(idx, axis+1, fn)
	}
}

// SameShape reports whether a and b share dimension count and per-axis size.
func SameShape[T1, T2 any](a *Image[T1], b *Image[T2]) bool {
	if a.Dim() != b.Dim() {
		return false
	}
	for d := range a.dims {
		if a.dims[d] != b.dims[d] {
			return false
		}
	}
	return true
}
