package topology

import "github.com/skeltools/skeltools/voxel"

// Neighbors18 lists, in a fixed order, the 18 offsets at Chebyshev distance
// 1 from the origin excluding the 8 corner-diagonal offsets (|Δ|_∞ = 1 and
// |Δ|_1 ≤ 2). Index into N6 tells which of these are axis-aligned
// (6-connected) neighbors.
var Neighbors18 = []voxel.Offset{
	{-1, -1, 0}, {-1, 0, -1}, {-1, 0, 0}, {-1, 0, 1}, {-1, 1, 0},
	{0, -1, -1}, {0, -1, 0}, {0, -1, 1}, {0, 0, -1}, {0, 0, 1},
	{0, 1, -1}, {0, 1, 0}, {0, 1, 1}, {1, -1, 0}, {1, 0, -1},
	{1, 0, 0}, {1, 0, 1}, {1, 1, 0},
}

// N6 tags which Neighbors18 entries are axis-aligned (6-connected)
// neighbors of the origin.
var N6 = []bool{
	false, false, true, false, false,
	false, true, false, true, true,
	false, true, false, false, false,
	true, false, false,
}

// Neighbors26 lists all 26 offsets with |Δ|_∞ = 1, excluding the origin.
var Neighbors26 = []voxel.Offset{
	{-1, -1, -1}, {-1, -1, 0}, {-1, -1, 1},
	{-1, 0, -1}, {-1, 0, 0}, {-1, 0, 1},
	{-1, 1, -1}, {-1, 1, 0}, {-1, 1, 1},
	{0, -1, -1}, {0, -1, 0}, {0, -1, 1},
	{0, 0, -1}, {0, 0, 1},
	{0, 1, -1}, {0, 1, 0}, {0, 1, 1},
	{1, -1, -1}, {1, -1, 0}, {1, -1, 1},
	{1, 0, -1}, {1, 0, 0}, {1, 0, 1},
	{1, 1, -1}, {1, 1, 0}, {1, 1, 1},
}

// Neighbors8 lists the 8 clockwise-ordered 2D neighbors starting at
// (-1,-1), used by IsSimple2D's edge/corner formula.
var Neighbors8 = []voxel.Offset{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1},
}

// Graph26 lists, per index into Neighbors26, the indices of the other
// Neighbors26 entries that are themselves mutually adjacent within the
// restricted 3x3x3 cube. Used by ComputeCstar's flood fill. 0-based
// (the reference source stores 1-based indices and decrements before use).
var Graph26 = [][]int{
	{1, 2, 4, 5, 10, 11, 13},
	{1, 2, 3, 4, 5, 6, 10, 11, 12, 13, 14},
	{2, 3, 5, 6, 11, 12, 14},
	{1, 2, 4, 5, 7, 8, 10, 11, 13, 15, 16},
	{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	{2, 3, 5, 6, 8, 9, 11, 12, 14, 16, 17},
	{4, 5, 7, 8, 13, 15, 16},
	{4, 5, 6, 7, 8, 9, 13, 14, 15, 16, 17},
	{5, 6, 8, 9, 14, 16, 17},
	{1, 2, 4, 5, 10, 11, 13, 18, 19, 21, 22},
	{1, 2, 3, 4, 5, 6, 10, 11, 12, 13, 14, 18, 19, 20, 21, 22, 23},
	{2, 3, 5, 6, 11, 12, 14, 19, 20, 22, 23},
	{1, 2, 4, 5, 7, 8, 10, 11, 13, 15, 16, 18, 19, 21, 22, 24, 25},
	{2, 3, 5, 6, 8, 9, 11, 12, 14, 16, 17, 19, 20, 22, 23, 25, 26},
	{4, 5, 7, 8, 13, 15, 16, 21, 22, 24, 25},
	{4, 5, 6, 7, 8, 9, 13, 14, 15, 16, 17, 21, 22, 23, 24, 25, 26},
	{5, 6, 8, 9, 14, 16, 17, 22, 23, 25, 26},
	{10, 11, 13, 18, 19, 21, 22},
	{10, 11, 12, 13, 14, 18, 19, 20, 21, 22, 23},
	{11, 12, 14, 19, 20, 22, 23},
	{10, 11, 13, 15, 16, 18, 19, 21, 22, 24, 25},
	{10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26},
	{11, 12, 14, 16, 17, 19, 20, 22, 23, 25, 26},
	{13, 15, 16, 21, 22, 24, 25},
	{13, 14, 15, 16, 17, 21, 22, 23, 24, 25, 26},
	{14, 16, 17, 22, 23, 25, 26},
}

// Graph18 lists, per index into Neighbors18, the indices of the other
// Neighbors18 entries mutually adjacent within the restricted cube. Used by
// ComputeCbar's flood fill. 0-based.
var Graph18 = [][]int{
	{1, 3, 7},
	{2, 3, 9},
	{1, 2, 3, 4, 5},
	{3, 4, 10},
	{3, 5, 12},
	{6, 7, 9},
	{1, 6, 7, 8, 14},
	{7, 8, 10},
	{2, 6, 9, 11, 15},
	{4, 8, 10, 13, 17},
	{9, 11, 12},
	{5, 11, 12, 13, 18},
	{10, 12, 13},
	{7, 14, 16},
	{9, 15, 16},
	{14, 15, 16, 17, 18},
	{10, 16, 17},
	{12, 16, 18},
}

func init() {
	// Graph26/Graph18 above were transcribed from 1-based reference tables
	// (which decrement before indexing); shift to 0-based once here instead
	// of inline at every call site.
	shift := func(g [][]int) {
		for i := range g {
			for j := range g[i] {
				g[i][j]--
			}
		}
	}
	shift(Graph26)
	shift(Graph18)
}
