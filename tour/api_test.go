package tour

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skeltools/skeltools/skelgraph"
	"github.com/skeltools/skeltools/tsp"
	"github.com/skeltools/skeltools/voxel"
)

func line(t *testing.T, n int) *voxel.Skeleton {
	t.Helper()
	skel, err := voxel.NewImage[float32]([]int{n, 1}, nil, nil)
	require.NoError(t, err)
	for x := 0; x < n; x++ {
		skel.Set(voxel.Index{x, 0}, 1)
	}
	return skel
}

func TestEndpoints_FindsBothLineTips(t *testing.T) {
	sg, err := skelgraph.BuildMedialGraph(line(t, 6))
	require.NoError(t, err)

	ids, err := Endpoints(sg)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		skelgraph.VertexID(voxel.Index{0, 0}),
		skelgraph.VertexID(voxel.Index{5, 0}),
	}, ids)
}

func TestSolve_RejectsTooFewEndpoints(t *testing.T) {
	sg, err := skelgraph.BuildMedialGraph(line(t, 4))
	require.NoError(t, err)

	_, err = Solve(sg, []string{skelgraph.VertexID(voxel.Index{0, 0})}, tsp.DefaultOptions())
	require.ErrorIs(t, err, ErrTooFewEndpoints)
}

func TestSolve_RejectsUnknownEndpoint(t *testing.T) {
	sg, err := skelgraph.BuildMedialGraph(line(t, 4))
	require.NoError(t, err)

	_, err = Solve(sg, []string{skelgraph.VertexID(voxel.Index{0, 0}), "nope"}, tsp.DefaultOptions())
	require.ErrorIs(t, err, ErrUnknownEndpoint)
}

func TestSolve_VisitsBothEndpoints(t *testing.T) {
	sg, err := skelgraph.BuildMedialGraph(line(t, 6))
	require.NoError(t, err)

	ids, err := Endpoints(sg)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	res, err := Solve(sg, ids, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Contains(t, res.Order, ids[0])
	require.Contains(t, res.Order, ids[1])
	require.Greater(t, res.Cost, 0.0)
}
