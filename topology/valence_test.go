package topology_test

import (
	"testing"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/topology"
	"github.com/stretchr/testify/require"
)

func TestComputeGrobValencesHigherNeighbor(t *testing.T) {
	m := buildTwoTrianglesSharedEdge(t)
	_, err := topology.CreateSideGrobs(m, 1)
	require.NoError(t, err)

	valences, err := topology.ComputeGrobValences(m, grob.Edges, grob.Faces)
	require.NoError(t, err)
	require.Len(t, valences, 5)

	counts := map[int]int{}
	for _, v := range valences {
		counts[v]++
	}
	require.Equal(t, 1, counts[2]) // the shared edge
	require.Equal(t, 4, counts[1]) // the four non-shared edges
}

func TestComputeGrobValencesLowerNeighborIsStructural(t *testing.T) {
	m := buildTwoTrianglesSharedEdge(t)
	valences, err := topology.ComputeGrobValences(m, grob.Faces, grob.Vertices)
	require.NoError(t, err)
	for _, v := range valences {
		require.Equal(t, 3, v) // every TRI has exactly 3 VERTEX sides
	}
}

func TestComputeGrobValencesEqualDimRejected(t *testing.T) {
	m := buildTwoTrianglesSharedEdge(t)
	_, err := topology.ComputeGrobValences(m, grob.Faces, grob.Faces)
	require.ErrorIs(t, err, topology.ErrInvalidOperation)
}

func TestValenceHistogram(t *testing.T) {
	m := buildTwoTrianglesSharedEdge(t)
	_, err := topology.CreateSideGrobs(m, 1)
	require.NoError(t, err)

	h, err := topology.ValenceHistogram(m, grob.Edges, grob.Faces)
	require.NoError(t, err)
	require.Equal(t, []int{0, 4, 1}, h) // h[1]=4, h[2]=1
}
