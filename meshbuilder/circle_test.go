package meshbuilder_test

import (
	"testing"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/meshbuilder"
	"github.com/arkmesh/meshkit/topology"
	"github.com/stretchr/testify/require"
)

// TestCircleTwelveFacesValences reproduces spec.md §8's "circle with 12
// faces" fixture: the center vertex touches every face, each ring vertex
// touches exactly 2, and every edge is shared by 1 face (rim) or 2 (spoke).
func TestCircleTwelveFacesValences(t *testing.T) {
	const n = 12
	m, err := meshbuilder.Circle(n)
	require.NoError(t, err)
	require.Equal(t, n+1, m.Count(grob.Point))
	require.Equal(t, n, m.Count(grob.Tri))

	vertexHist, err := topology.ValenceHistogram(m, grob.Vertices, grob.Faces)
	require.NoError(t, err)
	require.Equal(t, 1, vertexHist[n], "the center vertex touches all n faces")
	require.Equal(t, n, vertexHist[2], "each ring vertex touches exactly 2 faces")

	numEdges, err := topology.CreateSideGrobs(m, 1)
	require.NoError(t, err)
	require.Equal(t, 2*n, numEdges, "n rim edges plus n spoke edges")

	edgeHist, err := topology.ValenceHistogram(m, grob.Edges, grob.Faces)
	require.NoError(t, err)
	require.Equal(t, n, edgeHist[1], "rim edges border exactly 1 face")
	require.Equal(t, n, edgeHist[2], "spoke edges border exactly 2 faces")
}

func TestCircleRejectsTooFewFaces(t *testing.T) {
	_, err := meshbuilder.Circle(2)
	require.ErrorIs(t, err, meshbuilder.ErrTooFewVertices)
}
