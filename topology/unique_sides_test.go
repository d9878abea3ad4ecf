package topology_test

import (
	"testing"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
	"github.com/arkmesh/meshkit/topology"
	"github.com/stretchr/testify/require"
)

// buildTwoTrianglesSharedEdge builds two triangles (0,1,2) and (1,2,3)
// sharing the edge (1,2): 4 vertices, 5 unique edges, 1 shared edge.
func buildTwoTrianglesSharedEdge(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	m.ResizeVertices(4)
	_, err := m.InsertGrob(grob.Tri, []int{0, 1, 2})
	require.NoError(t, err)
	_, err = m.InsertGrob(grob.Tri, []int{1, 2, 3})
	require.NoError(t, err)
	return m
}

func TestFindUniqueSidesDedupesSharedEdge(t *testing.T) {
	m := buildTwoTrianglesSharedEdge(t)
	sides := topology.NewUniqueSides()
	inserted, err := topology.FindUniqueSides(sides, m, grob.Faces, 1)
	require.NoError(t, err)
	require.Equal(t, 5, inserted)
	require.Equal(t, 5, sides.Len())
}

func TestFindUniqueSidesNumberedOffsetAndOrder(t *testing.T) {
	m := buildTwoTrianglesSharedEdge(t)
	numbered := topology.NewNumberedSides()
	inserted, err := topology.FindUniqueSidesNumbered(numbered, m, grob.Faces, 1, m.Count(grob.Point))
	require.NoError(t, err)
	require.Equal(t, 5, inserted)

	tri0 := m.Grob(mesh.GrobIndex{Kind: grob.Tri, Pos: 0})
	edge01, err := tri0.Side(1, 0)
	require.NoError(t, err)
	idx, ok := numbered.Index(edge01)
	require.True(t, ok)
	require.Equal(t, m.Count(grob.Point), idx) // first side discovered, offset by vertex count
}

func TestCreateSideGrobsIdempotent(t *testing.T) {
	m := buildTwoTrianglesSharedEdge(t)
	n1, err := topology.CreateSideGrobs(m, 1)
	require.NoError(t, err)
	require.Equal(t, 5, n1)
	require.Equal(t, 5, m.Count(grob.Line))

	n2, err := topology.CreateSideGrobs(m, 1)
	require.NoError(t, err)
	require.Equal(t, 5, n2)
	require.Equal(t, 5, m.Count(grob.Line))
}

func TestCreateSideGrobsRejectsBadDim(t *testing.T) {
	m := buildTwoTrianglesSharedEdge(t)
	_, err := topology.CreateSideGrobs(m, 3)
	require.ErrorIs(t, err, topology.ErrInvalidOperation)
}
