package topology_test

import (
	"testing"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
	"github.com/arkmesh/meshkit/topology"
	"github.com/stretchr/testify/require"
)

func buildTriQuadMesh(t *testing.T, nTri, nQuad int) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	m.ResizeVertices(nTri*3 + nQuad*4)
	next := 0
	for i := 0; i < nTri; i++ {
		_, err := m.InsertGrob(grob.Tri, []int{next, next + 1, next + 2})
		require.NoError(t, err)
		next += 3
	}
	for i := 0; i < nQuad; i++ {
		_, err := m.InsertGrob(grob.Quad, []int{next, next + 1, next + 2, next + 3})
		require.NoError(t, err)
		next += 4
	}
	return m
}

func TestGrobToIndexMapRoundTrip(t *testing.T) {
	m := buildTriQuadMesh(t, 2, 3)
	im := topology.NewGrobToIndexMap(m, grob.Faces)
	require.Equal(t, 5, im.Len())
	require.Equal(t, 0, im.Base(grob.Tri))
	require.Equal(t, 2, im.Base(grob.Quad))

	tri1 := m.Grob(mesh.GrobIndex{Kind: grob.Tri, Pos: 1})
	idx, ok := im.Index(tri1)
	require.True(t, ok)
	require.Equal(t, 1, idx)

	quad0 := m.Grob(mesh.GrobIndex{Kind: grob.Quad, Pos: 0})
	idx, ok = im.Index(quad0)
	require.True(t, ok)
	require.Equal(t, 2, idx)
}

func TestTotalToGrobIndexMapBoundaryCases(t *testing.T) {
	nTri, nQuad := 4, 3
	m := buildTriQuadMesh(t, nTri, nQuad)
	ttg := topology.NewTotalToGrobIndexMap(m, grob.Faces)

	require.Equal(t, mesh.GrobIndex{Kind: grob.Tri, Pos: nTri - 1}, ttg.At(nTri-1))
	require.Equal(t, mesh.GrobIndex{Kind: grob.Quad, Pos: 0}, ttg.At(nTri))
	require.Equal(t, mesh.GrobIndex{Kind: grob.Quad, Pos: nQuad - 1}, ttg.At(nTri+nQuad-1))
}
