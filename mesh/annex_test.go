package mesh_test

import (
	"testing"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
	"github.com/stretchr/testify/require"
)

func TestArrayAnnexPushAndAt(t *testing.T) {
	a := mesh.NewArrayAnnex[float64](3)
	require.NoError(t, a.Push(1, 2, 3))
	require.NoError(t, a.Push(4, 5, 6))
	require.Equal(t, 2, a.Len())
	require.Equal(t, []float64{4, 5, 6}, a.At(1))
	require.ErrorIs(t, a.Push(1, 2), mesh.ErrBadTupleSize)
}

func TestArrayAnnexResize(t *testing.T) {
	a := mesh.NewArrayAnnex[int32](2)
	a.Resize(3)
	require.Equal(t, 3, a.Len())
	require.Equal(t, []int32{0, 0}, a.At(2))

	a.Resize(1)
	require.Equal(t, 1, a.Len())
}

func TestAnnexStorageKeyOrdering(t *testing.T) {
	s := mesh.NewAnnexStorage()
	s.Insert(mesh.PerKindKey(grob.Tri, "b"), mesh.NewArrayAnnex[int32](1))
	s.Insert(mesh.PerKindKey(grob.Point, "a"), mesh.NewArrayAnnex[int32](1))
	s.Insert(mesh.GlobalKey("name"), mesh.NewArrayAnnex[int32](1))

	keys := s.Keys()
	require.Equal(t, mesh.GlobalKey("name"), keys[0])
	require.Equal(t, mesh.PerKindKey(grob.Point, "a"), keys[1])
	require.Equal(t, mesh.PerKindKey(grob.Tri, "b"), keys[2])
}

func TestMeshAnnexAttachAndAs(t *testing.T) {
	m := mesh.NewMesh()
	key := mesh.PerKindKey(grob.Point, "coords")
	m.SetAnnex(key, mesh.NewArrayAnnex[float64](3))

	require.True(t, m.HasAnnex(key))
	coords, err := mesh.AnnexAs[*mesh.ArrayAnnex[float64]](m, key)
	require.NoError(t, err)
	require.NoError(t, coords.Push(1, 2, 3))

	_, err = mesh.AnnexAs[*mesh.ArrayAnnex[int32]](m, key)
	require.ErrorIs(t, err, mesh.ErrAnnexType)

	m.RemoveAnnex(key)
	require.False(t, m.HasAnnex(key))
}

func TestMeshAnnexUpdateTracksGrobCount(t *testing.T) {
	m := mesh.NewMesh()
	key := mesh.PerKindKey(grob.Point, "coords")
	coords := mesh.NewArrayAnnex[float64](3)
	m.SetAnnex(key, coords)

	m.ResizeVertices(4)
	require.Equal(t, 4, coords.Len())

	m.ResizeVertices(1)
	require.Equal(t, 1, coords.Len())
}

func TestMeshAnnexLinkForwarding(t *testing.T) {
	source := mesh.NewMesh()
	key := mesh.PerKindKey(grob.Point, "coords")
	coords := mesh.NewArrayAnnex[float64](3)
	source.SetAnnex(key, coords)

	rim := mesh.NewMesh()
	pointKind := grob.Point
	rim.LinkMesh(source, &pointKind)

	require.False(t, rim.HasAnnex(mesh.GlobalKey("unrelated")))
	require.True(t, rim.HasAnnex(key))
	got, err := mesh.AnnexAs[*mesh.ArrayAnnex[float64]](rim, key)
	require.NoError(t, err)
	require.Same(t, coords, got)
}
