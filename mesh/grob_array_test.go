package mesh_test

import (
	"testing"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
	"github.com/stretchr/testify/require"
)

func TestGrobArrayPushAndAt(t *testing.T) {
	a := mesh.NewGrobArray(grob.Tri)
	require.NoError(t, a.Push(0, 1, 2))
	require.NoError(t, a.Push(1, 2, 3))
	require.Equal(t, 2, a.Count())
	require.Equal(t, []int{1, 2, 3}, a.At(1).Corners())
}

func TestGrobArrayPushWrongArity(t *testing.T) {
	a := mesh.NewGrobArray(grob.Tet)
	require.ErrorIs(t, a.Push(0, 1, 2), mesh.ErrBadIndexCount)
}

func TestGrobArrayAppendAndSet(t *testing.T) {
	a := mesh.NewGrobArray(grob.Line)
	require.NoError(t, a.Append([]int{0, 1, 1, 2, 2, 3}))
	require.Equal(t, 3, a.Count())

	require.ErrorIs(t, a.Set([]int{0, 1, 2}), mesh.ErrBadIndexCount)
	require.NoError(t, a.Set([]int{5, 6}))
	require.Equal(t, 1, a.Count())
}

func TestGrobArrayClear(t *testing.T) {
	a := mesh.NewGrobArray(grob.Point)
	require.NoError(t, a.Append([]int{0, 1, 2}))
	a.Clear()
	require.Equal(t, 0, a.Count())
	require.Equal(t, 0, a.IndexCount())
}
