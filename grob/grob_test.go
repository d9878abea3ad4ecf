package grob_test

import (
	"testing"

	"github.com/arkmesh/meshkit/grob"
	"github.com/stretchr/testify/require"
)

func TestCornerOffsetsPacking(t *testing.T) {
	var c grob.CornerOffsets
	for i := 0; i < grob.MaxCorners; i++ {
		c.Set(i, 15-i%16)
	}
	for i := 0; i < grob.MaxCorners; i++ {
		require.Equal(t, 15-i%16, c.Get(i))
	}
}

func TestGrobCornersDirect(t *testing.T) {
	// One TRI at element index 1 inside a buffer holding two TRIs.
	buf := []int{0, 1, 2, 3, 4, 5}
	g := grob.NewDirect(grob.Tri, buf, 1)
	require.Equal(t, grob.Tri, g.Kind())
	require.Equal(t, []int{3, 4, 5}, g.Corners())
}

func TestGrobSideRemapsThroughSameBuffer(t *testing.T) {
	// A single TET with corners (10,20,30,40) somewhere in a shared buffer.
	buf := []int{10, 20, 30, 40}
	tet := grob.NewDirect(grob.Tet, buf, 0)

	face0, err := tet.Side(2, 0) // TRI, local corners (0,2,1)
	require.NoError(t, err)
	require.Equal(t, grob.Tri, face0.Kind())
	require.Equal(t, []int{10, 30, 20}, face0.Corners())

	edge, err := tet.Side(1, 0) // EDGE, local corners (0,1)
	require.NoError(t, err)
	require.Equal(t, []int{10, 20}, edge.Corners())
}

func TestGrobEqualityIgnoresOrderAndOrientation(t *testing.T) {
	bufA := []int{5, 7, 9}
	bufB := []int{9, 5, 7}
	a := grob.NewDirect(grob.Tri, bufA, 0)
	b := grob.NewDirect(grob.Tri, bufB, 0)
	require.True(t, a.Equal(b))

	c := grob.NewDirect(grob.Tri, []int{5, 7, 8}, 0)
	require.False(t, a.Equal(c))
}

func TestGrobEqualityRequiresSameKind(t *testing.T) {
	line := grob.NewDirect(grob.Line, []int{1, 2}, 0)
	tri := grob.NewDirect(grob.Tri, []int{1, 2, 3}, 0)
	require.False(t, line.Equal(tri))
}

func TestFindSide(t *testing.T) {
	buf := []int{10, 20, 30, 40}
	tet := grob.NewDirect(grob.Tet, buf, 0)
	candidate := grob.NewDirect(grob.Tri, []int{30, 10, 20}, 0) // same set as face0, reordered
	idx, ok := tet.FindSide(candidate)
	require.True(t, ok)
	require.Equal(t, 0, idx)

	missing := grob.NewDirect(grob.Tri, []int{1, 2, 3}, 0)
	_, ok = tet.FindSide(missing)
	require.False(t, ok)
}

func TestHashIsCollisionTolerantButEqualityIsNot(t *testing.T) {
	// Two distinct TRIs sharing the same minimum corner hash identically;
	// only Key (or Equal) tells them apart.
	a := grob.NewDirect(grob.Tri, []int{1, 2, 3}, 0)
	b := grob.NewDirect(grob.Tri, []int{1, 9, 9}, 0)
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Key(), b.Key())
	require.False(t, a.Equal(b))
}

func TestKeyRoundTripsThroughMap(t *testing.T) {
	m := map[grob.Key]string{}
	a := grob.NewDirect(grob.Tri, []int{1, 2, 3}, 0)
	m[a.Key()] = "first"

	reordered := grob.NewDirect(grob.Tri, []int{3, 1, 2}, 0)
	v, ok := m[reordered.Key()]
	require.True(t, ok)
	require.Equal(t, "first", v)
}
