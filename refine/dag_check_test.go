package refine_test

import (
	"testing"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
	"github.com/arkmesh/meshkit/refine"
	"github.com/stretchr/testify/require"
)

func TestDetectLinkCycleNilIsCycleFree(t *testing.T) {
	has, cyc := refine.DetectLinkCycle(nil)
	require.False(t, has)
	require.Nil(t, cyc)
}

func TestDetectLinkCycleChainIsCycleFree(t *testing.T) {
	a := mesh.NewMesh()
	b := mesh.NewMesh()
	c := mesh.NewMesh()
	a.LinkMesh(b, nil)
	b.LinkMesh(c, nil)

	has, _ := refine.DetectLinkCycle(a)
	require.False(t, has)
}

func TestDetectLinkCycleDetectsSelfLink(t *testing.T) {
	a := mesh.NewMesh()
	a.LinkMesh(a, nil)

	has, cyc := refine.DetectLinkCycle(a)
	require.True(t, has)
	require.NotEmpty(t, cyc)
}

func TestDetectLinkCycleDetectsIndirectCycle(t *testing.T) {
	a := mesh.NewMesh()
	b := mesh.NewMesh()
	pointKind := grob.Point
	a.LinkMesh(b, &pointKind)
	b.LinkMesh(a, nil)

	has, cyc := refine.DetectLinkCycle(a)
	require.True(t, has)
	require.GreaterOrEqual(t, len(cyc), 2)
}
