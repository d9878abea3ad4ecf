package topology_test

import (
	"testing"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
	"github.com/arkmesh/meshkit/topology"
	"github.com/stretchr/testify/require"
)

func TestConnectedVertexComponentsSplitsDisjointGraphs(t *testing.T) {
	m := mesh.NewMesh()
	m.ResizeVertices(6)
	// component A: 0-1-2 (a path)
	_, _ = m.InsertGrob(grob.Line, []int{0, 1})
	_, _ = m.InsertGrob(grob.Line, []int{1, 2})
	// component B: 3-4
	_, _ = m.InsertGrob(grob.Line, []int{3, 4})
	// component C: 5 is isolated

	labels, n := topology.ConnectedVertexComponents(m)
	require.Equal(t, 3, n)
	require.Equal(t, labels[0], labels[1])
	require.Equal(t, labels[1], labels[2])
	require.Equal(t, labels[3], labels[4])
	require.NotEqual(t, labels[0], labels[3])
	require.NotEqual(t, labels[0], labels[5])
	require.NotEqual(t, labels[3], labels[5])
}
