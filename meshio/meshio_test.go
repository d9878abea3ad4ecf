package meshio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arkmesh/meshkit/meshbuilder"
	"github.com/arkmesh/meshkit/meshio"
	"github.com/stretchr/testify/require"
)

func TestWriteSTLRoundTripsTriangleCount(t *testing.T) {
	m, err := meshbuilder.Circle(6)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, meshio.WriteSTL(&buf, m, "circle"))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "solid circle\n"))
	require.True(t, strings.HasSuffix(out, "endsolid circle\n"))
	require.Equal(t, 6, strings.Count(out, "facet normal"))
	require.Equal(t, 18, strings.Count(out, "vertex "))
}

func TestWriteNodeAndEle(t *testing.T) {
	m, err := meshbuilder.TetBox(1, 1, 1)
	require.NoError(t, err)

	var node bytes.Buffer
	require.NoError(t, meshio.WriteNode(&node, m))
	require.True(t, strings.HasPrefix(node.String(), "8 3 0 0\n"))

	var ele bytes.Buffer
	require.NoError(t, meshio.WriteEle(&ele, m))
	require.True(t, strings.HasPrefix(ele.String(), "6 4 0\n"))
}

func TestWriteUGXIncludesAllPopulatedKinds(t *testing.T) {
	m, err := meshbuilder.MixedSurface()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, meshio.WriteUGX(&buf, m))

	out := buf.String()
	require.Contains(t, out, "<vertices")
	require.Contains(t, out, "<triangles>")
	require.Contains(t, out, "<quadrilaterals>")
	require.NotContains(t, out, "<tetrahedrons>")
}

func TestRunDispatchesByCommandCaseInsensitively(t *testing.T) {
	m, err := meshbuilder.Grid(2, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, meshio.Run(&buf, "STL", m, "grid"))
	require.Contains(t, buf.String(), "solid grid")
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	m, err := meshbuilder.Grid(2, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = meshio.Run(&buf, "obj", m, "grid")
	require.ErrorIs(t, err, meshio.ErrUnsupportedFormat)
	require.Contains(t, buf.String(), "commands:")
}
