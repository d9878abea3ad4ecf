// File: nodeele.go
// Role: tetgen-style .node/.ele export for tetrahedral meshes.
package meshio

import (
	"fmt"
	"io"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
)

// WriteNode writes m's vertex positions to w in tetgen .node format:
// a header line (count, dim, 0 attributes, 0 boundary markers) followed
// by one "index x y z" line per vertex.
func WriteNode(w io.Writer, m *mesh.Mesh) error {
	coords, err := vertexCoords(m)
	if err != nil {
		return err
	}
	n := m.Count(grob.Point)
	if _, err := fmt.Fprintf(w, "%d 3 0 0\n", n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		v := coords.At(i)
		if _, err := fmt.Fprintf(w, "%d %g %g %g\n", i, v[0], v[1], v[2]); err != nil {
			return err
		}
	}
	return nil
}

// WriteEle writes m's TET grobs to w in tetgen .ele format: a header line
// (count, 4 corners, 0 attributes) followed by one "index c0 c1 c2 c3"
// line per tetrahedron.
func WriteEle(w io.Writer, m *mesh.Mesh) error {
	n := m.Count(grob.Tet)
	if _, err := fmt.Fprintf(w, "%d 4 0\n", n); err != nil {
		return err
	}
	for pos := 0; pos < n; pos++ {
		g := m.Grob(mesh.GrobIndex{Kind: grob.Tet, Pos: pos})
		c := g.Corners()
		if _, err := fmt.Fprintf(w, "%d %d %d %d %d\n", pos, c[0], c[1], c[2], c[3]); err != nil {
			return err
		}
	}
	return nil
}
