// File: ugx.go
// Role: minimal UGX-shaped export (ProMesh's grid XML format). This is not
// a full UGX writer — no subset/selector sections, no boundary metadata —
// just enough structure for a viewer to round-trip vertices and faces.
package meshio

import (
	"fmt"
	"io"
	"strings"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
)

// WriteUGX writes m to w as a minimal <grid> document: one <vertices>
// block and one <triangles>/<quadrilaterals>/<tetrahedrons> block per
// populated TRI/QUAD/TET kind. HEX, PYRA and PRISM grobs are not written.
func WriteUGX(w io.Writer, m *mesh.Mesh) error {
	coords, err := vertexCoords(m)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, `<?xml version="1.0" encoding="utf-8"?>`); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, `<grid name="defGrid">`); err != nil {
		return err
	}

	n := m.Count(grob.Point)
	fmt.Fprintf(w, "<vertices coords=\"3\">")
	for i := 0; i < n; i++ {
		v := coords.At(i)
		fmt.Fprintf(w, "%g %g %g ", v[0], v[1], v[2])
	}
	fmt.Fprintln(w, "</vertices>")

	writeFaces := func(tag string, kind grob.Kind) error {
		cnt := m.Count(kind)
		if cnt == 0 {
			return nil
		}
		var sb strings.Builder
		for pos := 0; pos < cnt; pos++ {
			g := m.Grob(mesh.GrobIndex{Kind: kind, Pos: pos})
			for _, c := range g.Corners() {
				fmt.Fprintf(&sb, "%d ", c)
			}
		}
		_, err := fmt.Fprintf(w, "<%s>%s</%s>\n", tag, strings.TrimSpace(sb.String()), tag)
		return err
	}
	if err := writeFaces("triangles", grob.Tri); err != nil {
		return err
	}
	if err := writeFaces("quadrilaterals", grob.Quad); err != nil {
		return err
	}
	if err := writeFaces("tetrahedrons", grob.Tet); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, "</grid>")
	return err
}
