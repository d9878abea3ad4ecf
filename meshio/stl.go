// File: stl.go
// Role: ASCII STL export. STL only knows triangles, so this writes the
// mesh's TRI grobs (a QUAD- or TET-only mesh writes an empty solid).
package meshio

import (
	"fmt"
	"io"
	"math"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
)

func vertexCoords(m *mesh.Mesh) (*mesh.ArrayAnnex[float64], error) {
	coords, err := mesh.AnnexAs[*mesh.ArrayAnnex[float64]](m, mesh.PerKindKey(grob.Point, "coords"))
	if err != nil {
		return nil, ErrNoCoords
	}
	return coords, nil
}

func triNormal(a, b, c []float64) [3]float64 {
	ux, uy, uz := b[0]-a[0], b[1]-a[1], b[2]-a[2]
	vx, vy, vz := c[0]-a[0], c[1]-a[1], c[2]-a[2]
	nx, ny, nz := uy*vz-uz*vy, uz*vx-ux*vz, ux*vy-uy*vx
	length := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if length == 0 {
		return [3]float64{0, 0, 0}
	}
	return [3]float64{nx / length, ny / length, nz / length}
}

// WriteSTL writes m's TRI grobs to w as ASCII STL, using the "coords"
// per-vertex annex for positions.
func WriteSTL(w io.Writer, m *mesh.Mesh, solidName string) error {
	coords, err := vertexCoords(m)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "solid %s\n", solidName); err != nil {
		return err
	}
	n := m.Count(grob.Tri)
	for pos := 0; pos < n; pos++ {
		g := m.Grob(mesh.GrobIndex{Kind: grob.Tri, Pos: pos})
		corners := g.Corners()
		a, b, c := coords.At(corners[0]), coords.At(corners[1]), coords.At(corners[2])
		normal := triNormal(a, b, c)
		if _, err := fmt.Fprintf(w, "  facet normal %g %g %g\n", normal[0], normal[1], normal[2]); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "    outer loop"); err != nil {
			return err
		}
		for _, v := range [][]float64{a, b, c} {
			if _, err := fmt.Fprintf(w, "      vertex %g %g %g\n", v[0], v[1], v[2]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    endloop"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  endfacet"); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "endsolid %s\n", solidName)
	return err
}
