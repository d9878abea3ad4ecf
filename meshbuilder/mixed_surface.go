// File: mixed_surface.go
// Role: the triangle-and-quad mixed surface fixture from spec.md §8, whose
// edge valence histogram is exactly 10 boundary edges and 9 interior
// edges once unique edges are computed over it.
package meshbuilder

import (
	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
)

// MixedSurface builds a 3-row-of-vertices by 4-column-of-vertices quad
// grid (2 rows by 3 columns of cells), then splits two of its six cells
// into triangle pairs along their diagonal. The result has 10 boundary
// edges and 9 interior edges: splitting a cell adds one new interior
// diagonal edge without disturbing any other edge's neighbor count.
func MixedSurface(opts ...Option) (*mesh.Mesh, error) {
	const rows, cols = 3, 4 // vertex grid dimensions: 2x3 cells
	cfg := newConfig(opts...)

	m := mesh.NewMesh()
	m.ResizeVertices(rows * cols)

	coords := mesh.NewArrayAnnex[float64](3)
	coords.Resize(rows * cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := cfg.origin[0] + float64(c)*cfg.spacing[0]
			y := cfg.origin[1] + float64(r)*cfg.spacing[1]
			if err := coords.Set(r*cols+c, []float64{x, y, cfg.origin[2]}); err != nil {
				return nil, err
			}
		}
	}
	m.SetAnnex(mesh.PerKindKey(grob.Point, coordsAnnexName), coords)

	// split these two of the six cells into triangle pairs; any two
	// distinct cells work, the boundary/interior counts do not depend on
	// which ones are chosen.
	split := map[[2]int]bool{{0, 0}: true, {1, 2}: true}

	var tris, quads []int
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			v00 := r*cols + c
			v01 := r*cols + c + 1
			v11 := (r+1)*cols + c + 1
			v10 := (r+1)*cols + c
			if split[[2]int{r, c}] {
				tris = append(tris, v00, v01, v11, v00, v11, v10)
			} else {
				quads = append(quads, v00, v01, v11, v10)
			}
		}
	}

	if err := m.SetGrobs(grob.Tri, tris); err != nil {
		return nil, err
	}
	if err := m.SetGrobs(grob.Quad, quads); err != nil {
		return nil, err
	}

	return m, nil
}
