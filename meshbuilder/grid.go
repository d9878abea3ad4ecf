// File: grid.go
// Role: regular rows×cols orthogonal QUAD grid in the XY plane.
package meshbuilder

import (
	"fmt"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
)

const minGridDim = 1

// Grid builds a rows×cols grid of QUAD cells in the XY plane: rows*cols
// vertices in row-major order, one QUAD per (row,col) cell with corners
// (r,c), (r,c+1), (r+1,c+1), (r+1,c) (counter-clockwise, matching the QUAD
// side table's {0,1},{1,2},{2,3},{3,0} edge ordering).
func Grid(rows, cols int, opts ...Option) (*mesh.Mesh, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Grid: rows=%d cols=%d (each must be >= %d): %w", rows, cols, minGridDim, ErrTooFewVertices)
	}
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

	if rows > 1 && cols > 1 {
		quads := make([]int, 0, (rows-1)*(cols-1)*4)
		for r := 0; r < rows-1; r++ {
			for c := 0; c < cols-1; c++ {
				v00 := r*cols + c
				v01 := r*cols + c + 1
				v11 := (r+1)*cols + c + 1
				v10 := (r+1)*cols + c
				quads = append(quads, v00, v01, v11, v10)
			}
		}
		if err := m.SetGrobs(grob.Quad, quads); err != nil {
			return nil, err
		}
	}

	return m, nil
}
