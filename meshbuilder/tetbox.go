// File: tetbox.go
// Role: box of unit cells, each split into 6 tetrahedra sharing the cell's
// main diagonal (the standard Kuhn/Freudenthal cube-to-tets triangulation).
package meshbuilder

import (
	"fmt"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
)

// kuhnTets lists, for one unit cube with corners indexed 0..7 in the
// order (x,y,z) bit pattern (bit0=x, bit1=y, bit2=z), the 6 tetrahedra of
// the Kuhn triangulation. All 6 share the 0->7 main diagonal.
var kuhnTets = [6][4]int{
	{0, 1, 3, 7},
	{0, 1, 5, 7},
	{0, 2, 3, 7},
	{0, 2, 6, 7},
	{0, 4, 5, 7},
	{0, 4, 6, 7},
}

// TetBox builds an nx*ny*nz box of unit cells, each decomposed into 6
// tetrahedra via the Kuhn triangulation, over an (nx+1)*(ny+1)*(nz+1)
// vertex grid.
func TetBox(nx, ny, nz int, opts ...Option) (*mesh.Mesh, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("TetBox: nx=%d ny=%d nz=%d (each must be >= 1): %w", nx, ny, nz, ErrInvalidDimensions)
	}
	cfg := newConfig(opts...)

	vx, vy, vz := nx+1, ny+1, nz+1
	vertexAt := func(x, y, z int) int { return x + y*vx + z*vx*vy }

	m := mesh.NewMesh()
	numVerts := vx * vy * vz
	m.ResizeVertices(numVerts)

	coords := mesh.NewArrayAnnex[float64](3)
	coords.Resize(numVerts)
	for z := 0; z < vz; z++ {
		for y := 0; y < vy; y++ {
			for x := 0; x < vx; x++ {
				p := []float64{
					cfg.origin[0] + float64(x)*cfg.spacing[0],
					cfg.origin[1] + float64(y)*cfg.spacing[1],
					cfg.origin[2] + float64(z)*cfg.spacing[2],
				}
				if err := coords.Set(vertexAt(x, y, z), p); err != nil {
					return nil, err
				}
			}
		}
	}
	m.SetAnnex(mesh.PerKindKey(grob.Point, coordsAnnexName), coords)

	tets := make([]int, 0, nx*ny*nz*6*4)
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				var cellCorner [8]int
				for bit := 0; bit < 8; bit++ {
					dx, dy, dz := bit&1, (bit>>1)&1, (bit>>2)&1
					cellCorner[bit] = vertexAt(x+dx, y+dy, z+dz)
				}
				for _, tet := range kuhnTets {
					tets = append(tets,
						cellCorner[tet[0]], cellCorner[tet[1]],
						cellCorner[tet[2]], cellCorner[tet[3]])
				}
			}
		}
	}
	if err := m.SetGrobs(grob.Tet, tets); err != nil {
		return nil, err
	}

	return m, nil
}
