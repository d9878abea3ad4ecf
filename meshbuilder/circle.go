// File: circle.go
// Role: closed triangle fan around a circle (spec.md §8's "circle with 12
// faces" fixture, where every face is vertex-adjacent to every other face
// and edge-adjacent to exactly 2).
package meshbuilder

import (
	"fmt"
	"math"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
)

const minCircleFaces = 3

// Circle builds a disk triangulated as a fan of n triangles: one center
// vertex plus n vertices evenly spaced around the unit circle (radius
// scaled by WithSpacing's X component), with triangle i spanning
// (center, ring[i], ring[(i+1)%n]).
func Circle(n int, opts ...Option) (*mesh.Mesh, error) {
	if n < minCircleFaces {
		return nil, fmt.Errorf("Circle: n=%d (must be >= %d): %w", n, minCircleFaces, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	radius := cfg.spacing[0]

	m := mesh.NewMesh()
	m.ResizeVertices(n + 1)

	coords := mesh.NewArrayAnnex[float64](3)
	coords.Resize(n + 1)
	if err := coords.Set(0, []float64{cfg.origin[0], cfg.origin[1], cfg.origin[2]}); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		x := cfg.origin[0] + radius*math.Cos(theta)
		y := cfg.origin[1] + radius*math.Sin(theta)
		if err := coords.Set(i+1, []float64{x, y, cfg.origin[2]}); err != nil {
			return nil, err
		}
	}
	m.SetAnnex(mesh.PerKindKey(grob.Point, coordsAnnexName), coords)

	tris := make([]int, 0, n*3)
	for i := 0; i < n; i++ {
		a := 1 + i
		b := 1 + (i+1)%n
		tris = append(tris, 0, a, b)
	}
	if err := m.SetGrobs(grob.Tri, tris); err != nil {
		return nil, err
	}

	return m, nil
}
