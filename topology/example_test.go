package topology_test

import (
	"fmt"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
	"github.com/arkmesh/meshkit/topology"
)

// ExampleCreateSideGrobs derives the unique edges of two triangles sharing
// one edge, then reports the resulting edge count.
func ExampleCreateSideGrobs() {
	m := mesh.NewMesh()
	m.ResizeVertices(4)
	_, _ = m.InsertGrob(grob.Tri, []int{0, 1, 2})
	_, _ = m.InsertGrob(grob.Tri, []int{1, 2, 3})

	n, _ := topology.CreateSideGrobs(m, 1)
	fmt.Println(n, m.Count(grob.Line))
	// Output:
	// 5 5
}
