// File: dag_check.go
// Role: cycle detection over a mesh's link graph (spec.md §5's linked-mesh
// sharing must stay acyclic, or annex lookups recurse forever).
package refine

import "github.com/arkmesh/meshkit/mesh"

// color marks a mesh's visitation state during DetectLinkCycle's DFS.
type color int

const (
	white color = iota // unvisited
	gray               // on the current DFS path
	black              // fully explored, known cycle-free
)

// DetectLinkCycle walks the link graph reachable from start (per
// mesh.Mesh.Links, which follows both the global and per-kind links) and
// reports whether it contains a cycle. On success, it also returns the
// meshes on the discovered cycle, starting and ending at the same mesh.
//
// A cycle here would make mesh.Mesh.Annex recurse forever chasing link
// fallbacks, so this should be run once after wiring up a chain of
// linked meshes (e.g. a series of RefineTriangles calls followed by
// manual mesh.LinkMesh calls) whenever the wiring is not trivially a
// simple chain.
func DetectLinkCycle(start *mesh.Mesh) (bool, []*mesh.Mesh) {
	if start == nil {
		return false, nil
	}

	state := make(map[*mesh.Mesh]color)
	var path []*mesh.Mesh

	var visit func(m *mesh.Mesh) []*mesh.Mesh
	visit = func(m *mesh.Mesh) []*mesh.Mesh {
		state[m] = gray
		path = append(path, m)

		for _, next := range m.Links() {
			switch state[next] {
			case white:
				if cyc := visit(next); cyc != nil {
					return cyc
				}
			case gray:
				// Found a back-edge into the current path: the cycle runs
				// from next's first occurrence to here, plus one step back.
				for i, onPath := range path {
					if onPath == next {
						cyc := append([]*mesh.Mesh{}, path[i:]...)
						return append(cyc, next)
					}
				}
			case black:
				// already fully explored, no cycle through it
			}
		}

		path = path[:len(path)-1]
		state[m] = black
		return nil
	}

	if cyc := visit(start); cyc != nil {
		return true, cyc
	}
	return false, nil
}
