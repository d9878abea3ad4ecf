// File: walk.go
// Role: breadth-first traversal over a Neighborhoods relation — a feature
// present in the original library (graph-walk helpers over its grob
// adjacency) that the distilled spec dropped; supplemented here in the
// teacher's bfs.go queue+visited+hook style, retargeted from
// core.Graph.Neighbors to topology.Neighborhoods.
package topology

import "github.com/arkmesh/meshkit/mesh"

// WalkOption configures WalkNeighbors.
type WalkOption func(*walkConfig)

type walkConfig struct {
	onVisit func(depth int, gi mesh.GrobIndex)
	maxDepth int
}

// WithOnVisit registers a callback invoked once per newly visited grob, in
// visit order, with its BFS depth from start.
func WithOnVisit(fn func(depth int, gi mesh.GrobIndex)) WalkOption {
	return func(c *walkConfig) { c.onVisit = fn }
}

// WithMaxDepth bounds the walk to grobs within maxDepth of start
// (inclusive). A non-positive value means unbounded.
func WithMaxDepth(maxDepth int) WalkOption {
	return func(c *walkConfig) { c.maxDepth = maxDepth }
}

// WalkNeighbors performs a breadth-first traversal of nbh starting at
// start, following equal-center-and-neighbor-set relations (nbh.CenterSet
// must equal nbh.NeighborSet, as produced by NewLinkedNeighborhoods or any
// same-set neighborhood). Returns the visited grobs in BFS order.
func WalkNeighbors(nbh *Neighborhoods, start mesh.GrobIndex, opts ...WalkOption) []mesh.GrobIndex {
	cfg := walkConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	type queued struct {
		gi    mesh.GrobIndex
		depth int
	}

	visited := map[mesh.GrobIndex]bool{start: true}
	order := []mesh.GrobIndex{start}
	queue := []queued{{gi: start, depth: 0}}

	if cfg.onVisit != nil {
		cfg.onVisit(0, start)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cfg.maxDepth > 0 && cur.depth >= cfg.maxDepth {
			continue
		}
		for _, nb := range nbh.NeighborGrobIndices(cur.gi) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			order = append(order, nb)
			queue = append(queue, queued{gi: nb, depth: cur.depth + 1})
			if cfg.onVisit != nil {
				cfg.onVisit(cur.depth+1, nb)
			}
		}
	}
	return order
}
