// File: refine_triangles.go
// Role: regular (1-to-4) subdivision of a triangle mesh (spec.md §4.6).
package refine

import (
	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
	"github.com/arkmesh/meshkit/parallel"
	"github.com/arkmesh/meshkit/topology"
)

// vertexCoordsKey is the conventional per-POINT annex key carrying vertex
// coordinates, the same key meshbuilder's fixtures write and the meshio
// writers read.
var vertexCoordsKey = mesh.PerKindKey(grob.Point, "coords")

// RefineTriangles performs standard regular subdivision on every TRI in
// parentMesh: each parent triangle becomes 4 child triangles, one per
// corner plus a center triangle formed by the three edge midpoints.
// Quads and other kinds in parentMesh are ignored. Returns the populated
// Hierarchy linking parentMesh to the new child mesh.
func RefineTriangles(parentMesh *mesh.Mesh) (*Hierarchy, error) {
	if parentMesh == nil {
		return nil, ErrNilParent
	}

	numOldVertices := parentMesh.Count(grob.Point)

	parentEdges := topology.NewNumberedSides()
	if _, err := topology.FindUniqueSidesNumbered(parentEdges, parentMesh, grob.SetTri, 1, numOldVertices); err != nil {
		return nil, err
	}
	numParentEdges := parentEdges.Len()
	numNewVertices := numOldVertices + numParentEdges

	childMesh := mesh.NewMesh()
	childMesh.ResizeVertices(numNewVertices)

	h := NewHierarchy(parentMesh, childMesh)
	h.Reserve(grob.Point, numNewVertices)

	for i := 0; i < numOldVertices; i++ {
		h.AddRelation(parentMesh.Grob(mesh.GrobIndex{Kind: grob.Point, Pos: i}), grob.Point, i, 1)
	}
	if err := addEdgeRelations(h, parentMesh, parentEdges, numOldVertices); err != nil {
		return nil, err
	}

	newTris, err := createChildTriangles(parentMesh, parentEdges)
	if err != nil {
		return nil, err
	}
	if err := childMesh.SetGrobs(grob.Tri, newTris); err != nil {
		return nil, err
	}

	numParentTris := parentMesh.Count(grob.Tri)
	h.Reserve(grob.Tri, numParentTris)
	for i := 0; i < numParentTris; i++ {
		h.AddRelation(parentMesh.Grob(mesh.GrobIndex{Kind: grob.Tri, Pos: i}), grob.Tri, i*4, 4)
	}

	if err := RunRefinementCallback(h); err != nil {
		return nil, err
	}

	return h, nil
}

// addEdgeRelations walks every TRI's 3 edges again (parentEdges is already
// fully populated by this point) purely to recover, for each unique edge,
// the grob.Grob value to store as Relation.Parent; the index assignment
// itself was already fixed by FindUniqueSidesNumbered.
func addEdgeRelations(h *Hierarchy, parentMesh *mesh.Mesh, parentEdges *topology.NumberedSides, numOldVertices int) error {
	seen := make(map[int]bool, parentEdges.Len())
	n := parentMesh.Count(grob.Tri)
	for pos := 0; pos < n; pos++ {
		g := parentMesh.Grob(mesh.GrobIndex{Kind: grob.Tri, Pos: pos})
		for si := 0; si < 3; si++ {
			edge, err := g.Side(1, si)
			if err != nil {
				return err
			}
			idx, ok := parentEdges.Index(edge)
			if !ok || seen[idx] {
				continue
			}
			seen[idx] = true
			h.AddRelation(edge, grob.Point, idx, 1)
		}
	}
	return nil
}

// createChildTriangles builds the flat TRI corner-index buffer for the
// child mesh: 12 indices per parent triangle, laid out as 4 consecutive
// child triangles following the (v0,e01,e20)/(v1,e12,e01)/(v2,e20,e12)/
// (e01,e12,e20) ordering, one parallel.For block per group of parent
// triangles.
func createChildTriangles(parentMesh *mesh.Mesh, parentEdges *topology.NumberedSides) ([]int, error) {
	n := parentMesh.Count(grob.Tri)
	newTris := make([]int, n*12)

	err := parallel.ForErr(n, 0, func(i int) error {
		g := parentMesh.Grob(mesh.GrobIndex{Kind: grob.Tri, Pos: i})
		var edgeIdx [3]int
		for si := 0; si < 3; si++ {
			edge, err := g.Side(1, si)
			if err != nil {
				return err
			}
			idx, ok := parentEdges.Index(edge)
			if !ok {
				return topology.ErrInvalidOperation
			}
			edgeIdx[si] = idx
		}

		base := i * 12
		for c := 0; c < 3; c++ {
			newTris[base+c*3+0] = g.Corner(c)
			newTris[base+c*3+1] = edgeIdx[c]
			newTris[base+c*3+2] = edgeIdx[(c+2)%3]
		}
		newTris[base+9] = edgeIdx[0]
		newTris[base+10] = edgeIdx[1]
		newTris[base+11] = edgeIdx[2]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newTris, nil
}

// RunRefinementCallback propagates vertex coordinates from h's parent mesh
// to its child mesh: every VERTEX child relation is walked, and each child
// vertex index is assigned the centroid (average of all corner
// coordinates) of its parent grob. Relations of other child kinds are not
// consulted. For VERTEX relations this is a plain
// copy; for EDGE relations it is the midpoint. If the parent mesh carries
// no vertex-coordinate annex, the callback is a no-op.
func RunRefinementCallback(h *Hierarchy) error {
	parentAnnex, err := mesh.AnnexAs[*mesh.ArrayAnnex[float64]](h.ParentMesh(), vertexCoordsKey)
	if err == mesh.ErrAnnexMissing {
		return nil
	}
	if err != nil {
		return err
	}

	childAnnex := mesh.NewArrayAnnex[float64](parentAnnex.TupleSize)
	childAnnex.Resize(h.ChildMesh().Count(grob.Point))

	for _, relation := range h.RelationsForChildKind(grob.Point) {
		corners := relation.Parent.Corners()
		centroid := centroidOf(parentAnnex, corners)
		for _, childIdx := range relation.Children() {
			if err := childAnnex.Set(childIdx, centroid); err != nil {
				return err
			}
		}
	}

	h.ChildMesh().SetAnnex(vertexCoordsKey, childAnnex)
	return nil
}

func centroidOf(a *mesh.ArrayAnnex[float64], corners []int) []float64 {
	if len(corners) == 0 {
		return nil
	}
	out := make([]float64, a.TupleSize)
	for _, c := range corners {
		for i, v := range a.At(c) {
			out[i] += v
		}
	}
	n := float64(len(corners))
	for i := range out {
		out[i] /= n
	}
	return out
}
