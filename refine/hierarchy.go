package refine

import (
	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
)

// Relation records that NumChildren consecutive grobs of one kind in the
// child mesh, starting at FirstChild, descended from Parent.
type Relation struct {
	Parent      grob.Grob
	FirstChild  int
	NumChildren int
}

// Children returns the child indices [FirstChild, FirstChild+NumChildren).
func (r Relation) Children() []int {
	out := make([]int, r.NumChildren)
	for i := range out {
		out[i] = r.FirstChild + i
	}
	return out
}

// Hierarchy pairs a parent mesh with a derived child mesh and records, per
// child grob kind, which parent grob each run of child grobs came from.
type Hierarchy struct {
	parentMesh *mesh.Mesh
	childMesh  *mesh.Mesh
	relations  map[grob.Kind][]Relation
}

// NewHierarchy returns a Hierarchy over the given parent and child meshes
// with no relations recorded yet.
func NewHierarchy(parentMesh, childMesh *mesh.Mesh) *Hierarchy {
	return &Hierarchy{
		parentMesh: parentMesh,
		childMesh:  childMesh,
		relations:  make(map[grob.Kind][]Relation),
	}
}

// ParentMesh returns the hierarchy's parent mesh.
func (h *Hierarchy) ParentMesh() *mesh.Mesh { return h.parentMesh }

// ChildMesh returns the hierarchy's child mesh.
func (h *Hierarchy) ChildMesh() *mesh.Mesh { return h.childMesh }

// Reserve pre-allocates room for numParents relations of the given child
// kind, avoiding repeated slice growth in the common case where the final
// relation count is known ahead of time.
func (h *Hierarchy) Reserve(childKind grob.Kind, numParents int) {
	if existing := h.relations[childKind]; cap(existing) < numParents {
		grown := make([]Relation, len(existing), numParents)
		copy(grown, existing)
		h.relations[childKind] = grown
	}
}

// AddRelation records that numChildren consecutive child grobs of kind
// childKind, starting at firstChild, descended from parent.
func (h *Hierarchy) AddRelation(parent grob.Grob, childKind grob.Kind, firstChild, numChildren int) {
	h.relations[childKind] = append(h.relations[childKind], Relation{
		Parent:      parent,
		FirstChild:  firstChild,
		NumChildren: numChildren,
	})
}

// RelationsForChildKind returns the relations recorded for the given child
// kind, in the order they were added.
func (h *Hierarchy) RelationsForChildKind(childKind grob.Kind) []Relation {
	return h.relations[childKind]
}
