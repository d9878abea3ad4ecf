// Package refine builds finer meshes from coarser ones and records the
// parent/child relations that connect them.
//
// A Hierarchy pairs a parent mesh with a child mesh and, per child grob
// kind, the list of parent grobs each child grob descended from. Refine
// operations (RefineTriangles today) populate a Hierarchy's child mesh and
// relations in one pass, then run a callback that propagates coordinates
// and other per-vertex data from parent to child.
package refine

import "errors"

// ErrNilParent is returned by refine operations given a nil parent mesh.
var ErrNilParent = errors.New("refine: parent mesh is nil")
