// Package topology computes derived relations over a mesh.Mesh: consecutive
// index numbering, unique side extraction, valence counts, precomputed
// neighborhoods, rim/boundary extraction, and two supplemented traversal
// helpers (connected components and a generic neighbor walk).
//
// Every function here is a pure read over its mesh.Mesh argument except
// CreateSideGrobs (which replaces one kind's grobs) and the mesh passed to
// CreateRimMesh's output (a fresh mesh, linked back to the source for
// shared vertex coordinates).
package topology

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrInvalidOperation covers structurally nonsensical requests: an
	// equal-dimension valence/neighborhood query without a link, or a side
	// dimension outside [0, grob.MaxGrobDim).
	ErrInvalidOperation = errors.New("topology: invalid operation")
)
