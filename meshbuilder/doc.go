// Package meshbuilder constructs ready-to-use mesh.Mesh fixtures: regular
// grids, boxes of tetrahedra, and a handful of small named shapes used to
// exercise the topology and refine packages' corner cases.
//
// Every constructor follows the same shape: validate its size parameters,
// add vertices with deterministic coordinates, then emit grobs in a stable
// order. Constructors never panic at runtime; they return the package's
// sentinel errors instead.
package meshbuilder

import "errors"

// ErrTooFewVertices indicates a size parameter (rows, cols, n, ...) fell
// below the minimum a constructor requires.
var ErrTooFewVertices = errors.New("meshbuilder: parameter too small")

// ErrInvalidDimensions indicates a multi-axis size parameter (nx, ny, nz)
// contained a non-positive value.
var ErrInvalidDimensions = errors.New("meshbuilder: invalid dimensions")
