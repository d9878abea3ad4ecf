// Package grob defines the closed taxonomy of grid-object ("grob") kinds
// that the rest of meshkit builds on: points, line segments, triangles,
// quadrilaterals, tetrahedra, hexahedra, pyramids and prisms.
//
// The kind and descriptor queries in this package are pure, constant-time
// lookups over compile-time tables: kind -> dimension, kind -> corner count,
// and for each side-dimension below a kind's own dimension, the list of its
// sides together with the local corner indices that select them out of the
// parent's corner tuple. These table queries do no dynamic allocation;
// Grob methods that return or compare corner lists (Corners, Equal, Key)
// allocate a copy of the corners.
//
// A Grob (or its read-only twin, ConstGrob) is a lightweight, non-owning
// cursor into a corner-index buffer: a kind, a pointer to the buffer, and a
// small permutation telling which slots of the buffer serve as the grob's
// corners. Grobs are meant for iteration; never store one past a resize of
// the buffer it points into.
//
// Errors:
//
//	ErrUnknownKind   - a GrobKind value outside the closed enumeration.
//	ErrSideDimension - a requested side-dimension is not below the grob's
//	                   own dimension, or exceeds MaxGrobDim.
//	ErrSideIndex     - a requested side index is out of range for (kind, dim).
package grob
