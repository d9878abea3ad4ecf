package grob

import "fmt"

// sideDesc names one side of a grob: its own kind, and the local corner
// indices (into the parent's corner tuple) that make it up, in order.
type sideDesc struct {
	kind    Kind
	corners []int
}

// dimSides holds every side of one dimension below a grob's own dimension:
// their aggregate SetKind, and the ordered list of individual sides.
type dimSides struct {
	set   SetKind
	sides []sideDesc
}

// kindDesc is the full static descriptor of one grob kind: its dimension,
// corner count, and for each side-dimension below dim, its dimSides.
// sidesByDim is indexed directly by side-dimension (0, 1, 2); entries at
// or above dim are left zero-valued and never consulted.
type kindDesc struct {
	dim         int
	cornerCount int
	sidesByDim  [MaxGrobDim]dimSides
}

// descTable is the closed, compile-time set of descriptors, one per Kind,
// transcribed from the reference corner tables (see DESIGN.md). No
// allocation happens after package initialization.
var descTable = [numKinds]kindDesc{
	Point: {
		dim:         0,
		cornerCount: 1,
	},
	Line: {
		dim:         1,
		cornerCount: 2,
		sidesByDim: [MaxGrobDim]dimSides{
			0: {set: Vertices, sides: []sideDesc{
				{Point, []int{0}},
				{Point, []int{1}},
			}},
		},
	},
	Tri: {
		dim:         2,
		cornerCount: 3,
		sidesByDim: [MaxGrobDim]dimSides{
			0: {set: Vertices, sides: []sideDesc{
				{Point, []int{0}}, {Point, []int{1}}, {Point, []int{2}},
			}},
			1: {set: Edges, sides: []sideDesc{
				{Line, []int{0, 1}}, {Line, []int{1, 2}}, {Line, []int{2, 0}},
			}},
		},
	},
	Quad: {
		dim:         2,
		cornerCount: 4,
		sidesByDim: [MaxGrobDim]dimSides{
			0: {set: Vertices, sides: []sideDesc{
				{Point, []int{0}}, {Point, []int{1}}, {Point, []int{2}}, {Point, []int{3}},
			}},
			1: {set: Edges, sides: []sideDesc{
				{Line, []int{0, 1}}, {Line, []int{1, 2}}, {Line, []int{2, 3}}, {Line, []int{3, 0}},
			}},
		},
	},
	Tet: {
		dim:         3,
		cornerCount: 4,
		sidesByDim: [MaxGrobDim]dimSides{
			0: {set: Vertices, sides: []sideDesc{
				{Point, []int{0}}, {Point, []int{1}}, {Point, []int{2}}, {Point, []int{3}},
			}},
			1: {set: Edges, sides: []sideDesc{
				{Line, []int{0, 1}}, {Line, []int{1, 2}}, {Line, []int{2, 0}},
				{Line, []int{0, 3}}, {Line, []int{1, 3}}, {Line, []int{2, 3}},
			}},
			2: {set: Faces, sides: []sideDesc{
				{Tri, []int{0, 2, 1}}, {Tri, []int{0, 1, 3}},
				{Tri, []int{1, 2, 3}}, {Tri, []int{2, 0, 3}},
			}},
		},
	},
	Hex: {
		dim:         3,
		cornerCount: 8,
		sidesByDim: [MaxGrobDim]dimSides{
			0: {set: Vertices, sides: []sideDesc{
				{Point, []int{0}}, {Point, []int{1}}, {Point, []int{2}}, {Point, []int{3}},
				{Point, []int{4}}, {Point, []int{5}}, {Point, []int{6}}, {Point, []int{7}},
			}},
			1: {set: Edges, sides: []sideDesc{
				{Line, []int{0, 1}}, {Line, []int{1, 2}}, {Line, []int{2, 3}}, {Line, []int{3, 0}},
				{Line, []int{0, 4}}, {Line, []int{1, 5}}, {Line, []int{2, 6}}, {Line, []int{3, 7}},
				{Line, []int{4, 5}}, {Line, []int{5, 6}}, {Line, []int{6, 7}}, {Line, []int{7, 4}},
			}},
			2: {set: Faces, sides: []sideDesc{
				{Quad, []int{0, 3, 2, 1}}, {Quad, []int{0, 1, 5, 4}}, {Quad, []int{1, 2, 6, 5}},
				{Quad, []int{2, 3, 7, 6}}, {Quad, []int{3, 0, 4, 7}}, {Quad, []int{4, 5, 6, 7}},
			}},
		},
	},
	Pyra: {
		dim:         3,
		cornerCount: 5,
		sidesByDim: [MaxGrobDim]dimSides{
			0: {set: Vertices, sides: []sideDesc{
				{Point, []int{0}}, {Point, []int{1}}, {Point, []int{2}}, {Point, []int{3}}, {Point, []int{4}},
			}},
			1: {set: Edges, sides: []sideDesc{
				{Line, []int{0, 1}}, {Line, []int{1, 2}}, {Line, []int{2, 3}}, {Line, []int{3, 0}},
				{Line, []int{0, 4}}, {Line, []int{1, 4}}, {Line, []int{2, 4}}, {Line, []int{3, 4}},
			}},
			2: {set: Faces, sides: []sideDesc{
				{Quad, []int{0, 3, 2, 1}},
				{Tri, []int{0, 1, 4}}, {Tri, []int{1, 2, 4}}, {Tri, []int{2, 3, 4}}, {Tri, []int{3, 0, 4}},
			}},
		},
	},
	Prism: {
		dim:         3,
		cornerCount: 6,
		sidesByDim: [MaxGrobDim]dimSides{
			0: {set: Vertices, sides: []sideDesc{
				{Point, []int{0}}, {Point, []int{1}}, {Point, []int{2}},
				{Point, []int{3}}, {Point, []int{4}}, {Point, []int{5}},
			}},
			1: {set: Edges, sides: []sideDesc{
				{Line, []int{0, 1}}, {Line, []int{1, 2}}, {Line, []int{2, 0}},
				{Line, []int{0, 3}}, {Line, []int{1, 4}}, {Line, []int{2, 5}},
				{Line, []int{3, 4}}, {Line, []int{4, 5}}, {Line, []int{5, 3}},
			}},
			2: {set: Faces, sides: []sideDesc{
				{Tri, []int{0, 2, 1}},
				{Quad, []int{0, 1, 4, 3}}, {Quad, []int{1, 2, 5, 4}}, {Quad, []int{2, 0, 3, 5}},
				{Tri, []int{3, 4, 5}},
			}},
		},
	},
}

// descOf returns the static descriptor for k. Callers must have already
// validated k (all exported entry points do); it panics on an invalid kind
// since that can only happen from a programming error, not user input.
func descOf(k Kind) *kindDesc {
	if !k.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownKind, k))
	}
	return &descTable[k]
}

// dimSidesOf fetches the dimSides entry for (k, sideDim), validating both
// that k is known and that sideDim is strictly below k's own dimension.
// This is non-reflexive by construction: a TET can ask for its 2D sides
// (its four TRIs) but never for "a TET-side of a TET" at sideDim==3.
func dimSidesOf(k Kind, sideDim int) (*dimSides, error) {
	d := descOf(k)
	if sideDim < 0 || sideDim >= d.dim || sideDim >= MaxGrobDim {
		return nil, fmt.Errorf("%w: kind=%s dim=%d sideDim=%d", ErrSideDimension, k, d.dim, sideDim)
	}
	return &d.sidesByDim[sideDim], nil
}

// SideSetAt returns the aggregate kind of kind's sides at sideDim.
func SideSetAt(kind Kind, sideDim int) SetKind {
	ds, err := dimSidesOf(kind, sideDim)
	if err != nil {
		return NoSet
	}
	return ds.set
}

// NumSides returns the number of sides of kind at sideDim.
func NumSides(kind Kind, sideDim int) (int, error) {
	ds, err := dimSidesOf(kind, sideDim)
	if err != nil {
		return 0, err
	}
	return len(ds.sides), nil
}

// SideKind returns the kind of the sideIndex'th side of kind at sideDim.
func SideKind(kind Kind, sideDim, sideIndex int) (Kind, error) {
	ds, err := dimSidesOf(kind, sideDim)
	if err != nil {
		return 0, err
	}
	if sideIndex < 0 || sideIndex >= len(ds.sides) {
		return 0, fmt.Errorf("%w: kind=%s sideDim=%d sideIndex=%d", ErrSideIndex, kind, sideDim, sideIndex)
	}
	return ds.sides[sideIndex].kind, nil
}

// SideLocalCorners returns the local-corner tuple (length = side kind's
// corner count, values in [0, corner_count(kind))) selecting the
// sideIndex'th side of kind at sideDim out of kind's own corner tuple.
// The returned slice is shared and must not be mutated by the caller.
func SideLocalCorners(kind Kind, sideDim, sideIndex int) ([]int, error) {
	ds, err := dimSidesOf(kind, sideDim)
	if err != nil {
		return nil, err
	}
	if sideIndex < 0 || sideIndex >= len(ds.sides) {
		return nil, fmt.Errorf("%w: kind=%s sideDim=%d sideIndex=%d", ErrSideIndex, kind, sideDim, sideIndex)
	}
	return ds.sides[sideIndex].corners, nil
}
