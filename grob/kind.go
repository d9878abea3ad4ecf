package grob

import (
	"errors"
	"fmt"
)

// Sentinel errors for the grob taxonomy.
var (
	// ErrUnknownKind indicates a Kind value outside the closed enumeration.
	ErrUnknownKind = errors.New("grob: unknown kind")

	// ErrSideDimension indicates a side-dimension request that is not
	// strictly below the grob's own dimension, or exceeds MaxGrobDim.
	ErrSideDimension = errors.New("grob: invalid side dimension")

	// ErrSideIndex indicates a side index out of range for (kind, dim).
	ErrSideIndex = errors.New("grob: side index out of range")
)

// Kind is one of the eight closed grob kinds. Its integer ordering is an
// invariant relied upon by GrobArray storage and by TotalToGrobIndexMap.
type Kind int

// The eight grob kinds, in their invariant order.
const (
	Point Kind = iota
	Line
	Tri
	Quad
	Tet
	Hex
	Pyra
	Prism

	numKinds = int(Prism) + 1
)

// MaxGrobDim is the highest dimension any grob kind occupies.
const MaxGrobDim = 3

// MaxCorners is the number of 4-bit slots a CornerOffsets permutation
// packs (see grob.go). The richest kind in the closed enumeration (HEX)
// only uses 8 of them; the headroom up to 16 matches the source library's
// packed-permutation format and keeps corner indices addressable in a
// single nibble.
const MaxCorners = 16

// kindNames mirrors the order of the Kind enumeration.
var kindNames = [numKinds]string{
	Point: "POINT", Line: "LINE", Tri: "TRI", Quad: "QUAD",
	Tet: "TET", Hex: "HEX", Pyra: "PYRA", Prism: "PRISM",
}

// String renders the kind's canonical name, or "<invalid>" if out of range.
func (k Kind) String() string {
	if k < 0 || int(k) >= numKinds {
		return "<invalid>"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the eight defined kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < numKinds
}

// AllKinds returns all eight kinds in their invariant order.
func AllKinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Dim returns the topological dimension of k: 0 for POINT, 1 for LINE,
// 2 for TRI/QUAD, 3 for TET/HEX/PYRA/PRISM.
func (k Kind) Dim() (int, error) {
	if !k.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	return descOf(k).dim, nil
}

// MustDim is Dim without an error return; it panics on an invalid kind.
// Used in hot paths (GrobArray tuple sizing) where the kind is already
// known to come from the closed enumeration.
func (k Kind) MustDim() int {
	d, err := k.Dim()
	if err != nil {
		panic(err)
	}
	return d
}

// CornerCount returns the number of corners of k (1..8).
func (k Kind) CornerCount() (int, error) {
	if !k.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	return descOf(k).cornerCount, nil
}

// MustCornerCount is CornerCount without an error return.
func (k Kind) MustCornerCount() int {
	n, err := k.CornerCount()
	if err != nil {
		panic(err)
	}
	return n
}

// SetKind is a fixed aggregate of grob kinds grouped by dimension, or a
// singleton wrapping exactly one Kind. The closed enumeration is the eight
// singletons plus NoSet, Faces and Cells.
type SetKind int

// The eleven closed GrobSet kinds.
const (
	NoSet SetKind = iota
	SetPoint
	SetLine
	SetTri
	SetQuad
	SetTet
	SetHex
	SetPyra
	SetPrism
	Faces
	Cells

	numSetKinds = int(Cells) + 1
)

// Vertices and Edges are the conventional names for the dimension-0 and
// dimension-1 singleton sets; spec.md's GrobSetByDim returns these names.
const (
	Vertices = SetPoint
	Edges    = SetLine
)

var setKindNames = [numSetKinds]string{
	NoSet: "NONE", SetPoint: "POINT", SetLine: "LINE", SetTri: "TRI",
	SetQuad: "QUAD", SetTet: "TET", SetHex: "HEX", SetPyra: "PYRA",
	SetPrism: "PRISM", Faces: "FACES", Cells: "CELLS",
}

// String renders the set kind's canonical name.
func (s SetKind) String() string {
	if s < 0 || int(s) >= numSetKinds {
		return "<invalid>"
	}
	return setKindNames[s]
}

// singletonOf maps each of the eight singleton SetKinds to its Kind.
var singletonOf = [numSetKinds]Kind{
	SetPoint: Point, SetLine: Line, SetTri: Tri, SetQuad: Quad,
	SetTet: Tet, SetHex: Hex, SetPyra: Pyra, SetPrism: Prism,
}

// members lists, in fixed iteration order, the kinds belonging to each
// SetKind. NoSet is empty; Faces/Cells are the dimension-2/3 aggregates.
var members = map[SetKind][]Kind{
	NoSet:    {},
	SetPoint: {Point},
	SetLine:  {Line},
	SetTri:   {Tri},
	SetQuad:  {Quad},
	SetTet:   {Tet},
	SetHex:   {Hex},
	SetPyra:  {Pyra},
	SetPrism: {Prism},
	Faces:    {Tri, Quad},
	Cells:    {Tet, Hex, Pyra, Prism},
}

// Kinds returns the member kinds of s, in fixed order. The returned slice
// must not be mutated by callers.
func (s SetKind) Kinds() []Kind {
	return members[s]
}

// Size returns the number of member kinds.
func (s SetKind) Size() int {
	return len(members[s])
}

// Dim returns the common dimension of all members of s, or -1 if s is
// NoSet or mixes dimensions (which the closed enumeration never does).
func (s SetKind) Dim() int {
	ks := members[s]
	if len(ks) == 0 {
		return -1
	}
	return descOf(ks[0]).dim
}

// Contains reports whether k is a member of s.
func (s SetKind) Contains(k Kind) bool {
	for _, m := range members[s] {
		if m == k {
			return true
		}
	}
	return false
}

// SideSet returns the aggregate kind of s's sides at sideDim, i.e. the
// union, over every member kind of s, of that kind's side_set_at(sideDim).
// Since every grob kind's side-set at a given dimension is uniform across
// the corpus (all 2D sides of cells are FACES, etc.) this is equivalent to
// asking any one member; SideSet asks the first.
func (s SetKind) SideSet(sideDim int) SetKind {
	ks := members[s]
	if len(ks) == 0 {
		return NoSet
	}
	return SideSetAt(ks[0], sideDim)
}

// SetByDim returns the standard aggregate for dimension d: Vertices (0),
// Edges (1), Faces (2), Cells (3). Any other d returns NoSet.
func SetByDim(d int) SetKind {
	switch d {
	case 0:
		return Vertices
	case 1:
		return Edges
	case 2:
		return Faces
	case 3:
		return Cells
	default:
		return NoSet
	}
}
