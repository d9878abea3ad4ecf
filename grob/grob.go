package grob

import "sort"

// CornerOffsets packs up to MaxCorners (16) corner-slot indices, each in
// [0,15], two per byte. A Grob's i'th corner offset is CornerOffsets.Get(i);
// taking a Side remaps these offsets through a side's static local-corner
// tuple without touching the underlying buffer pointer.
type CornerOffsets [MaxCorners / 2]byte

// Get returns the i'th packed offset.
func (c CornerOffsets) Get(i int) int {
	b := c[i/2]
	if i%2 == 0 {
		return int(b & 0x0F)
	}
	return int(b >> 4)
}

// Set stores v (must be in [0,15]) as the i'th packed offset.
func (c *CornerOffsets) Set(i, v int) {
	if i < 0 || i >= MaxCorners {
		panic("grob: corner slot out of range")
	}
	if v < 0 || v > 15 {
		panic("grob: corner offset out of 4-bit range")
	}
	idx := i / 2
	if i%2 == 0 {
		c[idx] = (c[idx] &^ 0x0F) | byte(v)
	} else {
		c[idx] = (c[idx] &^ 0xF0) | byte(v<<4)
	}
}

// Grob is a lightweight, non-owning reference into a corner-index buffer:
// a kind, a pointer to the buffer ("base"), and a permutation of offsets
// into that buffer selecting the grob's own corners. Grobs are meant as
// iteration cursors — never store one past a resize of the GrobArray whose
// buffer it points into (see mesh.GrobArray).
//
// ConstGrob is the read-only alias used throughout the topology engine;
// Go's lack of a const-reference distinction means the two are the same
// type here; a Grob constructed over a buffer the caller does not intend
// to mutate through it is already "const" in every sense that matters.
type Grob struct {
	kind    Kind
	base    []int
	offsets CornerOffsets
}

// ConstGrob is an alias for Grob emphasizing call sites that only read.
type ConstGrob = Grob

// NewDirect builds the Grob for the index'th element of a packed GrobArray
// buffer of the given kind: the Grob's base is the element's own
// corner-tuple window in base, and its offsets are the identity
// permutation over that window.
func NewDirect(kind Kind, base []int, index int) Grob {
	c := kind.MustCornerCount()
	var off CornerOffsets
	start := index * c
	for i := 0; i < c; i++ {
		off.Set(i, i)
	}
	return Grob{kind: kind, base: base[start : start+c], offsets: off}
}

// Kind returns the grob's kind.
func (g Grob) Kind() Kind { return g.kind }

// NumCorners returns the grob's corner count (== g.Kind().MustCornerCount()).
func (g Grob) NumCorners() int { return g.kind.MustCornerCount() }

// Corner returns the i'th corner, i.e. the global index stored at the
// grob's i'th offset into its base buffer.
func (g Grob) Corner(i int) int { return g.base[g.offsets.Get(i)] }

// Corners returns a freshly allocated copy of the grob's corner indices,
// in the grob's own local order.
func (g Grob) Corners() []int {
	n := g.NumCorners()
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = g.Corner(i)
	}
	return out
}

// Side returns a new Grob referencing the sideIndex'th side of g at
// sideDim: same base buffer, offsets remapped through the static
// local-corner tuple for that side. Non-reflexive: sideDim must be
// strictly below g.Kind()'s own dimension (enforced by SideLocalCorners).
func (g Grob) Side(sideDim, sideIndex int) (Grob, error) {
	sideKind, err := SideKind(g.kind, sideDim, sideIndex)
	if err != nil {
		return Grob{}, err
	}
	localCorners, err := SideLocalCorners(g.kind, sideDim, sideIndex)
	if err != nil {
		return Grob{}, err
	}
	var newOff CornerOffsets
	for i, lc := range localCorners {
		newOff.Set(i, g.offsets.Get(lc))
	}
	return Grob{kind: sideKind, base: g.base, offsets: newOff}, nil
}

// FindSide linearly scans g's sides at candidate's dimension and returns
// the index of the first one equal (per Equal) to candidate, or false if
// none match.
func (g Grob) FindSide(candidate Grob) (int, bool) {
	cd, err := candidate.kind.Dim()
	if err != nil {
		return 0, false
	}
	n, err := NumSides(g.kind, cd)
	if err != nil {
		return 0, false
	}
	for i := 0; i < n; i++ {
		s, err := g.Side(cd, i)
		if err != nil {
			continue
		}
		if s.Equal(candidate) {
			return i, true
		}
	}
	return 0, false
}

// Equal reports set-equality over global corner indices, ignoring order
// and orientation, within the same kind: a.kind == b.kind and the
// multiset of a's corners equals the multiset of b's corners.
func (g Grob) Equal(other Grob) bool {
	if g.kind != other.kind {
		return false
	}
	a, b := g.sortedCorners(), other.sortedCorners()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (g Grob) sortedCorners() []int {
	c := g.Corners()
	sort.Ints(c)
	return c
}

// Hash computes the source-library's grob hash: 10^8 * (kind+1) +
// min(corner indices). It is deliberately collision-tolerant — distinct
// grobs of the same kind sharing a minimum corner hash identically — and
// exists for parity with the original formula; Key (below) is what this
// module actually uses for Go map lookups, since it encodes exact equality
// rather than a lossy hash.
func (g Grob) Hash() uint64 {
	n := g.NumCorners()
	minC := g.Corner(0)
	for i := 1; i < n; i++ {
		if c := g.Corner(i); c < minC {
			minC = c
		}
	}
	return 1e8*(uint64(g.kind)+1) + uint64(minC)
}

// Key is a comparable canonical form of a Grob suitable as a Go map key:
// kind plus the sorted corner tuple, padded with -1. Two grobs are Equal
// iff their Keys are ==, so a plain Go map keyed by Key reproduces exactly
// the equality semantics spec'd for grob hash maps, without needing a
// secondary equality check to resolve collisions the way a lossy hash
// would.
type Key struct {
	Kind    Kind
	Corners [MaxCorners]int32
	N       int8
}

// Key builds g's canonical map key.
func (g Grob) Key() Key {
	var k Key
	k.Kind = g.kind
	n := g.NumCorners()
	k.N = int8(n)
	for i := range k.Corners {
		k.Corners[i] = -1
	}
	c := g.sortedCorners()
	for i, v := range c {
		k.Corners[i] = int32(v)
	}
	return k
}
