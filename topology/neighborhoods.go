// File: neighborhoods.go
// Role: precomputed, immutable neighbor relations between two GrobSets
// (spec.md §4.4.5), stored CSR-style: one offset row per center grob plus
// a flat pair buffer of (kind, position) neighbor references.
package topology

import (
	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
)

// Neighborhoods answers, for every grob in a center GrobSet, which grobs
// of a neighbor GrobSet touch it. Construction is single-threaded; once
// built, every read method is safe to call from multiple goroutines.
type Neighborhoods struct {
	centerSet   grob.SetKind
	neighborSet grob.SetKind
	base        map[grob.Kind]int
	offsets     []int
	pairs       []mesh.GrobIndex

	// centerIndex is retained so this Neighborhoods can later serve as the
	// link_conn argument to NewLinkedNeighborhoods.
	centerIndex *IndexMap
}

// CenterSet returns the center GrobSet this was built over.
func (nh *Neighborhoods) CenterSet() grob.SetKind { return nh.centerSet }

// NeighborSet returns the neighbor GrobSet this was built over.
func (nh *Neighborhoods) NeighborSet() grob.SetKind { return nh.neighborSet }

func (nh *Neighborhoods) row(gi mesh.GrobIndex) int { return nh.base[gi.Kind] + gi.Pos }

// NumNeighbors returns the number of neighbors of the center grob gi.
func (nh *Neighborhoods) NumNeighbors(gi mesh.GrobIndex) int {
	r := nh.row(gi)
	return nh.offsets[r+1] - nh.offsets[r]
}

// NeighborGrobIndices returns gi's neighbors as (kind, position) pairs, in
// the order described by spec.md §4.4.5 ("Ordering / tie-breaks").
func (nh *Neighborhoods) NeighborGrobIndices(gi mesh.GrobIndex) []mesh.GrobIndex {
	r := nh.row(gi)
	return nh.pairs[nh.offsets[r]:nh.offsets[r+1]]
}

// NeighborGrobs is NeighborGrobIndices resolved to actual grob.Grob cursors
// against m, a convenience view over NeighborGrobIndices.
func (nh *Neighborhoods) NeighborGrobs(m *mesh.Mesh, gi mesh.GrobIndex) []grob.Grob {
	idxs := nh.NeighborGrobIndices(gi)
	out := make([]grob.Grob, len(idxs))
	for i, x := range idxs {
		out[i] = m.Grob(x)
	}
	return out
}

func buildCenterBase(m *mesh.Mesh, set grob.SetKind) (map[grob.Kind]int, int) {
	base := make(map[grob.Kind]int)
	offset := 0
	for _, k := range set.Kinds() {
		base[k] = offset
		offset += m.Count(k)
	}
	return base, offset
}

// NewNeighborhoods builds a Neighborhoods for centerSet/neighborSet when
// their dimensions differ (cases (a) and (b) of spec.md §4.4.5). Equal
// dimensions require NewLinkedNeighborhoods instead and return
// ErrInvalidOperation here.
func NewNeighborhoods(m *mesh.Mesh, centerSet, neighborSet grob.SetKind) (*Neighborhoods, error) {
	cd, nd := centerSet.Dim(), neighborSet.Dim()
	switch {
	case nd > cd:
		return buildHigherNeighborhoods(m, centerSet, neighborSet)
	case nd < cd:
		return buildLowerNeighborhoods(m, centerSet, neighborSet)
	default:
		return nil, ErrInvalidOperation
	}
}

// buildHigherNeighborhoods implements case (a): neighbors strictly higher
// dimension than the center grobs (e.g. center=FACES, neighbor=CELLS).
func buildHigherNeighborhoods(m *mesh.Mesh, centerSet, neighborSet grob.SetKind) (*Neighborhoods, error) {
	cd := centerSet.Dim()
	centerIndex := NewGrobToIndexMap(m, centerSet)
	rows := centerIndex.Len()

	counts := make([]int, rows)
	for _, nk := range neighborSet.Kinds() {
		n := m.Count(nk)
		if n == 0 {
			continue
		}
		numSides, err := grob.NumSides(nk, cd)
		if err != nil {
			return nil, err
		}
		for pos := 0; pos < n; pos++ {
			ng := m.Grob(mesh.GrobIndex{Kind: nk, Pos: pos})
			for si := 0; si < numSides; si++ {
				s, err := ng.Side(cd, si)
				if err != nil {
					return nil, err
				}
				if row, ok := centerIndex.Index(s); ok {
					counts[row]++
				}
			}
		}
	}

	offsets := make([]int, rows+1)
	for i := 0; i < rows; i++ {
		offsets[i+1] = offsets[i] + counts[i]
	}
	pairs := make([]mesh.GrobIndex, offsets[rows])
	cursor := append([]int(nil), offsets[:rows]...)

	for _, nk := range neighborSet.Kinds() {
		n := m.Count(nk)
		if n == 0 {
			continue
		}
		numSides, _ := grob.NumSides(nk, cd)
		for pos := 0; pos < n; pos++ {
			ng := m.Grob(mesh.GrobIndex{Kind: nk, Pos: pos})
			for si := 0; si < numSides; si++ {
				s, _ := ng.Side(cd, si)
				row, ok := centerIndex.Index(s)
				if !ok {
					continue
				}
				pairs[cursor[row]] = mesh.GrobIndex{Kind: nk, Pos: pos}
				cursor[row]++
			}
		}
	}

	base, _ := buildCenterBase(m, centerSet)
	return &Neighborhoods{
		centerSet: centerSet, neighborSet: neighborSet,
		base: base, offsets: offsets, pairs: pairs, centerIndex: centerIndex,
	}, nil
}

// buildLowerNeighborhoods implements case (b): neighbors strictly lower
// dimension than the center grobs (e.g. center=CELLS, neighbor=VERTICES).
func buildLowerNeighborhoods(m *mesh.Mesh, centerSet, neighborSet grob.SetKind) (*Neighborhoods, error) {
	nd := neighborSet.Dim()
	base, rows := buildCenterBase(m, centerSet)
	neighborIndex := NewGrobToIndexMap(m, neighborSet)

	offsets := make([]int, rows+1)
	row := 0
	for _, k := range centerSet.Kinds() {
		n := m.Count(k)
		if n == 0 {
			continue
		}
		numSides, err := grob.NumSides(k, nd)
		if err != nil {
			return nil, err
		}
		for pos := 0; pos < n; pos++ {
			offsets[row+1] = offsets[row] + numSides
			row++
		}
	}

	pairs := make([]mesh.GrobIndex, offsets[rows])
	row = 0
	for _, k := range centerSet.Kinds() {
		n := m.Count(k)
		if n == 0 {
			continue
		}
		numSides, _ := grob.NumSides(k, nd)
		for pos := 0; pos < n; pos++ {
			g := m.Grob(mesh.GrobIndex{Kind: k, Pos: pos})
			for si := 0; si < numSides; si++ {
				s, err := g.Side(nd, si)
				if err != nil {
					return nil, err
				}
				gi, ok := neighborIndex.GrobIndexOf(s)
				if !ok {
					return nil, ErrInvalidOperation
				}
				pairs[offsets[row]+si] = gi
			}
			row++
		}
	}

	return &Neighborhoods{
		centerSet: centerSet, neighborSet: neighborSet,
		base: base, offsets: offsets, pairs: pairs, centerIndex: NewGrobToIndexMap(m, centerSet),
	}, nil
}

// NewLinkedNeighborhoods implements case (c): equal-dimension neighbors
// reached by walking through a lower-dimensional link GrobSet. linkConn
// must have been built with center=link grobs, neighbor=grobs, and
// dim(link) < dim(grobs); any other shape returns ErrInvalidOperation.
func NewLinkedNeighborhoods(m *mesh.Mesh, grobs grob.SetKind, linkConn *Neighborhoods) (*Neighborhoods, error) {
	if linkConn.neighborSet != grobs || linkConn.centerSet.Dim() >= grobs.Dim() {
		return nil, ErrInvalidOperation
	}
	linkDim := linkConn.centerSet.Dim()

	base, rows := buildCenterBase(m, grobs)
	rowNeighbors := make([][]mesh.GrobIndex, rows)

	row := 0
	for _, k := range grobs.Kinds() {
		n := m.Count(k)
		numSides, err := grob.NumSides(k, linkDim)
		if err != nil {
			return nil, err
		}
		for pos := 0; pos < n; pos++ {
			self := mesh.GrobIndex{Kind: k, Pos: pos}
			g := m.Grob(self)
			seen := make(map[grob.Key]bool)
			var out []mesh.GrobIndex
			for si := 0; si < numSides; si++ {
				side, err := g.Side(linkDim, si)
				if err != nil {
					return nil, err
				}
				sideGI, ok := linkConn.centerIndex.GrobIndexOf(side)
				if !ok {
					continue
				}
				for _, nb := range linkConn.NeighborGrobIndices(sideGI) {
					if nb == self {
						continue
					}
					nbg := m.Grob(nb)
					if seen[nbg.Key()] {
						continue
					}
					seen[nbg.Key()] = true
					out = append(out, nb)
				}
			}
			rowNeighbors[row] = out
			row++
		}
	}

	offsets := make([]int, rows+1)
	for i, nbrs := range rowNeighbors {
		offsets[i+1] = offsets[i] + len(nbrs)
	}
	pairs := make([]mesh.GrobIndex, offsets[rows])
	for i, nbrs := range rowNeighbors {
		copy(pairs[offsets[i]:offsets[i+1]], nbrs)
	}

	centerIndex := NewGrobToIndexMap(m, grobs)
	return &Neighborhoods{
		centerSet: grobs, neighborSet: grobs,
		base: base, offsets: offsets, pairs: pairs, centerIndex: centerIndex,
	}, nil
}
