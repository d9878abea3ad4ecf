// File: index_map.go
// Role: consecutive index numbering over a GrobSet (spec.md §4.4.1).
package topology

import (
	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
)

// IndexMap numbers every grob of a GrobSet present in a mesh consecutively
// in kind order, and exposes both the flat (total) index and the
// (kind, position) GrobIndex for each.
type IndexMap struct {
	total   map[grob.Key]int
	grobIdx map[grob.Key]mesh.GrobIndex
	base    map[grob.Kind]int
}

// NewGrobToIndexMap numbers every grob in set present in m, skipping kinds
// with zero grobs, assigning flat indices in kind order.
func NewGrobToIndexMap(m *mesh.Mesh, set grob.SetKind) *IndexMap {
	im := &IndexMap{
		total:   make(map[grob.Key]int),
		grobIdx: make(map[grob.Key]mesh.GrobIndex),
		base:    make(map[grob.Kind]int),
	}
	offset := 0
	for _, k := range set.Kinds() {
		im.base[k] = offset
		n := m.Count(k)
		for pos := 0; pos < n; pos++ {
			g := m.Grob(mesh.GrobIndex{Kind: k, Pos: pos})
			key := g.Key()
			im.total[key] = offset + pos
			im.grobIdx[key] = mesh.GrobIndex{Kind: k, Pos: pos}
		}
		offset += n
	}
	return im
}

// Index returns g's flat index and whether it was found.
func (im *IndexMap) Index(g grob.Grob) (int, bool) {
	v, ok := im.total[g.Key()]
	return v, ok
}

// GrobIndexOf returns g's (kind, position) and whether it was found.
func (im *IndexMap) GrobIndexOf(g grob.Grob) (mesh.GrobIndex, bool) {
	v, ok := im.grobIdx[g.Key()]
	return v, ok
}

// Base returns the flat-index offset at which kind's grobs begin.
func (im *IndexMap) Base(kind grob.Kind) int { return im.base[kind] }

// Len returns the total number of grobs numbered.
func (im *IndexMap) Len() int { return len(im.total) }

// TotalToGrobIndexMap converts a flat index over a GrobSet (all grobs of
// kind A numbered before kind B, etc.) back to a mesh.GrobIndex, without
// needing a per-grob hash lookup — only per-kind counts.
type TotalToGrobIndexMap struct {
	kinds    []grob.Kind
	baseInds []int // length len(kinds)+1, cumulative counts
}

// NewTotalToGrobIndexMap builds the base-offset table for set over m.
func NewTotalToGrobIndexMap(m *mesh.Mesh, set grob.SetKind) *TotalToGrobIndexMap {
	kinds := set.Kinds()
	baseInds := make([]int, len(kinds)+1)
	for i, k := range kinds {
		baseInds[i+1] = baseInds[i] + m.Count(k)
	}
	return &TotalToGrobIndexMap{kinds: kinds, baseInds: baseInds}
}

// At maps a flat index back to its (kind, position). Panics if ind is
// outside [0, total count) — a programming error, not a runtime condition
// callers are expected to recover from.
func (t *TotalToGrobIndexMap) At(ind int) mesh.GrobIndex {
	if ind >= t.baseInds[len(t.kinds)] {
		panic("topology: flat index out of range")
	}
	for i := len(t.kinds) - 1; i >= 0; i-- {
		if ind >= t.baseInds[i] {
			return mesh.GrobIndex{Kind: t.kinds[i], Pos: ind - t.baseInds[i]}
		}
	}
	panic("topology: flat index out of range")
}
