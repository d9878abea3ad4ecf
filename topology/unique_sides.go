// File: unique_sides.go
// Role: unique side collection, numbering, and side-grob materialization
// (spec.md §4.4.2, §4.4.3).
package topology

import (
	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
)

type sideEntry struct {
	kind    grob.Kind
	corners []int
}

// UniqueSides is an insertion-ordered set of grobs deduplicated by
// grob.Key equality. Calling Find* repeatedly on the same UniqueSides
// across different GrobSets accumulates sides of a hybrid mesh without
// re-inserting ones already seen.
type UniqueSides struct {
	seen  map[grob.Key]int
	order []sideEntry
}

// NewUniqueSides returns an empty set.
func NewUniqueSides() *UniqueSides {
	return &UniqueSides{seen: make(map[grob.Key]int)}
}

// Len returns the number of unique sides collected so far.
func (u *UniqueSides) Len() int { return len(u.order) }

// insert records g if not already present; returns whether it was new.
func (u *UniqueSides) insert(g grob.Grob) bool {
	key := g.Key()
	if _, ok := u.seen[key]; ok {
		return false
	}
	u.seen[key] = len(u.order)
	u.order = append(u.order, sideEntry{kind: g.Kind(), corners: g.Corners()})
	return true
}

// FindUniqueSides collects every sideDim-dimensional side of every grob in
// centerSet present in m into sides, skipping sides already present.
// Returns the number of newly inserted sides.
func FindUniqueSides(sides *UniqueSides, m *mesh.Mesh, centerSet grob.SetKind, sideDim int) (int, error) {
	inserted := 0
	for _, k := range centerSet.Kinds() {
		n := m.Count(k)
		if n == 0 {
			continue
		}
		numSides, err := grob.NumSides(k, sideDim)
		if err != nil {
			return inserted, err
		}
		for pos := 0; pos < n; pos++ {
			g := m.Grob(mesh.GrobIndex{Kind: k, Pos: pos})
			for si := 0; si < numSides; si++ {
				s, err := g.Side(sideDim, si)
				if err != nil {
					return inserted, err
				}
				if sides.insert(s) {
					inserted++
				}
			}
		}
	}
	return inserted, nil
}

// NumberedSides maps unique sides to consecutive integer indices, assigned
// in first-encountered order.
type NumberedSides struct {
	seen map[grob.Key]int
}

// NewNumberedSides returns an empty numbering.
func NewNumberedSides() *NumberedSides {
	return &NumberedSides{seen: make(map[grob.Key]int)}
}

// Len returns the number of grobs numbered so far.
func (n *NumberedSides) Len() int { return len(n.seen) }

// Index returns g's assigned index and whether it has been numbered.
func (n *NumberedSides) Index(g grob.Grob) (int, bool) {
	v, ok := n.seen[g.Key()]
	return v, ok
}

// FindUniqueSidesNumbered collects sideDim-dimensional sides of centerSet's
// grobs, assigning each newly-discovered side the next consecutive index
// starting at n.Len()+indexOffset (as observed at the start of this call).
// Returns the number of newly inserted sides.
func FindUniqueSidesNumbered(n *NumberedSides, m *mesh.Mesh, centerSet grob.SetKind, sideDim, indexOffset int) (int, error) {
	start := n.Len()
	inserted := 0
	for _, k := range centerSet.Kinds() {
		count := m.Count(k)
		if count == 0 {
			continue
		}
		numSides, err := grob.NumSides(k, sideDim)
		if err != nil {
			return inserted, err
		}
		for pos := 0; pos < count; pos++ {
			g := m.Grob(mesh.GrobIndex{Kind: k, Pos: pos})
			for si := 0; si < numSides; si++ {
				s, err := g.Side(sideDim, si)
				if err != nil {
					return inserted, err
				}
				key := s.Key()
				if _, ok := n.seen[key]; ok {
					continue
				}
				n.seen[key] = start + indexOffset + inserted
				inserted++
			}
		}
	}
	return inserted, nil
}

// CreateSideGrobs collects the unique sideDim-dimensional sides of every
// grob of higher dimension currently in m, discards m's existing grobs of
// dimension sideDim, and inserts the collected sides in their place.
// Returns the number of distinct sides inserted.
func CreateSideGrobs(m *mesh.Mesh, sideDim int) (int, error) {
	if sideDim < 0 || sideDim >= grob.MaxGrobDim {
		return 0, ErrInvalidOperation
	}
	sides := NewUniqueSides()
	for _, k := range grob.AllKinds() {
		dim := k.MustDim()
		if dim <= sideDim || !m.Has(k) {
			continue
		}
		numSides, err := grob.NumSides(k, sideDim)
		if err != nil {
			return 0, err
		}
		n := m.Count(k)
		for pos := 0; pos < n; pos++ {
			g := m.Grob(mesh.GrobIndex{Kind: k, Pos: pos})
			for si := 0; si < numSides; si++ {
				s, err := g.Side(sideDim, si)
				if err != nil {
					return 0, err
				}
				sides.insert(s)
			}
		}
	}

	m.Clear(grob.SetByDim(sideDim))
	for _, e := range sides.order {
		if _, err := m.InsertGrob(e.kind, e.corners); err != nil {
			return 0, err
		}
	}
	return len(sides.order), nil
}
