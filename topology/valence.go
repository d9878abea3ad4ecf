// File: valence.go
// Role: per-grob neighbor counts and their histogram (spec.md §4.4.4).
package topology

import (
	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
)

// ComputeGrobValences counts, for every grob in centerSet present in m, how
// many grobs of neighborSet touch it. When neighborSet's dimension is
// lower than centerSet's, valence degenerates to a purely structural
// count (num_sides), since every grob of higher dimension necessarily
// contains exactly that many sides of the lower dimension. Equal
// dimensions are not supported here (use Neighborhoods' link-based
// construction instead) and return ErrInvalidOperation.
func ComputeGrobValences(m *mesh.Mesh, centerSet, neighborSet grob.SetKind) (map[grob.Key]int, error) {
	cd, nd := centerSet.Dim(), neighborSet.Dim()
	valences := make(map[grob.Key]int)
	keyOf := make(map[grob.Key]grob.Grob)

	switch {
	case nd > cd:
		for _, k := range centerSet.Kinds() {
			n := m.Count(k)
			for pos := 0; pos < n; pos++ {
				g := m.Grob(mesh.GrobIndex{Kind: k, Pos: pos})
				valences[g.Key()] = 0
				keyOf[g.Key()] = g
			}
		}
		for _, nk := range neighborSet.Kinds() {
			n := m.Count(nk)
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
					if _, ok := valences[s.Key()]; ok {
						valences[s.Key()]++
					}
				}
			}
		}
	case nd < cd:
		for _, k := range centerSet.Kinds() {
			n := m.Count(k)
			numSides, err := grob.NumSides(k, nd)
			if err != nil {
				return nil, err
			}
			for pos := 0; pos < n; pos++ {
				g := m.Grob(mesh.GrobIndex{Kind: k, Pos: pos})
				valences[g.Key()] = numSides
			}
		}
	default:
		return nil, ErrInvalidOperation
	}
	return valences, nil
}

// ValenceHistogram returns h where h[v] is the number of centerSet grobs
// with exactly v neighborSet neighbors.
func ValenceHistogram(m *mesh.Mesh, centerSet, neighborSet grob.SetKind) ([]int, error) {
	valences, err := ComputeGrobValences(m, centerSet, neighborSet)
	if err != nil {
		return nil, err
	}
	maxV := 0
	for _, v := range valences {
		if v > maxV {
			maxV = v
		}
	}
	h := make([]int, maxV+1)
	for _, v := range valences {
		h[v]++
	}
	return h, nil
}
