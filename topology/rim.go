// File: rim.go
// Role: boundary/rim mesh extraction (spec.md §4.4.6).
package topology

import (
	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/mesh"
)

// VisibilityFunc reports whether a grob.Grob counts as "visible" for rim
// extraction purposes. A nil VisibilityFunc is treated as always-true.
type VisibilityFunc func(grob.Grob) bool

// OnRimFunc is called once per rim grob inserted into the output mesh,
// receiving its position in the output mesh and the source grobSet
// neighbor that made it a rim grob.
type OnRimFunc func(rimPos int, sourceNeighbor mesh.GrobIndex)

// rimOptions holds CreateRimMesh's optional configuration.
type rimOptions struct {
	visibility         VisibilityFunc
	onRim              OnRimFunc
	cachedNeighborhood *Neighborhoods
}

// RimOption configures CreateRimMesh.
type RimOption func(*rimOptions)

// WithVisibility sets the predicate deciding which grobSet neighbors count
// toward a rim grob's visible-neighbor count. Default: always visible.
func WithVisibility(fn VisibilityFunc) RimOption {
	return func(o *rimOptions) { o.visibility = fn }
}

// WithOnRim registers a callback invoked once per rim grob inserted.
func WithOnRim(fn OnRimFunc) RimOption {
	return func(o *rimOptions) { o.onRim = fn }
}

// WithCachedNeighborhood supplies a precomputed Neighborhoods(rimSet →
// grobSet), avoiding recomputation when the caller already has one.
func WithCachedNeighborhood(nbh *Neighborhoods) RimOption {
	return func(o *rimOptions) { o.cachedNeighborhood = nbh }
}

// CreateRimMesh extracts the boundary of grobSet in source: the side grobs
// of dimension dim(grobSet)-1 that have exactly one visible grobSet
// neighbor. The output mesh shares source's vertex coordinates via a
// per-VERTEX mesh link rather than copying them.
func CreateRimMesh(source *mesh.Mesh, grobSet grob.SetKind, opts ...RimOption) (*mesh.Mesh, error) {
	cfg := rimOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := mesh.NewMesh()
	if grobSet.Dim() <= 0 {
		return out, nil
	}

	visible := cfg.visibility
	if visible == nil {
		visible = func(grob.Grob) bool { return true }
	}

	rimSet := grob.SetByDim(grobSet.Dim() - 1)

	nbh := cfg.cachedNeighborhood
	if nbh == nil {
		var err error
		nbh, err = NewNeighborhoods(source, rimSet, grobSet)
		if err != nil {
			return nil, err
		}
	}

	pointKind := grob.Point
	out.LinkMesh(source, &pointKind)
	out.ResizeVertices(source.Count(grob.Point))

	for _, k := range rimSet.Kinds() {
		n := source.Count(k)
		for pos := 0; pos < n; pos++ {
			self := mesh.GrobIndex{Kind: k, Pos: pos}
			var visibleNeighbor mesh.GrobIndex
			visibleCount := 0
			for _, nb := range nbh.NeighborGrobIndices(self) {
				ng := source.Grob(nb)
				if visible(ng) {
					visibleCount++
					visibleNeighbor = nb
				}
			}
			if visibleCount != 1 {
				continue
			}
			g := source.Grob(self)
			newIdx, err := out.InsertGrob(k, g.Corners())
			if err != nil {
				return nil, err
			}
			if cfg.onRim != nil {
				cfg.onRim(newIdx.Pos, visibleNeighbor)
			}
		}
	}
	return out, nil
}
