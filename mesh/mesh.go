// File: mesh.go
// Role: Mesh type, lazy per-kind grob-array allocation, linked-mesh annex
// forwarding.
package mesh

import (
	"sync"

	"github.com/arkmesh/meshkit/grob"
)

const numKinds = int(grob.Prism) + 1

// GrobIndex identifies one grob within a Mesh: its kind plus its position
// within that kind's GrobArray.
type GrobIndex struct {
	Kind grob.Kind
	Pos  int
}

// Mesh is the central unstructured-mesh container: one GrobArray per
// grob.Kind (allocated lazily, double-checked under muGrobs) and an
// AnnexStorage for attached data. A Mesh may optionally link to another
// Mesh, per kind or globally, so annex lookups that miss locally fall back
// to the linked mesh (used by topology.CreateRimMesh to share vertex
// coordinates without copying them).
type Mesh struct {
	muGrobs sync.RWMutex
	grobs   [numKinds]*GrobArray

	annexes *AnnexStorage

	linkGlobal  *Mesh
	linkPerKind [numKinds]*Mesh
}

// NewMesh returns an empty Mesh.
func NewMesh() *Mesh {
	return &Mesh{annexes: NewAnnexStorage()}
}

// Grobs returns the GrobArray for kind, allocating it on first access.
func (m *Mesh) Grobs(kind grob.Kind) *GrobArray {
	m.muGrobs.RLock()
	a := m.grobs[kind]
	m.muGrobs.RUnlock()
	if a != nil {
		return a
	}
	m.muGrobs.Lock()
	defer m.muGrobs.Unlock()
	if m.grobs[kind] == nil {
		m.grobs[kind] = NewGrobArray(kind)
	}
	return m.grobs[kind]
}

// Has reports whether kind has a non-empty GrobArray.
func (m *Mesh) Has(kind grob.Kind) bool { return m.Count(kind) > 0 }

// HasSet reports whether any kind in set has a non-empty GrobArray.
func (m *Mesh) HasSet(set grob.SetKind) bool {
	for _, k := range set.Kinds() {
		if m.Has(k) {
			return true
		}
	}
	return false
}

// Count returns the number of grobs of kind stored (0 if never allocated).
func (m *Mesh) Count(kind grob.Kind) int {
	m.muGrobs.RLock()
	a := m.grobs[kind]
	m.muGrobs.RUnlock()
	if a == nil {
		return 0
	}
	return a.Count()
}

// CountSet sums Count across set's member kinds.
func (m *Mesh) CountSet(set grob.SetKind) int {
	total := 0
	for _, k := range set.Kinds() {
		total += m.Count(k)
	}
	return total
}

// IndexCount returns the raw corner-index slot count for kind.
func (m *Mesh) IndexCount(kind grob.Kind) int {
	m.muGrobs.RLock()
	a := m.grobs[kind]
	m.muGrobs.RUnlock()
	if a == nil {
		return 0
	}
	return a.IndexCount()
}

// IndexCountSet sums IndexCount across set's member kinds.
func (m *Mesh) IndexCountSet(set grob.SetKind) int {
	total := 0
	for _, k := range set.Kinds() {
		total += m.IndexCount(k)
	}
	return total
}

// GrobTypes returns the kinds with at least one stored grob, in
// grob.AllKinds order.
func (m *Mesh) GrobTypes() []grob.Kind {
	out := make([]grob.Kind, 0, numKinds)
	for _, k := range grob.AllKinds() {
		if m.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// HighestGrobSetKind returns the highest-dimension SetKind with at least
// one stored grob (grob.Cells down to grob.Vertices), or grob.NoSet if the
// mesh is empty.
func (m *Mesh) HighestGrobSetKind() grob.SetKind {
	for dim := grob.MaxGrobDim; dim >= 0; dim-- {
		set := grob.SetByDim(dim)
		if m.HasSet(set) {
			return set
		}
	}
	return grob.NoSet
}

// Grob returns the grob at gi as a cursor into its kind's array.
func (m *Mesh) Grob(gi GrobIndex) grob.Grob { return m.Grobs(gi.Kind).At(gi.Pos) }

// notifyAnnexUpdate invokes Update on every local per-kind annex of kind,
// after kind's grobs have been mutated.
func (m *Mesh) notifyAnnexUpdate(kind grob.Kind) {
	m.annexes.forEachOfKind(kind, func(key AnnexKey, a Annex) { a.Update(m, key) })
}

// LinkMesh sets other as the annex-lookup fallback for kind, or globally
// if kind is nil. Passing a nil other clears the corresponding link.
func (m *Mesh) LinkMesh(other *Mesh, kind *grob.Kind) {
	if kind == nil {
		m.linkGlobal = other
		return
	}
	m.linkPerKind[*kind] = other
}

// resolveLink returns the mesh an annex lookup for kind should fall back
// to, or nil if kind has no link.
func (m *Mesh) resolveLink(kind grob.Kind) *Mesh {
	if l := m.linkPerKind[kind]; l != nil {
		return l
	}
	return m.linkGlobal
}

// Links returns the distinct non-nil meshes m forwards annex lookups to,
// across its global link and all per-kind links. Used by refine.DetectLinkCycle
// to walk the link graph without reaching into Mesh's private fields.
func (m *Mesh) Links() []*Mesh {
	seen := make(map[*Mesh]bool, numKinds+1)
	var out []*Mesh
	add := func(l *Mesh) {
		if l != nil && !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	add(m.linkGlobal)
	for _, l := range m.linkPerKind {
		add(l)
	}
	return out
}
