// File: methods_grobs.go
// Role: structural mutation of a Mesh's grob storage.
package mesh

import "github.com/arkmesh/meshkit/grob"

// ResizeVertices sets the VERTEX array to hold exactly n points, each
// identity-filled (the i'th vertex's sole corner is i itself — a vertex is
// its own 0-dimensional grob). Existing per-VERTEX annexes are resized to
// match via their Update hook.
func (m *Mesh) ResizeVertices(n int) {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	// Set never fails for Point (tupleSize 1, any length is a multiple of 1).
	_ = m.Grobs(grob.Point).Set(data)
	m.notifyAnnexUpdate(grob.Point)
}

// InsertGrob appends one grob of kind with the given corner indices and
// returns its new GrobIndex.
func (m *Mesh) InsertGrob(kind grob.Kind, corners []int) (GrobIndex, error) {
	arr := m.Grobs(kind)
	if err := arr.Push(corners...); err != nil {
		return GrobIndex{}, err
	}
	m.notifyAnnexUpdate(kind)
	return GrobIndex{Kind: kind, Pos: arr.Count() - 1}, nil
}

// InsertGrobs bulk-appends flatIndices (a multiple of kind's corner count)
// to kind's array.
func (m *Mesh) InsertGrobs(kind grob.Kind, flatIndices []int) error {
	if err := m.Grobs(kind).Append(flatIndices); err != nil {
		return err
	}
	m.notifyAnnexUpdate(kind)
	return nil
}

// SetGrobs replaces kind's entire corner-index buffer with flatIndices.
func (m *Mesh) SetGrobs(kind grob.Kind, flatIndices []int) error {
	if err := m.Grobs(kind).Set(flatIndices); err != nil {
		return err
	}
	m.notifyAnnexUpdate(kind)
	return nil
}

// Clear empties every kind in set.
func (m *Mesh) Clear(set grob.SetKind) {
	for _, k := range set.Kinds() {
		m.Grobs(k).Clear()
		m.notifyAnnexUpdate(k)
	}
}

// ClearAll empties every kind in the mesh.
func (m *Mesh) ClearAll() {
	for _, k := range grob.AllKinds() {
		m.Grobs(k).Clear()
		m.notifyAnnexUpdate(k)
	}
}
