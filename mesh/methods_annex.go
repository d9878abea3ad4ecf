// File: methods_annex.go
// Role: annex attach/lookup/detach, including linked-mesh fallback.
package mesh

// SetAnnex stores a under key, replacing any existing entry, then updates a
// so its length matches this mesh's current grob count for key's kind.
func (m *Mesh) SetAnnex(key AnnexKey, a Annex) {
	m.annexes.Insert(key, a)
	a.Update(m, key)
}

// HasAnnex reports whether key resolves locally or via a linked mesh.
func (m *Mesh) HasAnnex(key AnnexKey) bool {
	_, err := m.Annex(key)
	return err == nil
}

// RemoveAnnex deletes key from this mesh's local storage. It does not
// affect a linked mesh's copy.
func (m *Mesh) RemoveAnnex(key AnnexKey) { m.annexes.Remove(key) }

// Annex looks up key locally; if absent and this mesh has a link covering
// key's kind (or a global link, for global keys), the lookup is forwarded
// to the linked mesh. Returns ErrAnnexMissing if no entry is found anywhere
// in the chain.
func (m *Mesh) Annex(key AnnexKey) (Annex, error) {
	if a, ok := m.annexes.Get(key); ok {
		return a, nil
	}
	var link *Mesh
	if key.Global {
		link = m.linkGlobal
	} else {
		link = m.resolveLink(key.Kind)
	}
	if link == nil {
		return nil, ErrAnnexMissing
	}
	return link.Annex(key)
}

// AnnexAs looks up key and type-asserts it to T, returning ErrAnnexType on
// a type mismatch. Generic functions cannot be methods in Go, hence this
// stands alone rather than as Mesh.AnnexAs.
func AnnexAs[T Annex](m *Mesh, key AnnexKey) (T, error) {
	var zero T
	a, err := m.Annex(key)
	if err != nil {
		return zero, err
	}
	typed, ok := a.(T)
	if !ok {
		return zero, ErrAnnexType
	}
	return typed, nil
}
