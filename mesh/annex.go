package mesh

import (
	"sort"
	"sync"

	"github.com/arkmesh/meshkit/grob"
)

// AnnexKey names an annex: a string name, optionally scoped to one
// grob.Kind. A kind-scoped key (Global == false) addresses data with one
// tuple per grob of that kind (vertex coordinates, per-face normals, ...);
// a global key addresses mesh-wide data with no per-grob correspondence.
type AnnexKey struct {
	Kind   grob.Kind
	Global bool
	Name   string
}

// PerKindKey builds a kind-scoped annex key.
func PerKindKey(kind grob.Kind, name string) AnnexKey {
	return AnnexKey{Kind: kind, Name: name}
}

// GlobalKey builds a mesh-global annex key.
func GlobalKey(name string) AnnexKey {
	return AnnexKey{Global: true, Name: name}
}

// less orders keys by (kind, name), with global keys ordered before all
// kind-scoped keys (global has no kind to compare against).
func (k AnnexKey) less(other AnnexKey) bool {
	if k.Global != other.Global {
		return k.Global
	}
	if !k.Global && k.Kind != other.Kind {
		return k.Kind < other.Kind
	}
	return k.Name < other.Name
}

// Annex is anything a Mesh can store under an AnnexKey. Update is invoked
// after a mutation to the grobs of Key's kind (kind-scoped keys only) so
// the annex can keep its own length in sync; global annexes are never
// auto-updated.
type Annex interface {
	Update(m *Mesh, key AnnexKey)
}

// Number constrains ArrayAnnex's element type to the numeric kinds the
// original library supports (its i32/f32 annex variants).
type Number interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// ArrayAnnex is a dense per-grob (or mesh-global) tuple store: TupleSize
// values of T per element, packed into a flat Data slice.
type ArrayAnnex[T Number] struct {
	TupleSize int
	Data      []T
}

// NewArrayAnnex returns an empty ArrayAnnex with the given tuple size.
func NewArrayAnnex[T Number](tupleSize int) *ArrayAnnex[T] {
	return &ArrayAnnex[T]{TupleSize: tupleSize}
}

// Len returns the number of tuples stored.
func (a *ArrayAnnex[T]) Len() int {
	if a.TupleSize == 0 {
		return 0
	}
	return len(a.Data) / a.TupleSize
}

// At returns the i'th tuple as a freshly allocated slice.
func (a *ArrayAnnex[T]) At(i int) []T {
	out := make([]T, a.TupleSize)
	copy(out, a.Data[i*a.TupleSize:(i+1)*a.TupleSize])
	return out
}

// Set overwrites the i'th tuple in place; len(tuple) must equal TupleSize
// and i must be within [0, Len()).
func (a *ArrayAnnex[T]) Set(i int, tuple []T) error {
	if len(tuple) != a.TupleSize {
		return ErrBadTupleSize
	}
	if i < 0 || i >= a.Len() {
		return ErrBadIndexCount
	}
	copy(a.Data[i*a.TupleSize:(i+1)*a.TupleSize], tuple)
	return nil
}

// Push appends one tuple; len(tuple) must equal TupleSize.
func (a *ArrayAnnex[T]) Push(tuple ...T) error {
	if len(tuple) != a.TupleSize {
		return ErrBadTupleSize
	}
	a.Data = append(a.Data, tuple...)
	return nil
}

// Resize grows or shrinks the annex to hold exactly n tuples, zero-filling
// any newly added space.
func (a *ArrayAnnex[T]) Resize(n int) {
	want := n * a.TupleSize
	if want <= len(a.Data) {
		a.Data = a.Data[:want]
		return
	}
	a.Data = append(a.Data, make([]T, want-len(a.Data))...)
}

// Update implements Annex: per-kind array annexes track the owning mesh's
// grob count for their kind. Global annexes are left untouched.
func (a *ArrayAnnex[T]) Update(m *Mesh, key AnnexKey) {
	if key.Global {
		return
	}
	a.Resize(m.Count(key.Kind))
}

// AnnexStorage is a concurrency-safe map from AnnexKey to Annex.
type AnnexStorage struct {
	mu sync.RWMutex
	m  map[AnnexKey]Annex
}

// NewAnnexStorage returns an empty AnnexStorage.
func NewAnnexStorage() *AnnexStorage {
	return &AnnexStorage{m: make(map[AnnexKey]Annex)}
}

// Insert stores (or replaces) the annex under key.
func (s *AnnexStorage) Insert(key AnnexKey, a Annex) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = a
}

// Remove deletes the annex under key, if present.
func (s *AnnexStorage) Remove(key AnnexKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

// Get returns the annex under key and whether it was found.
func (s *AnnexStorage) Get(key AnnexKey) (Annex, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.m[key]
	return a, ok
}

// Has reports whether key is present.
func (s *AnnexStorage) Has(key AnnexKey) bool {
	_, ok := s.Get(key)
	return ok
}

// Keys returns all stored keys ordered by (kind, name), global keys first.
func (s *AnnexStorage) Keys() []AnnexKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]AnnexKey, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// forEachOfKind invokes fn for every stored per-kind key matching kind.
func (s *AnnexStorage) forEachOfKind(kind grob.Kind, fn func(AnnexKey, Annex)) {
	s.mu.RLock()
	matches := make([]AnnexKey, 0)
	for k := range s.m {
		if !k.Global && k.Kind == kind {
			matches = append(matches, k)
		}
	}
	s.mu.RUnlock()
	for _, k := range matches {
		a, ok := s.Get(k)
		if ok {
			fn(k, a)
		}
	}
}
