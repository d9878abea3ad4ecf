package mesh

import "github.com/arkmesh/meshkit/grob"

// GrobArray is a dense, packed store of same-kind grobs: a flat []int
// buffer holding consecutive fixed-size corner tuples, one per element.
// len(data) is always a multiple of the kind's corner count.
type GrobArray struct {
	kind      grob.Kind
	tupleSize int
	data      []int
}

// NewGrobArray returns an empty GrobArray for kind.
func NewGrobArray(kind grob.Kind) *GrobArray {
	return &GrobArray{kind: kind, tupleSize: kind.MustCornerCount()}
}

// Kind returns the array's grob kind.
func (a *GrobArray) Kind() grob.Kind { return a.kind }

// Count returns the number of grobs stored.
func (a *GrobArray) Count() int {
	if a.tupleSize == 0 {
		return 0
	}
	return len(a.data) / a.tupleSize
}

// IndexCount returns the total number of corner-index slots in use.
func (a *GrobArray) IndexCount() int { return len(a.data) }

// At returns the i'th grob as a cursor over the array's shared buffer.
// The returned grob.Grob is invalidated by any resize of the array.
func (a *GrobArray) At(i int) grob.Grob { return grob.NewDirect(a.kind, a.data, i) }

// Data returns the raw packed corner-index buffer, in element order. The
// caller must not retain it across mutating calls to the array.
func (a *GrobArray) Data() []int { return a.data }

// Push appends one grob's worth of corner indices. len(corners) must equal
// the kind's corner count.
func (a *GrobArray) Push(corners ...int) error {
	if len(corners) != a.tupleSize {
		return ErrBadIndexCount
	}
	a.data = append(a.data, corners...)
	return nil
}

// PushGrob appends a copy of g's corners; g's kind must match the array's.
func (a *GrobArray) PushGrob(g grob.Grob) error {
	if g.Kind() != a.kind {
		return ErrBadIndexCount
	}
	return a.Push(g.Corners()...)
}

// Append bulk-appends a flat slice of corner indices; len(indices) must be
// a multiple of the kind's corner count.
func (a *GrobArray) Append(indices []int) error {
	if a.tupleSize == 0 || len(indices)%a.tupleSize != 0 {
		return ErrBadIndexCount
	}
	a.data = append(a.data, indices...)
	return nil
}

// Set replaces the entire underlying buffer with indices (not copied).
func (a *GrobArray) Set(indices []int) error {
	if a.tupleSize == 0 || len(indices)%a.tupleSize != 0 {
		return ErrBadIndexCount
	}
	a.data = indices
	return nil
}

// Clear empties the array without releasing its backing capacity.
func (a *GrobArray) Clear() { a.data = a.data[:0] }
