// Package mesh defines the Mesh container: per-kind grob storage plus an
// annex system for attaching arbitrary per-element or mesh-global data
// (vertex coordinates, normals, subset markers, ...).
//
// A Mesh owns one GrobArray per grob.Kind, allocated lazily on first use,
// and an AnnexStorage keyed by (kind, name) or mesh-global. Concurrent
// reads are safe; concurrent structural mutation is the caller's
// responsibility to serialize, same as the rest of this module.
package mesh

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrAnnexMissing is returned when an annex lookup finds neither a local
	// nor (if linked) forwarded entry for the given key.
	ErrAnnexMissing = errors.New("mesh: no such annex")

	// ErrAnnexType is returned by AnnexAs when the stored annex does not
	// have the requested concrete type.
	ErrAnnexType = errors.New("mesh: annex has a different type")

	// ErrBadTupleSize is returned when data pushed or set into an
	// ArrayAnnex does not match its configured tuple size.
	ErrBadTupleSize = errors.New("mesh: bad tuple size")

	// ErrBadIndexCount is returned when the number of corner indices handed
	// to a GrobArray push, or a flat corner-index slice handed to Append or
	// Set, does not match the kind's corner count (or a multiple of it).
	ErrBadIndexCount = errors.New("mesh: index count is not a multiple of the kind's corner count")
)
