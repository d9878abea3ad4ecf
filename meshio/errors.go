package meshio

import "errors"

// ErrNoCoords is returned when a mesh has no per-vertex "coords" annex to
// write out, since every format here needs vertex positions.
var ErrNoCoords = errors.New("meshio: mesh has no per-vertex coords annex")

// ErrUnsupportedFormat is returned by the CLI dispatcher for an unknown
// command name.
var ErrUnsupportedFormat = errors.New("meshio: unsupported format")
