package meshbuilder

// defaultSpacing is the unit step between adjacent vertices along any
// axis when no WithSpacing option overrides it.
const defaultSpacing = 1.0

// coordsAnnexName is the conventional per-POINT annex name carrying vertex
// coordinates, the same name refine's callback and the meshio writers read.
const coordsAnnexName = "coords"
