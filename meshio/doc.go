// Package meshio sketches thin adapters between a mesh.Mesh and a handful
// of common mesh file formats (STL, tetgen node/ele, UGX). These are not
// full parsers/writers for those formats — only enough surface to exchange
// vertex coordinates and face/cell connectivity with an external tool, the
// way a library sits at the edge of a pipeline rather than owning a file
// format of its own.
package meshio
