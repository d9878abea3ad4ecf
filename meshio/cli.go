// File: cli.go
// Role: command dispatcher for exporting a mesh to one of the formats
// above, grounded on viewcore's command-switch/usage-string shape but
// exposed as a library function (w io.Writer, return an error) rather
// than a main package, since this module has no cmd/ of its own.
package meshio

import (
	"fmt"
	"io"
	"strings"

	"github.com/arkmesh/meshkit/mesh"
)

// Usage is printed by Run when it is given an unrecognized command.
const Usage = `commands:
  stl    write ASCII STL (triangles only)
  node   write tetgen .node (vertex positions)
  ele    write tetgen .ele (tetrahedra)
  ugx    write a minimal UGX grid document
`

// Run dispatches cmd (case-insensitive) to the matching writer, writing
// its output to w. solidName is only used by "stl".
func Run(w io.Writer, cmd string, m *mesh.Mesh, solidName string) error {
	switch strings.ToLower(cmd) {
	case "stl":
		return WriteSTL(w, m, solidName)
	case "node":
		return WriteNode(w, m)
	case "ele":
		return WriteEle(w, m)
	case "ugx":
		return WriteUGX(w, m)
	default:
		fmt.Fprint(w, Usage)
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, cmd)
	}
}
