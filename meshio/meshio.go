// Package meshio loads triangle meshes from Wavefront OBJ and STL files
// into indexed crease.Mesh form. STL triangle soup is welded into shared
// vertices; OBJ polygons are fan-triangulated. The loaders validate
// vertex indices so the analysis pipeline may assume well-formed input.
package meshio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meshtk/crease"
)

// ErrUnsupportedFormat is returned by ReadFile for file extensions other
// than .obj and .stl.
var ErrUnsupportedFormat = errors.New("meshio: unsupported mesh format")

// ReadFile loads a mesh from path, dispatching on the file extension.
// Supported formats are .obj and .stl (binary and ASCII).
func ReadFile(path string) (crease.Mesh, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".obj" && ext != ".stl" {
		return crease.Mesh{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	fp, err := os.Open(path)
	if err != nil {
		return crease.Mesh{}, err
	}
	defer fp.Close()
	if ext == ".obj" {
		return ReadOBJ(fp)
	}
	return ReadSTL(fp)
}
