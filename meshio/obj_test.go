package meshio

import (
	"errors"
	"strings"
	"testing"

	"github.com/meshtk/crease"
)

func TestReadOBJTriangles(t *testing.T) {
	const src = `# flat quad, two triangles
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`
	m, err := ReadOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if m.NumVertices() != 4 || m.NumTriangles() != 2 {
		t.Fatalf("got %d vertices and %d triangles, want 4 and 2", m.NumVertices(), m.NumTriangles())
	}
	if m.Triangles[0] != [3]int{0, 1, 2} || m.Triangles[1] != [3]int{0, 2, 3} {
		t.Errorf("triangles got %v", m.Triangles)
	}
	if m.Vertices[2].X != 1 || m.Vertices[2].Y != 1 {
		t.Errorf("vertex 2 got %v", m.Vertices[2])
	}
}

func TestReadOBJFanTriangulation(t *testing.T) {
	const src = `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	m, err := ReadOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if m.NumTriangles() != 2 {
		t.Fatalf("quad fan got %d triangles, want 2", m.NumTriangles())
	}
	if m.Triangles[0] != [3]int{0, 1, 2} || m.Triangles[1] != [3]int{0, 2, 3} {
		t.Errorf("fan triangles got %v", m.Triangles)
	}
}

func TestReadOBJSlashAndNegativeIndices(t *testing.T) {
	const src = `v 0 0 0
vt 0 0
vn 0 0 1
v 1 0 0
v 0 1 0
f 1/1/1 2/1/1 3/1/1
f -3 -2 -1
`
	m, err := ReadOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if m.NumTriangles() != 2 {
		t.Fatalf("got %d triangles, want 2", m.NumTriangles())
	}
	if m.Triangles[0] != m.Triangles[1] {
		t.Errorf("negative indices resolved to %v, want %v", m.Triangles[1], m.Triangles[0])
	}
}

func TestReadOBJOutOfRangeIndex(t *testing.T) {
	const src = `v 0 0 0
v 1 0 0
f 1 2 9
`
	_, err := ReadOBJ(strings.NewReader(src))
	if !errors.Is(err, crease.ErrVertexIndex) {
		t.Errorf("got %v, want ErrVertexIndex", err)
	}
}

func TestReadOBJShortFace(t *testing.T) {
	const src = `v 0 0 0
v 1 0 0
f 1 2
`
	if _, err := ReadOBJ(strings.NewReader(src)); err == nil {
		t.Error("two-vertex face accepted")
	}
}

func TestReadFileUnsupported(t *testing.T) {
	_, err := ReadFile("model.ply")
	if !errors.Is(err, ErrUnsupportedFormat) {
		// A missing file is also acceptable only for supported formats.
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}
