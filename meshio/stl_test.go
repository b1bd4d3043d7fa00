package meshio

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/meshtk/crease"
	"gonum.org/v1/gonum/spatial/r3"
)

// quadSoup is a flat quad as unindexed triangles: the shared edge
// vertices appear twice and must be welded to one index each.
var quadSoup = [][3]r3.Vec{
	{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}},
	{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}},
}

func binarySTL(t *testing.T, tris [][3]r3.Vec) []byte {
	t.Helper()
	var b bytes.Buffer
	b.Write(make([]byte, 80))
	if err := binary.Write(&b, binary.LittleEndian, uint32(len(tris))); err != nil {
		t.Fatal(err)
	}
	for _, tri := range tris {
		n := crease.Normal(tri[0], tri[1], tri[2])
		for _, v := range []r3.Vec{n, tri[0], tri[1], tri[2]} {
			for _, f := range []float64{v.X, v.Y, v.Z} {
				if err := binary.Write(&b, binary.LittleEndian, float32(f)); err != nil {
					t.Fatal(err)
				}
			}
		}
		if err := binary.Write(&b, binary.LittleEndian, uint16(0)); err != nil {
			t.Fatal(err)
		}
	}
	return b.Bytes()
}

func TestReadSTLBinary(t *testing.T) {
	data := binarySTL(t, quadSoup)
	m, err := ReadSTL(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if m.NumVertices() != 4 {
		t.Errorf("welded vertex count got %d, want 4", m.NumVertices())
	}
	if m.NumTriangles() != 2 {
		t.Errorf("triangle count got %d, want 2", m.NumTriangles())
	}
	// The welded quad must have exactly one interior edge.
	a, err := crease.Analyze(m, crease.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}
	if got := a.InteriorEdges(); got != 1 {
		t.Errorf("interior edges got %d, want 1", got)
	}
}

func TestReadSTLBinaryBadFloat(t *testing.T) {
	bad := [][3]r3.Vec{
		{{X: math.NaN(), Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}},
	}
	if _, err := ReadSTL(bytes.NewReader(binarySTL(t, bad))); err == nil {
		t.Error("NaN vertex accepted")
	}
}

func TestReadSTLASCII(t *testing.T) {
	const src = `solid quad
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 1 1 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 1 0
      vertex 0 1 0
    endloop
  endfacet
endsolid quad
`
	m, err := ReadSTL(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if m.NumVertices() != 4 || m.NumTriangles() != 2 {
		t.Errorf("got %d vertices and %d triangles, want 4 and 2", m.NumVertices(), m.NumTriangles())
	}
}

func TestWeldEmpty(t *testing.T) {
	m, err := Weld(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if m.NumVertices() != 0 || m.NumTriangles() != 0 {
		t.Errorf("empty soup welded to %d vertices, %d triangles", m.NumVertices(), m.NumTriangles())
	}
}

func TestWeldMergesNearbyVertices(t *testing.T) {
	soup := make([][3]r3.Vec, len(quadSoup))
	copy(soup, quadSoup)
	// Perturb one copy of the shared vertex well below the weld
	// tolerance (smallest side is 1, inferred tolerance 1/256).
	soup[1][1] = r3.Add(soup[1][1], r3.Vec{X: 1e-6, Y: 1e-6})
	m, err := Weld(soup, 0)
	if err != nil {
		t.Fatal(err)
	}
	if m.NumVertices() != 4 {
		t.Errorf("vertex count got %d, want 4", m.NumVertices())
	}
}

func TestWeldToleranceTooLarge(t *testing.T) {
	if _, err := Weld(quadSoup, 100); err == nil {
		t.Error("oversized tolerance accepted")
	}
}
