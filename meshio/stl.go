package meshio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/chewxy/math32"
	"github.com/hschendel/stl"
	"github.com/meshtk/crease"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
)

// ReadSTL loads a binary or ASCII STL stream and welds the triangle soup
// into an indexed mesh. Binary files are parsed directly; anything that
// does not match the binary layout is handed to the hschendel/stl parser
// which handles the ASCII dialect.
func ReadSTL(r io.Reader) (crease.Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return crease.Mesh{}, fmt.Errorf("meshio: reading stl: %w", err)
	}
	var tris [][3]r3.Vec
	if isBinarySTL(data) {
		tris, err = readBinarySTL(data)
	} else {
		tris, err = readASCIISTL(data)
	}
	if err != nil {
		return crease.Mesh{}, err
	}
	return Weld(tris, 0)
}

// isBinarySTL checks the 84-byte header plus 50 bytes per triangle
// layout. ASCII files that begin with "solid" fail the size check.
func isBinarySTL(data []byte) bool {
	if len(data) < stlHeaderSize {
		return false
	}
	count := binary.LittleEndian.Uint32(data[80:])
	return len(data) == stlHeaderSize+int(count)*stlTriangleSize
}

func readBinarySTL(data []byte) ([][3]r3.Vec, error) {
	count := int(binary.LittleEndian.Uint32(data[80:]))
	tris := make([][3]r3.Vec, 0, count)
	var d stlTriangle
	for i := 0; i < count; i++ {
		d.get(data[stlHeaderSize+i*stlTriangleSize:])
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("meshio: stl triangle %d/%d: %w", i+1, count, err)
		}
		tris = append(tris, [3]r3.Vec{
			r3From3F32(d.Vertex1),
			r3From3F32(d.Vertex2),
			r3From3F32(d.Vertex3),
		})
	}
	return tris, nil
}

func readASCIISTL(data []byte) ([][3]r3.Vec, error) {
	solid, err := stl.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("meshio: parsing ascii stl: %w", err)
	}
	tris := make([][3]r3.Vec, len(solid.Triangles))
	for i, t := range solid.Triangles {
		for j, v := range t.Vertices {
			tris[i][j] = r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
		}
	}
	return tris, nil
}

// stlTriangle is the 50 byte record of a binary STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

func (t *stlTriangle) get(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to unmarshal stlTriangle")
	}
	get3F32(b, &t.Normal)
	get3F32(b[12:], &t.Vertex1)
	get3F32(b[24:], &t.Vertex2)
	get3F32(b[36:], &t.Vertex3)
	// attributes ignored.
}

func (t stlTriangle) validate() error {
	if bad3F32(t.Normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	if bad3F32(t.Vertex1) || bad3F32(t.Vertex2) || bad3F32(t.Vertex3) {
		return errors.New("inf/NaN STL triangle vertex")
	}
	return nil
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

func r3From3F32(f [3]float32) r3.Vec {
	return r3.Vec{X: float64(f[0]), Y: float64(f[1]), Z: float64(f[2])}
}
