package meshio

import (
	"errors"
	"fmt"
	"math"

	"github.com/meshtk/crease"
	"github.com/meshtk/crease/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Weld converts a triangle soup into an indexed mesh by merging vertices
// closer than tol. Vertices are snapped to an integer grid in
// resolution-space so all members of a cluster share one index.
// tol should be of the order of 1/1000th of the smallest triangle side;
// if 0 it is inferred from the model. Degenerate snapped triangles are
// kept, the analysis pipeline counts them.
func Weld(triangles [][3]r3.Vec, tol float64) (crease.Mesh, error) {
	if len(triangles) == 0 {
		return crease.Mesh{}, nil
	}
	bb := d3.EmptyBox()
	minSide2 := math.MaxFloat64
	maxSide2 := -math.MaxFloat64
	for i := range triangles {
		for j, vert := range triangles[i] {
			bb = bb.Include(vert)
			side2 := r3.Norm2(r3.Sub(triangles[i][(j+1)%3], vert))
			if side2 > 0 {
				minSide2 = math.Min(minSide2, side2)
			}
			maxSide2 = math.Max(maxSide2, side2)
		}
	}
	suggested := math.Sqrt(minSide2) / 256
	if tol > math.Sqrt(maxSide2)/2 {
		return crease.Mesh{}, fmt.Errorf("meshio: weld tolerance too large, suggested tolerance: %g", suggested)
	}
	if tol == 0 {
		tol = suggested
	}
	maxDim := d3.Max(bb.Size())
	div := int64(maxDim/tol + 1e-12)
	if div <= 0 {
		return crease.Mesh{}, errors.New("meshio: weld tolerance larger than model size")
	}
	if div > math.MaxInt64/2 {
		return crease.Mesh{}, errors.New("meshio: weld tolerance too small, overflowed int64")
	}

	m := crease.Mesh{Triangles: make([][3]int, len(triangles))}
	cache := make(map[[3]int64]int)
	ri := 1 / tol
	for i, tri := range triangles {
		for j, vert := range tri {
			// Scale vert to be integer in resolution-space.
			v := r3.Scale(ri, vert)
			vi := [3]int64{int64(v.X), int64(v.Y), int64(v.Z)}
			vertexIdx, ok := cache[vi]
			if !ok {
				vertexIdx = len(m.Vertices)
				cache[vi] = vertexIdx
				m.Vertices = append(m.Vertices, vert)
			}
			m.Triangles[i][j] = vertexIdx
		}
	}
	return m, nil
}
