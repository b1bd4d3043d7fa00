package crease

import "gonum.org/v1/gonum/spatial/r3"

// Triangles whose cross product norm falls below this are treated as
// zero-area.
const degenerateNormalTol = 1e-12

// Normal returns the unit normal of the triangle (v0, v1, v2) following
// the right-hand rule, or the zero vector if the triangle is degenerate.
func Normal(v0, v1, v2 r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(v1, v0), r3.Sub(v2, v0))
	if r3.Norm(n) <= degenerateNormalTol {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// FaceNormals computes one unit normal per face. Degenerate faces
// (collinear or repeated vertices) yield the zero vector and are counted
// in the second return value; downstream angle evaluation tolerates
// zero normals.
func FaceNormals(m Mesh) (normals []r3.Vec, degenerate int) {
	normals = make([]r3.Vec, len(m.Triangles))
	for i, tri := range m.Triangles {
		n := Normal(m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]])
		if n == (r3.Vec{}) {
			degenerate++
			continue
		}
		normals[i] = n
	}
	return normals, degenerate
}
