package crease

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DihedralAngles computes the classification angle in degrees for every
// edge in the incidence index.
//
// Interior edges (two incident faces) get the angle between their face
// normals, in [0, 180]. The dot product is clamped to [-1, 1] before
// acos so floating point overshoot near parallel normals cannot produce
// a domain error. If either face is degenerate (zero normal) the angle
// is 0 so the fallback never inflates a fold.
//
// Boundary edges get BoundaryAngle and non-manifold edges get
// NonManifoldAngle. The sentinels exist only so that every edge carries
// one comparable value; SharpEdges does not rely on them.
func DihedralAngles(edgeFaces map[Edge][]int, normals []r3.Vec) map[Edge]float64 {
	angles := make(map[Edge]float64, len(edgeFaces))
	for e, faces := range edgeFaces {
		switch {
		case len(faces) == 2:
			angles[e] = dihedralDeg(normals[faces[0]], normals[faces[1]])
		case len(faces) == 1:
			angles[e] = BoundaryAngle
		default:
			angles[e] = NonManifoldAngle
		}
	}
	return angles
}

func dihedralDeg(n1, n2 r3.Vec) float64 {
	if n1 == (r3.Vec{}) || n2 == (r3.Vec{}) {
		return 0
	}
	dot := r3.Dot(n1, n2)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Acos(dot) * 180 / math.Pi
}

// SharpEdges labels every edge sharp or smooth. An interior edge is
// sharp iff its dihedral angle meets the threshold in degrees. Boundary
// and non-manifold edges are sharp unconditionally, independent of the
// threshold, so a threshold above BoundaryAngle cannot mislabel them
// smooth. The result contains an entry for every edge in the index.
func SharpEdges(edgeFaces map[Edge][]int, angles map[Edge]float64, threshold float64) map[Edge]bool {
	sharp := make(map[Edge]bool, len(edgeFaces))
	for e, faces := range edgeFaces {
		if len(faces) != 2 {
			sharp[e] = true
			continue
		}
		sharp[e] = angles[e] >= threshold
	}
	return sharp
}
