// Package crease identifies sharp edges on triangulated 3D surfaces and
// partitions the remaining surface into maximal smooth regions.
//
// The pipeline is a single forward pass per mesh: an edge-face incidence
// index is built from the face list, a classification angle in degrees is
// computed for every edge from the incident face normals, edges are
// labeled sharp or smooth against a threshold, and faces are grouped into
// connected regions reachable through smooth edges only. All functions
// are pure with respect to their inputs so independent meshes may be
// analyzed concurrently.
package crease

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultThreshold is the dihedral angle in degrees above which an
// interior edge is considered sharp when the caller has no better value.
const DefaultThreshold = 45.0

// Sentinel classification angles for edges that have no dihedral angle.
// Both sit above any meaningful interior threshold so that a plain
// angle >= threshold comparison keeps them sharp.
const (
	// BoundaryAngle is assigned to edges incident to exactly one face.
	BoundaryAngle = 270.0
	// NonManifoldAngle is assigned to edges incident to three or more faces.
	NonManifoldAngle = 360.0
)

// ErrVertexIndex reports a face referencing a vertex outside the mesh
// vertex array. It marks malformed input from the loading boundary.
var ErrVertexIndex = errors.New("crease: face references out-of-range vertex index")

// Mesh is an indexed triangle mesh. Triangles reference Vertices by
// position. Vertex order within a triangle fixes the normal direction
// via the right-hand rule.
type Mesh struct {
	Vertices  []r3.Vec
	Triangles [][3]int
}

// NumVertices returns the number of vertices in the mesh.
func (m Mesh) NumVertices() int { return len(m.Vertices) }

// NumTriangles returns the number of triangular faces in the mesh.
func (m Mesh) NumTriangles() int { return len(m.Triangles) }

// Validate checks that every triangle references vertices inside the
// vertex array. It returns an error wrapping ErrVertexIndex on the first
// violation found.
func (m Mesh) Validate() error {
	n := len(m.Vertices)
	for i, tri := range m.Triangles {
		for _, v := range tri {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: triangle %d vertex %d (mesh has %d vertices)", ErrVertexIndex, i, v, n)
			}
		}
	}
	return nil
}

// Edge is an undirected edge keyed by its two vertex indices with the
// smaller index first. Construct with NewEdge so both triangles sharing
// an edge produce the same key.
type Edge [2]int

// NewEdge returns the canonical edge key for the vertex pair (a, b).
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// Analysis is the result of running the full pipeline over one mesh.
// All maps and slices are freshly allocated per call and never mutated
// afterwards.
type Analysis struct {
	// Threshold is the sharp-edge threshold in degrees used for this run.
	Threshold float64
	// Normals holds one unit normal per face. Degenerate faces hold the
	// zero vector.
	Normals []r3.Vec
	// EdgeFaces maps every edge to the faces containing it, in face scan
	// order.
	EdgeFaces map[Edge][]int
	// Angles maps every edge to its classification angle in degrees:
	// the dihedral angle for interior edges, BoundaryAngle or
	// NonManifoldAngle otherwise.
	Angles map[Edge]float64
	// Sharp maps every edge to its sharp/smooth label.
	Sharp map[Edge]bool
	// FaceRegion maps face index to smooth-region id. Region ids are a
	// dense range [0, RegionCount).
	FaceRegion []int
	// RegionCount is the number of smooth regions found.
	RegionCount int
	// DegenerateFaces counts faces whose normal was undefined
	// (zero-area triangles). Reported, never fatal.
	DegenerateFaces int
	// Stats summarizes the dihedral angle distribution over interior
	// edges only.
	Stats AngleStats
}

// InteriorEdges returns the number of manifold interior edges (incidence
// count exactly 2).
func (a *Analysis) InteriorEdges() int {
	n := 0
	for _, faces := range a.EdgeFaces {
		if len(faces) == 2 {
			n++
		}
	}
	return n
}

// SharpCount returns the number of edges labeled sharp, boundary and
// non-manifold edges included.
func (a *Analysis) SharpCount() int {
	n := 0
	for _, s := range a.Sharp {
		if s {
			n++
		}
	}
	return n
}

// RegionSizes returns the number of faces in each region, indexed by
// region id.
func (a *Analysis) RegionSizes() []int {
	sizes := make([]int, a.RegionCount)
	for _, r := range a.FaceRegion {
		sizes[r]++
	}
	return sizes
}

// Analyze runs the whole pipeline on m with the given threshold in
// degrees. It returns an error only for malformed input; degenerate
// geometry is tolerated and counted. An empty mesh yields an empty
// analysis.
func Analyze(m Mesh, threshold float64) (*Analysis, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	normals, degenerate := FaceNormals(m)
	edgeFaces := EdgeFaces(m)
	angles := DihedralAngles(edgeFaces, normals)
	sharp := SharpEdges(edgeFaces, angles, threshold)
	regions, nregions := SmoothRegions(m, edgeFaces, sharp)
	return &Analysis{
		Threshold:       threshold,
		Normals:         normals,
		EdgeFaces:       edgeFaces,
		Angles:          angles,
		Sharp:           sharp,
		FaceRegion:      regions,
		RegionCount:     nregions,
		DegenerateFaces: degenerate,
		Stats:           interiorAngleStats(edgeFaces, angles),
	}, nil
}
