package crease

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestRegionsArePartition(t *testing.T) {
	m := unitCube()
	a, err := Analyze(m, 45)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.FaceRegion) != len(m.Triangles) {
		t.Fatalf("face region length got %d, want %d", len(a.FaceRegion), len(m.Triangles))
	}
	seen := make([]bool, a.RegionCount)
	for face, region := range a.FaceRegion {
		if region < 0 || region >= a.RegionCount {
			t.Fatalf("face %d region id %d outside [0, %d)", face, region, a.RegionCount)
		}
		seen[region] = true
	}
	for region, ok := range seen {
		if !ok {
			t.Errorf("region id %d unused, ids are not dense", region)
		}
	}
}

// TestRegionsMatchReachability reconstructs face connectivity through
// smooth edges with union-find and checks the BFS partition agrees.
func TestRegionsMatchReachability(t *testing.T) {
	for _, tc := range []struct {
		name      string
		mesh      Mesh
		threshold float64
	}{
		{"cube45", unitCube(), 45},
		{"cube0", unitCube(), 0},
		{"cube180", unitCube(), 180},
		{"quad", flatQuad(), 10},
		{"fan", triangleFan(), 45},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Analyze(tc.mesh, tc.threshold)
			if err != nil {
				t.Fatal(err)
			}
			parent := make([]int, len(tc.mesh.Triangles))
			for i := range parent {
				parent[i] = i
			}
			var find func(int) int
			find = func(x int) int {
				if parent[x] != x {
					parent[x] = find(parent[x])
				}
				return parent[x]
			}
			for e, faces := range a.EdgeFaces {
				if len(faces) != 2 || a.Sharp[e] {
					continue
				}
				parent[find(faces[0])] = find(faces[1])
			}
			for i := range tc.mesh.Triangles {
				for j := range tc.mesh.Triangles {
					sameSet := find(i) == find(j)
					sameRegion := a.FaceRegion[i] == a.FaceRegion[j]
					if sameSet != sameRegion {
						t.Errorf("faces %d,%d: union-find %v, region %v", i, j, sameSet, sameRegion)
					}
				}
			}
		})
	}
}

func TestIsolatedFaceSingleton(t *testing.T) {
	// All edges of the fan are sharp (boundary or non-manifold), so each
	// face is its own region.
	a, err := Analyze(triangleFan(), 45)
	if err != nil {
		t.Fatal(err)
	}
	if a.RegionCount != 3 {
		t.Errorf("region count got %d, want 3", a.RegionCount)
	}
	for _, size := range a.RegionSizes() {
		if size != 1 {
			t.Errorf("region size got %d, want 1", size)
		}
	}
}

func TestSmoothRegionsEmpty(t *testing.T) {
	regions, n := SmoothRegions(Mesh{}, nil, nil)
	if len(regions) != 0 || n != 0 {
		t.Errorf("empty mesh got %d regions over %d faces", n, len(regions))
	}
}

func TestInteriorAngleStats(t *testing.T) {
	a, err := Analyze(unitCube(), 45)
	if err != nil {
		t.Fatal(err)
	}
	// 12 edges at 90 and 6 at 0: mean 60, median 90, min 0, max 90.
	if math.Abs(a.Stats.Min) > 1e-9 {
		t.Errorf("min got %g, want 0", a.Stats.Min)
	}
	if math.Abs(a.Stats.Max-90) > 1e-9 {
		t.Errorf("max got %g, want 90", a.Stats.Max)
	}
	if math.Abs(a.Stats.Mean-60) > 1e-9 {
		t.Errorf("mean got %g, want 60", a.Stats.Mean)
	}
	if math.Abs(a.Stats.Median-90) > 1e-9 {
		t.Errorf("median got %g, want 90", a.Stats.Median)
	}
	if a.Stats.Std <= 0 {
		t.Errorf("std got %g, want > 0", a.Stats.Std)
	}
}

func TestStatsExcludeSentinels(t *testing.T) {
	// Boundary sentinels must not leak into the interior distribution.
	m := Mesh{
		Vertices: []r3.Vec{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		},
		Triangles: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
	a, err := Analyze(m, 45)
	if err != nil {
		t.Fatal(err)
	}
	if a.Stats.Max >= BoundaryAngle {
		t.Errorf("stats max %g includes sentinel angles", a.Stats.Max)
	}
}
