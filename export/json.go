package export

import (
	"encoding/json"
	"io"

	"github.com/meshtk/crease"
)

// Stats is the JSON statistics summary for one analyzed mesh.
type Stats struct {
	MeshName           string  `json:"mesh_name,omitempty"`
	ThresholdDeg       float64 `json:"theta0_threshold_deg"`
	NumVertices        int     `json:"num_vertices"`
	NumFaces           int     `json:"num_faces"`
	NumInteriorEdges   int     `json:"num_interior_edges"`
	NumSharpEdges      int     `json:"num_sharp_edges"`
	NumSmoothRegions   int     `json:"num_smooth_regions"`
	NumDegenerateFaces int     `json:"num_degenerate_faces"`
	RegionSizes        []int   `json:"region_sizes"`
	AngleMin           float64 `json:"dihedral_angle_min"`
	AngleMax           float64 `json:"dihedral_angle_max"`
	AngleMean          float64 `json:"dihedral_angle_mean"`
	AngleMedian        float64 `json:"dihedral_angle_median"`
	AngleStd           float64 `json:"dihedral_angle_std"`
	SharpPercentage    float64 `json:"sharp_edge_percentage"`
}

// NewStats assembles the summary for a mesh and its analysis.
func NewStats(meshName string, m crease.Mesh, a *crease.Analysis) Stats {
	interior := a.InteriorEdges()
	sharp := a.SharpCount()
	pct := 0.0
	if interior > 0 {
		pct = float64(sharp) / float64(interior) * 100
	}
	return Stats{
		MeshName:           meshName,
		ThresholdDeg:       a.Threshold,
		NumVertices:        m.NumVertices(),
		NumFaces:           m.NumTriangles(),
		NumInteriorEdges:   interior,
		NumSharpEdges:      sharp,
		NumSmoothRegions:   a.RegionCount,
		NumDegenerateFaces: a.DegenerateFaces,
		RegionSizes:        a.RegionSizes(),
		AngleMin:           a.Stats.Min,
		AngleMax:           a.Stats.Max,
		AngleMean:          a.Stats.Mean,
		AngleMedian:        a.Stats.Median,
		AngleStd:           a.Stats.Std,
		SharpPercentage:    pct,
	}
}

// WriteStatsJSON writes the indented JSON summary for one mesh.
func WriteStatsJSON(w io.Writer, meshName string, m crease.Mesh, a *crease.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewStats(meshName, m, a))
}
