// Package export writes analysis results in the CSV and JSON layouts
// consumed by downstream tooling: one CSV of per-edge classifications,
// one CSV of per-face region assignments, and a JSON statistics summary.
package export

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/meshtk/crease"
)

// WriteEdgesCSV writes one row per interior edge with columns
// vertex1, vertex2, dihedral_angle_deg, is_sharp. Rows are sorted by
// vertex pair so output is stable across runs.
func WriteEdgesCSV(w io.Writer, a *crease.Analysis) error {
	edges := make([]crease.Edge, 0, len(a.EdgeFaces))
	for e, faces := range a.EdgeFaces {
		if len(faces) == 2 {
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"vertex1", "vertex2", "dihedral_angle_deg", "is_sharp"}); err != nil {
		return err
	}
	for _, e := range edges {
		rec := []string{
			strconv.Itoa(e[0]),
			strconv.Itoa(e[1]),
			strconv.FormatFloat(a.Angles[e], 'g', -1, 64),
			strconv.FormatBool(a.Sharp[e]),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRegionsCSV writes one row per face with columns region_id,
// face_index, vertex1, vertex2, vertex3, grouped by region id and
// ordered by face index within each region.
func WriteRegionsCSV(w io.Writer, a *crease.Analysis, m crease.Mesh) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"region_id", "face_index", "vertex1", "vertex2", "vertex3"}); err != nil {
		return err
	}
	byRegion := make([][]int, a.RegionCount)
	for face, region := range a.FaceRegion {
		byRegion[region] = append(byRegion[region], face)
	}
	for region, faces := range byRegion {
		for _, face := range faces {
			tri := m.Triangles[face]
			rec := []string{
				strconv.Itoa(region),
				strconv.Itoa(face),
				strconv.Itoa(tri[0]),
				strconv.Itoa(tri[1]),
				strconv.Itoa(tri[2]),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
