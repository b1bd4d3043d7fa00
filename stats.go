package crease

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AngleStats summarizes the dihedral angle distribution over interior
// edges. All fields are in degrees. A mesh with no interior edges
// yields the zero value.
type AngleStats struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Std    float64
}

func interiorAngleStats(edgeFaces map[Edge][]int, angles map[Edge]float64) AngleStats {
	vals := make([]float64, 0, len(angles))
	for e, faces := range edgeFaces {
		if len(faces) == 2 {
			vals = append(vals, angles[e])
		}
	}
	if len(vals) == 0 {
		return AngleStats{}
	}
	sort.Float64s(vals)
	std := 0.0
	if len(vals) > 1 {
		std = stat.StdDev(vals, nil)
	}
	return AngleStats{
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
		Mean:   stat.Mean(vals, nil),
		Median: stat.Quantile(0.5, stat.Empirical, vals, nil),
		Std:    std,
	}
}
