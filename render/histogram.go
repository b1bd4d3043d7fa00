package render

import (
	"fmt"
	"image/color"

	"github.com/meshtk/crease"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram plots the dihedral angle distribution over interior edges
// with a dashed marker at the sharp threshold, and saves it to path.
// The image format follows the path extension (.png, .svg, .pdf).
func Histogram(path string, a *crease.Analysis) error {
	vals := make(plotter.Values, 0, len(a.Angles))
	for e, faces := range a.EdgeFaces {
		if len(faces) == 2 {
			vals = append(vals, a.Angles[e])
		}
	}

	p := plot.New()
	p.Title.Text = "Distribution of Dihedral Angles"
	p.X.Label.Text = "Dihedral angle (degrees)"
	p.Y.Label.Text = "Edge count"

	maxWeight := 1.0
	if len(vals) > 0 {
		h, err := plotter.NewHist(vals, 50)
		if err != nil {
			return fmt.Errorf("render: histogram: %w", err)
		}
		h.FillColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
		p.Add(h)
		for _, bin := range h.Bins {
			if bin.Weight > maxWeight {
				maxWeight = bin.Weight
			}
		}
	}

	thr, err := plotter.NewLine(plotter.XYs{
		{X: a.Threshold, Y: 0},
		{X: a.Threshold, Y: maxWeight},
	})
	if err != nil {
		return fmt.Errorf("render: histogram threshold line: %w", err)
	}
	thr.LineStyle.Color = color.RGBA{R: 200, A: 255}
	thr.LineStyle.Width = vg.Points(1.5)
	thr.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(thr)
	p.Legend.Add(fmt.Sprintf("threshold %g°", a.Threshold), thr)
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
