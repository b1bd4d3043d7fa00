package render

import (
	"image"
	"image/draw"

	"github.com/fogleman/fauxgl"
	"gonum.org/v1/gonum/spatial/r3"
)

func fglVec(v r3.Vec) fauxgl.Vector {
	return fauxgl.V(v.X, v.Y, v.Z)
}

// regionPalette cycles over region ids. Neighboring regions get
// distinguishable hues as long as the region count stays moderate.
var regionPalette = []fauxgl.Color{
	fauxgl.HexColor("#468966"),
	fauxgl.HexColor("#FFB03B"),
	fauxgl.HexColor("#B64926"),
	fauxgl.HexColor("#8E2800"),
	fauxgl.HexColor("#5C832F"),
	fauxgl.HexColor("#31709C"),
	fauxgl.HexColor("#7D5BA6"),
	fauxgl.HexColor("#C94C77"),
	fauxgl.HexColor("#2E8B8B"),
	fauxgl.HexColor("#9C8431"),
}

func regionColor(region int) fauxgl.Color {
	return regionPalette[region%len(regionPalette)]
}

// rampColor maps t in [0, 1] to the blue-green-red heatmap ramp.
func rampColor(t float64) fauxgl.Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	if t < 0.5 {
		// blue to green
		s := t * 2
		return fauxgl.Color{R: 0, G: s, B: 1 - s, A: 1}
	}
	// green to red
	s := (t - 0.5) * 2
	return fauxgl.Color{R: s, G: 1 - s, B: 0, A: 1}
}

// pasteQuadrant places img into quadrant i (row-major) of a 2x2 montage.
func pasteQuadrant(dst *image.RGBA, img image.Image, i int) {
	x := (i % 2) * width
	y := (i / 2) * height
	r := image.Rect(x, y, x+width, y+height)
	draw.Draw(dst, r, img, img.Bounds().Min, draw.Src)
}
