// Package render draws analysis results to PNG images: meshes colored
// by smooth region or by dihedral angle, and a histogram of the angle
// distribution. Rendering is software only, via fogleman/fauxgl.
package render

import (
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/meshtk/crease"
	"github.com/nfnt/resize"
)

// View describes the camera for a mesh rendering.
type View struct {
	// Eyepos is the camera position. The mesh is always fit to a
	// bi-unit cube centered at the origin before rendering.
	Eyepos fauxgl.Vector
	// Lookat is the view center position.
	Lookat fauxgl.Vector
	// Up is the camera up direction.
	Up fauxgl.Vector
	// Near and Far clip planes.
	Near, Far float64
}

// Standard views of the bi-unit cube.
var (
	IsometricView = View{Eyepos: fauxgl.V(3.2, 3.2, 3.2), Up: fauxgl.V(0, 0, 1), Near: 1, Far: 12}
	FrontView     = View{Eyepos: fauxgl.V(0, -5.5, 0), Up: fauxgl.V(0, 0, 1), Near: 1, Far: 12}
	TopView       = View{Eyepos: fauxgl.V(0, 0, 5.5), Up: fauxgl.V(0, 1, 0), Near: 1, Far: 12}
	SideView      = View{Eyepos: fauxgl.V(5.5, 0, 0), Up: fauxgl.V(0, 0, 1), Near: 1, Far: 12}
)

const (
	width, height = 1280, 960 // output width and height in pixels
	scale         = 2         // supersampling
	fovy          = 30        // vertical field of view in degrees
)

// RegionPNG renders the mesh with each face colored by its smooth
// region id and writes the image to path.
func RegionPNG(path string, m crease.Mesh, a *crease.Analysis, view View) error {
	mesh := coloredMesh(m, func(face int) fauxgl.Color {
		return regionColor(a.FaceRegion[face])
	})
	return savePNG(path, renderMesh(mesh, view))
}

// HeatmapPNG renders the mesh with each face colored by the largest
// classification angle among its edges, on a blue-green-red ramp over
// [0, 360] degrees. The widened color range matches the per-edge
// sentinel encoding and is purely cosmetic; classification never uses
// it.
func HeatmapPNG(path string, m crease.Mesh, a *crease.Analysis, view View) error {
	return savePNG(path, renderMesh(heatmapMesh(m, a), view))
}

func heatmapMesh(m crease.Mesh, a *crease.Analysis) *fauxgl.Mesh {
	return coloredMesh(m, func(face int) fauxgl.Color {
		tri := m.Triangles[face]
		max := 0.0
		for j := 0; j < 3; j++ {
			e := crease.NewEdge(tri[j], tri[(j+1)%3])
			if ang := a.Angles[e]; ang > max {
				max = ang
			}
		}
		return rampColor(max / crease.NonManifoldAngle)
	})
}

// FourViews writes a 2x2 montage of front, top, side and isometric
// renderings produced by render, which is called once per view.
func FourViews(path string, render func(view View) (image.Image, error)) error {
	views := []View{FrontView, TopView, SideView, IsometricView}
	montage := image.NewRGBA(image.Rect(0, 0, 2*width, 2*height))
	for i, view := range views {
		img, err := render(view)
		if err != nil {
			return err
		}
		pasteQuadrant(montage, img, i)
	}
	return fauxgl.SavePNG(path, montage)
}

// RegionFourViews renders the region coloring from all standard views
// into one montage.
func RegionFourViews(path string, m crease.Mesh, a *crease.Analysis) error {
	mesh := coloredMesh(m, func(face int) fauxgl.Color {
		return regionColor(a.FaceRegion[face])
	})
	return FourViews(path, func(view View) (image.Image, error) {
		return renderMesh(mesh, view), nil
	})
}

// HeatmapFourViews renders the angle heatmap from all standard views
// into one montage.
func HeatmapFourViews(path string, m crease.Mesh, a *crease.Analysis) error {
	mesh := heatmapMesh(m, a)
	return FourViews(path, func(view View) (image.Image, error) {
		return renderMesh(mesh, view), nil
	})
}

func coloredMesh(m crease.Mesh, colorOf func(face int) fauxgl.Color) *fauxgl.Mesh {
	tris := make([]*fauxgl.Triangle, 0, len(m.Triangles))
	for i, tri := range m.Triangles {
		t := fauxgl.NewTriangleForPoints(
			fglVec(m.Vertices[tri[0]]),
			fglVec(m.Vertices[tri[1]]),
			fglVec(m.Vertices[tri[2]]),
		)
		c := colorOf(i)
		t.V1.Color = c
		t.V2.Color = c
		t.V3.Color = c
		tris = append(tris, t)
	}
	mesh := fauxgl.NewTriangleMesh(tris)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	return mesh
}

func renderMesh(mesh *fauxgl.Mesh, view View) image.Image {
	light := fauxgl.V(-0.75, 1, 0.25).Normalize()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(view.Eyepos, view.Lookat, view.Up).Perspective(fovy, aspect, view.Near, view.Far)
	// builtin phong shader, per-vertex colors
	shader := fauxgl.NewPhongShader(matrix, light, view.Eyepos)
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	return resize.Resize(width, height, context.Image(), resize.Bilinear)
}

func savePNG(path string, img image.Image) error {
	return fauxgl.SavePNG(path, img)
}
