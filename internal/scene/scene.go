// Package scene builds the demo images: each scene renders one step of the
// pipeline (canvas, lines, wireframe and filled triangles, textures, a
// projected cube, an input-driven grid) into a fresh canvas.
package scene

import (
	"fmt"
	"math"
	"math/rand"

	"softraster/internal/canvas"
	"softraster/internal/mathutil"
	"softraster/internal/raster"
	"softraster/internal/shader"
	"softraster/internal/texture"
)

// Params configures a scene render.
type Params struct {
	Width  int
	Height int
	Seed   int64

	// Texture is sampled by the "textured" scene. When nil the
	// "interpolated" scene is rendered and used instead.
	Texture *canvas.Canvas

	// Mouse position and effect radius fed to input-driven programs.
	MouseX, MouseY, Radius float64

	// Angle rotates the cube about its vertical axis and Tilt about its
	// horizontal axis, both in degrees. Tilt is applied after Angle.
	Angle float64
	Tilt  float64
}

// Func renders a scene.
type Func func(Params) (*canvas.Canvas, error)

type entry struct {
	name string
	fn   Func
}

var scenes = []entry{
	{"canvas", Fill},
	{"lines", Lines},
	{"triangle", Triangle},
	{"triangles", Triangles},
	{"indexed", Indexed},
	{"interpolated", Interpolated},
	{"textured", Textured},
	{"cube", Cube},
	{"grid", MagnetGrid},
	{"gray", Gray},
}

// Names returns scene names in render order.
func Names() []string {
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.name
	}
	return names
}

// Lookup returns the scene registered under name.
func Lookup(name string) (Func, bool) {
	for _, s := range scenes {
		if s.name == name {
			return s.fn, true
		}
	}
	return nil, false
}

// Fill paints the whole canvas green.
func Fill(p Params) (*canvas.Canvas, error) {
	c := canvas.New(p.Width, p.Height)
	c.Clear(canvas.Green)
	return c, nil
}

// Lines draws the two square diagonals (white and green) followed by 100
// random lines from a seeded generator.
func Lines(p Params) (*canvas.Canvas, error) {
	c := canvas.New(p.Width, p.Height)
	if p.Width == 0 || p.Height == 0 {
		return c, nil
	}
	r := raster.New(c)

	if err := Diagonals(r); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(p.Seed))
	randPos := func() canvas.Position {
		return canvas.Position{X: int32(rng.Intn(p.Width)), Y: int32(rng.Intn(p.Height))}
	}
	for i := 0; i < 100; i++ {
		col := canvas.Color{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}
		if err := r.DrawLine(randPos(), randPos(), col); err != nil {
			return nil, fmt.Errorf("scene: lines: %w", err)
		}
	}
	return c, nil
}

// Diagonals draws (0,0)→(n,n) in white and (0,n)→(n,0) in green, where n+1
// is the shorter canvas side.
func Diagonals(r *raster.Rasterizer) error {
	n := int32(min(r.Canvas().Width(), r.Canvas().Height()) - 1)
	if err := r.DrawLine(canvas.Position{X: 0, Y: 0}, canvas.Position{X: n, Y: n}, canvas.White); err != nil {
		return fmt.Errorf("scene: diagonals: %w", err)
	}
	if err := r.DrawLine(canvas.Position{X: 0, Y: n}, canvas.Position{X: n, Y: 0}, canvas.Green); err != nil {
		return fmt.Errorf("scene: diagonals: %w", err)
	}
	return nil
}

// Triangle outlines one triangle spanning the lower-left half of the canvas.
func Triangle(p Params) (*canvas.Canvas, error) {
	c := canvas.New(p.Width, p.Height)
	r := raster.New(c)
	w, h := int32(p.Width-1), int32(p.Height-1)
	vertices := []canvas.Position{{X: 0, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
	if err := r.DrawTriangles(vertices, len(vertices), canvas.Green); err != nil {
		return nil, fmt.Errorf("scene: triangle: %w", err)
	}
	return c, nil
}

const gridCells = 10

// Triangles outlines a 10×10 grid of cells, two triangles per cell, with
// every triangle storing its own three vertices.
func Triangles(p Params) (*canvas.Canvas, error) {
	c := canvas.New(p.Width, p.Height)
	r := raster.New(c)
	stepX := int32((p.Width - 1) / gridCells)
	stepY := int32((p.Height - 1) / gridCells)

	var vertices []canvas.Position
	for i := int32(0); i < gridCells; i++ {
		for j := int32(0); j < gridCells; j++ {
			v0 := canvas.Position{X: i * stepX, Y: j * stepY}
			v1 := canvas.Position{X: v0.X + stepX, Y: v0.Y + stepY}
			v2 := canvas.Position{X: v0.X, Y: v0.Y + stepY}
			v3 := canvas.Position{X: v0.X + stepX, Y: v0.Y}
			vertices = append(vertices, v0, v1, v2, v0, v3, v1)
		}
	}
	if err := r.DrawTriangles(vertices, len(vertices), canvas.Green); err != nil {
		return nil, fmt.Errorf("scene: triangles: %w", err)
	}
	return c, nil
}

// Indexed draws the same grid as Triangles through a shared vertex buffer
// and an index buffer.
func Indexed(p Params) (*canvas.Canvas, error) {
	c := canvas.New(p.Width, p.Height)
	r := raster.New(c)
	stepX := int32((p.Width - 1) / gridCells)
	stepY := int32((p.Height - 1) / gridCells)

	var vertices []canvas.Position
	for i := int32(0); i <= gridCells; i++ {
		for j := int32(0); j <= gridCells; j++ {
			vertices = append(vertices, canvas.Position{X: j * stepX, Y: i * stepY})
		}
	}

	const stride = gridCells + 1
	var indexes []uint16
	for x := uint16(0); x < gridCells; x++ {
		for y := uint16(0); y < gridCells; y++ {
			i0 := y*stride + x
			i1 := i0 + stride + 1
			i2 := i1 - 1
			i3 := i0 + 1
			indexes = append(indexes, i0, i1, i2, i0, i3, i1)
		}
	}
	if err := r.DrawIndexedTriangles(vertices, indexes, canvas.Green); err != nil {
		return nil, fmt.Errorf("scene: indexed: %w", err)
	}
	return c, nil
}

// Interpolated fills a red/green/blue triangle rotated by 30°, scaled to
// 0.3 and moved to the canvas centre.
func Interpolated(p Params) (*canvas.Canvas, error) {
	c := canvas.New(p.Width, p.Height)
	r := raster.New(c)
	r.SetProgram(&shader.Transformed{
		Matrix: shader.RotateScaleMove(math.Pi/6, 0.3, float64(p.Width/2), float64(p.Height/2)),
		Inner:  shader.VertexColor{},
	})

	vertices, indexes := colorTriangle(p.Width, p.Height)
	if err := r.DrawMesh(vertices, indexes); err != nil {
		return nil, fmt.Errorf("scene: interpolated: %w", err)
	}
	return c, nil
}

func colorTriangle(width, height int) ([]raster.Vertex, []uint16) {
	w, h := float64(width-1), float64(height-1)
	return []raster.Vertex{
		{X: 0, Y: 0, R: 1},
		{X: 0, Y: h, G: 1},
		{X: w, Y: h, B: 1},
	}, []uint16{0, 1, 2}
}

// Textured maps a texture onto a full-canvas quad. The texture is scaled to
// the canvas size first, so the output reproduces it pixel for pixel.
func Textured(p Params) (*canvas.Canvas, error) {
	tex := p.Texture
	if tex == nil {
		var err error
		if tex, err = Interpolated(p); err != nil {
			return nil, err
		}
	}
	tex = texture.Fit(tex, p.Width, p.Height)

	c := canvas.New(p.Width, p.Height)
	r := raster.New(c)
	r.SetProgram(&shader.Textured{})
	r.SetUniforms(raster.Uniforms{Texture: tex})

	vertices, indexes := Quad(p.Width, p.Height)
	if err := r.DrawMesh(vertices, indexes); err != nil {
		return nil, fmt.Errorf("scene: textured: %w", err)
	}
	return c, nil
}

// Cube draws a wireframe cube with its front face at z=1 and back face at
// z=2, projected through a unit viewport one unit from the eye.
func Cube(p Params) (*canvas.Canvas, error) {
	c := canvas.New(p.Width, p.Height)
	r := raster.New(c)
	// Rotated corners can come close to the eye and project off-canvas.
	r.SetDiscardOutside(true)
	vp := mathutil.Viewport{Distance: 1, Width: 1, Height: 1, CanvasWidth: p.Width, CanvasHeight: p.Height}

	centre := mathutil.Vec3{0, 0, 1.5}
	rot := mathutil.Mat3Mul(mathutil.RotX(mathutil.Deg2Rad(p.Tilt)), mathutil.RotY(mathutil.Deg2Rad(p.Angle)))
	model := mathutil.Mat4Mul(
		mathutil.FromMat3Translation(rot, centre),
		mathutil.FromMat3Translation(mathutil.Mat3Identity(), centre.Scale(-1)),
	)

	corner := func(x, y, z float64) mathutil.Vec3 { return model.MulPoint(mathutil.Vec3{x, y, z}) }
	front := [4]mathutil.Vec3{corner(-1, 1, 1), corner(1, 1, 1), corner(1, -1, 1), corner(-1, -1, 1)}
	back := [4]mathutil.Vec3{corner(-1, 1, 2), corner(1, 1, 2), corner(1, -1, 2), corner(-1, -1, 2)}

	edge := func(a, b mathutil.Vec3, col canvas.Color) error {
		ax, ay, okA := vp.Project(a)
		bx, by, okB := vp.Project(b)
		if !okA || !okB {
			return nil
		}
		start := raster.Vertex{X: ax, Y: ay}.Position()
		end := raster.Vertex{X: bx, Y: by}.Position()
		return r.DrawLine(start, end, col)
	}

	for i := 0; i < 4; i++ {
		next := (i + 1) % 4
		for _, e := range []struct {
			a, b mathutil.Vec3
			col  canvas.Color
		}{
			{front[i], front[next], canvas.Blue},
			{back[i], back[next], canvas.Red},
			{front[i], back[i], canvas.Green},
		} {
			if err := edge(e.a, e.b, e.col); err != nil {
				return nil, fmt.Errorf("scene: cube: %w", err)
			}
		}
	}
	return c, nil
}

// MagnetGrid draws the borders of a 20×20 green cell grid through the
// Magnet program, which bends the grid away from the mouse position.
func MagnetGrid(p Params) (*canvas.Canvas, error) {
	c := canvas.New(p.Width, p.Height)
	r := raster.New(c)
	r.SetDiscardOutside(true)
	r.SetProgram(&shader.Magnet{})
	r.SetUniforms(raster.Uniforms{F0: p.MouseX, F1: p.MouseY, F2: p.Radius})

	vertices, indexes, err := Grid(20, 20, float64(p.Width), float64(p.Height), 0, 1, 0, true)
	if err != nil {
		return nil, err
	}
	if err := r.DrawMesh(vertices, indexes); err != nil {
		return nil, fmt.Errorf("scene: grid: %w", err)
	}
	return c, nil
}

// Gray fills the full-size color triangle and desaturates it around the
// mouse position.
func Gray(p Params) (*canvas.Canvas, error) {
	c := canvas.New(p.Width, p.Height)
	r := raster.New(c)
	r.SetProgram(&shader.Grayscale{})
	r.SetUniforms(raster.Uniforms{F0: p.MouseX, F1: p.MouseY, F2: p.Radius})

	vertices, indexes := colorTriangle(p.Width, p.Height)
	if err := r.DrawMesh(vertices, indexes); err != nil {
		return nil, fmt.Errorf("scene: gray: %w", err)
	}
	return c, nil
}
