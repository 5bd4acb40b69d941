// Package shader provides ready-made programs for the raster pipeline.
//
// Programs that react to input read the mouse position from Uniforms.F0 and
// Uniforms.F1 and an effect radius from Uniforms.F2.
package shader

import (
	"math"

	"softraster/internal/canvas"
	"softraster/internal/mathutil"
	"softraster/internal/raster"
)

// VertexColor passes vertices through and paints the interpolated
// (R, G, B) attributes, each in [0, 1].
type VertexColor struct{}

func (VertexColor) SetUniforms(raster.Uniforms) {}
func (VertexColor) VertexShader(v raster.Vertex) raster.Vertex { return v }
func (VertexColor) FragmentShader(v raster.Vertex) canvas.Color {
	return attrColor(v)
}

// Solid paints every fragment with one color.
type Solid struct {
	Color canvas.Color
}

func (*Solid) SetUniforms(raster.Uniforms) {}
func (*Solid) VertexShader(v raster.Vertex) raster.Vertex { return v }
func (s *Solid) FragmentShader(raster.Vertex) canvas.Color { return s.Color }

// Filter selects how Textured samples its texture.
type Filter int

const (
	Nearest Filter = iota
	Bilinear
)

// Textured samples Uniforms.Texture at the interpolated (U, V).
type Textured struct {
	Filter Filter
	tex    *canvas.Canvas
}

func (t *Textured) SetUniforms(u raster.Uniforms) { t.tex = u.Texture }
func (t *Textured) VertexShader(v raster.Vertex) raster.Vertex { return v }

func (t *Textured) FragmentShader(v raster.Vertex) canvas.Color {
	if t.tex == nil {
		return canvas.Black
	}
	if t.Filter == Bilinear {
		return SampleBilinear(t.tex, v.U, v.V)
	}
	return SampleNearest(t.tex, v.U, v.V)
}

// Transformed applies a 2D homogeneous matrix to the output of Inner's
// vertex stage. Uniforms and fragments are delegated to Inner.
type Transformed struct {
	Matrix mathutil.Mat3
	Inner  raster.Program
}

func (t *Transformed) SetUniforms(u raster.Uniforms) { t.Inner.SetUniforms(u) }

func (t *Transformed) VertexShader(v raster.Vertex) raster.Vertex {
	out := t.Inner.VertexShader(v)
	out.X, out.Y = t.Matrix.Apply2D(out.X, out.Y)
	return out
}

func (t *Transformed) FragmentShader(v raster.Vertex) canvas.Color {
	return t.Inner.FragmentShader(v)
}

// RotateScaleMove builds the matrix that rotates by angle radians about the
// origin, scales uniformly, then translates by (tx, ty).
func RotateScaleMove(angle, scale, tx, ty float64) mathutil.Mat3 {
	m := mathutil.Mat3Mul(mathutil.Scale2D(scale, scale), mathutil.RotZ(angle))
	return mathutil.Mat3Mul(mathutil.Translate2D(tx, ty), m)
}

// Magnet pushes vertices inside the mouse radius halfway out toward the
// circle and tints fragments near the mouse from red (centre) to green.
type Magnet struct {
	mouseX, mouseY, radius float64
}

func (m *Magnet) SetUniforms(u raster.Uniforms) {
	m.mouseX, m.mouseY, m.radius = u.F0, u.F1, u.F2
}

func (m *Magnet) VertexShader(v raster.Vertex) raster.Vertex {
	dx := v.X - m.mouseX
	dy := v.Y - m.mouseY
	if dx*dx+dy*dy >= m.radius*m.radius {
		return v
	}
	l := math.Sqrt(dx*dx + dy*dy)
	if l == 0 {
		return v
	}
	edgeX := m.mouseX + dx/l*m.radius
	edgeY := m.mouseY + dy/l*m.radius
	v.X = (v.X + edgeX) / 2
	v.Y = (v.Y + edgeY) / 2
	return v
}

func (m *Magnet) FragmentShader(v raster.Vertex) canvas.Color {
	out := attrColor(v)
	dx := m.mouseX - v.X
	dy := m.mouseY - v.Y
	if dx*dx+dy*dy < m.radius*m.radius {
		greenToRed := math.Sqrt(dx*dx+dy*dy)/m.radius - 0.35
		greenToRed = math.Min(math.Max(greenToRed, 0), 1)
		out = canvas.Color{
			R: clamp255((1 - greenToRed) * 255),
			G: clamp255(greenToRed * 255),
		}
	}
	return out
}

// Grayscale paints vertex colors and desaturates them inside the mouse
// radius using luma weights 0.21, 0.72, 0.07.
type Grayscale struct {
	mouseX, mouseY, radius float64
}

func (g *Grayscale) SetUniforms(u raster.Uniforms) {
	g.mouseX, g.mouseY, g.radius = u.F0, u.F1, u.F2
}

func (g *Grayscale) VertexShader(v raster.Vertex) raster.Vertex { return v }

func (g *Grayscale) FragmentShader(v raster.Vertex) canvas.Color {
	out := attrColor(v)
	dx := g.mouseX - v.X
	dy := g.mouseY - v.Y
	if dx*dx+dy*dy < g.radius*g.radius {
		return Gray(out)
	}
	return out
}

// Gray converts c to its luma.
func Gray(c canvas.Color) canvas.Color {
	l := clamp255(0.21*float64(c.R) + 0.72*float64(c.G) + 0.07*float64(c.B))
	return canvas.Color{R: l, G: l, B: l}
}

func attrColor(v raster.Vertex) canvas.Color {
	return canvas.Color{
		R: clamp255(v.R * 255),
		G: clamp255(v.G * 255),
		B: clamp255(v.B * 255),
	}
}
