package raster

import (
	"math"

	"softraster/internal/canvas"
)

// Vertex is the pipeline's unit of geometry: a position plus five free
// attribute slots. Programs decide what the slots mean; the stock programs
// use them as color (R, G, B in [0,1]) and texture coordinates (U, V).
type Vertex struct {
	X, Y, Z float64
	R, G, B float64
	U, V    float64
}

// Lerp interpolates every field of a and b independently. t is clamped to
// [0, 1].
func Lerp(a, b Vertex, t float64) Vertex {
	t = clamp01(t)
	return Vertex{
		X: lerp(a.X, b.X, t),
		Y: lerp(a.Y, b.Y, t),
		Z: lerp(a.Z, b.Z, t),
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		U: lerp(a.U, b.U, t),
		V: lerp(a.V, b.V, t),
	}
}

// Position rounds the vertex to its pixel.
func (v Vertex) Position() canvas.Position {
	return canvas.Position{X: int32(math.Round(v.X)), Y: int32(math.Round(v.Y))}
}

func lerp(f0, f1, t float64) float64 {
	return f0 + (f1-f0)*t
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
