package shader

import (
	"math"

	"softraster/internal/canvas"
)

// SampleNearest returns the texel nearest to the normalized coordinate
// (u, v), where (0,0) is the top-left texel centre and (1,1) the
// bottom-right one. Coordinates outside [0,1] are clamped. An empty
// texture samples as black.
func SampleNearest(tex *canvas.Canvas, u, v float64) canvas.Color {
	w, h := tex.Width(), tex.Height()
	if w == 0 || h == 0 {
		return canvas.Black
	}
	x := clampInt(int(math.Round(u*float64(w-1))), 0, w-1)
	y := clampInt(int(math.Round(v*float64(h-1))), 0, h-1)
	return tex.Pixels()[y*w+x]
}

// SampleBilinear filters the four texels around (u, v) with wrapping UVs.
func SampleBilinear(tex *canvas.Canvas, u, v float64) canvas.Color {
	w, h := tex.Width(), tex.Height()
	if w == 0 || h == 0 {
		return canvas.Black
	}

	u = wrap01(u)
	v = wrap01(v)

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	pix := tex.Pixels()
	c00 := pix[y0*w+x0]
	c10 := pix[y0*w+x1]
	c01 := pix[y1*w+x0]
	c11 := pix[y1*w+x1]

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	mix := func(a, b, c, d uint8) uint8 {
		return clamp255(float64(a)*w00 + float64(b)*w10 + float64(c)*w01 + float64(d)*w11)
	}
	return canvas.Color{
		R: mix(c00.R, c10.R, c01.R, c11.R),
		G: mix(c00.G, c10.G, c01.G, c11.G),
		B: mix(c00.B, c10.B, c01.B, c11.B),
	}
}

func wrap01(f float64) float64 {
	f -= math.Floor(f)
	if f >= 1 {
		f = 0
	}
	return f
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
