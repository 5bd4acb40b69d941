package texture

import (
	"image"

	"golang.org/x/image/draw"

	"softraster/internal/canvas"
)

// Fit returns tex scaled to width×height with Catmull-Rom filtering, or tex
// itself when it already has that size.
func Fit(tex *canvas.Canvas, width, height int) *canvas.Canvas {
	if tex.Width() == width && tex.Height() == height {
		return tex
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), tex, tex.Bounds(), draw.Src, nil)
	return canvas.FromImage(dst)
}
