// Package present hands finished canvases to something that shows them:
// an RGBA upload buffer for window toolkits, or a truecolor terminal.
package present

import (
	"bufio"
	"image/color"
	"io"

	"github.com/charmbracelet/x/ansi"

	"softraster/internal/canvas"
	"softraster/internal/texture"
)

// RGBA converts c to packed R,G,B,A bytes (alpha 0xFF), reusing dst when it
// is large enough.
func RGBA(c *canvas.Canvas, dst []byte) []byte {
	n := len(c.Pixels()) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range c.Pixels() {
		j := i * 4
		dst[j] = p.R
		dst[j+1] = p.G
		dst[j+2] = p.B
		dst[j+3] = 0xFF
	}
	return dst
}

// upperHalf paints the top half of a cell in the foreground color.
const upperHalf = "▀"

// Terminal writes c as truecolor half-block cells, two pixel rows per text
// row. When cols is positive and narrower than the canvas, the image is
// scaled down to cols columns first, keeping its aspect ratio.
func Terminal(w io.Writer, c *canvas.Canvas, cols int) error {
	if cols > 0 && c.Width() > cols {
		rows := c.Height() * cols / c.Width()
		if rows < 1 {
			rows = 1
		}
		c = texture.Fit(c, cols, rows)
	}

	bw := bufio.NewWriter(w)
	width, height := c.Width(), c.Height()
	px := c.Pixels()
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			top := px[y*width+x]
			bottom := canvas.Black
			if y+1 < height {
				bottom = px[(y+1)*width+x]
			}
			style := ansi.Style{}.ForegroundColor(rgb(top)).BackgroundColor(rgb(bottom))
			bw.WriteString(style.String())
			bw.WriteString(upperHalf)
		}
		bw.WriteString(ansi.ResetStyle)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func rgb(c canvas.Color) color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
