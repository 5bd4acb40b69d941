// Package canvas holds the in-memory RGB pixel buffer that the rasterizers
// draw into, along with its binary PPM (P6) persistence format.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrOutOfRange is returned for pixel coordinates outside the canvas.
	ErrOutOfRange = errors.New("canvas: pixel out of range")
	// ErrFormat is returned for a malformed or truncated PPM image.
	ErrFormat = errors.New("canvas: malformed ppm")
)

// Canvas is a width×height grid of colors stored row-major.
type Canvas struct {
	width  int
	height int
	pixels []Color
}

// New allocates a black canvas. A 0×0 canvas is valid and is typically
// filled later by Load.
func New(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("canvas: negative size %dx%d", width, height))
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Pixels returns the live row-major pixel slice. Presenters read it directly.
func (c *Canvas) Pixels() []Color { return c.pixels }

// Bytes returns a copy of the pixels as packed R,G,B bytes.
func (c *Canvas) Bytes() []byte {
	out := make([]byte, len(c.pixels)*3)
	for i, p := range c.pixels {
		out[i*3] = p.R
		out[i*3+1] = p.G
		out[i*3+2] = p.B
	}
	return out
}

func (c *Canvas) index(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, c.width, c.height)
	}
	return y*c.width + x, nil
}

// Pixel returns the color at (x, y).
func (c *Canvas) Pixel(x, y int) (Color, error) {
	i, err := c.index(x, y)
	if err != nil {
		return Color{}, err
	}
	return c.pixels[i], nil
}

// SetPixel writes col at (x, y).
func (c *Canvas) SetPixel(x, y int, col Color) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.pixels[i] = col
	return nil
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// Equal reports whether both canvases hold the same pixel sequence.
// Dimensions are not compared separately.
func (c *Canvas) Equal(o *Canvas) bool {
	if len(c.pixels) != len(o.pixels) {
		return false
	}
	for i := range c.pixels {
		if c.pixels[i] != o.pixels[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (c *Canvas) Clone() *Canvas {
	px := make([]Color, len(c.pixels))
	copy(px, c.pixels)
	return &Canvas{width: c.width, height: c.height, pixels: px}
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// At implements image.Image. Out-of-range points are transparent black.
func (c *Canvas) At(x, y int) color.Color {
	i, err := c.index(x, y)
	if err != nil {
		return color.RGBA{}
	}
	p := c.pixels[i]
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF}
}

// RGBA64At implements image.RGBA64Image, which x/image/draw requires of
// sources when scaling into NRGBA or RGBA destinations.
func (c *Canvas) RGBA64At(x, y int) color.RGBA64 {
	i, err := c.index(x, y)
	if err != nil {
		return color.RGBA64{}
	}
	p := c.pixels[i]
	return color.RGBA64{
		R: uint16(p.R) * 0x101,
		G: uint16(p.G) * 0x101,
		B: uint16(p.B) * 0x101,
		A: 0xFFFF,
	}
}

// FromImage converts any image to a canvas. Alpha is dropped after
// converting to non-premultiplied color.
func FromImage(src image.Image) *Canvas {
	b := src.Bounds()
	c := New(b.Dx(), b.Dy())
	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < c.height; y++ {
			off := (y+b.Min.Y-n.Rect.Min.Y)*n.Stride + (b.Min.X-n.Rect.Min.X)*4
			row := c.pixels[y*c.width : (y+1)*c.width]
			for x := range row {
				i := off + x*4
				row[x] = Color{n.Pix[i], n.Pix[i+1], n.Pix[i+2]}
			}
		}
		return c
	}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			nc := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			c.pixels[y*c.width+x] = Color{nc.R, nc.G, nc.B}
		}
	}
	return c
}
