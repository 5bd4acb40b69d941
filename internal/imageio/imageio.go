// Package imageio writes canvases to disk in the formats the tools emit.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"softraster/internal/canvas"
)

// Formats lists the supported output formats, which double as file
// extensions.
var Formats = []string{"ppm", "png", "webp"}

// Options controls Save.
type Options struct {
	// Scale enlarges the image by an integer factor with nearest-neighbour
	// sampling so individual pixels stay crisp. Values below 2 are ignored.
	// PPM output is never scaled so it always round-trips through Load.
	Scale int
}

// Save writes c to path, choosing the encoder from the file extension and
// creating parent directories as needed.
func Save(c *canvas.Canvas, path string, opts Options) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !Supported(format) {
		return fmt.Errorf("imageio: unsupported format %q for %s", format, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: mkdir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	if err := Encode(f, c, format, opts); err != nil {
		f.Close()
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close %s: %w", path, err)
	}
	return nil
}

// Encode writes c to w in the named format.
func Encode(w io.Writer, c *canvas.Canvas, format string, opts Options) error {
	switch format {
	case "ppm":
		return c.Encode(w)
	case "png":
		return png.Encode(w, Upscale(c, opts.Scale))
	case "webp":
		return nativewebp.Encode(w, Upscale(c, opts.Scale), nil)
	}
	return fmt.Errorf("imageio: unsupported format %q", format)
}

// Supported reports whether format is one of Formats.
func Supported(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Upscale returns c enlarged by factor with nearest-neighbour sampling.
// For factor < 2 the canvas itself is returned.
func Upscale(c *canvas.Canvas, factor int) image.Image {
	if factor < 2 {
		return c
	}
	dst := image.NewNRGBA(image.Rect(0, 0, c.Width()*factor, c.Height()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c, c.Bounds(), draw.Src, nil)
	return dst
}
