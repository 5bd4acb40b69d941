package texture

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"

	"softraster/internal/canvas"
)

// Extensions lists the file types Load understands, lowercase with dot.
var Extensions = []string{".ppm", ".png", ".jpg", ".jpeg", ".gif", ".tga", ".bmp"}

// decoders picks the decoder by extension. The tga package registers itself
// with image.Decode under an empty magic string, which would claim every
// file, so format sniffing is not used.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".tga":  tga.Decode,
	".bmp":  bmp.Decode,
}

// Load reads a texture from disk. PPM files go through the canvas codec;
// everything else through the decoder for its extension.
func Load(path string) (*canvas.Canvas, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".ppm" {
		c, err := canvas.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("texture: %w", err)
		}
		return c, nil
	}

	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("texture: unsupported file type %q: %s", ext, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return canvas.FromImage(img), nil
}

func supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
