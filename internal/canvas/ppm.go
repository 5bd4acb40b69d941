package canvas

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	ppmMagic  = "P6"
	ppmMaxVal = 255
	// maxDimension guards against allocating absurd buffers for corrupt headers.
	maxDimension = 1 << 15
)

// Encode writes the canvas as a binary PPM: "P6\n{w} {h} 255\n" followed by
// raw RGB triplets, top row first.
func (c *Canvas) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d %d\n", ppmMagic, c.width, c.height, ppmMaxVal); err != nil {
		return err
	}
	if _, err := bw.Write(c.Bytes()); err != nil {
		return err
	}
	return bw.Flush()
}

// Decode parses a binary PPM into a new canvas.
func Decode(r io.Reader) (*Canvas, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("%w: magic: %v", ErrFormat, err)
	}
	if magic != ppmMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, magic)
	}

	var dims [3]int
	for i, name := range []string{"width", "height", "maxval"} {
		tok, err := readToken(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFormat, name, err)
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad %s %q", ErrFormat, name, tok)
		}
		dims[i] = n
	}
	width, height, maxVal := dims[0], dims[1], dims[2]
	if maxVal != ppmMaxVal {
		return nil, fmt.Errorf("%w: unsupported maxval %d", ErrFormat, maxVal)
	}
	if width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("%w: size %dx%d too large", ErrFormat, width, height)
	}

	// Exactly one whitespace byte separates the header from pixel data.
	sep, err := br.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header terminator: %v", ErrFormat, err)
	}
	if !isSpace(sep) {
		return nil, fmt.Errorf("%w: expected whitespace after maxval, got %q", ErrFormat, sep)
	}

	// Pixels grow one row at a time so a header that overstates the data
	// fails on the short read instead of after a full-size allocation.
	row := make([]byte, width*3)
	var pixels []Color
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("%w: pixel data truncated at row %d: %v", ErrFormat, y, err)
		}
		for x := 0; x < width; x++ {
			pixels = append(pixels, Color{R: row[x*3], G: row[x*3+1], B: row[x*3+2]})
		}
	}

	if len(pixels) == 0 {
		return New(width, height), nil
	}
	return &Canvas{width: width, height: height, pixels: pixels}, nil
}

// Save writes the canvas to path as a PPM file.
func (c *Canvas) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: create %s: %w", path, err)
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("canvas: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("canvas: close %s: %w", path, err)
	}
	return nil
}

// Load replaces the canvas contents with the PPM image at path, resizing it
// to the image dimensions. On error the canvas is left unchanged.
func (c *Canvas) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("canvas: open %s: %w", path, err)
	}
	defer f.Close()

	loaded, err := Decode(f)
	if err != nil {
		return fmt.Errorf("canvas: load %s: %w", path, err)
	}
	*c = *loaded
	return nil
}

// LoadFile is a convenience wrapper that returns a freshly loaded canvas.
func LoadFile(path string) (*Canvas, error) {
	c := New(0, 0)
	if err := c.Load(path); err != nil {
		return nil, err
	}
	return c, nil
}

// readToken skips whitespace and '#' comments, then reads one token. The
// byte that ends the token is unread so the caller can inspect it.
func readToken(br *bufio.Reader) (string, error) {
	var b byte
	var err error
	for {
		b, err = br.ReadByte()
		if err != nil {
			return "", unexpected(err)
		}
		if b == '#' {
			if _, err := br.ReadString('\n'); err != nil {
				return "", unexpected(err)
			}
			continue
		}
		if !isSpace(b) {
			break
		}
	}

	tok := []byte{b}
	for {
		b, err = br.ReadByte()
		if errors.Is(err, io.EOF) {
			return string(tok), nil
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) || b == '#' {
			if err := br.UnreadByte(); err != nil {
				return "", err
			}
			return string(tok), nil
		}
		tok = append(tok, b)
	}
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
