// Package window presents canvases in a desktop window and feeds the mouse
// position back to the renderer each frame.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"softraster/internal/canvas"
	"softraster/internal/present"
)

// FrameFunc renders one frame for the given cursor position in canvas
// pixels.
type FrameFunc func(mouseX, mouseY float64) (*canvas.Canvas, error)

// Options configures the window.
type Options struct {
	Title  string
	Width  int // logical canvas size
	Height int
	Scale  int // window size multiplier
	TPS    int
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// frame returns an error.
func Run(opts Options, frame FrameFunc) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	g := &game{opts: opts, frame: frame}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width*opts.Scale, opts.Height*opts.Scale)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type game struct {
	opts    Options
	frame   FrameFunc
	current *canvas.Canvas
	img     *ebiten.Image
	scratch []byte
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	mx, my := ebiten.CursorPosition()
	c, err := g.frame(float64(mx), float64(my))
	if err != nil {
		return err
	}
	g.current = c
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	c := g.current
	if c == nil || c.Width() == 0 || c.Height() == 0 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != c.Width() || g.img.Bounds().Dy() != c.Height() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(c.Width(), c.Height())
	}

	g.scratch = present.RGBA(c, g.scratch)
	g.img.WritePixels(g.scratch)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}
