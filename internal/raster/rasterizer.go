// Package raster converts lines and triangles into canvas pixels. It covers
// the plain line rasterizer, wireframe triangles (direct and indexed) and the
// programmable pipeline that fills triangles while interpolating per-vertex
// attributes.
//
// A Rasterizer is not safe for concurrent use. Draw calls are synchronous and
// write straight into the borrowed canvas.
package raster

import (
	"errors"
	"fmt"

	"softraster/internal/canvas"
)

var (
	// ErrIndexRange is returned when a vertex count or index buffer entry
	// addresses past the end of the vertex buffer.
	ErrIndexRange = errors.New("raster: index out of range")
	// ErrNoProgram is returned by DrawMesh when no Program is bound.
	ErrNoProgram = errors.New("raster: no program bound")
)

// Rasterizer draws into a canvas it does not own. Between draw calls it keeps
// only the bound Program and the discard setting.
type Rasterizer struct {
	target  *canvas.Canvas
	program Program
	discard bool
}

// New returns a rasterizer drawing into target.
func New(target *canvas.Canvas) *Rasterizer {
	return &Rasterizer{target: target}
}

// Canvas returns the draw target.
func (r *Rasterizer) Canvas() *canvas.Canvas { return r.target }

// SetProgram binds p for subsequent DrawMesh calls. The rasterizer keeps a
// reference only; p's lifetime stays with the caller.
func (r *Rasterizer) SetProgram(p Program) { r.program = p }

// Program returns the bound program, or nil.
func (r *Rasterizer) Program() Program { return r.program }

// SetDiscardOutside controls what happens to pixels that fall outside the
// canvas. By default they fail the draw call with canvas.ErrOutOfRange; with
// discard set they are silently dropped, which suits input-driven programs
// that may push geometry past the edges.
func (r *Rasterizer) SetDiscardOutside(discard bool) { r.discard = discard }

// Clear fills the target with col.
func (r *Rasterizer) Clear(col canvas.Color) { r.target.Clear(col) }

// SetPixel writes col at p, honouring SetDiscardOutside.
func (r *Rasterizer) SetPixel(p canvas.Position, col canvas.Color) error {
	err := r.target.SetPixel(int(p.X), int(p.Y), col)
	if err != nil && r.discard && errors.Is(err, canvas.ErrOutOfRange) {
		return nil
	}
	return err
}

// DrawLine paints every pixel of LinePositions(start, end).
func (r *Rasterizer) DrawLine(start, end canvas.Position, col canvas.Color) error {
	return r.plot(LinePositions(start, end), col)
}

func (r *Rasterizer) plot(positions []canvas.Position, col canvas.Color) error {
	for _, p := range positions {
		if err := r.SetPixel(p, col); err != nil {
			return fmt.Errorf("raster: plot: %w", err)
		}
	}
	return nil
}
