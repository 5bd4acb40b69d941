package scene

import (
	"fmt"
	"math"

	"softraster/internal/raster"
)

// Quad returns the four corners of a width×height canvas, tagged with
// texture coordinates (0,0) top-left through (1,1) bottom-right, and the
// index buffer of the two triangles covering it.
func Quad(width, height int) ([]raster.Vertex, []uint16) {
	right := float64(width - 1)
	bottom := float64(height - 1)
	vertices := []raster.Vertex{
		{X: 0, Y: 0, U: 0, V: 0},
		{X: right, Y: 0, U: 1, V: 0},
		{X: 0, Y: bottom, U: 0, V: 1},
		{X: right, Y: bottom, U: 1, V: 1},
	}
	return vertices, []uint16{0, 1, 2, 1, 3, 2}
}

// MaxGridVertices is the largest vertex count a 16-bit index buffer can
// address.
const MaxGridVertices = math.MaxUint16 + 1

// Grid lays cols×rows vertices over a width×height area with the given
// color. With bordersOnly the index buffer holds degenerate triangles that
// trace each cell's edges; otherwise every cell is two filled triangles.
// Grids with more than MaxGridVertices vertices are rejected.
func Grid(cols, rows int, width, height float64, r, g, b float64, bordersOnly bool) ([]raster.Vertex, []uint16, error) {
	if cols < 0 || rows < 0 {
		return nil, nil, fmt.Errorf("scene: grid %dx%d: negative size", cols, rows)
	}
	if cols > 0 && rows > MaxGridVertices/cols {
		return nil, nil, fmt.Errorf("scene: grid %dx%d: %w: more than %d vertices",
			cols, rows, raster.ErrIndexRange, MaxGridVertices)
	}

	cellW := width / float64(cols)
	cellH := height / float64(rows)

	vertices := make([]raster.Vertex, 0, cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			vertices = append(vertices, raster.Vertex{
				X: float64(i) * cellW,
				Y: float64(j) * cellH,
				R: r, G: g, B: b,
			})
		}
	}

	var indexes []uint16
	for j := 0; j < rows-1; j++ {
		for i := 0; i < cols-1; i++ {
			v0 := uint16(j*cols + i)
			v1 := v0 + 1
			v2 := v0 + uint16(cols)
			v3 := v2 + 1

			//  v0-----v1
			//  |     /|
			//  |   /  |
			//  | /    |
			//  v2-----v3
			if bordersOnly {
				indexes = append(indexes,
					v0, v1, v0,
					v2, v0, v2,
					v2, v3, v2,
					v1, v3, v1)
			} else {
				indexes = append(indexes, v0, v1, v2, v2, v1, v3)
			}
		}
	}
	return vertices, indexes, nil
}
