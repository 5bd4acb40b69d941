package raster

import (
	"fmt"

	"softraster/internal/canvas"
)

// TrianglePositions returns the outline of a triangle: the pixels of edges
// v0→v1, v1→v2 and v2→v0 concatenated in that order. Shared corners appear
// once per edge.
func TrianglePositions(v0, v1, v2 canvas.Position) []canvas.Position {
	var out []canvas.Position
	for _, e := range [3][2]canvas.Position{{v0, v1}, {v1, v2}, {v2, v0}} {
		out = append(out, LinePositions(e[0], e[1])...)
	}
	return out
}

// DrawTriangles outlines count/3 triangles taken as consecutive triples of
// vertices. A trailing partial triple is ignored.
func (r *Rasterizer) DrawTriangles(vertices []canvas.Position, count int, col canvas.Color) error {
	if count < 0 || count > len(vertices) {
		return fmt.Errorf("%w: count %d with %d vertices", ErrIndexRange, count, len(vertices))
	}

	var edges []canvas.Position
	for i := 0; i+2 < count; i += 3 {
		edges = append(edges, TrianglePositions(vertices[i], vertices[i+1], vertices[i+2])...)
	}
	return r.plot(edges, col)
}

// DrawIndexedTriangles outlines triangles whose corners are addressed by
// consecutive triples of indexes into a shared vertex array. A trailing
// partial triple is ignored. All indexes are checked before drawing.
func (r *Rasterizer) DrawIndexedTriangles(vertices []canvas.Position, indexes []uint16, col canvas.Color) error {
	if err := checkIndexes(indexes, len(vertices)); err != nil {
		return err
	}

	var edges []canvas.Position
	for i := 0; i+2 < len(indexes); i += 3 {
		v0 := vertices[indexes[i]]
		v1 := vertices[indexes[i+1]]
		v2 := vertices[indexes[i+2]]
		edges = append(edges, TrianglePositions(v0, v1, v2)...)
	}
	return r.plot(edges, col)
}

func checkIndexes(indexes []uint16, n int) error {
	for i, idx := range indexes {
		if int(idx) >= n {
			return fmt.Errorf("%w: indexes[%d] = %d, vertex buffer has %d", ErrIndexRange, i, idx, n)
		}
	}
	return nil
}
