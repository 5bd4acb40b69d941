package raster

import (
	"fmt"
	"math"
	"sort"

	"softraster/internal/canvas"
)

// SetUniforms forwards u to the bound program. It is a no-op without one.
func (r *Rasterizer) SetUniforms(u Uniforms) {
	if r.program != nil {
		r.program.SetUniforms(u)
	}
}

// DrawMesh runs the bound program over every triangle of the index buffer:
// vertex stage on the three corners, scanline fill, fragment stage per
// covered pixel. The index buffer is validated before anything is drawn.
// An out-of-range pixel aborts the call with the pixels drawn so far kept.
func (r *Rasterizer) DrawMesh(vertices []Vertex, indexes []uint16) error {
	if r.program == nil {
		return ErrNoProgram
	}
	if len(indexes)%3 != 0 {
		return fmt.Errorf("%w: %d indexes do not form whole triangles", ErrIndexRange, len(indexes))
	}
	if err := checkIndexes(indexes, len(vertices)); err != nil {
		return err
	}

	fragments := 0
	for i := 0; i < len(indexes); i += 3 {
		v0 := r.program.VertexShader(vertices[indexes[i]])
		v1 := r.program.VertexShader(vertices[indexes[i+1]])
		v2 := r.program.VertexShader(vertices[indexes[i+2]])

		for _, v := range RasterizeTriangle(v0, v1, v2) {
			col := r.program.FragmentShader(v)
			if err := r.SetPixel(v.Position(), col); err != nil {
				Logger().Warn("draw mesh aborted", "triangle", i/3, "err", err)
				return fmt.Errorf("raster: triangle %d: %w", i/3, err)
			}
			fragments++
		}
	}

	Logger().Debug("draw mesh",
		"vertices", len(vertices),
		"triangles", len(indexes)/3,
		"fragments", fragments)
	return nil
}

// RasterizeTriangle fills a triangle and returns one interpolated vertex per
// covered pixel (with occasional repeats along shared rows). Positions stay
// fractional; callers round when plotting.
//
// The triangle is sorted top to bottom and split at the middle vertex's row
// into two flat triangles that are filled scanline by scanline. Triangles
// whose corners coincide after rounding degrade to a line between the two
// distinct corners.
func RasterizeTriangle(v0, v1, v2 Vertex) []Vertex {
	sorted := [3]Vertex{v0, v1, v2}
	sort.SliceStable(sorted[:], func(i, j int) bool { return sorted[i].Y < sorted[j].Y })
	top, middle, bottom := sorted[0], sorted[1], sorted[2]

	start := top.Position()
	end := bottom.Position()
	middlePos := middle.Position()

	switch {
	case start == end:
		Logger().Debug("degenerate triangle", "case", "top==bottom")
		return rasterSegment(top, middle)
	case start == middlePos:
		Logger().Debug("degenerate triangle", "case", "top==middle")
		return rasterSegment(top, bottom)
	case end == middlePos:
		Logger().Debug("degenerate triangle", "case", "bottom==middle")
		return rasterSegment(top, middle)
	}

	// The long edge top→bottom crosses every row of the triangle, so it has
	// a pixel on the middle vertex's row.
	secondMiddle := rowCrossing(LinePositions(start, end), middlePos.Y)

	t := secondMiddle.Sub(start).Len() / end.Sub(start).Len()
	secondMiddleVertex := Lerp(top, bottom, t)

	out := rasterFlatTriangle(top, middle, secondMiddleVertex)
	return append(out, rasterFlatTriangle(bottom, middle, secondMiddleVertex)...)
}

// rowCrossing returns the first position on row y, or the closest one if the
// line never reaches it.
func rowCrossing(line []canvas.Position, y int32) canvas.Position {
	best := line[0]
	bestDist := int32(math.MaxInt32)
	for _, p := range line {
		if p.Y == y {
			return p
		}
		d := p.Y - y
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// rasterFlatTriangle fills a triangle whose left and right corners share a
// row, walking from that row toward the single apex.
func rasterFlatTriangle(single, left, right Vertex) []Vertex {
	var out []Vertex

	hlines := int(math.Round(math.Abs(single.Y - left.Y)))
	if hlines == 0 {
		return rasterHorizontalLine(left, right, out)
	}
	for i := 0; i <= hlines; i++ {
		t := float64(i) / float64(hlines)
		out = rasterHorizontalLine(Lerp(left, single, t), Lerp(right, single, t), out)
	}
	return out
}

// rasterHorizontalLine appends the pixels between left and right. One extra
// sample beyond the pixel count keeps the spacing under a pixel so rounding
// leaves no gaps.
func rasterHorizontalLine(left, right Vertex, out []Vertex) []Vertex {
	n := int(math.Round(math.Abs(left.X - right.X)))
	if n == 0 {
		return append(out, left)
	}
	steps := float64(n + 1)
	for p := 0; p <= n+1; p++ {
		out = append(out, Lerp(left, right, float64(p)/steps))
	}
	return out
}

// rasterSegment emits the exact line pixels between a and b, carrying
// attributes interpolated by distance along the line.
func rasterSegment(a, b Vertex) []Vertex {
	pa := a.Position()
	pb := b.Position()
	line := LinePositions(pa, pb)
	total := pb.Sub(pa).Len()

	out := make([]Vertex, len(line))
	for i, p := range line {
		t := 0.0
		if total > 0 {
			t = p.Sub(pa).Len() / total
		}
		v := Lerp(a, b, t)
		v.X = float64(p.X)
		v.Y = float64(p.Y)
		out[i] = v
	}
	return out
}
