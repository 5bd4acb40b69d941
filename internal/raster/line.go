package raster

import "softraster/internal/canvas"

// LinePositions returns every pixel of the 1-pixel-wide line from start to
// end, both endpoints included. The walk always advances along the major
// axis from the lower coordinate to the higher one, so swapping the
// arguments yields the same set of pixels.
func LinePositions(start, end canvas.Position) []canvas.Position {
	x0, y0 := int(start.X), int(start.Y)
	x1, y1 := int(end.X), int(end.Y)

	if abs(y1-y0) < abs(x1-x0) {
		if x0 > x1 {
			return lineLow(x1, y1, x0, y0)
		}
		return lineLow(x0, y0, x1, y1)
	}
	if y0 > y1 {
		return lineHigh(x1, y1, x0, y0)
	}
	return lineHigh(x0, y0, x1, y1)
}

// lineLow walks x from x0 to x1 (x0 <= x1), stepping y by ±1.
func lineLow(x0, y0, x1, y1 int) []canvas.Position {
	dx := x1 - x0
	dy := y1 - y0
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}
	d := 2*dy - dx
	y := y0

	out := make([]canvas.Position, 0, dx+1)
	for x := x0; x <= x1; x++ {
		out = append(out, canvas.Position{X: int32(x), Y: int32(y)})
		if d > 0 {
			y += yi
			d -= 2 * dx
		}
		d += 2 * dy
	}
	return out
}

// lineHigh walks y from y0 to y1 (y0 <= y1), stepping x by ±1.
func lineHigh(x0, y0, x1, y1 int) []canvas.Position {
	dx := x1 - x0
	dy := y1 - y0
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}
	d := 2*dx - dy
	x := x0

	out := make([]canvas.Position, 0, dy+1)
	for y := y0; y <= y1; y++ {
		out = append(out, canvas.Position{X: int32(x), Y: int32(y)})
		if d > 0 {
			x += xi
			d -= 2 * dy
		}
		d += 2 * dx
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
