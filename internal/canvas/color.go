package canvas

import "math"

// Color is a 24-bit RGB pixel. The field order matches the PPM byte order
// and the struct has no padding (3 bytes).
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Red   = Color{255, 0, 0}
	Green = Color{0, 255, 0}
	Blue  = Color{0, 0, 255}
)

// Position is an integer pixel-space coordinate.
type Position struct {
	X, Y int32
}

// Sub returns p - q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Len returns the Euclidean length of p treated as a vector.
func (p Position) Len() float64 {
	x := float64(p.X)
	y := float64(p.Y)
	return math.Sqrt(x*x + y*y)
}
