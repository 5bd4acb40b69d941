package mathutil

// Translate2D returns a homogeneous 2D translation (acts on (x, y, 1)).
func Translate2D(tx, ty float64) Mat3 {
	return Mat3{
		1, 0, tx,
		0, 1, ty,
		0, 0, 1,
	}
}

// Scale2D returns a homogeneous 2D scale.
func Scale2D(sx, sy float64) Mat3 {
	return Mat3Diag(sx, sy, 1)
}

// Apply2D transforms the point (x, y) by the homogeneous matrix m.
func (m Mat3) Apply2D(x, y float64) (float64, float64) {
	v := m.MulVec3(Vec3{x, y, 1})
	return v[0], v[1]
}

// Viewport maps projected viewport coordinates onto a canvas.
type Viewport struct {
	Distance     float64 // projection plane distance from the eye
	Width        float64 // viewport size in world units
	Height       float64
	CanvasWidth  int
	CanvasHeight int
}

// Project performs the perspective divide of p onto the viewport plane and
// returns canvas coordinates. Points at or behind the eye (z <= 0) are
// returned as ok == false.
func (vp Viewport) Project(p Vec3) (x, y float64, ok bool) {
	if p[2] <= 0 {
		return 0, 0, false
	}
	px := p[0] * vp.Distance / p[2]
	py := p[1] * vp.Distance / p[2]
	x, y = vp.ToCanvas(px, py)
	return x, y, true
}

// ToCanvas maps a viewport-plane point to canvas pixels with the origin in
// the canvas centre.
func (vp Viewport) ToCanvas(px, py float64) (float64, float64) {
	halfW := float64(vp.CanvasWidth) / 2
	halfH := float64(vp.CanvasHeight) / 2
	return px*(halfW-1)/vp.Width + halfW, py*(halfH-1)/vp.Height + halfH
}
