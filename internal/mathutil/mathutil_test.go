package mathutil

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestMat3MulIdentity(t *testing.T) {
	m := RotZ(0.7)
	if got := Mat3Mul(Mat3Identity(), m); got != m {
		t.Errorf("I×M = %v, want %v", got, m)
	}
	if got := Mat3Mul(m, Mat3Identity()); got != m {
		t.Errorf("M×I = %v, want %v", got, m)
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3
		in   Vec3
		want Vec3
	}{
		{"z quarter turn", RotZ(math.Pi / 2), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"x quarter turn", RotX(math.Pi / 2), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y quarter turn", RotY(math.Pi / 2), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"diag", Mat3Diag(2, 3, 4), Vec3{1, 1, 1}, Vec3{2, 3, 4}},
	}
	for _, tt := range tests {
		got := tt.m.MulVec3(tt.in)
		for i := range got {
			if !near(got[i], tt.want[i]) {
				t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
}

func TestApply2D(t *testing.T) {
	m := Mat3Mul(Translate2D(10, 20), Scale2D(2, 3))
	x, y := m.Apply2D(1, 1)
	if !near(x, 12) || !near(y, 23) {
		t.Errorf("Apply2D = (%v,%v), want (12,23)", x, y)
	}
}

func TestMat4(t *testing.T) {
	centre := Vec3{0, 0, 5}
	// Rotate about centre: translate back, rotate, translate forward.
	m := Mat4Mul(FromMat3Translation(RotY(math.Pi), centre), FromMat3Translation(Mat3Identity(), centre.Scale(-1)))
	got := m.MulPoint(Vec3{1, 0, 4})
	want := Vec3{-1, 0, 6}
	if got.Sub(want).Len() > eps {
		t.Errorf("MulPoint = %v, want %v", got, want)
	}
	if got := m.MulPoint(centre); got.Sub(centre).Len() > eps {
		t.Errorf("centre moved to %v", got)
	}
}

func TestVec3(t *testing.T) {
	a := Vec3{1, 2, 2}
	if a.Len() != 3 {
		t.Errorf("Len = %v", a.Len())
	}
	if got := a.Add(Vec3{1, 1, 1}); got != (Vec3{2, 3, 3}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 4}) {
		t.Errorf("Scale = %v", got)
	}
	if !near(Deg2Rad(180), math.Pi) {
		t.Errorf("Deg2Rad(180) = %v", Deg2Rad(180))
	}
}

func TestViewportProject(t *testing.T) {
	vp := Viewport{Distance: 1, Width: 1, Height: 1, CanvasWidth: 200, CanvasHeight: 100}

	x, y, ok := vp.Project(Vec3{0, 0, 3})
	if !ok || !near(x, 100) || !near(y, 50) {
		t.Errorf("origin projects to (%v,%v,%v), want (100,50,true)", x, y, ok)
	}

	// Twice as far, half as big.
	x1, _, _ := vp.Project(Vec3{1, 0, 1})
	x2, _, _ := vp.Project(Vec3{1, 0, 2})
	if !near(x1-100, 2*(x2-100)) {
		t.Errorf("perspective divide: %v vs %v", x1, x2)
	}
	if !near(x1, 199) {
		t.Errorf("viewport edge maps to %v, want 199", x1)
	}

	if _, _, ok := vp.Project(Vec3{0, 0, 0}); ok {
		t.Error("point at the eye projected")
	}
}
