package raster

import (
	"math/rand"
	"reflect"
	"testing"

	"softraster/internal/canvas"
)

func pos(x, y int32) canvas.Position { return canvas.Position{X: x, Y: y} }

func TestLinePositionsKnown(t *testing.T) {
	tests := []struct {
		name       string
		start, end canvas.Position
		want       []canvas.Position
	}{
		{"point", pos(3, 4), pos(3, 4), []canvas.Position{pos(3, 4)}},
		{"horizontal", pos(0, 1), pos(3, 1), []canvas.Position{pos(0, 1), pos(1, 1), pos(2, 1), pos(3, 1)}},
		{"vertical", pos(2, 3), pos(2, 0), []canvas.Position{pos(2, 0), pos(2, 1), pos(2, 2), pos(2, 3)}},
		{"diagonal", pos(0, 0), pos(2, 2), []canvas.Position{pos(0, 0), pos(1, 1), pos(2, 2)}},
		{"shallow", pos(0, 0), pos(4, 2), []canvas.Position{pos(0, 0), pos(1, 0), pos(2, 1), pos(3, 1), pos(4, 2)}},
		{"shallow descending", pos(0, 2), pos(4, 0), []canvas.Position{pos(0, 2), pos(1, 2), pos(2, 1), pos(3, 1), pos(4, 0)}},
		{"steep", pos(0, 0), pos(2, 4), []canvas.Position{pos(0, 0), pos(0, 1), pos(1, 2), pos(1, 3), pos(2, 4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinePositions(tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LinePositions(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestLinePositionsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := pos(int32(rng.Intn(200)-100), int32(rng.Intn(200)-100))
		b := pos(int32(rng.Intn(200)-100), int32(rng.Intn(200)-100))
		if i%50 == 0 {
			b = a
		}

		fwd := LinePositions(a, b)
		rev := LinePositions(b, a)

		if !sameSet(fwd, rev) {
			t.Fatalf("positions(%v,%v) and positions(%v,%v) differ", a, b, b, a)
		}
		if !contains(fwd, a) || !contains(fwd, b) {
			t.Fatalf("positions(%v,%v) misses an endpoint", a, b)
		}

		dx, dy := abs(int(b.X-a.X)), abs(int(b.Y-a.Y))
		if want := max(dx, dy) + 1; len(fwd) != want {
			t.Fatalf("positions(%v,%v) has %d pixels, want %d", a, b, len(fwd), want)
		}
		for j := 1; j < len(fwd); j++ {
			sx := abs(int(fwd[j].X - fwd[j-1].X))
			sy := abs(int(fwd[j].Y - fwd[j-1].Y))
			if sx > 1 || sy > 1 || sx+sy == 0 {
				t.Fatalf("positions(%v,%v) step %v -> %v is not 8-connected", a, b, fwd[j-1], fwd[j])
			}
		}
	}
}

func TestDrawLine(t *testing.T) {
	c := canvas.New(5, 5)
	r := New(c)
	if err := r.DrawLine(pos(0, 0), pos(4, 4), canvas.White); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			p, _ := c.Pixel(x, y)
			want := canvas.Black
			if x == y {
				want = canvas.White
			}
			if p != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, p, want)
			}
		}
	}
}

func TestDrawLineOutOfRange(t *testing.T) {
	c := canvas.New(4, 4)
	r := New(c)
	if err := r.DrawLine(pos(0, 0), pos(5, 0), canvas.White); err == nil {
		t.Fatal("expected an out-of-range error")
	}

	r.SetDiscardOutside(true)
	if err := r.DrawLine(pos(-2, 1), pos(5, 1), canvas.Red); err != nil {
		t.Fatalf("discarding rasterizer: %v", err)
	}
	for x := 0; x < 4; x++ {
		if p, _ := c.Pixel(x, 1); p != canvas.Red {
			t.Errorf("pixel (%d,1) = %v, want red", x, p)
		}
	}
}

func sameSet(a, b []canvas.Position) bool {
	set := make(map[canvas.Position]int)
	for _, p := range a {
		set[p]++
	}
	for _, p := range b {
		set[p]--
	}
	for _, n := range set {
		if n != 0 {
			return false
		}
	}
	return true
}

func contains(ps []canvas.Position, p canvas.Position) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
