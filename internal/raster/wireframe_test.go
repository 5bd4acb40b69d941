package raster

import (
	"errors"
	"testing"

	"softraster/internal/canvas"
)

func TestTrianglePositions(t *testing.T) {
	v0, v1, v2 := pos(0, 0), pos(4, 0), pos(0, 4)
	got := TrianglePositions(v0, v1, v2)

	var want []canvas.Position
	want = append(want, LinePositions(v0, v1)...)
	want = append(want, LinePositions(v1, v2)...)
	want = append(want, LinePositions(v2, v0)...)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("position %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDrawTrianglesIndexedMatchesDirect(t *testing.T) {
	shared := []canvas.Position{pos(1, 1), pos(18, 2), pos(3, 17), pos(19, 19)}
	indexes := []uint16{0, 1, 2, 1, 3, 2}

	var direct []canvas.Position
	for _, i := range indexes {
		direct = append(direct, shared[i])
	}

	a := canvas.New(20, 20)
	if err := New(a).DrawTriangles(direct, len(direct), canvas.Green); err != nil {
		t.Fatal(err)
	}
	b := canvas.New(20, 20)
	if err := New(b).DrawIndexedTriangles(shared, indexes, canvas.Green); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("indexed and direct wireframes differ")
	}

	// Only edges are drawn.
	if p, _ := a.Pixel(6, 6); p != canvas.Black {
		t.Errorf("interior pixel = %v, want black", p)
	}
}

func TestDrawTrianglesCount(t *testing.T) {
	vertices := []canvas.Position{pos(0, 0), pos(3, 0), pos(0, 3), pos(3, 3)}

	c := canvas.New(4, 4)
	r := New(c)
	if err := r.DrawTriangles(vertices, 5, canvas.Green); !errors.Is(err, ErrIndexRange) {
		t.Errorf("count past buffer: err = %v, want ErrIndexRange", err)
	}
	if err := r.DrawTriangles(vertices, -1, canvas.Green); !errors.Is(err, ErrIndexRange) {
		t.Errorf("negative count: err = %v, want ErrIndexRange", err)
	}

	// The fourth vertex is a partial triple and is skipped.
	if err := r.DrawTriangles(vertices, 4, canvas.Green); err != nil {
		t.Fatal(err)
	}
	if p, _ := c.Pixel(3, 3); p != canvas.Black {
		t.Errorf("pixel (3,3) = %v, want black", p)
	}
	if p, _ := c.Pixel(3, 0); p != canvas.Green {
		t.Errorf("pixel (3,0) = %v, want green", p)
	}
}

func TestDrawIndexedTrianglesBadIndex(t *testing.T) {
	vertices := []canvas.Position{pos(0, 0), pos(3, 0), pos(0, 3)}
	c := canvas.New(4, 4)
	err := New(c).DrawIndexedTriangles(vertices, []uint16{0, 1, 2, 0, 1, 3}, canvas.Green)
	if !errors.Is(err, ErrIndexRange) {
		t.Fatalf("err = %v, want ErrIndexRange", err)
	}
	// Validation happens before any pixel is written.
	if !c.Equal(canvas.New(4, 4)) {
		t.Error("canvas modified by a rejected draw")
	}
}
