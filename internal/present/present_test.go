package present

import (
	"bytes"
	"strings"
	"testing"

	"softraster/internal/canvas"
)

func TestRGBA(t *testing.T) {
	c := canvas.New(2, 1)
	c.SetPixel(1, 0, canvas.Color{R: 1, G: 2, B: 3})

	got := RGBA(c, nil)
	want := []byte{0, 0, 0, 255, 1, 2, 3, 255}
	if !bytes.Equal(got, want) {
		t.Errorf("RGBA = %v, want %v", got, want)
	}

	buf := make([]byte, 0, 64)
	if again := RGBA(c, buf); &again[0] != &buf[:1][0] {
		t.Error("large enough buffer was not reused")
	}
}

func TestTerminal(t *testing.T) {
	c := canvas.New(4, 3)
	c.Clear(canvas.Red)

	var out bytes.Buffer
	if err := Terminal(&out, c, 0); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d rows, want 2", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, upperHalf); n != 4 {
			t.Errorf("row %d has %d cells, want 4", i, n)
		}
		if !strings.Contains(line, "\x1b[") {
			t.Errorf("row %d has no escape sequences", i)
		}
	}
}

func TestTerminalScalesDown(t *testing.T) {
	c := canvas.New(40, 20)
	var out bytes.Buffer
	if err := Terminal(&out, c, 10); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	// 40x20 fits into 10x5 pixels, i.e. 3 half-block rows.
	if len(lines) != 3 {
		t.Fatalf("got %d rows, want 3", len(lines))
	}
	if n := strings.Count(lines[0], upperHalf); n != 10 {
		t.Errorf("row has %d cells, want 10", n)
	}
}
