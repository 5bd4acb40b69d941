package batch

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"softraster/internal/canvas"
	"softraster/internal/scene"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	var progress bytes.Buffer
	cfg := Config{
		OutputDir: dir,
		Format:    "ppm",
		Workers:   3,
		Params:    scene.Params{Width: 64, Height: 48, Seed: 1, MouseX: 32, MouseY: 24, Radius: 10},
		Progress:  &progress,
	}
	names := []string{"canvas", "lines", "bogus", "textured"}
	results := Run(cfg, names)

	if len(results) != len(names) {
		t.Fatalf("got %d results, want %d", len(results), len(names))
	}
	for i, r := range results {
		if r.Scene != names[i] {
			t.Errorf("result %d is %q, want %q", i, r.Scene, names[i])
		}
	}
	if results[2].Success || results[2].Error == "" {
		t.Errorf("bogus scene result = %+v", results[2])
	}

	for _, i := range []int{0, 1, 3} {
		r := results[i]
		if !r.Success {
			t.Fatalf("%s failed: %s", r.Scene, r.Error)
		}
		if r.Width != 64 || r.Height != 48 {
			t.Errorf("%s size %dx%d", r.Scene, r.Width, r.Height)
		}
		c, err := canvas.LoadFile(r.Path)
		if err != nil {
			t.Fatalf("%s: %v", r.Scene, err)
		}
		render, _ := scene.Lookup(r.Scene)
		want, _ := render(cfg.Params)
		if !c.Equal(want) {
			t.Errorf("%s: saved image differs from a direct render", r.Scene)
		}
	}
	if progress.Len() == 0 {
		t.Error("no progress output")
	}
}

func TestRunPNG(t *testing.T) {
	dir := t.TempDir()
	results := Run(Config{
		OutputDir: dir,
		Format:    "png",
		Scale:     2,
		Params:    scene.Params{Width: 16, Height: 16},
	}, []string{"triangle"})
	if !results[0].Success {
		t.Fatal(results[0].Error)
	}
	if filepath.Ext(results[0].Path) != ".png" {
		t.Errorf("path = %s", results[0].Path)
	}
	if _, err := os.Stat(results[0].Path); err != nil {
		t.Error(err)
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	results := []Result{
		{Scene: "lines", Path: filepath.Join(dir, "img", "lines.ppm"), Width: 8, Height: 4, Success: true},
		{Scene: "bogus", Error: "unknown scene"},
	}
	path := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(path, results); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	want := []ManifestEntry{
		{Scene: "lines", Image: "img/lines.ppm", Width: 8, Height: 4},
		{Scene: "bogus", Error: "unknown scene"},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries", len(entries))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}
