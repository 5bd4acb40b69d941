package config

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "render.json", `{
  "width": 640,
  "height": 480,
  "format": "png",
  "scenes": ["lines", "cube"],
  "angle": 30,
  "tilt": -15,
  "mouse_x": 12.5
}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 640 || cfg.Height != 480 || cfg.Format != "png" || cfg.Angle != 30 || cfg.Tilt != -15 || cfg.MouseX != 12.5 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Scenes, []string{"lines", "cube"}) {
		t.Errorf("scenes = %v", cfg.Scenes)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "render.yaml", `
width: 200
height: 100
output_dir: frames
texture_dir: assets
texture: brick
scenes:
  - textured
workers: 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Width: 200, Height: 100,
		OutputDir:  "frames",
		TextureDir: "assets", Texture: "brick",
		Scenes:  []string{"textured"},
		Workers: 3,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file loaded")
	}
	if _, err := Load(writeFile(t, "bad.json", "{")); err == nil {
		t.Error("bad JSON loaded")
	}
	if _, err := Load(writeFile(t, "bad.yml", "width: [")); err == nil {
		t.Error("bad YAML loaded")
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.OutputDir != "out" || cfg.Format != "ppm" || cfg.Scale != 1 {
		t.Errorf("output = %q %q %d", cfg.OutputDir, cfg.Format, cfg.Scale)
	}
	if cfg.Workers != runtime.NumCPU() || cfg.Radius != 40 || cfg.WindowScale != 2 || cfg.TPS != 60 {
		t.Errorf("runtime defaults = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{Width: 100, Format: "png", Scenes: []string{"cube"}}
	cfg.Resolve(Flags{Width: 50, Format: ".WEBP", Scenes: []string{"lines"}, Workers: 2})
	if cfg.Width != 50 || cfg.Format != "webp" || cfg.Workers != 2 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Scenes, []string{"lines"}) {
		t.Errorf("scenes = %v", cfg.Scenes)
	}

	// Empty flags keep file values.
	cfg = Config{Width: 100, Format: "png"}
	cfg.Resolve(Flags{})
	if cfg.Width != 100 || cfg.Format != "png" {
		t.Errorf("file values lost: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Format: "gif"}
	cfg.Resolve(Flags{})
	if err := cfg.Validate(); err == nil {
		t.Error("gif accepted")
	}

	cfg = Config{Width: 1 << 16}
	cfg.Resolve(Flags{})
	if err := cfg.Validate(); err == nil {
		t.Error("oversized canvas accepted")
	}
}
