package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"softraster/internal/batch"
	"softraster/internal/config"
	"softraster/internal/raster"
	"softraster/internal/scene"
	"softraster/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .yaml or .yml)")
	scenes := flag.String("scenes", "", "Comma-separated scenes to render (default: all)")
	list := flag.Bool("list", false, "List scene names and exit")
	width := flag.Int("width", 0, "Canvas width (default: 320)")
	height := flag.Int("height", 0, "Canvas height (default: 240)")
	outputDir := flag.String("output", "", "Output directory (default: out)")
	format := flag.String("format", "", "Output format: ppm, png or webp (default: ppm)")
	scale := flag.Int("scale", 0, "Integer upscale for png/webp output (default: 1)")
	tex := flag.String("texture", "", "Texture file or name for the textured scene")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	quiet := flag.Bool("q", false, "Hide the progress bar")

	flag.Parse()

	if *list {
		for _, name := range scene.Names() {
			fmt.Println(name)
		}
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		OutputDir: *outputDir,
		Format:    *format,
		Scale:     *scale,
		Texture:   *tex,
		Scenes:    splitList(*scenes),
		Workers:   *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names := cfg.Scenes
	if len(names) == 0 {
		names = scene.Names()
	}

	params := scene.Params{
		Width:  cfg.Width,
		Height: cfg.Height,
		Seed:   cfg.Seed,
		MouseX: cfg.MouseX,
		MouseY: cfg.MouseY,
		Radius: cfg.Radius,
		Angle:  cfg.Angle,
		Tilt:   cfg.Tilt,
	}
	if cfg.MouseX == 0 && cfg.MouseY == 0 {
		params.MouseX = float64(cfg.Width) / 2
		params.MouseY = float64(cfg.Height) / 2
	}

	if cfg.Texture != "" {
		cache := texture.NewCache(texture.BuildIndex(cfg.TextureDir))
		t, err := texture.Open(cache, cfg.Texture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
		params.Texture = t
	}

	fmt.Printf("Software rasterizer → %s\n", strings.ToUpper(cfg.Format))
	fmt.Printf("Scenes: %d, Canvas: %dx%d, Workers: %d\n", len(names), cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Scale:     cfg.Scale,
		Workers:   cfg.Workers,
		Params:    params,
	}
	if !*quiet {
		batchCfg.Progress = os.Stderr
	}

	results := batch.Run(batchCfg, names)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.2fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("  %-13s %s\n", r.Scene, r.Path)
		} else {
			failed++
			fmt.Printf("  %-13s FAILED: %s\n", r.Scene, r.Error)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(names))

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
