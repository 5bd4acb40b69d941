package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"softraster/internal/canvas"
	"softraster/internal/config"
	"softraster/internal/present"
	"softraster/internal/raster"
	"softraster/internal/scene"
	"softraster/internal/texture"
	"softraster/internal/window"
)

func main() {
	configFile := flag.String("config", "", "Path to config file (.json, .yaml or .yml)")
	name := flag.String("scene", "grid", "Scene to show (see render -list)")
	width := flag.Int("width", 0, "Canvas width (default: 320)")
	height := flag.Int("height", 0, "Canvas height (default: 240)")
	tex := flag.String("texture", "", "Texture file or name for the textured scene")
	termMode := flag.Bool("term", false, "Print one frame to the terminal instead of opening a window")
	verbose := flag.Bool("v", false, "Enable debug logging")

	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Width: *width, Height: *height, Texture: *tex})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	render, ok := scene.Lookup(*name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown scene %q (want one of %s)\n", *name, strings.Join(scene.Names(), ", "))
		os.Exit(1)
	}

	params := scene.Params{
		Width:  cfg.Width,
		Height: cfg.Height,
		Seed:   cfg.Seed,
		Radius: cfg.Radius,
		Angle:  cfg.Angle,
		Tilt:   cfg.Tilt,
		MouseX: cfg.MouseX,
		MouseY: cfg.MouseY,
	}
	if cfg.Texture != "" {
		t, err := texture.Open(texture.NewCache(texture.BuildIndex(cfg.TextureDir)), cfg.Texture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
		params.Texture = t
	}

	if *termMode {
		if params.MouseX == 0 && params.MouseY == 0 {
			params.MouseX = float64(cfg.Width) / 2
			params.MouseY = float64(cfg.Height) / 2
		}
		c, err := render(params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cols := 0
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				cols = w
			}
		}
		if err := present.Terminal(os.Stdout, c, cols); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Scenes that ignore the cursor are rendered once and reused.
	var still *canvas.Canvas
	interactive := *name == "grid" || *name == "gray"

	frame := func(mx, my float64) (*canvas.Canvas, error) {
		if !interactive && still != nil {
			return still, nil
		}
		p := params
		p.MouseX, p.MouseY = mx, my
		c, err := render(p)
		if err != nil {
			return nil, err
		}
		still = c
		return c, nil
	}

	err := window.Run(window.Options{
		Title:  "softraster: " + *name,
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.WindowScale,
		TPS:    cfg.TPS,
	}, frame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
