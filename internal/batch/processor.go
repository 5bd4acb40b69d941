// Package batch renders scenes concurrently and writes them to disk.
package batch

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"softraster/internal/imageio"
	"softraster/internal/raster"
	"softraster/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	Format    string
	Scale     int
	Workers   int
	Params    scene.Params

	// Progress receives a progress bar; nil disables it.
	Progress io.Writer
}

// Result holds the outcome of rendering one scene.
type Result struct {
	Scene    string
	Path     string
	Width    int
	Height   int
	Success  bool
	Error    string
	Duration time.Duration
}

// Run renders every named scene using a worker pool. Each scene draws into
// its own canvas, so workers share nothing but the read-only Params.
func Run(cfg Config, names []string) []Result {
	total := len(names)
	results := make([]Result, total)

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress != nil {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(cfg.Progress),
			progressbar.OptionSetDescription("rendering"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Close()
	}

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = renderScene(cfg, names[idx])
				if bar != nil {
					bar.Add(1)
				}
			}
		}()
	}

	for i := range names {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

func renderScene(cfg Config, name string) Result {
	res := Result{Scene: name}
	start := time.Now()

	render, ok := scene.Lookup(name)
	if !ok {
		res.Error = fmt.Sprintf("unknown scene %q", name)
		return finish(res, start)
	}

	c, err := render(cfg.Params)
	if err != nil {
		res.Error = err.Error()
		return finish(res, start)
	}
	res.Width, res.Height = c.Width(), c.Height()

	res.Path = filepath.Join(cfg.OutputDir, name+"."+cfg.Format)
	if err := imageio.Save(c, res.Path, imageio.Options{Scale: cfg.Scale}); err != nil {
		res.Error = err.Error()
		return finish(res, start)
	}

	res.Success = true
	return finish(res, start)
}

func finish(res Result, start time.Time) Result {
	res.Duration = time.Since(start)
	log := raster.Logger()
	if res.Success {
		log.Debug("scene rendered", "scene", res.Scene, "path", res.Path, "took", res.Duration)
	} else {
		log.Warn("scene failed", "scene", res.Scene, "err", res.Error)
	}
	return res
}
