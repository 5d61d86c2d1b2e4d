// Package batch renders many scene files in one invocation using a
// worker pool. Parallelism is across files only; each frame is still
// rendered on a single goroutine.
package batch

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/danidoni/raytracer/internal/canvas"
	"github.com/danidoni/raytracer/internal/output"
	"github.com/danidoni/raytracer/internal/render"
	"github.com/danidoni/raytracer/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	Canvas    canvas.Canvas
	Viewport  canvas.Viewport
	OutputDir string
	Format    string
	Scale     int
	Workers   int
}

// Result holds the outcome of rendering one scene file.
type Result struct {
	ScenePath string
	Image     string
	Success   bool
	Error     string
}

// Run renders every scene file using a worker pool.
func Run(cfg Config, paths []string) []Result {
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	sceneChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range sceneChan {
				results[idx] = renderScene(cfg, paths[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range paths {
		sceneChan <- i
	}
	close(sceneChan)

	wg.Wait()
	close(done)

	return results
}

func renderScene(cfg Config, path string) Result {
	s, err := scene.LoadFile(path)
	if err != nil {
		return Result{ScenePath: path, Error: err.Error()}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	image := name + "." + output.Ext(cfg.Format)
	outPath := filepath.Join(cfg.OutputDir, image)

	surface := output.NewFileSurface(cfg.Canvas.Width, cfg.Canvas.Height, outPath, cfg.Format, cfg.Scale)
	if err := render.Frame(s, cfg.Canvas, cfg.Viewport, surface); err != nil {
		return Result{ScenePath: path, Error: err.Error()}
	}

	return Result{ScenePath: path, Image: image, Success: true}
}
