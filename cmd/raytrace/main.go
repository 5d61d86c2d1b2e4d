package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/danidoni/raytracer/internal/batch"
	"github.com/danidoni/raytracer/internal/config"
	"github.com/danidoni/raytracer/internal/display"
	"github.com/danidoni/raytracer/internal/output"
	"github.com/danidoni/raytracer/internal/render"
	"github.com/danidoni/raytracer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	scenePath := flag.String("scene", "", "Scene description JSON (default: built-in scene)")
	outputPath := flag.String("output", "", "Output image path (default: render.<format>)")
	format := flag.String("format", "", "Output format: webp, tga or png (default: webp)")
	width := flag.Int("width", 0, "Canvas width in pixels (default: 800)")
	height := flag.Int("height", 0, "Canvas height in pixels (default: 600)")
	scale := flag.Int("scale", 0, "Integer magnification of the output image (default: 1)")
	workers := flag.Int("workers", 0, "Worker goroutines in batch mode (default: NumCPU)")
	outputDir := flag.String("outdir", "renders", "Output directory in batch mode")
	wait := flag.Bool("wait", false, "After rendering, idle until interrupted")

	flag.Parse()

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
		Scene:   *scenePath,
		Output:  *outputPath,
		Format:  *format,
		Width:   *width,
		Height:  *height,
		Scale:   *scale,
		Workers: *workers,
	})

	// Positional args are scene files for a batch run
	if flag.NArg() > 0 {
		runBatch(cfg, *outputDir, flag.Args())
		return
	}

	// Single frame
	s := scene.Default()
	if cfg.ScenePath != "" {
		var err error
		s, err = scene.LoadFile(cfg.ScenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	}
	if err := s.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Raytracer: %dx%d, %d spheres, %d lights\n", cfg.Width, cfg.Height, len(s.Spheres), len(s.Lights))
	fmt.Printf("Output: %s\n", cfg.OutputPath)

	start := time.Now()

	surface := output.NewFileSurface(cfg.Width, cfg.Height, cfg.OutputPath, cfg.Format, cfg.Scale)
	if err := render.Frame(s, cfg.Canvas(), cfg.Viewport(), surface); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	if *wait {
		fmt.Println("Waiting (Ctrl-C to exit)...")
		display.Wait(display.NewSignalSource())
	}
}

func runBatch(cfg config.Config, outputDir string, paths []string) {
	fmt.Printf("Raytracer batch: %d scenes, %dx%d, Workers: %d\n", len(paths), cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", outputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Canvas:    cfg.Canvas(),
		Viewport:  cfg.Viewport(),
		OutputDir: outputDir,
		Format:    cfg.Format,
		Scale:     cfg.Scale,
		Workers:   cfg.Workers,
	}, paths)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(paths))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors {
			fmt.Printf("  %s: %s\n", e.ScenePath, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(outputDir, "manifest.json")
	os.MkdirAll(outputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
