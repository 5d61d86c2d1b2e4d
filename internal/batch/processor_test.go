package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/danidoni/raytracer/internal/canvas"
)

const smallScene = `{
	"spheres": [{"radius": 1, "center": [0, 0, 3], "color": [200, 100, 50]}],
	"lights": [{"kind": "ambient", "intensity": 0.2}]
}`

func testConfig(outDir string) Config {
	return Config{
		Canvas:    canvas.Canvas{Width: 20, Height: 16},
		Viewport:  canvas.Viewport{Width: 1, Height: 1, Distance: 1},
		OutputDir: outDir,
		Format:    "png",
		Scale:     1,
		Workers:   2,
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	var paths []string
	for _, name := range []string{"one.json", "two.json"} {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(smallScene), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}

	results := Run(testConfig(outDir), paths)
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	for _, r := range results {
		if !r.Success {
			t.Errorf("%s: %s", r.ScenePath, r.Error)
		}
	}
	for _, name := range []string{"one.png", "two.png"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestRunReportsFailures(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(smallScene), 0644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"lights": [{"kind": "point"}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	results := Run(testConfig(filepath.Join(dir, "out")), []string{good, bad, filepath.Join(dir, "missing.json")})

	byPath := map[string]Result{}
	for _, r := range results {
		byPath[r.ScenePath] = r
	}
	if !byPath[good].Success {
		t.Errorf("good scene failed: %s", byPath[good].Error)
	}
	for _, p := range []string{bad, filepath.Join(dir, "missing.json")} {
		r := byPath[p]
		if r.Success || r.Error == "" {
			t.Errorf("%s: expected failure with message, got %+v", p, r)
		}
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	results := []Result{
		{ScenePath: "a.json", Image: "a.png", Success: true},
		{ScenePath: "b.json", Error: "boom"},
	}
	if err := WriteManifest(path, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if len(entries) != 2 || entries[0].Image != "a.png" || entries[1].Error != "boom" {
		t.Errorf("entries: %+v", entries)
	}
}
