package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danidoni/raytracer/internal/mathutil"
)

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeScene(t, `{
		"background": [0, 0, 0],
		"spheres": [
			{"radius": 1, "center": [0, -1, 3], "color": [255, 0, 0]}
		],
		"lights": [
			{"kind": "ambient", "intensity": 0.2},
			{"kind": "point", "intensity": 0.6, "position": [2, 1, 0]},
			{"kind": "directional", "intensity": 0.2, "direction": [1, 4, 4]}
		]
	}`)

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Background != (Color{0, 0, 0}) {
		t.Errorf("background: got %v", s.Background)
	}
	if len(s.Spheres) != 1 || s.Spheres[0].Center != (mathutil.Vec3{0, -1, 3}) {
		t.Errorf("spheres: got %+v", s.Spheres)
	}
	if len(s.Lights) != 3 {
		t.Fatalf("lights: got %d, want 3", len(s.Lights))
	}
	if p, ok := s.Lights[1].(Point); !ok || p.Position != (mathutil.Vec3{2, 1, 0}) {
		t.Errorf("point light: got %+v", s.Lights[1])
	}
	if d, ok := s.Lights[2].(Directional); !ok || d.Direction != (mathutil.Vec3{1, 4, 4}) {
		t.Errorf("directional light: got %+v", s.Lights[2])
	}
}

func TestLoadFileDefaultBackground(t *testing.T) {
	path := writeScene(t, `{"spheres": [], "lights": []}`)
	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Background != White {
		t.Errorf("background: got %v, want white", s.Background)
	}
}

func TestLoadFileRejectsMalformedLights(t *testing.T) {
	bad := []string{
		`{"lights": [{"kind": "point", "intensity": 0.5}]}`,
		`{"lights": [{"kind": "directional", "intensity": 0.5}]}`,
		`{"lights": [{"kind": "spot", "intensity": 0.5}]}`,
	}
	for _, body := range bad {
		if _, err := LoadFile(writeScene(t, body)); err == nil {
			t.Errorf("expected error for %s", body)
		}
	}
}

func TestLoadFileRejectsBadSphere(t *testing.T) {
	path := writeScene(t, `{"spheres": [{"radius": -1, "center": [0, 0, 3], "color": [1, 2, 3]}]}`)
	if _, err := LoadFile(path); err == nil {
		t.Error("expected validation error for negative radius")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
