package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danidoni/raytracer/internal/mathutil"
)

// rawScene mirrors the JSON scene description. Light fields are loose
// here; LoadFile converts them into the closed Light variants and
// rejects anything malformed before a Scene is handed out.
type rawScene struct {
	Background *[3]uint8   `json:"background,omitempty"`
	Spheres    []rawSphere `json:"spheres"`
	Lights     []rawLight  `json:"lights"`
}

type rawSphere struct {
	Radius float64       `json:"radius"`
	Center mathutil.Vec3 `json:"center"`
	Color  [3]uint8      `json:"color"`
}

type rawLight struct {
	Kind      string         `json:"kind"`
	Intensity float64        `json:"intensity"`
	Position  *mathutil.Vec3 `json:"position,omitempty"`
	Direction *mathutil.Vec3 `json:"direction,omitempty"`
}

// LoadFile reads a JSON scene description and returns a validated
// Scene.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var raw rawScene
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	s := &Scene{Background: White}
	if raw.Background != nil {
		s.Background = Color{raw.Background[0], raw.Background[1], raw.Background[2]}
	}

	for _, sp := range raw.Spheres {
		s.Spheres = append(s.Spheres, Sphere{
			Radius: sp.Radius,
			Center: sp.Center,
			Color:  Color{sp.Color[0], sp.Color[1], sp.Color[2]},
		})
	}

	for i, l := range raw.Lights {
		light, err := l.toLight()
		if err != nil {
			return nil, fmt.Errorf("scene: %s: light %d: %w", path, i, err)
		}
		s.Lights = append(s.Lights, light)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (l rawLight) toLight() (Light, error) {
	switch l.Kind {
	case "ambient":
		return Ambient{Intensity: l.Intensity}, nil
	case "point":
		if l.Position == nil {
			return nil, fmt.Errorf("point light requires a position")
		}
		return Point{Intensity: l.Intensity, Position: *l.Position}, nil
	case "directional":
		if l.Direction == nil {
			return nil, fmt.Errorf("directional light requires a direction")
		}
		return Directional{Intensity: l.Intensity, Direction: *l.Direction}, nil
	default:
		return nil, fmt.Errorf("unknown light kind %q", l.Kind)
	}
}
