// Package scene holds the immutable description of the world being
// rendered: spheres, lights and the background color. A Scene is built
// once at startup and only read afterwards.
package scene

import (
	"fmt"
	"math"

	"github.com/danidoni/raytracer/internal/mathutil"
)

// Color is an 8-bit RGB triple. No alpha channel; rendered pixels are
// always opaque.
type Color struct {
	R, G, B uint8
}

// White is the background used when a ray hits nothing.
var White = Color{255, 255, 255}

// Scale multiplies each channel by the intensity factor. Channels
// saturate at 255 instead of wrapping when accumulated light exceeds
// 1.0; within range the fractional part is truncated.
func (c Color) Scale(intensity float64) Color {
	return Color{
		R: clamp8(float64(c.R) * intensity),
		G: clamp8(float64(c.G) * intensity),
		B: clamp8(float64(c.B) * intensity),
	}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Sphere is the only geometric primitive. Radius must be strictly
// positive; Validate enforces this before rendering starts.
type Sphere struct {
	Radius float64
	Center mathutil.Vec3
	Color  Color
}

// Scene is the full world description. Both slices may be empty, in
// which case every ray resolves to the Background color.
type Scene struct {
	Spheres    []Sphere
	Lights     []Light
	Background Color
}

// Validate checks construction-time invariants. Degenerate geometry is
// rejected here so the rendering path never has to handle it.
func (s *Scene) Validate() error {
	for i, sp := range s.Spheres {
		if !(sp.Radius > 0) || math.IsInf(sp.Radius, 1) {
			return fmt.Errorf("scene: sphere %d: radius %v is not strictly positive and finite", i, sp.Radius)
		}
	}
	return nil
}

// Default returns the built-in demo scene: three unit spheres in front
// of the camera plus a 5000-radius yellow ground sphere, lit by an
// ambient, a point and a directional light.
func Default() *Scene {
	return &Scene{
		Spheres: []Sphere{
			{Radius: 1, Center: mathutil.Vec3{0, -1, 3}, Color: Color{255, 0, 0}},
			{Radius: 1, Center: mathutil.Vec3{2, 0, 4}, Color: Color{0, 0, 255}},
			{Radius: 1, Center: mathutil.Vec3{-2, 0, 4}, Color: Color{0, 255, 0}},
			{Radius: 5000, Center: mathutil.Vec3{0, -5001, 0}, Color: Color{255, 255, 0}},
		},
		Lights: []Light{
			Ambient{Intensity: 0.2},
			Point{Intensity: 0.6, Position: mathutil.Vec3{2, 1, 0}},
			Directional{Intensity: 0.2, Direction: mathutil.Vec3{1, 4, 4}},
		},
		Background: White,
	}
}
