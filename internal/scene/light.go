package scene

import "github.com/danidoni/raytracer/internal/mathutil"

// Light is one source of illumination. Each kind carries exactly the
// fields it needs, so a point light without a position cannot exist.
type Light interface {
	// Contribution returns the diffuse intensity this light adds at
	// point p with surface normal n.
	Contribution(p, n mathutil.Vec3) float64
}

// Ambient contributes a constant intensity everywhere, independent of
// surface orientation.
type Ambient struct {
	Intensity float64
}

func (l Ambient) Contribution(_, _ mathutil.Vec3) float64 {
	return l.Intensity
}

// Point radiates from a fixed position in the scene.
type Point struct {
	Intensity float64
	Position  mathutil.Vec3
}

func (l Point) Contribution(p, n mathutil.Vec3) float64 {
	return diffuse(l.Intensity, n, l.Position.Sub(p))
}

// Directional illuminates along a fixed direction, like a distant sun.
type Directional struct {
	Intensity float64
	Direction mathutil.Vec3
}

func (l Directional) Contribution(p, n mathutil.Vec3) float64 {
	return diffuse(l.Intensity, n, l.Direction)
}

// diffuse scales intensity by the cosine of the angle between the
// normal and the light vector. Dividing by both lengths normalizes the
// dot product, so neither vector needs to be unit length. A light
// behind the surface (cosine <= 0) contributes nothing.
func diffuse(intensity float64, n, l mathutil.Vec3) float64 {
	d := n.Dot(l)
	if d <= 0 {
		return 0
	}
	return intensity * d / (n.Len() * l.Len())
}
