// Package trace casts rays against a scene: analytic ray-sphere
// intersection, closest-hit selection and diffuse shading.
package trace

import (
	"math"

	"github.com/danidoni/raytracer/internal/mathutil"
	"github.com/danidoni/raytracer/internal/scene"
)

// Inf is the sentinel root value meaning "no intersection". Both
// closest-hit comparisons are strict, so the sentinel can never win.
var Inf = math.Inf(1)

// IntersectRaySphere solves a*t^2 + b*t + c = 0 for the ray
// origin + t*dir against s, returning both roots with t1 >= t2. A
// negative discriminant or a zero-length direction yields (Inf, Inf).
func IntersectRaySphere(origin, dir mathutil.Vec3, s *scene.Sphere) (t1, t2 float64) {
	a := dir.Dot(dir)
	if a == 0 {
		return Inf, Inf
	}

	co := origin.Sub(s.Center)
	b := 2 * co.Dot(dir)
	c := co.Dot(co) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Inf, Inf
	}

	sq := math.Sqrt(discriminant)
	return (-b + sq) / (2 * a), (-b - sq) / (2 * a)
}

// Ray finds the closest sphere hit by origin + t*dir with
// minT < t < maxT (open interval) and shades it. Spheres are scanned
// in sequence order and a hit only replaces the current closest on a
// strictly smaller t, so equal roots resolve to the earlier sphere.
// With no hit the scene background is returned.
func Ray(origin, dir mathutil.Vec3, minT, maxT float64, s *scene.Scene) scene.Color {
	closestT := Inf
	var closest *scene.Sphere

	for i := range s.Spheres {
		sp := &s.Spheres[i]
		t1, t2 := IntersectRaySphere(origin, dir, sp)
		if minT < t1 && t1 < maxT && t1 < closestT {
			closestT = t1
			closest = sp
		}
		if minT < t2 && t2 < maxT && t2 < closestT {
			closestT = t2
			closest = sp
		}
	}

	if closest == nil {
		return s.Background
	}

	p := origin.Add(dir.Scale(closestT))
	n := p.Sub(closest.Center).Normalize()
	return closest.Color.Scale(ComputeLighting(p, n, s))
}

// ComputeLighting accumulates the intensity of every light at point p
// with surface normal n. No occlusion testing and no upper bound; the
// caller's color scaling saturates any excess.
func ComputeLighting(p, n mathutil.Vec3, s *scene.Scene) float64 {
	intensity := 0.0
	for _, l := range s.Lights {
		intensity += l.Contribution(p, n)
	}
	return intensity
}
