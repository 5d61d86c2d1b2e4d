// Package render drives the per-pixel loop: one ray per canvas pixel,
// traced against the scene, with the resulting color forwarded to an
// external pixel surface.
package render

import (
	"github.com/danidoni/raytracer/internal/canvas"
	"github.com/danidoni/raytracer/internal/mathutil"
	"github.com/danidoni/raytracer/internal/scene"
	"github.com/danidoni/raytracer/internal/trace"
)

// Surface is the external pixel sink the renderer writes into.
// Coordinates are top-left-origin screen integers; Present flushes the
// finished frame.
type Surface interface {
	SetPixel(x, y int, c scene.Color)
	Present() error
}

// Frame renders the scene once. The camera sits at the origin looking
// down +z through the viewport; minT of 1 starts rays at the image
// plane, skipping geometry between it and the camera.
func Frame(s *scene.Scene, cv canvas.Canvas, vp canvas.Viewport, surface Surface) error {
	origin := mathutil.Vec3{}
	cv.Each(func(cx, cy int) {
		dir := cv.ToViewport(cx, cy, vp)
		color := trace.Ray(origin, dir, 1, trace.Inf, s)
		sx, sy := cv.ToScreen(cx, cy)
		surface.SetPixel(sx, sy, color)
	})
	return surface.Present()
}
