// Package canvas maps between the centered raster the tracer thinks
// in and the top-left-origin pixel grid of an output surface.
package canvas

import "github.com/danidoni/raytracer/internal/mathutil"

// Canvas is the logical raster. Pixels are addressed by signed offsets
// centered on the image: cx in [-Width/2, Width/2), cy in
// [-Height/2, Height/2), with canvas y growing upward.
type Canvas struct {
	Width  int
	Height int
}

// Viewport is the projection plane: its size in world units and its
// distance from the camera along the view axis.
type Viewport struct {
	Width    float64
	Height   float64
	Distance float64
}

// Each invokes f for every pixel offset on the canvas, column by
// column. Pixels are independent, so the order carries no meaning.
func (c Canvas) Each(f func(cx, cy int)) {
	for cx := -c.Width / 2; cx < c.Width/2; cx++ {
		for cy := -c.Height / 2; cy < c.Height/2; cy++ {
			f(cx, cy)
		}
	}
}

// ToScreen converts a centered canvas offset to screen coordinates.
// Screen y grows downward, so the y axis flips.
func (c Canvas) ToScreen(cx, cy int) (sx, sy int) {
	return c.Width/2 + cx, c.Height/2 - cy
}

// ToViewport returns the direction of the ray from the camera origin
// through the viewport point matching the canvas offset. The vector is
// intentionally not normalized: the ray parameter t scales along
// whatever direction is supplied, so intersection results are
// unaffected by its length.
func (c Canvas) ToViewport(cx, cy int, vp Viewport) mathutil.Vec3 {
	return mathutil.Vec3{
		float64(cx) * vp.Width / float64(c.Width),
		float64(cy) * vp.Height / float64(c.Height),
		vp.Distance,
	}
}
