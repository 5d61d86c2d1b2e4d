// Package output provides pixel surfaces backed by in-memory frames
// and the encoders that write finished frames to disk.
package output

import (
	"image"

	"github.com/danidoni/raytracer/internal/scene"
)

// ImageSurface accumulates pixels in an NRGBA frame. Present is a
// no-op; the frame stays available through Image for callers that
// encode or inspect it themselves.
type ImageSurface struct {
	img *image.NRGBA
}

// NewImageSurface allocates a w x h surface. The frame starts opaque
// black, like a cleared backbuffer.
func NewImageSurface(w, h int) *ImageSurface {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return &ImageSurface{img: img}
}

// SetPixel writes an opaque pixel at screen coordinates. Writes
// outside the frame bounds are dropped.
func (s *ImageSurface) SetPixel(x, y int, c scene.Color) {
	b := s.img.Rect
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	i := s.img.PixOffset(x, y)
	s.img.Pix[i] = c.R
	s.img.Pix[i+1] = c.G
	s.img.Pix[i+2] = c.B
	s.img.Pix[i+3] = 255
}

func (s *ImageSurface) Present() error {
	return nil
}

// Image returns the backing frame.
func (s *ImageSurface) Image() *image.NRGBA {
	return s.img
}

// FileSurface is an ImageSurface whose Present encodes the frame to a
// file in the configured format.
type FileSurface struct {
	ImageSurface
	path   string
	format string
	scale  int
}

// NewFileSurface creates a w x h surface that Present writes to path.
func NewFileSurface(w, h int, path, format string, scale int) *FileSurface {
	return &FileSurface{
		ImageSurface: *NewImageSurface(w, h),
		path:         path,
		format:       format,
		scale:        scale,
	}
}

func (s *FileSurface) Present() error {
	return Save(s.path, s.Image(), s.format, s.scale)
}
