package output

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// Supported output formats; the format name doubles as the file
// extension.
const (
	FormatWebP = "webp"
	FormatTGA  = "tga"
	FormatPNG  = "png"
)

// Ext returns the file extension for an output format, defaulting to
// WebP for an empty format string.
func Ext(format string) string {
	if format == "" {
		return FormatWebP
	}
	return format
}

// Save encodes img to path, creating parent directories. scale > 1
// magnifies the frame by that integer factor before encoding.
func Save(path string, img *image.NRGBA, format string, scale int) error {
	if scale > 1 {
		img = Magnify(img, scale)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("output: mkdir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	switch Ext(format) {
	case FormatWebP:
		err = nativewebp.Encode(f, img, nil)
	case FormatTGA:
		err = tga.Encode(f, img)
	case FormatPNG:
		err = png.Encode(f, img)
	default:
		return fmt.Errorf("output: unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("output: encode %s: %w", path, err)
	}
	return nil
}

// Magnify scales img up by an integer factor with nearest-neighbour
// sampling, so every rendered pixel stays a hard-edged block.
func Magnify(img *image.NRGBA, factor int) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
