package image

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/irofield/iro/internal/colour"
)

// DefaultSampleSize is the bounding box images are downscaled into
// before extraction. Colour frequency is stable well below full
// wallpaper resolution, and extraction cost scales with pixel count.
const DefaultSampleSize = 150

// Downsample scales img so that its longer side is at most maxSide
// pixels, preserving aspect ratio. Images already within the bound are
// returned unchanged.
func Downsample(img image.Image, maxSide int) image.Image {
	if maxSide <= 0 {
		maxSide = DefaultSampleSize
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}

	var dw, dh int
	if w >= h {
		dw = maxSide
		dh = h * maxSide / w
	} else {
		dh = maxSide
		dw = w * maxSide / h
	}
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// Pixels flattens an image into the 8-bit RGB buffer the extractor
// consumes. Alpha is dropped.
func Pixels(img image.Image) []colour.RGB {
	bounds := img.Bounds()
	pixels := make([]colour.RGB, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, colour.RGB{
				R: uint8(r >> 8), // #nosec G115 - RGBA returns 16-bit channels
				G: uint8(g >> 8), // #nosec G115
				B: uint8(b >> 8), // #nosec G115
			})
		}
	}
	return pixels
}

// LoadPixels loads the image at path, downsamples it and returns its
// pixel buffer.
func LoadPixels(loader Loader, path string) ([]colour.RGB, error) {
	img, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	sampled := Downsample(img, DefaultSampleSize)
	pixels := Pixels(sampled)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("image %s contains no pixels", path)
	}
	return pixels, nil
}
