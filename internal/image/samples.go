package image

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/jmylchreest/qtizer/internal/colour"
)

// Samples extracts every pixel of the image as an ordered sample set,
// row-major. When withAlpha is false the alpha channel is flattened to
// opaque so it behaves as a constant during clustering.
func Samples(img image.Image, withAlpha bool) *colour.SampleSet {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	samples := make([]colour.Sample, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			s := colour.ToSample(img.At(x, y))
			if !withAlpha {
				s.A = 255
			}
			samples = append(samples, s)
		}
	}

	return &colour.SampleSet{
		Samples:  samples,
		HasAlpha: withAlpha,
		Width:    width,
		Height:   height,
	}
}

// Downscale resizes the image so neither dimension exceeds maxDim,
// preserving aspect ratio. Images already within bounds (or a maxDim
// of zero) are returned unchanged.
func Downscale(img image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return img
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return img
	}

	if bounds.Dx() >= bounds.Dy() {
		return imaging.Resize(img, maxDim, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, maxDim, imaging.Lanczos)
}
