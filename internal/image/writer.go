package image

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/jmylchreest/qtizer/internal/colour"
)

// encodableExtensions lists the image file extensions Save can write.
// WebP is decode-only; there is no encoder in golang.org/x/image.
var encodableExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff"}

// alphaCapableExtensions lists the output extensions whose encoders
// preserve an alpha channel.
var alphaCapableExtensions = []string{".png", ".gif"}

// IsImagePath reports whether the path carries an extension Save can
// encode. Used to decide between palette text output and quantized
// image output.
func IsImagePath(path string) bool {
	return slices.Contains(encodableExtensions, strings.ToLower(filepath.Ext(path)))
}

// SupportsAlpha reports whether the output format for the path can
// encode an alpha channel.
func SupportsAlpha(path string) bool {
	return slices.Contains(alphaCapableExtensions, strings.ToLower(filepath.Ext(path)))
}

// Reconstruct builds the quantized image: every pixel is replaced by
// the palette colour of the cluster its sample was assigned to.
func Reconstruct(set *colour.SampleSet, palette *colour.Palette, assignments []int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, set.Width, set.Height))
	for i, a := range assignments {
		x := i % set.Width
		y := i / set.Width
		img.SetRGBA(x, y, palette.Colours[a])
	}
	return img
}

// Save encodes the image to the path using the encoder implied by its
// extension.
func Save(img image.Image, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(encodableExtensions, ext) {
		return fmt.Errorf("unsupported output image extension: %q (supported: %v)", ext, encodableExtensions)
	}

	file, err := os.Create(path) // #nosec G304 - User-specified output path, intended to be written
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch ext {
	case ".png":
		err = png.Encode(file, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, nil)
	case ".gif":
		err = gif.Encode(file, img, nil)
	case ".bmp":
		err = bmp.Encode(file, img)
	case ".tif", ".tiff":
		err = tiff.Encode(file, img, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to encode quantized image: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
