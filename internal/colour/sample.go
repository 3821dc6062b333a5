// Package colour provides colour sample types, k-means palette
// quantization and palette formatting.
package colour

import "image/color"

// Sample is a single pixel sample with 8-bit channels.
// Alpha is always carried; whether it participates in clustering is
// decided by the quantizer options.
type Sample struct {
	R, G, B, A uint8
}

// ToSample converts a color.Color to a Sample.
func ToSample(c color.Color) Sample {
	r, g, b, a := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return Sample{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// SampleSet is the full ordered sequence of samples extracted from an
// image, in row-major order. It is read-only input to the quantizer.
type SampleSet struct {
	Samples []Sample

	// HasAlpha records whether the alpha channel carries meaningful
	// values. When false every sample has A == 255.
	HasAlpha bool

	// Source image dimensions; len(Samples) == Width * Height.
	Width  int
	Height int
}

// Len returns the number of samples in the set.
func (s *SampleSet) Len() int {
	return len(s.Samples)
}
