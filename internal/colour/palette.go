package colour

import (
	"fmt"
	"image/color"
)

// Palette is the finalized set of centroid colours produced by a
// clustering run, in centroid-creation order.
type Palette struct {
	Colours []color.RGBA

	// HasAlpha records whether the clustered samples carried a
	// meaningful alpha channel; formatters render alpha only when set.
	HasAlpha bool
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Format renders every palette colour in the given format, one string
// per colour, preserving centroid order.
func (p *Palette) Format(f Format) []string {
	lines := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		lines[i] = FormatColour(c, f, p.HasAlpha)
	}
	return lines
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1,
			FormatColour(c, FormatHex, p.HasAlpha),
			FormatColour(c, FormatRGB, p.HasAlpha))
	}
	return result
}
