package colour

import (
	"fmt"
	"image/color"
)

// Format selects the textual representation of a palette colour.
// Exactly two formats exist; this is a closed set, not a plugin point.
type Format string

const (
	// FormatHex renders `#rrggbb` or `#rrggbbaa`.
	FormatHex Format = "hex"

	// FormatRGB renders `rgb(r, g, b)` or `rgba(r, g, b, a)`.
	FormatRGB Format = "rgb"
)

// ValidFormats returns the list of valid format names.
func ValidFormats() []Format {
	return []Format{FormatHex, FormatRGB}
}

// ParseFormat validates a format name from the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatHex:
		return FormatHex, nil
	case FormatRGB:
		return FormatRGB, nil
	default:
		return "", fmt.Errorf("unsupported format: %q (valid formats: %v)", s, ValidFormats())
	}
}

// FormatColour renders a single colour in the given format. Alpha is
// rendered only when withAlpha is set, regardless of the value the
// colour itself carries.
func FormatColour(c color.RGBA, f Format, withAlpha bool) string {
	switch f {
	case FormatRGB:
		if withAlpha {
			return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
		}
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	default:
		if withAlpha {
			return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
		}
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
}
