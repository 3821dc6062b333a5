package colour

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
)

// PreviewLine renders text over a truecolor background of c, with a
// black or white foreground chosen for contrast against it. Intended
// for terminal output only; callers gate on tty detection.
func PreviewLine(c color.RGBA, text string) string {
	fgR, fgG, fgB := 0, 0, 0
	if isDark(c) {
		fgR, fgG, fgB = 255, 255, 255
	}

	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fgR, fgG, fgB, ansiSuffix)
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)

	return fg + bg + text + ansiReset
}

// isDark reports whether a colour needs a light foreground for
// readable text, using CIE Lab lightness.
func isDark(c color.RGBA) bool {
	l, _, _ := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Lab()
	return l < 0.5
}
