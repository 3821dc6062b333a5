package colour

import (
	"image/color"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "hex", input: "hex", want: FormatHex},
		{name: "rgb", input: "rgb", want: FormatRGB},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "hsl", wantErr: true},
		{name: "uppercase rejected", input: "HEX", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFormat(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatColour(t *testing.T) {
	c := color.RGBA{R: 26, G: 43, B: 60, A: 128}

	tests := []struct {
		name      string
		format    Format
		withAlpha bool
		want      string
	}{
		{name: "hex", format: FormatHex, withAlpha: false, want: "#1a2b3c"},
		{name: "hex with alpha", format: FormatHex, withAlpha: true, want: "#1a2b3c80"},
		{name: "rgb", format: FormatRGB, withAlpha: false, want: "rgb(26, 43, 60)"},
		{name: "rgb with alpha", format: FormatRGB, withAlpha: true, want: "rgba(26, 43, 60, 128)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatColour(c, tt.format, tt.withAlpha); got != tt.want {
				t.Errorf("FormatColour() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaletteFormatPreservesOrder(t *testing.T) {
	palette := &Palette{
		Colours: []color.RGBA{
			{R: 255, G: 0, B: 0, A: 255},
			{R: 0, G: 255, B: 0, A: 255},
			{R: 0, G: 0, B: 255, A: 255},
		},
		HasAlpha: false,
	}

	want := []string{"#ff0000", "#00ff00", "#0000ff"}
	got := palette.Format(FormatHex)

	if len(got) != len(want) {
		t.Fatalf("Format() returned %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPaletteFormatRendersAlphaOnlyWhenEnabled(t *testing.T) {
	colours := []color.RGBA{{R: 1, G: 2, B: 3, A: 200}}

	opaque := (&Palette{Colours: colours, HasAlpha: false}).Format(FormatHex)
	if opaque[0] != "#010203" {
		t.Errorf("alpha rendered without HasAlpha: %q", opaque[0])
	}

	withAlpha := (&Palette{Colours: colours, HasAlpha: true}).Format(FormatHex)
	if withAlpha[0] != "#010203c8" {
		t.Errorf("alpha missing with HasAlpha: %q", withAlpha[0])
	}
}
