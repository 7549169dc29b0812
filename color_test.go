package avatar

import (
	"image/color"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.NRGBA
	}{
		{"short hex", "#f0a", color.NRGBA{R: 0xFF, G: 0x00, B: 0xAA, A: 0xFF}},
		{"rrggbb", "#3F51B5", color.NRGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF}},
		{"aarrggbb", "#80FF0000", color.NRGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0x80}},
		{"lowercase hex", "#009688", color.NRGBA{R: 0x00, G: 0x96, B: 0x88, A: 0xFF}},
		{"name", "teal", color.NRGBA{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}},
		{"name any case", "LightGray", color.NRGBA{R: 0xD3, G: 0xD3, B: 0xD3, A: 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got := c.NRGBA(); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#GGHHII", "#1234567", "notacolor", "FF0000"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", in)
		}
	}
}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque white", White, 65535, 65535, 65535, 65535},
		{"opaque black", Black, 0, 0, 0, 65535},
		{"transparent", Transparent, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestRGBA_String(t *testing.T) {
	c, err := ParseColor("#803F51B5")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.String(); got != "#803F51B5" {
		t.Errorf("String() = %q, want %q", got, "#803F51B5")
	}
	if !Transparent.IsTransparent() {
		t.Error("Transparent.IsTransparent() = false")
	}
}
