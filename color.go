package avatar

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the color.Color interface.
// The returned values are alpha-premultiplied, as color.Color requires.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to an 8-bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// IsTransparent reports whether the color has zero alpha.
func (c RGBA) IsTransparent() bool {
	return c.A <= 0
}

// String returns the color in #AARRGGBB notation.
func (c RGBA) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X%02X", n.A, n.R, n.G, n.B)
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// ParseColor parses a textual color.
//
// Supported formats:
//   - "#RGB" (each digit doubled)
//   - "#RRGGBB" (opaque)
//   - "#AARRGGBB" (alpha first)
//   - SVG/CSS color names such as "red" or "lightgray", case-insensitive
//
// The leading '#' is required for hex forms.
func ParseColor(s string) (RGBA, error) {
	if s == "" {
		return RGBA{}, fmt.Errorf("avatar: empty color")
	}
	if s[0] != '#' {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return FromColor(c), nil
		}
		return RGBA{}, fmt.Errorf("avatar: unknown color name %q", s)
	}

	hex := s[1:]
	var a, r, g, b uint32
	a = 255

	var ok bool
	switch len(hex) {
	case 3:
		if r, ok = parseHex(hex[0:1]); !ok {
			break
		}
		if g, ok = parseHex(hex[1:2]); !ok {
			break
		}
		if b, ok = parseHex(hex[2:3]); !ok {
			break
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if r, ok = parseHex(hex[0:2]); !ok {
			break
		}
		if g, ok = parseHex(hex[2:4]); !ok {
			break
		}
		b, ok = parseHex(hex[4:6])
	case 8:
		if a, ok = parseHex(hex[0:2]); !ok {
			break
		}
		if r, ok = parseHex(hex[2:4]); !ok {
			break
		}
		if g, ok = parseHex(hex[4:6]); !ok {
			break
		}
		b, ok = parseHex(hex[6:8])
	default:
		return RGBA{}, fmt.Errorf("avatar: bad hex length %d in %q", len(hex), s)
	}
	if !ok {
		return RGBA{}, fmt.Errorf("avatar: bad hex digit in %q", s)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// parseHex decodes a run of hex digits.
func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
