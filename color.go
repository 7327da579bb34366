package slicemaster

import (
	"fmt"
	"image/color"
	"math"
)

// Color represents an 8-bit straight-alpha RGBA color, matching the byte
// layout of Pixmap data. All classification in this package happens in
// byte space.
type Color struct {
	R, G, B, A uint8
}

// MaxRGBDistance is the tolerance-slider normalization constant: the
// maximum Euclidean RGB distance, rounded up from sqrt(3*255*255).
// Tolerance percentages scale against this value, so it is part of the
// matching contract and must not be recomputed more precisely.
const MaxRGBDistance = 442.0

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// NRGBA converts the color to the standard straight-alpha type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements the color.Color interface (alpha-premultiplied, 16-bit).
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Dist returns the Euclidean distance between two colors in RGB space,
// ignoring alpha. The result lies in [0, MaxRGBDistance].
func Dist(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Hex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'.
func Hex(hex string) (Color, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return Color{}, fmt.Errorf("slicemaster: invalid hex color %q", hex)
		}
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) || !parseHex(hex[3:4], &a) {
			return Color{}, fmt.Errorf("slicemaster: invalid hex color %q", hex)
		}
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return Color{}, fmt.Errorf("slicemaster: invalid hex color %q", hex)
		}
	case 8: // RRGGBBAA
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) || !parseHex(hex[6:8], &a) {
			return Color{}, fmt.Errorf("slicemaster: invalid hex color %q", hex)
		}
	default:
		return Color{}, fmt.Errorf("slicemaster: invalid hex color %q", hex)
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// parseHex is a helper for hex parsing. Reports whether s is valid hex.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// String returns the color as a hex string ("#RRGGBB" for opaque colors,
// "#RRGGBBAA" otherwise).
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = Color{}
)
