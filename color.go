package ink

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// ErrInvalidColor is returned by ParseHex for malformed input.
var ErrInvalidColor = errors.New("ink: invalid hex color")

// Color represents a non-premultiplied color with red, green, blue and alpha
// components, each in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = Color{R: 0, G: 0, B: 0, A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = Color{}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Std converts the color to the standard color.Color interface.
func (c Color) Std() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromStd converts a standard color.Color.
func FromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// Hex creates a color from a hex string, returning opaque black on malformed
// input. Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or
// without a leading '#'.
func Hex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex is like Hex but reports malformed input.
func ParseHex(hex string) (Color, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint64
	a = 255

	var err error
	switch len(hex) {
	case 3, 4:
		var v uint64
		if v, err = strconv.ParseUint(hex, 16, 16); err != nil {
			break
		}
		if len(hex) == 4 {
			a = (v & 0xf) * 17
			v >>= 4
		}
		r, g, b = (v>>8&0xf)*17, (v>>4&0xf)*17, (v&0xf)*17
	case 6, 8:
		var v uint64
		if v, err = strconv.ParseUint(hex, 16, 32); err != nil {
			break
		}
		if len(hex) == 8 {
			a = v & 0xff
			v >>= 8
		}
		r, g, b = v>>16&0xff, v>>8&0xff, v&0xff
	default:
		err = errors.New("unsupported length")
	}
	if err != nil {
		return Color{}, fmt.Errorf("%w %q", ErrInvalidColor, hex)
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// Hex returns the color as "#rrggbbaa".
func (c Color) Hex() string {
	n := c.Std().(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// SVG returns the opaque part of the color in SVG "rgb(r,g,b)" notation.
// Use Opacity for the alpha channel.
func (c Color) SVG() string {
	n := c.Std().(color.NRGBA)
	return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
}

// Opacity returns the alpha channel clamped to [0, 1].
func (c Color) Opacity() float64 {
	return math.Max(0, math.Min(1, c.A))
}

// IsTransparent reports whether the color has no visible alpha.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return math.Round(x)
}

// HSL creates an opaque color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}
