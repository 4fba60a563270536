// Package graphics defines the color values shared by the input table and the scene.
package graphics

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Components returns the red, green, blue and alpha bytes.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBA implements color.Color with alpha-premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts the color to the non-premultiplied standard library form.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Components()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Name returns the registered name of the color, or "" when it has none.
func (c Color) Name() string {
	for _, nc := range named {
		if nc.color == c {
			return nc.name
		}
	}
	return ""
}

// String formats opaque colors as #RRGGBB and others as #AARRGGBB.
func (c Color) String() string {
	if uint8(c>>24) == 0xFF {
		return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
	}
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor accepts a color name ("light-green") or a hex form (#RRGGBB or #AARRGGBB).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, nc := range named {
		if nc.name == s {
			return nc.color, nil
		}
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("graphics: unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("graphics: invalid color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		return Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("graphics: invalid color %q: want 6 or 8 hex digits", s)
	}
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorYellow      = Color(0xFFFFFF00)
	ColorBlue        = Color(0xFF0000FF)
	ColorLightGreen  = Color(0xFF90EE90)
	ColorLightBlue   = Color(0xFFADD8E6)
)

type namedColor struct {
	name  string
	color Color
}

var named = []namedColor{
	{"transparent", ColorTransparent},
	{"black", ColorBlack},
	{"white", ColorWhite},
	{"red", ColorRed},
	{"green", ColorGreen},
	{"yellow", ColorYellow},
	{"blue", ColorBlue},
	{"light-green", ColorLightGreen},
	{"light-blue", ColorLightBlue},
}
