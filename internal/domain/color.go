package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// ParseHex parses a "#rrggbb" string.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid hex color %q: must be #rrggbb", s)
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// Hex returns the color as lowercase "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Shift adds delta to every channel, clamping each to [0,255].
func (c Color) Shift(delta int) Color {
	return Color{
		R: clampChannel(int(c.R) + delta),
		G: clampChannel(int(c.G) + delta),
		B: clampChannel(int(c.B) + delta),
	}
}

// AdjustColor brightens (delta > 0) or darkens (delta < 0) a "#rrggbb" color.
// Input comes from the catalog and is assumed well formed; undecodable
// digits read as zero.
func AdjustColor(hex string, delta int) string {
	n, _ := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	c := Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}
	return c.Shift(delta).Hex()
}

func clampChannel(v int) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
