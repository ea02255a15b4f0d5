package tint

import (
	"strings"

	"github.com/pkg/errors"
)

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Malformed input yields opaque black; use ParseHex to get
// the error instead.
func Hex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		Logger().Debug("tint: malformed hex color, using black", "input", hex, "err", err)
		return Black
	}
	return c
}

// ParseHex parses a hex string into a color in RGBA shape.
// See Hex for the accepted formats.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	var width int
	switch len(hex) {
	case 3, 4: // RGB, RGBA
		width = 1
	case 6, 8: // RRGGBB, RRGGBBAA
		width = 2
	default:
		return Color{}, errors.Wrapf(ErrInvalidHex, "parse %q: length %d", s, len(hex))
	}

	ch := [4]uint32{0, 0, 0, 255}
	for i := 0; i*width < len(hex); i++ {
		v, ok := parseHex(hex[i*width : (i+1)*width])
		if !ok {
			return Color{}, errors.Wrapf(ErrInvalidHex, "parse %q", s)
		}
		if width == 1 {
			v *= 17
		}
		ch[i] = v
	}

	return RGBA(
		float64(ch[0])/255,
		float64(ch[1])/255,
		float64(ch[2])/255,
		float64(ch[3])/255,
	), nil
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
