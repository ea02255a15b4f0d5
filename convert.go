package tint

import "math"

// rgbToHSV converts RGB channels to hue in [0, 360), saturation and value.
// Achromatic input (all channels equal) yields hue 0 and, for black,
// saturation 0.
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	cMax := math.Max(r, math.Max(g, b))
	cMin := math.Min(r, math.Min(g, b))
	delta := cMax - cMin

	switch {
	case delta == 0:
		h = 0
	case cMax == r:
		h = 60 * floorMod((g-b)/delta, 6)
	case cMax == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}

	if cMax != 0 {
		s = delta / cMax
	}
	return h, s, cMax
}

// hsvToRGB converts hue, saturation and value to RGB channels using the
// chroma and intermediate decomposition over six 60° sectors.
// The hue is reduced into [0, 360) first. A NaN hue cannot be reduced; it
// lands in the last sector and propagates into the result.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	h = normalizeHue(h)

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return r + m, g + m, b + m
}

// normalizeHue maps any finite hue into [0, 360).
func normalizeHue(h float64) float64 {
	return floorMod(h, 360)
}

// floorMod returns x modulo m with the sign of m, so the result lies in
// [0, m) for positive m.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
		// x tiny and negative: r+m rounds up to m.
		if r >= m {
			r = 0
		}
	}
	return r
}
