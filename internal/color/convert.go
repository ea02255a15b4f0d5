package color

// ToU8 converts straight-alpha float components to ColorU8.
// Each component is clamped to [0,1] and mapped to [0,255] with rounding.
func ToU8(r, g, b, a float64) ColorU8 {
	return ColorU8{
		R: uint8(clampUnit(r)*255.0 + 0.5),
		G: uint8(clampUnit(g)*255.0 + 0.5),
		B: uint8(clampUnit(b)*255.0 + 0.5),
		A: uint8(clampUnit(a)*255.0 + 0.5),
	}
}

// ToU16Premul converts straight-alpha float components to an
// alpha-premultiplied ColorU16.
// Components are clamped to [0,1] before premultiplication.
func ToU16Premul(r, g, b, a float64) ColorU16 {
	a = clampUnit(a)
	return ColorU16{
		R: uint16(clampUnit(r)*a*0xffff + 0.5),
		G: uint16(clampUnit(g)*a*0xffff + 0.5),
		B: uint16(clampUnit(b)*a*0xffff + 0.5),
		A: uint16(a*0xffff + 0.5),
	}
}

// FromU16Premul converts alpha-premultiplied 16-bit components back to
// straight-alpha floats in [0,1].
// A fully transparent input yields all zeros.
func FromU16Premul(r, g, b, a uint32) (fr, fg, fb, fa float64) {
	if a == 0 {
		return 0, 0, 0, 0
	}
	fa = float64(a)
	return float64(r) / fa, float64(g) / fa, float64(b) / fa, fa / 0xffff
}

// clampUnit clamps v to [0,1]. NaN maps to 0.
func clampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}
