package tint

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	icolor "github.com/gogpu/tint/internal/color"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

// RGBA implements color.Color. It returns alpha-premultiplied 16-bit
// channels; components outside [0, 1] are clamped at this boundary only.
func (c Color) RGBA() (r, g, b, a uint32) {
	q := icolor.ToU16Premul(c.RGBAValues())
	return uint32(q.R), uint32(q.G), uint32(q.B), uint32(q.A)
}

// NRGBA returns c quantized to a non-premultiplied 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	q := icolor.ToU8(c.RGBAValues())
	return color.NRGBA{R: q.R, G: q.G, B: q.B, A: q.A}
}

// FromColor converts a standard color.Color to a Color in RGBA shape.
// Alpha is un-premultiplied; a fully transparent input yields Transparent.
func FromColor(c color.Color) Color {
	if tc, ok := c.(Color); ok {
		return tc
	}
	return RGBA(icolor.FromU16Premul(c.RGBA()))
}

// Model converts any color.Color into a Color. Colors that already are a
// Color keep their shape.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// Vec4 returns the RGBA channels as a float32 vector (R, G, B, A).
func (c Color) Vec4() mgl32.Vec4 {
	r, g, b, a := c.RGBAValues()
	return mgl32.Vec4{float32(r), float32(g), float32(b), float32(a)}
}

// FromVec4 creates a color in RGBA shape from a float32 vector (R, G, B, A).
func FromVec4(v mgl32.Vec4) Color {
	return RGBA(float64(v.X()), float64(v.Y()), float64(v.Z()), float64(v.W()))
}
