package tint

import (
	"fmt"
	"math"
	"strconv"
)

// Shape identifies which representation a Color currently holds.
type Shape uint8

const (
	// ShapeRGBA stores red, green, blue and alpha.
	ShapeRGBA Shape = iota
	// ShapeHSVA stores hue, saturation, value and alpha.
	ShapeHSVA
)

// String returns "RGBA" or "HSVA".
func (s Shape) String() string {
	switch s {
	case ShapeRGBA:
		return "RGBA"
	case ShapeHSVA:
		return "HSVA"
	}
	return "Shape(" + strconv.Itoa(int(s)) + ")"
}

// Color is a color held in exactly one of two shapes, RGBA or HSVA.
//
// Accessors and mutators of both models work on either shape. A read through
// the other model converts a temporary copy; a write through the other model
// converts a copy, updates it and converts it back, leaving the shape
// unchanged. Nothing is cached between calls.
//
// The zero value is transparent black in RGBA shape. Two colors compare equal
// with == only if they have the same shape and identical fields; use
// ApproxEqual to compare across shapes.
type Color struct {
	shape Shape
	// ch holds red, green, blue for ShapeRGBA and hue, saturation, value
	// for ShapeHSVA.
	ch [3]float64
	a  float64
}

// RGB creates an opaque color in RGBA shape.
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1.0)
}

// RGBA creates a color in RGBA shape.
func RGBA(r, g, b, a float64) Color {
	return Color{shape: ShapeRGBA, ch: [3]float64{r, g, b}, a: a}
}

// HSV creates an opaque color in HSVA shape.
// h is hue in degrees, s and v are in [0, 1].
func HSV(h, s, v float64) Color {
	return HSVA(h, s, v, 1.0)
}

// HSVA creates a color in HSVA shape.
func HSVA(h, s, v, a float64) Color {
	return Color{shape: ShapeHSVA, ch: [3]float64{h, s, v}, a: a}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// Shape reports the representation c currently holds.
func (c Color) Shape() Shape {
	return c.shape
}

// badShape formats the panic message for a Shape outside the closed set.
func badShape(s Shape) string {
	return "tint: unreachable shape " + s.String()
}

// ToRGBA returns c in RGBA shape. An RGBA color is returned unchanged.
func (c Color) ToRGBA() Color {
	switch c.shape {
	case ShapeRGBA:
		return c
	case ShapeHSVA:
		r, g, b := hsvToRGB(c.ch[0], c.ch[1], c.ch[2])
		return Color{shape: ShapeRGBA, ch: [3]float64{r, g, b}, a: c.a}
	default:
		panic(badShape(c.shape))
	}
}

// ToHSVA returns c in HSVA shape. An HSVA color is returned unchanged.
func (c Color) ToHSVA() Color {
	switch c.shape {
	case ShapeHSVA:
		return c
	case ShapeRGBA:
		h, s, v := rgbToHSV(c.ch[0], c.ch[1], c.ch[2])
		return Color{shape: ShapeHSVA, ch: [3]float64{h, s, v}, a: c.a}
	default:
		panic(badShape(c.shape))
	}
}

// In returns c converted to the given shape.
func (c Color) In(s Shape) Color {
	switch s {
	case ShapeRGBA:
		return c.ToRGBA()
	case ShapeHSVA:
		return c.ToHSVA()
	default:
		panic(badShape(s))
	}
}

// R returns the red channel.
func (c Color) R() float64 { return c.ToRGBA().ch[0] }

// G returns the green channel.
func (c Color) G() float64 { return c.ToRGBA().ch[1] }

// B returns the blue channel.
func (c Color) B() float64 { return c.ToRGBA().ch[2] }

// H returns the hue in degrees.
func (c Color) H() float64 { return c.ToHSVA().ch[0] }

// S returns the saturation.
func (c Color) S() float64 { return c.ToHSVA().ch[1] }

// V returns the value (brightness).
func (c Color) V() float64 { return c.ToHSVA().ch[2] }

// A returns alpha. No conversion is involved.
func (c Color) A() float64 { return c.a }

// RGBAValues returns all four RGBA channels with a single conversion.
func (c Color) RGBAValues() (r, g, b, a float64) {
	rgba := c.ToRGBA()
	return rgba.ch[0], rgba.ch[1], rgba.ch[2], rgba.a
}

// HSVAValues returns all four HSVA channels with a single conversion.
func (c Color) HSVAValues() (h, s, v, a float64) {
	hsva := c.ToHSVA()
	return hsva.ch[0], hsva.ch[1], hsva.ch[2], hsva.a
}

// SetR sets the red channel and returns c for chaining.
func (c *Color) SetR(r float64) *Color { return c.set(ShapeRGBA, 0, r) }

// SetG sets the green channel and returns c for chaining.
func (c *Color) SetG(g float64) *Color { return c.set(ShapeRGBA, 1, g) }

// SetB sets the blue channel and returns c for chaining.
func (c *Color) SetB(b float64) *Color { return c.set(ShapeRGBA, 2, b) }

// SetH sets the hue in degrees and returns c for chaining.
func (c *Color) SetH(h float64) *Color { return c.set(ShapeHSVA, 0, h) }

// SetS sets the saturation and returns c for chaining.
func (c *Color) SetS(s float64) *Color { return c.set(ShapeHSVA, 1, s) }

// SetV sets the value (brightness) and returns c for chaining.
func (c *Color) SetV(v float64) *Color { return c.set(ShapeHSVA, 2, v) }

// SetA sets alpha in place, whatever the shape, and returns c for chaining.
func (c *Color) SetA(a float64) *Color {
	c.a = a
	return c
}

// set writes channel i of the native shape. When c holds the other shape,
// a copy is converted to native, updated, and converted back; c keeps its
// shape and takes over every channel and alpha of the result.
func (c *Color) set(native Shape, i int, v float64) *Color {
	if c.shape == native {
		c.ch[i] = v
		return c
	}
	tmp := c.In(native)
	tmp.ch[i] = v
	back := tmp.In(c.shape)
	c.ch = back.ch
	c.a = back.a
	return c
}

// Equal reports whether c and o hold the same shape and identical fields.
// It is the same as c == o; a NaN channel makes any color unequal to itself.
func (c Color) Equal(o Color) bool {
	return c == o
}

// ApproxEqual reports whether c and o agree within tol on every channel of
// both models. The hue is compared on the circle, so 0 and 359.9999 are close.
func (c Color) ApproxEqual(o Color, tol float64) bool {
	r1, g1, b1, a1 := c.RGBAValues()
	r2, g2, b2, a2 := o.RGBAValues()
	h1, s1, v1, _ := c.HSVAValues()
	h2, s2, v2, _ := o.HSVAValues()

	return near(r1, r2, tol) && near(g1, g2, tol) && near(b1, b2, tol) &&
		near(a1, a2, tol) && near(s1, s2, tol) && near(v1, v2, tol) &&
		hueNear(h1, h2, tol)
}

func near(a, b, tol float64) bool {
	return a == b || math.Abs(a-b) <= tol
}

func hueNear(a, b, tol float64) bool {
	d := math.Abs(normalizeHue(a) - normalizeHue(b))
	return near(d, 0, tol) || near(d, 360, tol)
}

// String renders c in its current shape, e.g. "rgba(1, 0.5, 0.25, 1)".
func (c Color) String() string {
	switch c.shape {
	case ShapeRGBA:
		return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.ch[0], c.ch[1], c.ch[2], c.a)
	case ShapeHSVA:
		return fmt.Sprintf("hsva(%g, %g, %g, %g)", c.ch[0], c.ch[1], c.ch[2], c.a)
	default:
		panic(badShape(c.shape))
	}
}
