// Package tint provides a color value that can be read and written through
// both the RGB and the HSV color models.
//
// # Overview
//
// A [Color] always holds exactly one representation, called its [Shape]:
// either RGBA (red, green, blue, alpha) or HSVA (hue, saturation, value,
// alpha). Callers never need to know which one. Every accessor converts on
// demand, and every mutator that targets the other model converts a copy,
// updates it, and converts it back without changing the receiver's shape.
//
// # Quick Start
//
//	import "github.com/gogpu/tint"
//
//	c := tint.RGB(1, 0.5, 0.25)
//	c.H() // 20
//	c.S() // 0.75
//
//	// Mutators chain and may mix models freely.
//	c.SetH(200).SetV(0.5).SetA(0.8)
//
// # Ranges
//
// Red, green, blue, saturation, value and alpha are intended to lie in
// [0, 1]; hue is in degrees, [0, 360). Nothing is validated or clamped.
// Out-of-range values are stored as given and flow through conversions.
// The single exception is hue, which [Color.ToRGBA] reduces modulo 360
// so that 360 behaves like 0 and -30 like 330.
//
// Alpha is never recomputed: every conversion and mutation carries it
// through bit-for-bit.
//
// # Interoperability
//
// Color implements [image/color.Color], and [Model] converts any
// image/color value into a Color. [Hex] and [Named] build colors from CSS
// style hex strings and SVG color keywords. [Color.Vec4] hands the RGBA
// channels to float32 shader code.
//
// # Concurrency
//
// Color is a small value type. Copy it rather than sharing a pointer
// between goroutines; no locking is involved anywhere in this package.
package tint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
