// Package color provides the fixed-point color types that tint quantizes
// into at the image/color boundary.
package color

// ColorU8 represents a non-premultiplied color with uint8 components in
// [0,255]. It matches the layout of image/color.NRGBA.
type ColorU8 struct {
	R, G, B, A uint8
}

// ColorU16 represents an alpha-premultiplied color with uint16 components
// in [0,0xffff]. It matches the contract of image/color.Color.RGBA.
type ColorU16 struct {
	R, G, B, A uint16
}
