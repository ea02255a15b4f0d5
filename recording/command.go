package recording

import (
	"strconv"

	"github.com/gogpu/tint"
)

// ShapeKind identifies the kind of a drawable shape.
type ShapeKind uint8

const (
	// KindSquare is an axis-aligned rectangle.
	KindSquare ShapeKind = iota
)

// shapeKindNames maps ShapeKind values to their string representation.
var shapeKindNames = [...]string{
	KindSquare: "Square",
}

// String returns the string representation of a ShapeKind.
func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return "ShapeKind(" + strconv.Itoa(int(k)) + ")"
}

// Shape is a drawable primitive.
// This is a sealed interface - only types in this package implement it.
type Shape interface {
	// Kind returns the ShapeKind of this shape.
	Kind() ShapeKind

	// Bounds returns the bounding box of the shape.
	Bounds() tint.Rect

	// shapeMarker is an unexported method that seals this interface.
	shapeMarker()
}

// Square is an axis-aligned filled rectangle.
type Square struct {
	Rect tint.Rect
}

func (Square) shapeMarker() {}

// Kind implements Shape.
func (Square) Kind() ShapeKind { return KindSquare }

// Bounds implements Shape.
func (s Square) Bounds() tint.Rect { return s.Rect }

// Style is the visual style a shape is drawn with.
type Style struct {
	// Color is passed to backends as recorded, in whichever shape it holds.
	Color tint.Color
}

// DefaultStyle returns the style a new Recorder starts with: opaque black.
func DefaultStyle() Style {
	return Style{Color: tint.Black}
}

// Command pairs a shape with the style it is drawn in.
type Command struct {
	Shape Shape
	Style Style
}

// Bounds returns the bounding box of the command's shape.
// A command without a shape has an empty bounding box.
func (c Command) Bounds() tint.Rect {
	if c.Shape == nil {
		return tint.Rect{}
	}
	return c.Shape.Bounds()
}
