// Package view composes colored shapes into drawable layouts.
//
// A View reports its bounding box and renders itself into a
// recording.Recorder. Views never inspect the colors they carry; a Swatch
// hands its tint.Color to the recorder exactly as it was given.
//
// Example:
//
//	row := view.Row(0, 0, 32, 4, tint.Red, tint.HSV(120, 1, 1), tint.Blue)
//	rec := view.Record(row)
//	rec.Playback(raster.NewBackend())
package view

import (
	"math"

	"github.com/gogpu/tint"
	"github.com/gogpu/tint/recording"
)

// View is anything that can report its bounds and draw itself.
type View interface {
	// Size returns the bounding box of the view.
	Size() tint.Rect

	// Render records the view's drawing commands into rec.
	Render(rec *recording.Recorder)
}

// Swatch is a square of solid color.
type Swatch struct {
	Bounds tint.Rect
	Color  tint.Color
}

// NewSwatch creates a swatch at (x, y) with the given side length.
func NewSwatch(x, y, size float64, c tint.Color) *Swatch {
	return &Swatch{Bounds: tint.Rect{X: x, Y: y, W: size, H: size}, Color: c}
}

// Size implements View.
func (s *Swatch) Size() tint.Rect {
	return s.Bounds
}

// Render implements View. The recorder's style is left as it was found.
func (s *Swatch) Render(rec *recording.Recorder) {
	rec.Save()
	defer rec.Restore()

	rec.SetColor(s.Color)
	rec.DrawSquare(s.Bounds)
}

// Group is an ordered collection of views. Later children draw on top.
type Group struct {
	children []View
}

// NewGroup creates a group of the given views. Nil views are dropped.
func NewGroup(views ...View) *Group {
	g := &Group{children: make([]View, 0, len(views))}
	for _, v := range views {
		g.Add(v)
	}
	return g
}

// Add appends v to the group and returns the group for chaining.
func (g *Group) Add(v View) *Group {
	if v != nil {
		g.children = append(g.children, v)
	}
	return g
}

// Len returns the number of children.
func (g *Group) Len() int {
	return len(g.children)
}

// Children returns a copy of the group's children.
func (g *Group) Children() []View {
	out := make([]View, len(g.children))
	copy(out, g.children)
	return out
}

// Size implements View. It is the union of the children's bounds; an empty
// group has a zero Rect.
func (g *Group) Size() tint.Rect {
	var r tint.Rect
	for _, v := range g.children {
		r = r.Union(v.Size())
	}
	return r
}

// Render implements View.
func (g *Group) Render(rec *recording.Recorder) {
	for _, v := range g.children {
		v.Render(rec)
	}
}

// Row lays colors out left to right as swatches of the given size,
// separated by gap, starting at (x, y).
func Row(x, y, size, gap float64, colors ...tint.Color) *Group {
	g := NewGroup()
	for i, c := range colors {
		g.Add(NewSwatch(x+float64(i)*(size+gap), y, size, c))
	}
	return g
}

// Record renders v into a fresh recorder sized to cover the view from the
// origin and returns the finished recording.
func Record(v View) *recording.Recording {
	r := v.Size()
	w := int(math.Ceil(math.Max(r.MaxX(), 0)))
	h := int(math.Ceil(math.Max(r.MaxY(), 0)))

	rec := recording.NewRecorder(w, h)
	v.Render(rec)
	tint.Logger().Debug("view: recorded", "width", w, "height", h, "commands", rec.Len())
	return rec.FinishRecording()
}
