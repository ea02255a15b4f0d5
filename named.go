package tint

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Named returns the SVG 1.1 color keyword name as an opaque color in RGBA
// shape. Matching ignores case and surrounding space, so "SteelBlue" and
// " steelblue" are the same color.
func Named(name string) (Color, error) {
	// A Caser is stateful; build one per call.
	key := cases.Fold().String(strings.TrimSpace(name))
	c, ok := colornames.Map[key]
	if !ok {
		return Color{}, errors.Wrapf(ErrUnknownName, "lookup %q", name)
	}
	return FromColor(c), nil
}

// Names returns the recognized color keywords in lexical order.
func Names() []string {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	return names
}
