package tint

import "github.com/pkg/errors"

// Sentinel errors for the parsing constructors. Returned errors wrap these
// with the offending input; test with errors.Is.
var (
	// ErrInvalidHex is returned by ParseHex for malformed hex strings.
	ErrInvalidHex = errors.New("tint: invalid hex color")

	// ErrUnknownName is returned by Named for names outside the SVG keyword set.
	ErrUnknownName = errors.New("tint: unknown color name")

	// ErrUnknownChannel is returned by ParseChannel.
	ErrUnknownChannel = errors.New("tint: unknown channel")
)
