package tint

import (
	"strconv"

	"github.com/pkg/errors"
)

// Channel names one of the seven scalar views of a Color.
type Channel uint8

const (
	ChannelR Channel = iota // red
	ChannelG                // green
	ChannelB                // blue
	ChannelH                // hue, in degrees
	ChannelS                // saturation
	ChannelV                // value
	ChannelA                // alpha
)

// channelNames maps Channel values to their single-letter name.
var channelNames = [...]string{
	ChannelR: "r",
	ChannelG: "g",
	ChannelB: "b",
	ChannelH: "h",
	ChannelS: "s",
	ChannelV: "v",
	ChannelA: "a",
}

// Channels lists every channel in canonical order: r, g, b, h, s, v, a.
func Channels() []Channel {
	return []Channel{ChannelR, ChannelG, ChannelB, ChannelH, ChannelS, ChannelV, ChannelA}
}

// String returns the single-letter channel name.
func (ch Channel) String() string {
	if int(ch) < len(channelNames) {
		return channelNames[ch]
	}
	return "Channel(" + strconv.Itoa(int(ch)) + ")"
}

// ParseChannel parses a single-letter channel name as returned by String.
func ParseChannel(name string) (Channel, error) {
	for i, n := range channelNames {
		if n == name {
			return Channel(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownChannel, "parse %q", name)
}

// Get returns the given channel of c.
func (c Color) Get(ch Channel) float64 {
	switch ch {
	case ChannelR:
		return c.R()
	case ChannelG:
		return c.G()
	case ChannelB:
		return c.B()
	case ChannelH:
		return c.H()
	case ChannelS:
		return c.S()
	case ChannelV:
		return c.V()
	case ChannelA:
		return c.A()
	}
	panic("tint: unknown channel " + ch.String())
}

// Set sets the given channel of c and returns c for chaining.
func (c *Color) Set(ch Channel, v float64) *Color {
	switch ch {
	case ChannelR:
		return c.SetR(v)
	case ChannelG:
		return c.SetG(v)
	case ChannelB:
		return c.SetB(v)
	case ChannelH:
		return c.SetH(v)
	case ChannelS:
		return c.SetS(v)
	case ChannelV:
		return c.SetV(v)
	case ChannelA:
		return c.SetA(v)
	}
	panic("tint: unknown channel " + ch.String())
}
