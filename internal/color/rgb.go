package color

import (
	"fmt"
)

// RGB is a color in the sRGB space with 0-255 channels and 0-1 alpha.
type RGB struct {
	R, G, B float64
	A       float64
}

// Space implements Color.
func (c RGB) Space() Space { return SpaceRGB }

// ChannelValue implements Color.
func (c RGB) ChannelValue(ch Channel) float64 {
	switch ch {
	case Red:
		return c.R
	case Green:
		return c.G
	case Blue:
		return c.B
	case Alpha:
		return c.A
	}
	panic(unsupported(SpaceRGB, ch))
}

// ChannelRange implements Color.
func (c RGB) ChannelRange(ch Channel) ChannelRange { return rangeFor(SpaceRGB, ch) }

// WithChannelValue implements Color.
func (c RGB) WithChannelValue(ch Channel, value float64) Color {
	switch ch {
	case Red:
		c.R = value
	case Green:
		c.G = value
	case Blue:
		c.B = value
	case Alpha:
		c.A = value
	default:
		panic(unsupported(SpaceRGB, ch))
	}
	return c
}

// ToSpace implements Color.
func (c RGB) ToSpace(space Space) Color {
	switch space {
	case SpaceHSL:
		return hslFromColorful(c.colorful(), c.A)
	case SpaceHSB:
		return hsbFromColorful(c.colorful(), c.A)
	default:
		return c
	}
}

// Hex implements Color.
func (c RGB) Hex() string { return c.colorful().Clamped().Hex() }

func (c RGB) String() string {
	if c.A == 1 {
		return fmt.Sprintf("rgb(%s, %s, %s)", formatNumber(c.R), formatNumber(c.G), formatNumber(c.B))
	}
	return fmt.Sprintf("rgba(%s, %s, %s, %s)", formatNumber(c.R), formatNumber(c.G), formatNumber(c.B), formatNumber(c.A))
}
