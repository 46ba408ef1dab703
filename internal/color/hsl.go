package color

import (
	"fmt"
)

// HSL is a color with hue in degrees and saturation/lightness in percent.
type HSL struct {
	H, S, L float64
	A       float64
}

// Space implements Color.
func (c HSL) Space() Space { return SpaceHSL }

// ChannelValue implements Color.
func (c HSL) ChannelValue(ch Channel) float64 {
	switch ch {
	case Hue:
		return c.H
	case Saturation:
		return c.S
	case Lightness:
		return c.L
	case Alpha:
		return c.A
	}
	panic(unsupported(SpaceHSL, ch))
}

// ChannelRange implements Color.
func (c HSL) ChannelRange(ch Channel) ChannelRange { return rangeFor(SpaceHSL, ch) }

// WithChannelValue implements Color.
func (c HSL) WithChannelValue(ch Channel, value float64) Color {
	switch ch {
	case Hue:
		c.H = value
	case Saturation:
		c.S = value
	case Lightness:
		c.L = value
	case Alpha:
		c.A = value
	default:
		panic(unsupported(SpaceHSL, ch))
	}
	return c
}

// ToSpace implements Color.
func (c HSL) ToSpace(space Space) Color {
	switch space {
	case SpaceRGB:
		return rgbFromColorful(c.colorful(), c.A)
	case SpaceHSB:
		return hsbFromColorful(c.colorful(), c.A)
	default:
		return c
	}
}

// Hex implements Color.
func (c HSL) Hex() string { return c.colorful().Clamped().Hex() }

func (c HSL) String() string {
	if c.A == 1 {
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatNumber(c.H), formatNumber(c.S), formatNumber(c.L))
	}
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", formatNumber(c.H), formatNumber(c.S), formatNumber(c.L), formatNumber(c.A))
}
