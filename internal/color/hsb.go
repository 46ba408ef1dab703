package color

import (
	"fmt"
)

// HSB is a color with hue in degrees and saturation/brightness in percent.
// It is the same model that some toolkits call HSV.
type HSB struct {
	H, S, B float64
	A       float64
}

// Space implements Color.
func (c HSB) Space() Space { return SpaceHSB }

// ChannelValue implements Color.
func (c HSB) ChannelValue(ch Channel) float64 {
	switch ch {
	case Hue:
		return c.H
	case Saturation:
		return c.S
	case Brightness:
		return c.B
	case Alpha:
		return c.A
	}
	panic(unsupported(SpaceHSB, ch))
}

// ChannelRange implements Color.
func (c HSB) ChannelRange(ch Channel) ChannelRange { return rangeFor(SpaceHSB, ch) }

// WithChannelValue implements Color.
func (c HSB) WithChannelValue(ch Channel, value float64) Color {
	switch ch {
	case Hue:
		c.H = value
	case Saturation:
		c.S = value
	case Brightness:
		c.B = value
	case Alpha:
		c.A = value
	default:
		panic(unsupported(SpaceHSB, ch))
	}
	return c
}

// ToSpace implements Color.
func (c HSB) ToSpace(space Space) Color {
	switch space {
	case SpaceRGB:
		return rgbFromColorful(c.colorful(), c.A)
	case SpaceHSL:
		return hslFromColorful(c.colorful(), c.A)
	default:
		return c
	}
}

// Hex implements Color.
func (c HSB) Hex() string { return c.colorful().Clamped().Hex() }

func (c HSB) String() string {
	if c.A == 1 {
		return fmt.Sprintf("hsb(%s, %s%%, %s%%)", formatNumber(c.H), formatNumber(c.S), formatNumber(c.B))
	}
	return fmt.Sprintf("hsba(%s, %s%%, %s%%, %s)", formatNumber(c.H), formatNumber(c.S), formatNumber(c.B), formatNumber(c.A))
}
