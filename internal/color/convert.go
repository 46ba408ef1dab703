package color

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

func (c HSL) colorful() colorful.Color {
	return colorful.Hsl(c.H, c.S/100, c.L/100)
}

func (c HSB) colorful() colorful.Color {
	return colorful.Hsv(c.H, c.S/100, c.B/100)
}

// RGB channels are rounded to whole numbers and the cylindrical spaces to
// two decimals so that conversions land on the default channel steps.
func rgbFromColorful(c colorful.Color, alpha float64) RGB {
	c = c.Clamped()
	return RGB{
		R: math.Round(c.R * 255),
		G: math.Round(c.G * 255),
		B: math.Round(c.B * 255),
		A: alpha,
	}
}

func hslFromColorful(c colorful.Color, alpha float64) HSL {
	h, s, l := c.Clamped().Hsl()
	return HSL{H: roundTo(h, 2), S: roundTo(s*100, 2), L: roundTo(l*100, 2), A: alpha}
}

func hsbFromColorful(c colorful.Color, alpha float64) HSB {
	h, s, v := c.Clamped().Hsv()
	return HSB{H: roundTo(h, 2), S: roundTo(s*100, 2), B: roundTo(v*100, 2), A: alpha}
}

// FromColorful wraps a go-colorful value as an opaque RGB color.
func FromColorful(c colorful.Color) Color {
	return rgbFromColorful(c, 1)
}

// ToColorful converts c to a go-colorful value, dropping alpha.
func ToColorful(c Color) colorful.Color {
	switch v := c.(type) {
	case RGB:
		return v.colorful()
	case HSL:
		return v.colorful()
	case HSB:
		return v.colorful()
	}
	rgb := c.ToSpace(SpaceRGB)
	return colorful.Color{
		R: rgb.ChannelValue(Red) / 255,
		G: rgb.ChannelValue(Green) / 255,
		B: rgb.ChannelValue(Blue) / 255,
	}
}
