// Package color provides immutable color values in the RGB, HSL and HSB
// color spaces together with the channel metadata used by the editing
// states in this module.
package color

import (
	"math"
	"strconv"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// Color is an immutable color value. Every mutator returns a new value.
//
// Implementations are comparable, so two colors are equal with == when they
// share a color space and all channel values.
type Color interface {
	Space() Space
	ChannelValue(ch Channel) float64
	ChannelRange(ch Channel) ChannelRange
	WithChannelValue(ch Channel, value float64) Color
	ToSpace(space Space) Color
	// Hex formats the color as #rrggbb, ignoring alpha.
	Hex() string
	String() string
}

// White is opaque white.
var White Color = RGB{R: 255, G: 255, B: 255, A: 1}

// Normalize clamps every channel of c into its range. Hue values outside
// [0, 360] are wrapped rather than clamped.
func Normalize(c Color) Color {
	if c == nil {
		return nil
	}
	space := c.Space()
	out := c
	for _, ch := range space.Channels() {
		out = out.WithChannelValue(ch, normalizeChannel(space, ch, out.ChannelValue(ch)))
	}
	return out.WithChannelValue(Alpha, normalizeChannel(space, Alpha, out.ChannelValue(Alpha)))
}

func normalizeChannel(space Space, ch Channel, v float64) float64 {
	r := rangeFor(space, ch)
	if ch == Hue && (v < r.MinValue || v > r.MaxValue) {
		v = math.Mod(v, r.MaxValue)
		if v < 0 {
			v += r.MaxValue
		}
		return v
	}
	return math.Max(r.MinValue, math.Min(r.MaxValue, v))
}

func unsupported(space Space, ch Channel) error {
	return swatcherrors.NewChannelError(string(ch), string(space))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func roundTo(v float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}
