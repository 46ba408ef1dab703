package colorarea

import (
	"github.com/alexisbeaulieu97/swatch/internal/color"
)

// Channels partitions a color space into the two axis channels being edited
// and the fixed channel.
type Channels struct {
	X color.Channel
	Y color.Channel
	Z color.Channel
}

// InferChannels fills in missing axis channels for the given color space so
// that X, Y and Z cover the space's channels with no duplicates. Empty
// channels are treated as unset; a duplicate pair is treated as an unset Y.
func InferChannels(space color.Space, x, y color.Channel) Channels {
	if x != "" && x == y {
		y = ""
	}

	switch space {
	case color.SpaceHSB:
		x, y = inferCylindrical(x, y, color.Brightness)
	case color.SpaceHSL:
		x, y = inferCylindrical(x, y, color.Lightness)
	default:
		x, y = inferRGB(x, y)
	}

	return Channels{X: x, Y: y, Z: remaining(space, x, y)}
}

// inferCylindrical handles HSB and HSL, where value is brightness or
// lightness respectively. The default pair is (saturation, value).
func inferCylindrical(x, y, value color.Channel) (color.Channel, color.Channel) {
	switch {
	case x == "" && y == color.Hue:
		return value, y
	case x == "" && y == value:
		return color.Saturation, y
	case x == "":
		return color.Saturation, value
	case y == "" && x == color.Hue:
		return x, value
	case y == "" && x == value:
		return x, color.Saturation
	case y == "":
		return color.Saturation, value
	}
	return x, y
}

func inferRGB(x, y color.Channel) (color.Channel, color.Channel) {
	switch {
	case x == "" && (y == color.Red || y == color.Green):
		return color.Blue, y
	case x == "" && y == color.Blue:
		return color.Red, y
	case x == "":
		return color.Blue, color.Green
	case y == "" && x == color.Red:
		return x, color.Green
	case y == "" && x == color.Green:
		return x, color.Blue
	case y == "" && x == color.Blue:
		return x, color.Red
	case y == "":
		return color.Blue, color.Green
	}
	return x, y
}

func remaining(space color.Space, x, y color.Channel) color.Channel {
	for _, ch := range space.Channels() {
		if ch != x && ch != y {
			return ch
		}
	}
	return ""
}

// channelMemo caches inference keyed on its inputs.
type channelMemo struct {
	space  color.Space
	x, y   color.Channel
	valid  bool
	result Channels
}

func (m *channelMemo) resolve(space color.Space, x, y color.Channel) (Channels, bool) {
	if m.valid && m.space == space && m.x == x && m.y == y {
		return m.result, false
	}
	m.space, m.x, m.y = space, x, y
	m.result = InferChannels(space, x, y)
	m.valid = true
	return m.result, true
}
