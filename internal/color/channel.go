package color

import "strings"

// Channel names a single numeric component of a color.
type Channel string

const (
	Hue        Channel = "hue"
	Saturation Channel = "saturation"
	Brightness Channel = "brightness"
	Lightness  Channel = "lightness"
	Red        Channel = "red"
	Green      Channel = "green"
	Blue       Channel = "blue"
	Alpha      Channel = "alpha"
)

var knownChannels = map[Channel]struct{}{
	Hue: {}, Saturation: {}, Brightness: {}, Lightness: {},
	Red: {}, Green: {}, Blue: {}, Alpha: {},
}

// ParseChannel resolves a channel name, ignoring case and surrounding space.
func ParseChannel(name string) (Channel, bool) {
	ch := Channel(strings.ToLower(strings.TrimSpace(name)))
	_, ok := knownChannels[ch]
	return ch, ok
}

// Space identifies a color model.
type Space string

const (
	SpaceRGB Space = "rgb"
	SpaceHSL Space = "hsl"
	SpaceHSB Space = "hsb"
)

// Channels returns the three color channels of the space in canonical order.
// Alpha is shared by every space and is not included.
func (s Space) Channels() [3]Channel {
	switch s {
	case SpaceHSL:
		return [3]Channel{Hue, Saturation, Lightness}
	case SpaceHSB:
		return [3]Channel{Hue, Saturation, Brightness}
	default:
		return [3]Channel{Red, Green, Blue}
	}
}

// Has reports whether ch is one of the space's color channels.
func (s Space) Has(ch Channel) bool {
	for _, c := range s.Channels() {
		if c == ch {
			return true
		}
	}
	return false
}

// ChannelRange describes the numeric domain of a channel.
type ChannelRange struct {
	MinValue float64
	MaxValue float64
	Step     float64
	PageSize float64
}

var (
	rgbRange     = ChannelRange{MinValue: 0, MaxValue: 255, Step: 1, PageSize: 17}
	hueRange     = ChannelRange{MinValue: 0, MaxValue: 360, Step: 1, PageSize: 15}
	percentRange = ChannelRange{MinValue: 0, MaxValue: 100, Step: 1, PageSize: 10}
	alphaRange   = ChannelRange{MinValue: 0, MaxValue: 1, Step: 0.01, PageSize: 0.1}
)

func rangeFor(space Space, ch Channel) ChannelRange {
	if ch == Alpha {
		return alphaRange
	}
	if !space.Has(ch) {
		panic(unsupported(space, ch))
	}
	switch ch {
	case Red, Green, Blue:
		return rgbRange
	case Hue:
		return hueRange
	default:
		return percentRange
	}
}
