package color

import (
	"testing"

	"github.com/stretchr/testify/require"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

func TestSpaceChannels(t *testing.T) {
	t.Parallel()

	require.Equal(t, [3]Channel{Red, Green, Blue}, SpaceRGB.Channels())
	require.Equal(t, [3]Channel{Hue, Saturation, Lightness}, SpaceHSL.Channels())
	require.Equal(t, [3]Channel{Hue, Saturation, Brightness}, SpaceHSB.Channels())
	require.True(t, SpaceHSB.Has(Brightness))
	require.False(t, SpaceHSB.Has(Lightness))
	require.False(t, SpaceRGB.Has(Alpha))
}

func TestChannelRanges(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		color Color
		ch    Channel
		want  ChannelRange
	}{
		{"rgb red", RGB{A: 1}, Red, ChannelRange{0, 255, 1, 17}},
		{"rgb alpha", RGB{A: 1}, Alpha, ChannelRange{0, 1, 0.01, 0.1}},
		{"hsl hue", HSL{A: 1}, Hue, ChannelRange{0, 360, 1, 15}},
		{"hsl lightness", HSL{A: 1}, Lightness, ChannelRange{0, 100, 1, 10}},
		{"hsb saturation", HSB{A: 1}, Saturation, ChannelRange{0, 100, 1, 10}},
		{"hsb brightness", HSB{A: 1}, Brightness, ChannelRange{0, 100, 1, 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.color.ChannelRange(tc.ch))
		})
	}
}

func TestWithChannelValueReturnsNewValue(t *testing.T) {
	t.Parallel()

	original := RGB{R: 255, G: 0, B: 0, A: 1}
	updated := original.WithChannelValue(Blue, 128)

	require.Equal(t, 0.0, original.B)
	require.Equal(t, 128.0, updated.ChannelValue(Blue))
	require.Equal(t, 255.0, updated.ChannelValue(Red))
	require.NotEqual(t, Color(original), updated)
	require.Equal(t, Color(original), original.WithChannelValue(Blue, 0))
}

func TestUnsupportedChannelPanics(t *testing.T) {
	t.Parallel()

	require.PanicsWithError(t, `unsupported color channel "red" for hsb`, func() {
		HSB{A: 1}.ChannelValue(Red)
	})
	require.Panics(t, func() { RGB{A: 1}.ChannelRange(Hue) })
	require.Panics(t, func() { HSL{A: 1}.WithChannelValue(Brightness, 10) })

	defer func() {
		r := recover()
		var channelErr *swatcherrors.ChannelError
		require.ErrorAs(t, r.(error), &channelErr)
		require.Equal(t, "lightness", channelErr.Channel)
	}()
	HSB{A: 1}.ChannelValue(Lightness)
}

func TestToSpace(t *testing.T) {
	t.Parallel()

	red := RGB{R: 255, A: 1}
	require.Equal(t, Color(HSB{H: 0, S: 100, B: 100, A: 1}), red.ToSpace(SpaceHSB))
	require.Equal(t, Color(HSL{H: 0, S: 100, L: 50, A: 1}), red.ToSpace(SpaceHSL))
	require.Equal(t, Color(red), red.ToSpace(SpaceRGB))

	green := HSB{H: 120, S: 100, B: 100, A: 0.5}
	require.Equal(t, Color(RGB{G: 255, A: 0.5}), green.ToSpace(SpaceRGB))
	require.Equal(t, Color(HSL{H: 120, S: 100, L: 50, A: 0.5}), green.ToSpace(SpaceHSL))

	white := HSL{H: 0, S: 0, L: 100, A: 1}
	require.Equal(t, Color(RGB{R: 255, G: 255, B: 255, A: 1}), white.ToSpace(SpaceRGB))
}

func TestHexAndString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#ff0000", RGB{R: 255, A: 1}.Hex())
	require.Equal(t, "#ff0000", HSL{H: 0, S: 100, L: 50, A: 1}.Hex())
	require.Equal(t, "#00ff00", HSB{H: 120, S: 100, B: 100, A: 1}.Hex())

	require.Equal(t, "rgb(255, 0, 0)", RGB{R: 255, A: 1}.String())
	require.Equal(t, "rgba(255, 0, 0, 0.5)", RGB{R: 255, A: 0.5}.String())
	require.Equal(t, "hsl(200, 50%, 25%)", HSL{H: 200, S: 50, L: 25, A: 1}.String())
	require.Equal(t, "hsba(10, 20%, 30%, 0.4)", HSB{H: 10, S: 20, B: 30, A: 0.4}.String())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	require.Nil(t, Normalize(nil))
	require.Equal(t, Color(RGB{R: 255, G: 0, B: 12, A: 1}), Normalize(RGB{R: 300, G: -4, B: 12, A: 3}))
	require.Equal(t, Color(HSB{H: 20, S: 100, B: 0, A: 1}), Normalize(HSB{H: 380, S: 120, B: -1, A: 1}))
	require.Equal(t, Color(HSL{H: 330, S: 0, L: 50, A: 0}), Normalize(HSL{H: -30, S: 0, L: 50, A: 0}))
	require.Equal(t, Color(HSL{H: 360, S: 0, L: 50, A: 1}), Normalize(HSL{H: 360, S: 0, L: 50, A: 1}))
}

func TestParseChannel(t *testing.T) {
	t.Parallel()

	ch, ok := ParseChannel(" Brightness ")
	require.True(t, ok)
	require.Equal(t, Brightness, ch)

	_, ok = ParseChannel("chroma")
	require.False(t, ok)
}
