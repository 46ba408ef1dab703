package colorarea

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/color"
)

func TestInferChannels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		space color.Space
		x, y  color.Channel
		want  Channels
	}{
		{"hsb default", color.SpaceHSB, "", "", Channels{color.Saturation, color.Brightness, color.Hue}},
		{"hsb y hue", color.SpaceHSB, "", color.Hue, Channels{color.Brightness, color.Hue, color.Saturation}},
		{"hsb y brightness", color.SpaceHSB, "", color.Brightness, Channels{color.Saturation, color.Brightness, color.Hue}},
		{"hsb y saturation", color.SpaceHSB, "", color.Saturation, Channels{color.Saturation, color.Brightness, color.Hue}},
		{"hsb x hue", color.SpaceHSB, color.Hue, "", Channels{color.Hue, color.Brightness, color.Saturation}},
		{"hsb x brightness", color.SpaceHSB, color.Brightness, "", Channels{color.Brightness, color.Saturation, color.Hue}},
		{"hsb both", color.SpaceHSB, color.Hue, color.Saturation, Channels{color.Hue, color.Saturation, color.Brightness}},
		{"hsl default", color.SpaceHSL, "", "", Channels{color.Saturation, color.Lightness, color.Hue}},
		{"hsl y hue", color.SpaceHSL, "", color.Hue, Channels{color.Lightness, color.Hue, color.Saturation}},
		{"hsl y lightness", color.SpaceHSL, "", color.Lightness, Channels{color.Saturation, color.Lightness, color.Hue}},
		{"hsl x lightness", color.SpaceHSL, color.Lightness, "", Channels{color.Lightness, color.Saturation, color.Hue}},
		{"rgb default", color.SpaceRGB, "", "", Channels{color.Blue, color.Green, color.Red}},
		{"rgb y red", color.SpaceRGB, "", color.Red, Channels{color.Blue, color.Red, color.Green}},
		{"rgb y green", color.SpaceRGB, "", color.Green, Channels{color.Blue, color.Green, color.Red}},
		{"rgb y blue", color.SpaceRGB, "", color.Blue, Channels{color.Red, color.Blue, color.Green}},
		{"rgb x red", color.SpaceRGB, color.Red, "", Channels{color.Red, color.Green, color.Blue}},
		{"rgb x green", color.SpaceRGB, color.Green, "", Channels{color.Green, color.Blue, color.Red}},
		{"rgb x blue", color.SpaceRGB, color.Blue, "", Channels{color.Blue, color.Red, color.Green}},
		{"rgb duplicate pair", color.SpaceRGB, color.Red, color.Red, Channels{color.Red, color.Green, color.Blue}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, InferChannels(tc.space, tc.x, tc.y))
		})
	}
}

func TestInferChannelsIsTotal(t *testing.T) {
	t.Parallel()

	for _, space := range []color.Space{color.SpaceRGB, color.SpaceHSL, color.SpaceHSB} {
		all := space.Channels()
		inputs := append([]color.Channel{""}, all[:]...)

		for _, x := range inputs {
			for _, y := range inputs {
				got := InferChannels(space, x, y)

				seen := map[color.Channel]bool{got.X: true, got.Y: true, got.Z: true}
				require.Len(t, seen, 3, "space=%s x=%q y=%q got=%+v", space, x, y, got)
				for _, ch := range all {
					require.True(t, seen[ch], "space=%s x=%q y=%q missing %s", space, x, y, ch)
				}
			}
		}
	}
}

func TestChannelMemoRecomputesOnlyOnInputChange(t *testing.T) {
	t.Parallel()

	var memo channelMemo

	first, changed := memo.resolve(color.SpaceRGB, "", "")
	require.True(t, changed)

	again, changed := memo.resolve(color.SpaceRGB, "", "")
	require.False(t, changed)
	require.Equal(t, first, again)

	_, changed = memo.resolve(color.SpaceRGB, color.Red, "")
	require.True(t, changed)

	hsb, changed := memo.resolve(color.SpaceHSB, color.Red, "")
	require.True(t, changed)
	require.Equal(t, Channels{color.Saturation, color.Brightness, color.Hue}, hsb)
}
