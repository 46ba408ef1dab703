package color

import (
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

var functionalPattern = regexp.MustCompile(`^(rgb|hsl|hsb)(a?)\((.*)\)$`)

// Parse converts a textual color into a Color. Supported forms are hex
// (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb()/rgba(), hsl()/hsla() and
// hsb()/hsba(). Out of range channel values are clamped.
func Parse(value string) (Color, error) {
	input := strings.ToLower(strings.TrimSpace(value))
	if input == "" {
		return nil, swatcherrors.NewColorFormatError(value, "empty color", nil)
	}

	if strings.HasPrefix(input, "#") {
		return parseHex(value, input)
	}

	matches := functionalPattern.FindStringSubmatch(input)
	if matches == nil {
		return nil, swatcherrors.NewColorFormatError(value, "unrecognised color format", nil)
	}

	args := splitArgs(matches[3])
	// Alpha comes either from the "a" suffix or the space separated
	// "r g b / a" form.
	wantAlpha := matches[2] == "a" || strings.Contains(matches[3], "/")
	if (wantAlpha && len(args) != 4) || (!wantAlpha && len(args) != 3) {
		return nil, swatcherrors.NewColorFormatError(value, "wrong number of channel values", nil)
	}

	nums := make([]float64, len(args))
	for i, arg := range args {
		n, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
		if err != nil {
			return nil, swatcherrors.NewColorFormatError(value, "invalid channel value "+strconv.Quote(arg), err)
		}
		nums[i] = n
	}

	alpha := 1.0
	if wantAlpha {
		alpha = nums[3]
		if strings.HasSuffix(args[3], "%") {
			alpha /= 100
		}
	}

	var c Color
	switch Space(matches[1]) {
	case SpaceRGB:
		c = RGB{R: nums[0], G: nums[1], B: nums[2], A: alpha}
	case SpaceHSL:
		c = HSL{H: nums[0], S: nums[1], L: nums[2], A: alpha}
	case SpaceHSB:
		c = HSB{H: nums[0], S: nums[1], B: nums[2], A: alpha}
	}
	return Normalize(c), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(value string) Color {
	c, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(original, input string) (Color, error) {
	digits := input[1:]
	alpha := 1.0

	switch len(digits) {
	case 4:
		a, err := strconv.ParseUint(digits[3:], 16, 8)
		if err != nil {
			return nil, swatcherrors.NewColorFormatError(original, "invalid hex digits", err)
		}
		alpha = roundTo(float64(a*17)/255, 2)
		digits = digits[:3]
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return nil, swatcherrors.NewColorFormatError(original, "invalid hex digits", err)
		}
		alpha = roundTo(float64(a)/255, 2)
		digits = digits[:6]
	case 3, 6:
	default:
		return nil, swatcherrors.NewColorFormatError(original, "hex colors need 3, 4, 6 or 8 digits", nil)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return nil, swatcherrors.NewColorFormatError(original, "invalid hex digits", err)
	}
	return rgbFromColorful(c, alpha), nil
}

func splitArgs(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/' || r == '\t'
	})
	return fields
}
