// Package numeric holds the clamping and stepping helpers shared by the
// color editing states.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Clamp restricts v to [min, max].
func Clamp(v, min, max float64) float64 {
	return math.Min(math.Max(v, min), max)
}

// SnapToStep rounds v to the nearest multiple of step counted from min and
// then clamps the result to [min, max]. A value past max snaps to the largest
// step multiple that still fits in the range. The result is rounded to the
// decimal precision of step.
func SnapToStep(v, min, max, step float64) float64 {
	remainder := math.Mod(v-min, step)
	snapped := v - remainder
	if math.Abs(remainder)*2 >= step {
		snapped = v + math.Copysign(step-math.Abs(remainder), remainder)
	}

	if snapped < min {
		snapped = min
	} else if snapped > max {
		snapped = min + math.Floor((max-min)/step)*step
	}

	if precision := stepPrecision(step); precision > 0 {
		pow := math.Pow(10, float64(precision))
		snapped = math.Round(snapped*pow) / pow
	}
	return snapped
}

func stepPrecision(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
