package ratio

import (
	"fmt"

	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

// Auto-detection constants. Magnitude buckets are non-overlapping: (0,1) is
// decimal-like, (1,100] is percent-like, above 100 is absolute-like. A bucket
// wins when it holds at least DetectVotePercent of all observations. When no
// bucket wins, series with every magnitude inside
// [FallbackMinMagnitude, FallbackMaxMagnitude] are treated as percentages,
// anything else passes through as decimals.
const DetectVotePercent = 70

var (
	FallbackMinMagnitude = fixed.FromInt64(1, 2) // 0.01
	FallbackMaxMagnitude = fixed.Hundred
)

// normalize maps raw observations to per-period fractional returns and
// reports the format that was actually applied. The converted flag is set
// only when a currency series was divided by base capital.
func normalize(observations []fixed.Point, cfg Configuration) (series []fixed.Point, effective Format, converted bool, err error) {
	switch cfg.Format {
	case FormatPercent:
		return divideBy(observations, fixed.Hundred), FormatPercent, false, nil
	case FormatDecimal:
		return passThrough(observations), FormatDecimal, false, nil
	case FormatAbsolute:
		// validate() guarantees a positive base capital here
		return divideBy(observations, cfg.BaseCapital), FormatAbsolute, true, nil
	case FormatAuto:
		series, effective = detect(observations)
		return series, effective, false, nil
	default:
		return nil, cfg.Format, false, fmt.Errorf("%w: unknown data format %d", ErrConfiguration, cfg.Format)
	}
}

func detect(observations []fixed.Point) ([]fixed.Point, Format) {
	var percentLike, decimalLike, absoluteLike int
	for _, o := range observations {
		m := o.Abs()
		switch {
		case m.Gt(fixed.One) && m.Lte(fixed.Hundred):
			percentLike++
		case m.Gt(fixed.Zero) && m.Lt(fixed.One):
			decimalLike++
		case m.Gt(fixed.Hundred):
			absoluteLike++
		}
	}

	n := len(observations)
	switch {
	case 100*percentLike >= DetectVotePercent*n:
		return divideBy(observations, fixed.Hundred), FormatPercent
	case 100*decimalLike >= DetectVotePercent*n:
		return passThrough(observations), FormatDecimal
	case 100*absoluteLike >= DetectVotePercent*n:
		// Magnitudes beyond percentage range pass through untouched but are
		// tagged absolute so downstream annualization switches to simple
		// per-period scaling.
		return passThrough(observations), FormatAbsolute
	}

	// No bucket reached the vote threshold.
	if allWithin(observations, FallbackMinMagnitude, FallbackMaxMagnitude) {
		return divideBy(observations, fixed.Hundred), FormatPercent
	}
	return passThrough(observations), FormatDecimal
}

func allWithin(observations []fixed.Point, lo, hi fixed.Point) bool {
	for _, o := range observations {
		m := o.Abs()
		if m.Lt(lo) || m.Gt(hi) {
			return false
		}
	}
	return true
}

func divideBy(observations []fixed.Point, divisor fixed.Point) []fixed.Point {
	out := make([]fixed.Point, len(observations))
	for i, o := range observations {
		out[i] = o.Div(divisor)
	}
	return out
}

// passThrough copies so the engine never aliases the caller's slice.
func passThrough(observations []fixed.Point) []fixed.Point {
	out := make([]fixed.Point, len(observations))
	copy(out, observations)
	return out
}
