package ratio

import (
	"fmt"

	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

func mean(series []fixed.Point) fixed.Point {
	sum := fixed.Zero
	for _, r := range series {
		sum = sum.Add(r)
	}
	return sum.DivInt(len(series))
}

// sampleStdDev uses the n-1 denominator. A single observation has no defined
// dispersion and yields zero, which the ratio stage treats as insufficient.
func sampleStdDev(series []fixed.Point, mean fixed.Point) fixed.Point {
	if len(series) <= 1 {
		return fixed.Zero
	}
	sum := fixed.Zero
	for _, r := range series {
		diff := r.Sub(mean)
		sum = sum.Add(diff.Mul(diff))
	}
	return sum.DivInt(len(series) - 1).Sqrt()
}

// geometricMean compounds in log space: exp(mean(ln(1+r))) - 1. A return of
// -100% or worse has no log-space representation and is surfaced as a domain
// error instead of being coerced.
func geometricMean(series []fixed.Point) (fixed.Point, error) {
	sum := fixed.Zero
	for _, r := range series {
		growth := fixed.One.Add(r)
		if growth.Lte(fixed.Zero) {
			return fixed.Zero, fmt.Errorf("%w: return %s cannot be compounded, growth factor is non-positive", ErrNumericDomain, r)
		}
		sum = sum.Add(growth.Log())
	}
	return sum.DivInt(len(series)).Exp().Sub(fixed.One), nil
}

// describe summarizes the original-unit reporting series, so displayed
// extrema match what the caller supplied. Zero counts as non-negative.
type description struct {
	min      fixed.Point
	max      fixed.Point
	positive int
	negative int
}

func describe(series []fixed.Point) description {
	d := description{min: series[0], max: series[0]}
	for _, r := range series {
		d.min = d.min.Min(r)
		d.max = d.max.Max(r)
		if r.Gte(fixed.Zero) {
			d.positive++
		} else {
			d.negative++
		}
	}
	return d
}
