package ratio

import (
	"fmt"

	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

// PeriodicRate converts an annual percentage rate to the equivalent
// per-period rate via compounding: (1 + a/100)^(1/N) - 1. Simple division
// a/100/N understates compounding over many periods.
func PeriodicRate(annualPercent, periodsPerYear fixed.Point) (fixed.Point, error) {
	base := fixed.One.Add(annualPercent.Div(fixed.Hundred))
	if base.Lte(fixed.Zero) {
		return fixed.Zero, fmt.Errorf("%w: annual rate %s%% cannot be compounded", ErrNumericDomain, annualPercent)
	}
	exponent := fixed.One.Div(periodsPerYear)
	return base.Pow(exponent).Sub(fixed.One), nil
}
