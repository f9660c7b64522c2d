package ratio

import (
	"fmt"

	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

type Format uint8

const (
	FormatAuto Format = iota
	FormatPercent
	FormatDecimal
	FormatAbsolute
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatPercent:
		return "percent"
	case FormatDecimal:
		return "decimal"
	case FormatAbsolute:
		return "absolute"
	default:
		return "unknown"
	}
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "auto":
		return FormatAuto, nil
	case "percent", "percentage":
		return FormatPercent, nil
	case "decimal":
		return FormatDecimal, nil
	case "absolute":
		return FormatAbsolute, nil
	default:
		return FormatAuto, fmt.Errorf("%w: unknown data format %q", ErrConfiguration, s)
	}
}

// Configuration is an immutable value passed into every Compute call. Rates
// are annual percentages, so AnnualRiskFreeRate of 2 means 2% per year.
type Configuration struct {
	AnnualRiskFreeRate fixed.Point
	PeriodsPerYear     fixed.Point
	// TargetRate is the annual percentage threshold for downside deviation.
	// When nil, the risk-free rate is reused.
	TargetRate *fixed.Point
	Format     Format
	// BaseCapital converts currency PnL to fractional returns. Required and
	// positive when Format is FormatAbsolute.
	BaseCapital fixed.Point
}

func (c Configuration) validate(observations int) error {
	if observations == 0 {
		return fmt.Errorf("%w: empty observation series", ErrConfiguration)
	}
	if c.PeriodsPerYear.Lte(fixed.Zero) {
		return fmt.Errorf("%w: periods per year must be positive, got %s", ErrConfiguration, c.PeriodsPerYear)
	}
	if c.Format == FormatAbsolute && c.BaseCapital.Lte(fixed.Zero) {
		return fmt.Errorf("%w: absolute data format requires a positive base capital", ErrConfiguration)
	}
	return nil
}
