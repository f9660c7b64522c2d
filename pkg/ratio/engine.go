package ratio

import (
	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

// dispersionEpsilon guards the ratio divisions. A deviation at or below it
// means the series has no usable dispersion and the ratio is defined as zero
// rather than blowing up towards infinity.
var dispersionEpsilon = fixed.FromInt64(1, 8) // 1e-8

// Compute runs the full pipeline over one observation series: normalization,
// descriptive statistics, rate conversion, downside risk and the annualized
// Sharpe and Sortino ratios. It is a pure function: the caller's slice is
// never mutated and identical inputs produce identical results.
func Compute(observations []fixed.Point, cfg Configuration) (Result, error) {
	if err := cfg.validate(len(observations)); err != nil {
		return Result{}, err
	}

	fractional, effective, converted, err := normalize(observations, cfg)
	if err != nil {
		return Result{}, err
	}

	n := len(fractional)
	meanReturn := mean(fractional)
	stdDev := sampleStdDev(fractional, meanReturn)
	reported := describe(observations)

	riskFree, err := PeriodicRate(cfg.AnnualRiskFreeRate, cfg.PeriodsPerYear)
	if err != nil {
		return Result{}, err
	}
	target := riskFree
	if cfg.TargetRate != nil {
		if target, err = PeriodicRate(*cfg.TargetRate, cfg.PeriodsPerYear); err != nil {
			return Result{}, err
		}
	}

	downsideDev, downsideCount := downsideDeviation(fractional, target)

	excess := meanReturn.Sub(riskFree)
	annualization := cfg.PeriodsPerYear.Sqrt()

	sharpe := fixed.Zero
	if stdDev.Gt(dispersionEpsilon) {
		sharpe = excess.Div(stdDev).Mul(annualization)
	}
	sortino := fixed.Zero
	if downsideDev.Gt(dispersionEpsilon) {
		sortino = excess.Div(downsideDev).Mul(annualization)
	}

	// Unconverted currency magnitudes cannot be compounded, so the absolute
	// pass-through path annualizes by simple per-period scaling and reports
	// no geometric mean. Every other path compounds the geometric mean.
	geoMean := fixed.Zero
	var annualized fixed.Point
	if effective == FormatAbsolute && !converted {
		annualized = meanReturn.Mul(cfg.PeriodsPerYear)
	} else {
		if geoMean, err = geometricMean(fractional); err != nil {
			return Result{}, err
		}
		annualized = fixed.One.Add(geoMean).Pow(cfg.PeriodsPerYear).Sub(fixed.One)
	}

	sharpeStdError := fixed.Zero
	if n > 1 {
		sharpeStdError = fixed.One.Add(sharpe.Mul(sharpe).DivInt(2)).DivInt(n - 1).Sqrt()
	}

	return Result{
		SharpeRatio:         sharpe,
		SortinoRatio:        sortino,
		SharpeStdError:      sharpeStdError,
		MeanReturn:          meanReturn,
		GeometricMean:       geoMean,
		StdDeviation:        stdDev,
		DownsideDeviation:   downsideDev,
		AnnualizedReturn:    annualized,
		ExcessReturn:        excess,
		PeriodicRiskFree:    riskFree,
		PeriodicTarget:      target,
		TotalCount:          n,
		PositiveCount:       reported.positive,
		NegativeCount:       reported.negative,
		DownsideCount:       downsideCount,
		MinObservation:      reported.min,
		MaxObservation:      reported.max,
		EffectiveFormat:     effective,
		CapitalConverted:    converted,
		DownsideDenominator: DownsideMethod,
	}, nil
}
