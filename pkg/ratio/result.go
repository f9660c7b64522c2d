package ratio

import (
	"fmt"

	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
	"go.uber.org/zap"
)

// Result is produced once per Compute call and never mutated afterwards.
// Extrema are reported in the original input units; everything else lives in
// fractional-return space.
type Result struct {
	SharpeRatio    fixed.Point
	SortinoRatio   fixed.Point
	SharpeStdError fixed.Point

	MeanReturn        fixed.Point
	GeometricMean     fixed.Point
	StdDeviation      fixed.Point
	DownsideDeviation fixed.Point
	AnnualizedReturn  fixed.Point
	ExcessReturn      fixed.Point
	PeriodicRiskFree  fixed.Point
	PeriodicTarget    fixed.Point

	TotalCount    int
	PositiveCount int
	NegativeCount int
	DownsideCount int

	MinObservation fixed.Point
	MaxObservation fixed.Point

	EffectiveFormat  Format
	CapitalConverted bool
	// DownsideDenominator records the methodology behind the Sortino
	// denominator, see DownsideMethod.
	DownsideDenominator string
}

func (r Result) Print(logger *zap.Logger) {
	logger.Info("risk ratios",
		zap.String("sharpe_ratio", r.SharpeRatio.Rescale(5).String()),
		zap.String("sortino_ratio", r.SortinoRatio.Rescale(5).String()),
		zap.String("sharpe_std_error", r.SharpeStdError.Rescale(5).String()),
		zap.String("excess_return", r.ExcessReturn.String()),
		zap.String("downside_denominator", r.DownsideDenominator),
	)

	logger.Info("return statistics",
		zap.String("mean_return", r.MeanReturn.String()),
		zap.String("geometric_mean", r.GeometricMean.String()),
		zap.String("std_deviation", r.StdDeviation.String()),
		zap.String("downside_deviation", r.DownsideDeviation.String()),
		zap.String("annualized_return", fmt.Sprintf("%s%%", r.AnnualizedReturn.MulInt64(100).Rescale(2))),
		zap.String("periodic_risk_free", r.PeriodicRiskFree.String()),
		zap.String("periodic_target", r.PeriodicTarget.String()),
	)

	logger.Info("observation statistics",
		zap.Int("total", r.TotalCount),
		zap.Int("positive", r.PositiveCount),
		zap.Int("negative", r.NegativeCount),
		zap.Int("downside", r.DownsideCount),
		zap.String("min", r.MinObservation.String()),
		zap.String("max", r.MaxObservation.String()),
		zap.String("effective_format", r.EffectiveFormat.String()),
		zap.Bool("capital_converted", r.CapitalConverted),
	)
}
