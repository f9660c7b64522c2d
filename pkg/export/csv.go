package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/peter-kozarec/sharpedge/pkg/ratio"
	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

// WriteCSV serializes a calculation result plus the raw series to delimited
// text: a metric block followed by one row per observation, in input order.
func WriteCSV(w io.Writer, result ratio.Result, observations []fixed.Point, runID string) error {
	writer := csv.NewWriter(w)

	records := [][]string{
		{"metric", "value"},
		{"run_id", runID},
		{"sharpe_ratio", result.SharpeRatio.String()},
		{"sortino_ratio", result.SortinoRatio.String()},
		{"sharpe_std_error", result.SharpeStdError.String()},
		{"mean_return", result.MeanReturn.String()},
		{"geometric_mean", result.GeometricMean.String()},
		{"std_deviation", result.StdDeviation.String()},
		{"downside_deviation", result.DownsideDeviation.String()},
		{"downside_denominator", result.DownsideDenominator},
		{"annualized_return", result.AnnualizedReturn.String()},
		{"excess_return", result.ExcessReturn.String()},
		{"periodic_risk_free", result.PeriodicRiskFree.String()},
		{"periodic_target", result.PeriodicTarget.String()},
		{"total_count", strconv.Itoa(result.TotalCount)},
		{"positive_count", strconv.Itoa(result.PositiveCount)},
		{"negative_count", strconv.Itoa(result.NegativeCount)},
		{"downside_count", strconv.Itoa(result.DownsideCount)},
		{"min_observation", result.MinObservation.String()},
		{"max_observation", result.MaxObservation.String()},
		{"effective_format", result.EffectiveFormat.String()},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("unable to write metric row: %w", err)
		}
	}

	if err := writer.Write([]string{"period", "observation"}); err != nil {
		return fmt.Errorf("unable to write series header: %w", err)
	}
	for i, o := range observations {
		if err := writer.Write([]string{strconv.Itoa(i + 1), o.String()}); err != nil {
			return fmt.Errorf("unable to write series row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
