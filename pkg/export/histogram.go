package export

import (
	"fmt"

	"github.com/vicanso/go-charts/v2"

	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

const DefaultHistogramBins = 20

// Histogram renders the original-unit reporting series as a PNG bar chart
// over equal-width bins.
func Histogram(observations []fixed.Point, bins int, title string) ([]byte, error) {
	if len(observations) == 0 {
		return nil, fmt.Errorf("no observations to render")
	}
	if bins <= 0 {
		bins = DefaultHistogramBins
	}

	values := make([]float64, len(observations))
	for i, o := range observations {
		f, _ := o.Float64()
		values[i] = f
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	width := (maxVal - minVal) / float64(bins)
	if width == 0 {
		// Degenerate flat series, one bucket holds everything
		bins = 1
		width = 1
	}

	counts := make([]float64, bins)
	labels := make([]string, bins)
	for _, v := range values {
		idx := int((v - minVal) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	for i := 0; i < bins; i++ {
		labels[i] = fmt.Sprintf("%.3g", minVal+(float64(i)+0.5)*width)
	}

	p, err := charts.BarRender(
		[][]float64{counts},
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			BoundaryGap: charts.TrueFlag(),
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render histogram: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate histogram bytes: %w", err)
	}
	return buf, nil
}
