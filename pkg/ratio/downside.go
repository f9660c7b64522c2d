package ratio

import (
	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

// DownsideMethod names the denominator used for downside variance. The
// sample-style m-1 denominator is the more conservative estimate for small
// downside sets and is floored at 1 so a single downside observation still
// produces a defined deviation.
const DownsideMethod = "sample"

// downsideDeviation measures dispersion of returns strictly below the
// periodic target. A return exactly at the target is not downside. An empty
// downside set yields zero.
func downsideDeviation(series []fixed.Point, target fixed.Point) (fixed.Point, int) {
	sum := fixed.Zero
	count := 0
	for _, r := range series {
		if r.Lt(target) {
			diff := target.Sub(r)
			sum = sum.Add(diff.Mul(diff))
			count++
		}
	}
	if count == 0 {
		return fixed.Zero, 0
	}
	denominator := count - 1
	if denominator < 1 {
		denominator = 1
	}
	return sum.DivInt(denominator).Sqrt(), count
}
