package ratio

import (
	"testing"

	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

func TestDownside_EmptySet(t *testing.T) {
	series := points(0.01, 0.02, 0.03)
	dev, count := downsideDeviation(series, fixed.Zero)
	if !dev.IsZero() || count != 0 {
		t.Errorf("empty downside set: got dev %v count %d, want 0/0", dev, count)
	}
}

func TestDownside_StrictInequality(t *testing.T) {
	// a return exactly at the target is not downside
	series := points(0.01, 0.02)
	dev, count := downsideDeviation(series, fixed.FromFloat64(0.01))
	if !dev.IsZero() || count != 0 {
		t.Errorf("boundary return counted as downside: got dev %v count %d", dev, count)
	}
}

func TestDownside_SingleObservationFloor(t *testing.T) {
	// one downside observation, denominator floored at 1
	series := points(0.05, -0.01)
	dev, count := downsideDeviation(series, fixed.Zero)
	if count != 1 {
		t.Fatalf("downside count: got %d, want 1", count)
	}
	if !approx(dev, fixed.FromFloat64(0.01), 9) {
		t.Errorf("downside deviation: got %v, want 0.01", dev)
	}
}

func TestDownside_SampleDenominator(t *testing.T) {
	// D = {-0.01, -0.03}, variance = (0.0001 + 0.0009) / 1 = 0.001
	series := points(-0.01, -0.03, 0.05)
	dev, count := downsideDeviation(series, fixed.Zero)
	if count != 2 {
		t.Fatalf("downside count: got %d, want 2", count)
	}
	if !approx(dev, fixed.FromFloat64(0.0316228), 6) {
		t.Errorf("downside deviation: got %v, want ~0.0316228", dev)
	}
}

func TestDownside_TargetShiftsSelection(t *testing.T) {
	series := points(0.005, 0.02, -0.01)
	target := fixed.FromFloat64(0.01)
	_, count := downsideDeviation(series, target)
	if count != 2 {
		t.Errorf("downside count below 0.01: got %d, want 2", count)
	}
}
