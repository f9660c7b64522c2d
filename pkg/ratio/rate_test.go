package ratio

import (
	"errors"
	"testing"

	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

func TestPeriodicRate_RoundTrip(t *testing.T) {
	// compounding the daily rate back over 252 periods must reproduce 12%
	periodic, err := PeriodicRate(fixed.FromInt(12, 0), fixed.FromInt(252, 0))
	if err != nil {
		t.Fatalf("PeriodicRate failed: %v", err)
	}

	compounded := fixed.One.Add(periodic).Pow(fixed.FromInt(252, 0))
	if !approx(compounded, fixed.FromInt64(112, 2), 6) {
		t.Errorf("round trip: got %v, want ~1.12", compounded)
	}
}

func TestPeriodicRate_Zero(t *testing.T) {
	periodic, err := PeriodicRate(fixed.Zero, fixed.FromInt(252, 0))
	if err != nil {
		t.Fatalf("PeriodicRate failed: %v", err)
	}
	if !periodic.IsZero() {
		t.Errorf("zero annual rate: got %v, want 0", periodic)
	}
}

func TestPeriodicRate_Negative(t *testing.T) {
	// negative rates are fine as long as they stay above -100%
	periodic, err := PeriodicRate(fixed.FromInt(-2, 0), fixed.FromInt(12, 0))
	if err != nil {
		t.Fatalf("PeriodicRate failed: %v", err)
	}
	if periodic.Gte(fixed.Zero) {
		t.Errorf("negative annual rate must yield negative periodic rate, got %v", periodic)
	}
}

func TestPeriodicRate_Domain(t *testing.T) {
	if _, err := PeriodicRate(fixed.FromInt(-100, 0), fixed.FromInt(252, 0)); !errors.Is(err, ErrNumericDomain) {
		t.Errorf("expected ErrNumericDomain at -100%%, got %v", err)
	}
}
