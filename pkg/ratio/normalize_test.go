package ratio

import (
	"testing"

	"github.com/peter-kozarec/sharpedge/pkg/utility/fixed"
)

func TestNormalize_ExplicitFormats(t *testing.T) {
	observations := points(5, -2, 50)

	series, effective, converted, err := normalize(observations, Configuration{Format: FormatPercent})
	if err != nil {
		t.Fatalf("normalize(percent) failed: %v", err)
	}
	if effective != FormatPercent || converted {
		t.Errorf("percent: got format %v converted %v", effective, converted)
	}
	if !series[0].Eq(fixed.FromInt64(5, 2)) || !series[1].Eq(fixed.FromInt64(-2, 2)) {
		t.Errorf("percent transform wrong: %v", series)
	}

	series, effective, converted, err = normalize(observations, Configuration{Format: FormatDecimal})
	if err != nil {
		t.Fatalf("normalize(decimal) failed: %v", err)
	}
	if effective != FormatDecimal || converted {
		t.Errorf("decimal: got format %v converted %v", effective, converted)
	}
	if !series[0].Eq(observations[0]) {
		t.Errorf("decimal must pass through, got %v", series[0])
	}

	series, effective, converted, err = normalize(observations, Configuration{
		Format:      FormatAbsolute,
		BaseCapital: fixed.FromInt(1000, 0),
	})
	if err != nil {
		t.Fatalf("normalize(absolute) failed: %v", err)
	}
	if effective != FormatAbsolute || !converted {
		t.Errorf("absolute: got format %v converted %v", effective, converted)
	}
	if !series[0].Eq(fixed.FromInt64(5, 3)) {
		t.Errorf("absolute transform wrong: got %v, want 0.005", series[0])
	}
}

func TestNormalize_AutoDetection(t *testing.T) {
	tests := []struct {
		name       string
		series     []fixed.Point
		wantFormat Format
		// first element of the normalized series
		wantFirst fixed.Point
	}{
		{
			"percent vote wins",
			points(5, -2, 3, 250),
			FormatPercent,
			fixed.FromInt64(5, 2),
		},
		{
			"decimal vote wins",
			points(0.01, 0.02, -0.005, 5),
			FormatDecimal,
			fixed.FromFloat64(0.01),
		},
		{
			"absolute vote wins",
			points(150, -200, 300, 0.5),
			FormatAbsolute,
			fixed.FromInt(150, 0),
		},
		{
			"no winner, magnitudes in percent range",
			points(0.5, 50, 0.75, 60),
			FormatPercent,
			fixed.FromInt64(5, 3),
		},
		{
			"no winner, magnitudes outside percent range",
			points(0.5, 50, 0.005, 500),
			FormatDecimal,
			fixed.FromFloat64(0.5),
		},
		{
			"all zero falls back to decimal",
			points(0, 0, 0),
			FormatDecimal,
			fixed.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, effective, converted, err := normalize(tt.series, Configuration{Format: FormatAuto})
			if err != nil {
				t.Fatalf("normalize failed: %v", err)
			}
			if converted {
				t.Error("auto detection must never flag capital conversion")
			}
			if effective != tt.wantFormat {
				t.Errorf("format: got %v, want %v", effective, tt.wantFormat)
			}
			if !series[0].Eq(tt.wantFirst) {
				t.Errorf("first element: got %v, want %v", series[0], tt.wantFirst)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"auto", FormatAuto, false},
		{"percent", FormatPercent, false},
		{"percentage", FormatPercent, false},
		{"decimal", FormatDecimal, false},
		{"absolute", FormatAbsolute, false},
		{"bogus", FormatAuto, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}
