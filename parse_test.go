package algcurve

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/algcurve/algebraic"
)

func TestParseX(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		exact bool
	}{
		{"3", 3, true},
		{"-1/2", -0.5, true},
		{"0.25", 0.25, true},
		{"  7 ", 7, true},
		{"root(x^2 - 2, 0)", -math.Sqrt2, false},
		{"root(x^2 - 2, 1)", math.Sqrt2, false},
		{"root(2*x - 1, 0)", 0.5, true},
		{"root(x^3 - x, 1)", 0, true},
		{"root(x^2 + x, 0)", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			x, err := ParseX(tt.input)
			if err != nil {
				t.Fatalf("ParseX(%q) error = %v", tt.input, err)
			}
			if got := x.Float64(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseX(%q) = %g, want %g", tt.input, got, tt.want)
			}
			if tt.exact && !x.IsRational() {
				t.Errorf("ParseX(%q) is not rational", tt.input)
			}
		})
	}
}

func TestParseXRootIsExact(t *testing.T) {
	x, err := ParseX("root(x^3 - x, 1)")
	if err != nil {
		t.Fatal(err)
	}
	if !algebraic.Equal(x, algebraic.RealFromInt(0)) {
		t.Errorf("root(x^3 - x, 1) = %v, want 0", x)
	}
}

func TestParseXErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"abc",
		"1/0",
		"root(x^2 + 1, 0)",
		"root(x^2 - 2, 2)",
		"root(x^2 - 2, -1)",
		"root(x^2 - 2)",
		"root(x^2 - 2, a)",
		"root(x^2 - 2, 0",
		"root(y - 1, 0)",
		"root(0, 0)",
	} {
		if _, err := ParseX(input); !errors.Is(err, ErrBadCoordinate) {
			t.Errorf("ParseX(%q) error = %v, want ErrBadCoordinate", input, err)
		}
	}
}
