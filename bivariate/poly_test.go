package bivariate

import (
	"errors"
	"math/big"
	"testing"

	"github.com/gogpu/algcurve/algebraic"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Poly
	}{
		{"x^2 + y^2 - 1", FromInts([]int64{-1, 0, 1}, nil, []int64{1})},
		{"y - x", FromInts([]int64{0, -1}, []int64{1})},
		{"2xy", FromInts(nil, []int64{0, 2})},
		{"(x - y)(x + y)", FromInts([]int64{0, 0, 1}, nil, []int64{-1})},
		{"-x^2", FromInts([]int64{0, 0, -1})},
		{"x**3", FromInts([]int64{0, 0, 0, 1})},
		{"  3 * y ^ 2 ", FromInts(nil, nil, []int64{3})},
		{"0.5x + 1/2", New(algebraic.NewPoly(big.NewRat(1, 2), big.NewRat(1, 2)))},
		{"x - x", Poly{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "x +", "(x", "x ^ y", "x / y", "x / 0", "z", "1.2.3", "x)"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) error = %v, want ErrSyntax", in, err)
			}
		})
	}
}

func TestParseUnivariate(t *testing.T) {
	p, err := ParseUnivariate("x^2 - 2")
	if err != nil {
		t.Fatalf("ParseUnivariate: %v", err)
	}
	if !p.Equal(algebraic.PolyFromInts(-2, 0, 1)) {
		t.Errorf("ParseUnivariate = %v", p)
	}
	if _, err := ParseUnivariate("x + y"); !errors.Is(err, ErrNotUnivariate) {
		t.Errorf("ParseUnivariate(x + y) error = %v, want ErrNotUnivariate", err)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"x^2 + y^2 - 1", "y^2 + x^2 - 1"},
		{"y - x", "y - x"},
		{"2xy - 3", "2*x*y - 3"},
		{"x/2", "(1/2)*x"},
		{"0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := MustParse(tt.in).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDerivativesAndEval(t *testing.T) {
	f := MustParse("x^2*y^3 + 2y - x")
	if got, want := f.DerivY(), MustParse("3x^2y^2 + 2"); !got.Equal(want) {
		t.Errorf("DerivY = %v, want %v", got, want)
	}
	if got, want := f.DerivX(), MustParse("2x*y^3 - 1"); !got.Equal(want) {
		t.Errorf("DerivX = %v, want %v", got, want)
	}
	if got := f.Eval(big.NewRat(2, 1), big.NewRat(1, 1)); got.Cmp(big.NewRat(4, 1)) != 0 {
		t.Errorf("Eval(2, 1) = %s, want 4", got.RatString())
	}
	if got, want := f.EvalX(big.NewRat(1, 1)), algebraic.PolyFromInts(-1, 2, 0, 1); !got.Equal(want) {
		t.Errorf("EvalX(1) = %v, want %v", got, want)
	}
	if f.DegreeX() != 2 || f.DegreeY() != 3 {
		t.Errorf("degrees = (%d, %d), want (2, 3)", f.DegreeX(), f.DegreeY())
	}
}

func TestContent(t *testing.T) {
	if c := MustParse("(x - 1)(y^2 + x)").Content(); !c.Equal(algebraic.PolyFromInts(-1, 1)) {
		t.Errorf("Content = %v, want x - 1", c)
	}
	if c := MustParse("y^2 + x^2 - 1").Content(); c.Degree() != 0 {
		t.Errorf("Content = %v, want constant", c)
	}
}

func TestResultantY(t *testing.T) {
	tests := []struct {
		name string
		f, g string
		want algebraic.Poly
	}{
		{"crossing lines", "y - x", "y + x", algebraic.PolyFromInts(0, 2)},
		{"circle and its derivative", "y^2 + x^2 - 1", "2y", algebraic.PolyFromInts(-4, 0, 4)},
		{"circle and line", "y^2 + x^2 - 1", "y", algebraic.PolyFromInts(-1, 0, 1)},
		{"constant in y", "x + 1", "y^2 + 1", algebraic.PolyFromInts(1, 2, 1)},
		{"common factor", "(y - x)(y + 1)", "(y - x)(y - 2)", algebraic.Poly{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResultantY(MustParse(tt.f), MustParse(tt.g))
			if !got.Equal(tt.want) {
				t.Errorf("ResultantY = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResultantVanishesAtIntersections(t *testing.T) {
	// Parabola y = x^2 and line y = 1 meet at x = -1 and x = 1.
	r := ResultantY(MustParse("y - x^2"), MustParse("y - 1"))
	for _, x := range []int64{-1, 1} {
		if s := r.SignAt(big.NewRat(x, 1)); s != 0 {
			t.Errorf("resultant at %d = nonzero", x)
		}
	}
	if r.SignAt(big.NewRat(0, 1)) == 0 {
		t.Error("resultant vanishes at 0")
	}
}

func TestDiscriminantY(t *testing.T) {
	// Cusp y^2 = x^3 is singular at the origin.
	d := DiscriminantY(MustParse("y^2 - x^3"))
	if d.IsZero() || d.SignAt(new(big.Rat)) != 0 {
		t.Errorf("DiscriminantY = %v, want nonzero with a root at 0", d)
	}
	// A square has identically vanishing discriminant.
	if d := DiscriminantY(MustParse("(y - x)^2")); !d.IsZero() {
		t.Errorf("DiscriminantY of a square = %v, want 0", d)
	}
}
