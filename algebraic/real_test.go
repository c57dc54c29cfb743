package algebraic

import (
	"math"
	"math/big"
	"testing"
)

func sqrt2() Real {
	return RealRoots(PolyFromInts(-2, 0, 1))[1]
}

func TestRealRoots(t *testing.T) {
	tests := []struct {
		name string
		p    Poly
		want []float64
	}{
		{"x^2 - 2", PolyFromInts(-2, 0, 1), []float64{-math.Sqrt2, math.Sqrt2}},
		{"x^3 - x", PolyFromInts(0, -1, 0, 1), []float64{-1, 0, 1}},
		{"(x-1)^2 (x+2)", PolyFromInts(2, -3, 0, 1), []float64{-2, 1}},
		{"x^2 + 1", PolyFromInts(1, 0, 1), nil},
		{"linear", PolyFromInts(3, 2), []float64{-1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := RealRoots(tt.p)
			if len(roots) != len(tt.want) {
				t.Fatalf("got %d roots, want %d (%v)", len(roots), len(tt.want), roots)
			}
			for i, r := range roots {
				if got := r.Float64(); math.Abs(got-tt.want[i]) > 1e-12 {
					t.Errorf("root[%d] = %v, want %v", i, got, tt.want[i])
				}
				if i > 0 && Compare(roots[i-1], r) >= 0 {
					t.Errorf("roots not ascending at %d: %v >= %v", i, roots[i-1], r)
				}
			}
		})
	}
}

func TestRealRootsExactRational(t *testing.T) {
	roots := RealRoots(PolyFromInts(0, -1, 0, 1))
	v, ok := roots[1].Rat()
	if !ok || v.Sign() != 0 {
		t.Errorf("middle root of x^3 - x = %v, want exact 0", roots[1])
	}
	if !Equal(roots[0], RealFromInt(-1)) {
		t.Errorf("first root = %v, want -1", roots[0])
	}
}

func TestRealRootsZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RealRoots(0) did not panic")
		}
	}()
	RealRoots(Poly{})
}

func TestCompare(t *testing.T) {
	sqrt3 := RealRoots(PolyFromInts(-3, 0, 1))[1]
	// sqrt(2) as a root of x^4 - 4 = (x^2 - 2)(x^2 + 2).
	other := RealRoots(PolyFromInts(-4, 0, 0, 0, 1))[1]

	tests := []struct {
		name string
		a, b Real
		want int
	}{
		{"rationals", RealFromFrac(1, 2), RealFromFrac(2, 3), -1},
		{"equal rationals", RealFromFrac(2, 4), RealFromFrac(1, 2), 0},
		{"sqrt2 < 3/2", sqrt2(), RealFromFrac(3, 2), -1},
		{"sqrt2 > 7/5", sqrt2(), RealFromFrac(7, 5), 1},
		{"sqrt2 < sqrt3", sqrt2(), sqrt3, -1},
		{"sqrt3 > sqrt2", sqrt3, sqrt2(), 1},
		{"same number, different polynomials", sqrt2(), other, 0},
		{"self", sqrt3, sqrt3, 0},
		{"zero value", Real{}, RealFromInt(0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRealRootsRationalFactors(t *testing.T) {
	// (x - 1/3)(x^2 - 2)
	cubic := NewPoly(big.NewRat(2, 3), big.NewRat(-2, 1), big.NewRat(-1, 3), big.NewRat(1, 1))
	tests := []struct {
		name     string
		p        Poly
		rational []bool
		want     []*big.Rat
	}{
		{"x^2 + x - 2", PolyFromInts(-2, 1, 1), []bool{true, true}, []*big.Rat{big.NewRat(-2, 1), big.NewRat(1, 1)}},
		{"x^2 + x", PolyFromInts(0, 1, 1), []bool{true, true}, []*big.Rat{big.NewRat(-1, 1), big.NewRat(0, 1)}},
		{"6x^2 - 5x + 1", PolyFromInts(1, -5, 6), []bool{true, true}, []*big.Rat{big.NewRat(1, 3), big.NewRat(1, 2)}},
		{"(x - 1/3)(x^2 - 2)", cubic, []bool{false, true, false}, []*big.Rat{nil, big.NewRat(1, 3), nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := RealRoots(tt.p)
			if len(roots) != len(tt.rational) {
				t.Fatalf("got %d roots, want %d", len(roots), len(tt.rational))
			}
			for i, r := range roots {
				if r.IsRational() != tt.rational[i] {
					t.Errorf("root[%d] = %v, IsRational() = %v", i, r, r.IsRational())
					continue
				}
				if v, ok := r.Rat(); ok && v.Cmp(tt.want[i]) != 0 {
					t.Errorf("root[%d] = %s, want %s", i, v.RatString(), tt.want[i].RatString())
				}
			}
		})
	}

	// The irrational roots keep x^2 - 2 once the rational factor is removed.
	roots := RealRoots(cubic)
	if d := roots[2].Poly().Degree(); d != 2 {
		t.Errorf("defining polynomial of %v has degree %d, want 2", roots[2], d)
	}
	if !Equal(roots[2], sqrt2()) {
		t.Errorf("root[2] = %v, want sqrt2", roots[2])
	}
}

func TestSignOf(t *testing.T) {
	tests := []struct {
		name string
		q    Poly
		want int
	}{
		{"defining polynomial", PolyFromInts(-2, 0, 1), 0},
		{"x - 1", PolyFromInts(-1, 1), 1},
		{"x^2 - 3", PolyFromInts(-3, 0, 1), -1},
		{"multiple of defining polynomial", PolyFromInts(-2, 0, 1).Mul(PolyFromInts(5, 1)), 0},
		{"close below", NewPoly(big.NewRat(-1414213, 1000000), big.NewRat(1, 1)), 1},
		{"close above", NewPoly(big.NewRat(-1414214, 1000000), big.NewRat(1, 1)), -1},
		{"constant", PolyFromInts(-4), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, refined := sqrt2().SignOf(tt.q)
			if got != tt.want {
				t.Errorf("SignOf(%v) = %d, want %d", tt.q, got, tt.want)
			}
			if !Equal(refined, sqrt2()) {
				t.Errorf("refined value %v differs from sqrt2", refined)
			}
		})
	}
}

func TestNewReal(t *testing.T) {
	p := PolyFromInts(-2, 0, 1)
	r, err := NewReal(p, big.NewRat(1, 1), big.NewRat(2, 1))
	if err != nil {
		t.Fatalf("NewReal: %v", err)
	}
	if !Equal(r, sqrt2()) {
		t.Errorf("NewReal = %v, want sqrt2", r)
	}

	bad := []struct {
		name   string
		lo, hi *big.Rat
	}{
		{"two roots", big.NewRat(-2, 1), big.NewRat(2, 1)},
		{"no roots", big.NewRat(2, 1), big.NewRat(3, 1)},
		{"empty", big.NewRat(2, 1), big.NewRat(1, 1)},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewReal(p, tt.lo, tt.hi); err == nil {
				t.Error("NewReal succeeded, want error")
			}
		})
	}
}

func TestRefineTo(t *testing.T) {
	w := big.NewRat(1, 1000)
	r := sqrt2().RefineTo(w)
	if r.Width().Cmp(w) > 0 {
		t.Errorf("Width() = %s, want <= %s", r.Width().RatString(), w.RatString())
	}
	lo, hi := r.Interval()
	two := big.NewRat(2, 1)
	if new(big.Rat).Mul(lo, lo).Cmp(two) >= 0 || new(big.Rat).Mul(hi, hi).Cmp(two) <= 0 {
		t.Errorf("interval (%s, %s) does not bracket sqrt2", lo.RatString(), hi.RatString())
	}
	if lo.Sign() <= 0 {
		t.Errorf("interval (%s, %s) left the positive root", lo.RatString(), hi.RatString())
	}
}

func TestRationalBetween(t *testing.T) {
	sqrt3 := RealRoots(PolyFromInts(-3, 0, 1))[1]
	tests := []struct {
		name string
		a, b Real
	}{
		{"integers", RealFromInt(-1), RealFromInt(1)},
		{"adjacent rationals", RealFromFrac(1, 3), RealFromFrac(1, 2)},
		{"roots", sqrt2(), sqrt3},
		{"rational and root", RealFromFrac(7, 5), sqrt2()},
		{"negative", RealFromInt(-5), RealFromInt(-3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := RealFromRat(RationalBetween(tt.a, tt.b))
			if Compare(tt.a, s) >= 0 || Compare(s, tt.b) >= 0 {
				t.Errorf("RationalBetween = %v, not strictly inside (%v, %v)", s, tt.a, tt.b)
			}
		})
	}

	if got := RationalBetween(RealFromInt(-1), RealFromInt(1)); got.Sign() != 0 {
		t.Errorf("RationalBetween(-1, 1) = %s, want 0", got.RatString())
	}
	if got := RationalBetween(RealFromInt(-5), RealFromInt(-3)); got.Cmp(big.NewRat(-4, 1)) != 0 {
		t.Errorf("RationalBetween(-5, -3) = %s, want -4", got.RatString())
	}
}

func TestRationalBelowAbove(t *testing.T) {
	for _, r := range []Real{sqrt2(), RealFromInt(3), RealFromFrac(-7, 2)} {
		if below := RealFromRat(RationalBelow(r)); Compare(below, r) >= 0 {
			t.Errorf("RationalBelow(%v) = %v, not below", r, below)
		}
		if above := RealFromRat(RationalAbove(r)); Compare(above, r) <= 0 {
			t.Errorf("RationalAbove(%v) = %v, not above", r, above)
		}
	}
}

func TestRealSign(t *testing.T) {
	roots := RealRoots(PolyFromInts(-2, 0, 1))
	if roots[0].Sign() != -1 || roots[1].Sign() != 1 {
		t.Errorf("signs = %d, %d, want -1, 1", roots[0].Sign(), roots[1].Sign())
	}
	if RealFromInt(0).Sign() != 0 {
		t.Error("Sign(0) != 0")
	}
}

func BenchmarkCompareRoots(b *testing.B) {
	p := PolyFromInts(-2, 0, 1)
	q := PolyFromInts(-2, 0, 0, 0, 0, 0, 1).Mul(PolyFromInts(-4, 0, 0, 0, 1))
	x, y := RealRoots(p)[1], RealRoots(q)[1]
	for b.Loop() {
		_ = Compare(x, y)
	}
}
