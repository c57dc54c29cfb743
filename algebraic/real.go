package algebraic

import (
	"fmt"
	"math/big"
)

// Real is an exact real algebraic number.
//
// A Real is either a rational number or a root of a square-free rational
// polynomial p together with an isolating interval (lo, hi): p(lo) and p(hi)
// are nonzero with opposite signs and p has exactly one root in (lo, hi).
//
// The zero value is the rational number 0. Real values are immutable;
// refinement returns a new value.
type Real struct {
	p      Poly     // zero for rational values
	lo, hi *big.Rat // lo == hi for rational values; nil means 0
}

// RealFromRat returns the rational number v as a Real.
func RealFromRat(v *big.Rat) Real {
	q := new(big.Rat).Set(v)
	return Real{lo: q, hi: q}
}

// RealFromInt returns the integer n as a Real.
func RealFromInt(n int64) Real {
	return RealFromRat(new(big.Rat).SetInt64(n))
}

// RealFromFrac returns a/b as a Real. It panics if b is zero.
func RealFromFrac(a, b int64) Real {
	if b == 0 {
		panic("algebraic: zero denominator")
	}
	return RealFromRat(big.NewRat(a, b))
}

// NewReal returns the unique root of p in the open interval (lo, hi).
// The interval must isolate a simple root of p: p(lo) and p(hi) nonzero with
// opposite signs and no other root of p in between. The isolation is
// verified and an error is returned if it does not hold.
func NewReal(p Poly, lo, hi *big.Rat) (Real, error) {
	if lo.Cmp(hi) >= 0 {
		return Real{}, fmt.Errorf("algebraic: empty interval (%s, %s)", lo.RatString(), hi.RatString())
	}
	sf := p.SquareFree()
	if sf.Degree() < 1 {
		return Real{}, fmt.Errorf("algebraic: %s has no roots", p)
	}
	slo, shi := sf.SignAt(lo), sf.SignAt(hi)
	if slo == 0 || shi == 0 {
		return Real{}, fmt.Errorf("algebraic: interval endpoint is a root of %s", p)
	}
	if n := CountRoots(SturmSequence(sf), lo, hi); n != 1 {
		return Real{}, fmt.Errorf("algebraic: %s has %d roots in (%s, %s)", p, n, lo.RatString(), hi.RatString())
	}
	return fromIsolated(sf, new(big.Rat).Set(lo), new(big.Rat).Set(hi)), nil
}

// fromIsolated builds a Real from a verified isolating interval. Linear
// polynomials collapse to their rational root.
func fromIsolated(p Poly, lo, hi *big.Rat) Real {
	if p.Degree() == 1 {
		root := new(big.Rat).Quo(p.coeff(0), p.coeff(1))
		return RealFromRat(root.Neg(root))
	}
	return Real{p: p, lo: lo, hi: hi}
}

// IsRational reports whether r is stored as an exact rational number.
func (r Real) IsRational() bool {
	return r.p.IsZero()
}

// Rat returns the rational value of r and true, or nil and false when r is
// stored as an isolated root.
func (r Real) Rat() (*big.Rat, bool) {
	if !r.IsRational() {
		return nil, false
	}
	return new(big.Rat).Set(r.low()), true
}

func (r Real) low() *big.Rat {
	if r.lo == nil {
		return ratZero
	}
	return r.lo
}

func (r Real) high() *big.Rat {
	if r.hi == nil {
		return ratZero
	}
	return r.hi
}

// Interval returns copies of the isolating interval bounds. For a rational
// number both bounds equal the value.
func (r Real) Interval() (lo, hi *big.Rat) {
	return new(big.Rat).Set(r.low()), new(big.Rat).Set(r.high())
}

// Width returns hi - lo.
func (r Real) Width() *big.Rat {
	return new(big.Rat).Sub(r.high(), r.low())
}

// Poly returns a square-free polynomial vanishing at r. For a rational
// value v this is x - v.
func (r Real) Poly() Poly {
	if r.IsRational() {
		return NewPoly(new(big.Rat).Neg(r.low()), big.NewRat(1, 1))
	}
	return r.p
}

func midpoint(a, b *big.Rat) *big.Rat {
	m := new(big.Rat).Add(a, b)
	return m.Quo(m, big.NewRat(2, 1))
}

// Refine halves the isolating interval. Rational values are returned as is.
func (r Real) Refine() Real {
	if r.IsRational() {
		return r
	}
	m := midpoint(r.lo, r.hi)
	s := r.p.SignAt(m)
	if s == 0 {
		return Real{lo: m, hi: m}
	}
	if s == r.p.SignAt(r.lo) {
		return Real{p: r.p, lo: m, hi: r.hi}
	}
	return Real{p: r.p, lo: r.lo, hi: m}
}

// RefineTo refines r until its isolating interval is no wider than w.
// It panics if w is not positive.
func (r Real) RefineTo(w *big.Rat) Real {
	if w.Sign() <= 0 {
		panic("algebraic: refinement width must be positive")
	}
	for !r.IsRational() && r.Width().Cmp(w) > 0 {
		r = r.Refine()
	}
	return r
}

// Float64 returns an approximation of r with a relative error of roughly
// 2^-52 for values not too close to zero.
func (r Real) Float64() float64 {
	if r.IsRational() {
		f, _ := r.low().Float64()
		return f
	}
	r = r.RefineTo(new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 60)))
	f, _ := midpoint(r.low(), r.high()).Float64()
	return f
}

// Sign returns the sign of r.
func (r Real) Sign() int {
	s, _ := r.SignOf(X())
	return s
}

// SignOf returns the sign of q(r) together with r refined so far that q has
// no root in the closure of its isolating interval (when q(r) != 0).
// Callers evaluating many polynomials at the same number should keep the
// returned value to avoid repeating the refinement.
func (r Real) SignOf(q Poly) (int, Real) {
	if r.IsRational() {
		return q.SignAt(r.low()), r
	}
	if q.Degree() <= 0 {
		return q.coeff(0).Sign(), r
	}
	g := GCD(r.p, q)
	if g.Degree() >= 1 && g.SignAt(r.lo) != g.SignAt(r.hi) {
		return 0, r
	}
	seq := SturmSequence(q)
	for {
		slo, shi := q.SignAt(r.lo), q.SignAt(r.hi)
		if slo != 0 && slo == shi && CountRoots(seq, r.lo, r.hi) == 0 {
			return slo, r
		}
		r = r.Refine()
		if r.IsRational() {
			return q.SignAt(r.low()), r
		}
	}
}

// Compare returns -1, 0 or +1 depending on whether a < b, a == b or a > b.
// The comparison is exact.
func Compare(a, b Real) int {
	if a.IsRational() && b.IsRational() {
		return a.low().Cmp(b.low())
	}
	var g Poly
	gcdDone := false
	for {
		if a.IsRational() && b.IsRational() {
			return a.low().Cmp(b.low())
		}
		if a.high().Cmp(b.low()) <= 0 {
			return -1
		}
		if b.high().Cmp(a.low()) <= 0 {
			return 1
		}
		switch {
		case a.IsRational():
			if b.p.SignAt(a.low()) == 0 {
				return 0
			}
			b = b.Refine()
		case b.IsRational():
			if a.p.SignAt(b.low()) == 0 {
				return 0
			}
			a = a.Refine()
		default:
			if !gcdDone {
				g = GCD(a.p, b.p)
				gcdDone = true
			}
			if g.Degree() >= 1 {
				// Any root of g in the overlap is both a and b.
				lo := a.lo
				if b.lo.Cmp(lo) > 0 {
					lo = b.lo
				}
				hi := a.hi
				if b.hi.Cmp(hi) < 0 {
					hi = b.hi
				}
				if g.SignAt(lo) != g.SignAt(hi) {
					return 0
				}
			}
			a, b = a.Refine(), b.Refine()
		}
	}
}

// Equal reports whether a and b denote the same real number.
func Equal(a, b Real) bool {
	return Compare(a, b) == 0
}

// Less reports whether a < b.
func Less(a, b Real) bool {
	return Compare(a, b) < 0
}

// RealRoots returns the distinct real roots of p in ascending order.
// It panics if p is the zero polynomial.
func RealRoots(p Poly) []Real {
	if p.IsZero() {
		panic("algebraic: RealRoots of the zero polynomial")
	}
	sf := p.SquareFree()
	switch sf.Degree() {
	case 0:
		return nil
	case 1:
		return []Real{fromIsolated(sf, nil, nil)}
	}
	seq := SturmSequence(sf)
	b := RootBound(sf)
	lo := new(big.Rat).Neg(b)
	n := CountRoots(seq, lo, b)
	roots := make([]Real, 0, n)
	return rationalize(sf, isolate(roots, sf, seq, lo, b, n))
}

// rationalize replaces the isolated roots of p that are rational by their
// exact values and divides the matching linear factors out of the defining
// polynomial of the remaining roots.
func rationalize(p Poly, roots []Real) []Real {
	a := integerLead(p)
	q := p
	deflated := false
	for i, r := range roots {
		if !r.IsRational() {
			r = exactIfRational(r, a)
			roots[i] = r
		}
		if r.IsRational() {
			q = q.Quo(NewPoly(new(big.Rat).Neg(r.low()), big.NewRat(1, 1)))
			deflated = true
		}
	}
	if !deflated {
		return roots
	}
	for i, r := range roots {
		if !r.IsRational() {
			roots[i] = fromIsolated(q, r.lo, r.hi)
		}
	}
	return roots
}

// integerLead returns |a| where a is the leading coefficient of p scaled
// to integer coefficients. Every rational root of p is k/a for an integer k.
func integerLead(p Poly) *big.Rat {
	l := big.NewInt(1)
	g := new(big.Int)
	for _, c := range p.c {
		d := c.Denom()
		g.GCD(nil, nil, l, d)
		l.Mul(l.Quo(l, g), d)
	}
	a := new(big.Rat).Mul(p.Lead(), new(big.Rat).SetInt(l))
	return a.Abs(a)
}

// exactIfRational refines an isolated root until its interval is narrower
// than 1/a. The interval then holds at most one candidate k/a, which is
// tested exactly. Otherwise the refined irrational value is returned.
func exactIfRational(r Real, a *big.Rat) Real {
	limit := new(big.Rat).Inv(a)
	for r.Width().Cmp(limit) >= 0 {
		r = r.Refine()
		if r.IsRational() {
			return r
		}
	}
	k := floorRat(new(big.Rat).Mul(r.lo, a))
	k.Add(k, big.NewInt(1))
	v := new(big.Rat).Quo(new(big.Rat).SetInt(k), a)
	if v.Cmp(r.hi) < 0 && r.p.SignAt(v) == 0 {
		return RealFromRat(v)
	}
	return r
}

// isolate appends the n roots of p in (lo, hi) to roots. lo and hi are not
// roots of p.
func isolate(roots []Real, p Poly, seq []Poly, lo, hi *big.Rat, n int) []Real {
	switch n {
	case 0:
		return roots
	case 1:
		return append(roots, fromIsolated(p, lo, hi))
	}
	m := midpoint(lo, hi)
	if p.SignAt(m) != 0 {
		left := CountRoots(seq, lo, m)
		roots = isolate(roots, p, seq, lo, m, left)
		return isolate(roots, p, seq, m, hi, n-left)
	}
	// m is a rational root; cut a window around it that holds no other root.
	d := new(big.Rat).Sub(hi, lo)
	d.Quo(d, big.NewRat(4, 1))
	var a, b *big.Rat
	for {
		a = new(big.Rat).Sub(m, d)
		b = new(big.Rat).Add(m, d)
		if p.SignAt(a) != 0 && p.SignAt(b) != 0 && CountRoots(seq, a, b) == 1 {
			break
		}
		d.Quo(d, big.NewRat(2, 1))
	}
	left := CountRoots(seq, lo, a)
	roots = isolate(roots, p, seq, lo, a, left)
	roots = append(roots, RealFromRat(m))
	return isolate(roots, p, seq, b, hi, n-1-left)
}

func floorRat(v *big.Rat) *big.Int {
	return new(big.Int).Div(v.Num(), v.Denom())
}

func ceilRat(v *big.Rat) *big.Int {
	f := floorRat(v)
	if !v.IsInt() {
		f.Add(f, big.NewInt(1))
	}
	return f
}

// simplestBetween returns a rational in the open interval (l, h), preferring
// zero, then the integer of least magnitude, then the midpoint.
func simplestBetween(l, h *big.Rat) *big.Rat {
	if l.Sign() < 0 && h.Sign() > 0 {
		return new(big.Rat)
	}
	if l.Sign() >= 0 {
		c := new(big.Rat).SetInt(floorRat(l))
		c.Add(c, big.NewRat(1, 1))
		if c.Cmp(h) < 0 {
			return c
		}
	} else {
		c := new(big.Rat).SetInt(ceilRat(h))
		c.Sub(c, big.NewRat(1, 1))
		if c.Cmp(l) > 0 {
			return c
		}
	}
	return midpoint(l, h)
}

// RationalBetween returns a rational number strictly between a and b.
// It panics unless a < b.
func RationalBetween(a, b Real) *big.Rat {
	if Compare(a, b) >= 0 {
		panic("algebraic: RationalBetween requires a < b")
	}
	for {
		switch c := a.high().Cmp(b.low()); {
		case c < 0:
			return simplestBetween(a.high(), b.low())
		case c == 0 && !a.IsRational() && !b.IsRational():
			return new(big.Rat).Set(a.high())
		}
		a, b = a.Refine(), b.Refine()
	}
}

// RationalBelow returns an integer strictly less than r.
func RationalBelow(r Real) *big.Rat {
	v := new(big.Rat).SetInt(floorRat(r.low()))
	return v.Sub(v, big.NewRat(1, 1))
}

// RationalAbove returns an integer strictly greater than r.
func RationalAbove(r Real) *big.Rat {
	v := new(big.Rat).SetInt(ceilRat(r.high()))
	return v.Add(v, big.NewRat(1, 1))
}

// String formats r as a rational or as "root of p in (lo, hi)" with an
// approximate decimal value.
func (r Real) String() string {
	if r.IsRational() {
		return r.low().RatString()
	}
	return fmt.Sprintf("~%.6g [root of %s in (%s, %s)]", r.Float64(), r.p, r.lo.RatString(), r.hi.RatString())
}
