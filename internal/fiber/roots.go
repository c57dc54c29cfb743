package fiber

import (
	"math/big"

	"github.com/gogpu/algcurve/algebraic"
	"github.com/gogpu/algcurve/bivariate"
)

// Point is one point of a vertical line x = alpha.
type Point struct {
	// Lo and Hi bound the y-coordinate: Lo < y < Hi, or Lo == Hi == y when
	// the coordinate is known exactly.
	Lo, Hi *big.Rat

	// On reports, per curve, whether the point lies on that curve.
	On [2]bool

	// Critical reports, per curve, whether y is a multiple root of that
	// curve's polynomial restricted to the line (a singular point or a
	// vertical tangent).
	Critical [2]bool
}

// Exact reports whether the y-coordinate is known exactly.
func (p Point) Exact() bool {
	return p.Lo.Cmp(p.Hi) == 0
}

// Line computes the points of two curves over x = alpha in ascending order
// of y. Isolating intervals are refined until they are at most width wide.
//
// It panics if either polynomial vanishes identically on the line.
func Line(alpha algebraic.Real, curves [2]bivariate.Poly, width *big.Rat) []Point {
	k := newField(alpha)
	var polys [2]upoly
	var seqs, crit [2][]upoly
	for c, f := range curves {
		polys[c] = k.from(f.Coeffs())
		if len(polys[c]) == 0 {
			panic("fiber: curve contains the vertical line")
		}
		seqs[c] = k.sturm(polys[c])
		if last := seqs[c][len(seqs[c])-1]; last.degree() >= 1 {
			crit[c] = k.sturm(last)
		}
	}
	prod := k.mul(polys[0], polys[1])
	seq := k.sturm(prod)
	ivs := k.isolate(prod, seq, width)

	points := make([]Point, len(ivs))
	for i, iv := range ivs {
		pt := Point{Lo: iv.lo, Hi: iv.hi}
		for c := range curves {
			if iv.exact() {
				pt.On[c] = k.signAt(polys[c], iv.lo) == 0
				pt.Critical[c] = pt.On[c] && crit[c] != nil && k.signAt(crit[c][0], iv.lo) == 0
				continue
			}
			pt.On[c] = k.count(seqs[c], iv.lo, iv.hi) == 1
			pt.Critical[c] = pt.On[c] && crit[c] != nil && k.count(crit[c], iv.lo, iv.hi) >= 1
		}
		points[i] = pt
	}
	return points
}

type interval struct {
	lo, hi *big.Rat
}

func (iv interval) exact() bool {
	return iv.lo.Cmp(iv.hi) == 0
}

// isolate returns isolating intervals for the distinct real roots of p, in
// ascending order, each at most width wide.
func (k *field) isolate(p upoly, seq []upoly, width *big.Rat) []interval {
	total := k.countAll(seq)
	if total == 0 {
		return nil
	}
	b := big.NewRat(1, 1)
	for {
		lo := new(big.Rat).Neg(b)
		if k.signAt(p, lo) != 0 && k.signAt(p, b) != 0 && k.count(seq, lo, b) == total {
			break
		}
		b.Mul(b, big.NewRat(2, 1))
	}
	out := make([]interval, 0, total)
	return k.bisect(out, p, seq, new(big.Rat).Neg(b), b, total, width)
}

func half(a, b *big.Rat) *big.Rat {
	m := new(big.Rat).Add(a, b)
	return m.Quo(m, big.NewRat(2, 1))
}

func (k *field) bisect(out []interval, p upoly, seq []upoly, lo, hi *big.Rat, n int, width *big.Rat) []interval {
	switch n {
	case 0:
		return out
	case 1:
		return append(out, k.shrink(p, seq, lo, hi, width))
	}
	m := half(lo, hi)
	if k.signAt(p, m) != 0 {
		left := k.count(seq, lo, m)
		out = k.bisect(out, p, seq, lo, m, left, width)
		return k.bisect(out, p, seq, m, hi, n-left, width)
	}
	a, b := k.window(p, seq, m, new(big.Rat).Sub(hi, lo))
	left := k.count(seq, lo, a)
	out = k.bisect(out, p, seq, lo, a, left, width)
	out = append(out, interval{lo: m, hi: m})
	return k.bisect(out, p, seq, b, hi, n-1-left, width)
}

// window returns a, b with a < m < b such that m is the only root of p in
// (a, b) and neither a nor b is a root. span is the width of the enclosing
// interval.
func (k *field) window(p upoly, seq []upoly, m, span *big.Rat) (a, b *big.Rat) {
	d := new(big.Rat).Quo(span, big.NewRat(4, 1))
	for {
		a = new(big.Rat).Sub(m, d)
		b = new(big.Rat).Add(m, d)
		if k.signAt(p, a) != 0 && k.signAt(p, b) != 0 && k.count(seq, a, b) == 1 {
			return a, b
		}
		d.Quo(d, big.NewRat(2, 1))
	}
}

// shrink narrows an interval holding exactly one root until it is at most
// width wide. A midpoint that is a root yields an exact interval.
func (k *field) shrink(p upoly, seq []upoly, lo, hi, width *big.Rat) interval {
	for new(big.Rat).Sub(hi, lo).Cmp(width) > 0 {
		m := half(lo, hi)
		if k.signAt(p, m) == 0 {
			return interval{lo: m, hi: m}
		}
		if k.count(seq, lo, m) == 1 {
			hi = m
		} else {
			lo = m
		}
	}
	return interval{lo: lo, hi: hi}
}
