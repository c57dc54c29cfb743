package fiber

import (
	"math/big"

	"github.com/gogpu/algcurve/algebraic"
)

// field evaluates elements of Q[x]/(m) at a fixed real algebraic number
// alpha, where m(alpha) = 0. Elements are polynomials in x reduced modulo m;
// their value is the polynomial evaluated at alpha. Reduction modulo m is a
// ring homomorphism compatible with that evaluation, so every sign decision
// is exact even when m is reducible.
//
// A field is not safe for concurrent use: signs refine alpha in place.
type field struct {
	alpha algebraic.Real
	m     algebraic.Poly
}

func newField(alpha algebraic.Real) *field {
	return &field{alpha: alpha, m: alpha.Poly()}
}

func (k *field) reduce(c algebraic.Poly) algebraic.Poly {
	if c.Degree() < k.m.Degree() {
		return c
	}
	return c.Rem(k.m)
}

// sign returns the sign of c(alpha).
func (k *field) sign(c algebraic.Poly) int {
	if c.Degree() <= 0 {
		return c.Lead().Sign()
	}
	s, refined := k.alpha.SignOf(c)
	k.alpha = refined
	return s
}

// upoly is a polynomial in y with coefficients in the field. The leading
// coefficient is nonzero at alpha unless the polynomial is empty.
type upoly []algebraic.Poly

func (p upoly) degree() int {
	return len(p) - 1
}

func (p upoly) lead() algebraic.Poly {
	return p[len(p)-1]
}

// trim drops leading coefficients that vanish at alpha.
func (k *field) trim(p upoly) upoly {
	n := len(p)
	for n > 0 && (p[n-1].IsZero() || k.sign(p[n-1]) == 0) {
		n--
	}
	return p[:n]
}

func (k *field) from(coeffs []algebraic.Poly) upoly {
	p := make(upoly, len(coeffs))
	for j, c := range coeffs {
		p[j] = k.reduce(c)
	}
	return k.trim(p)
}

func (k *field) derivative(p upoly) upoly {
	if len(p) <= 1 {
		return nil
	}
	d := make(upoly, len(p)-1)
	for j := range d {
		d[j] = p[j+1].Scale(new(big.Rat).SetInt64(int64(j + 1)))
	}
	return k.trim(d)
}

func (k *field) mul(p, q upoly) upoly {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	out := make(upoly, len(p)+len(q)-1)
	for i, a := range p {
		for j, b := range q {
			out[i+j] = k.reduce(out[i+j].Add(a.Mul(b)))
		}
	}
	return k.trim(out)
}

// eval returns p(alpha, y0) as an element of the field.
func (k *field) eval(p upoly, y0 *big.Rat) algebraic.Poly {
	var acc algebraic.Poly
	for j := len(p) - 1; j >= 0; j-- {
		acc = acc.Scale(y0).Add(p[j])
	}
	return k.reduce(acc)
}

func (k *field) signAt(p upoly, y0 *big.Rat) int {
	return k.sign(k.eval(p, y0))
}

// prem returns a positive multiple of the remainder of a divided by b.
func (k *field) prem(a, b upoly) upoly {
	r := make(upoly, len(a))
	copy(r, a)
	lb := b.lead()
	steps := 0
	for len(r) > 0 && r.degree() >= b.degree() {
		shift := r.degree() - b.degree()
		lr := r.lead()
		next := make(upoly, len(r))
		for j := range r {
			next[j] = r[j].Mul(lb)
		}
		for j, c := range b {
			next[j+shift] = next[j+shift].Sub(c.Mul(lr))
		}
		for j := range next {
			next[j] = k.reduce(next[j])
		}
		// The leading term cancels by construction.
		r = k.trim(next[:len(next)-1])
		steps++
	}
	if steps%2 == 1 && k.sign(lb) < 0 {
		r = negate(r)
	}
	return k.normalize(r)
}

func negate(p upoly) upoly {
	out := make(upoly, len(p))
	for j, c := range p {
		out[j] = c.Neg()
	}
	return out
}

// normalize scales p by a positive rational so that the coefficient of
// highest x degree in its leading y coefficient has magnitude one.
func (k *field) normalize(p upoly) upoly {
	if len(p) == 0 {
		return p
	}
	s := new(big.Rat).Abs(p.lead().Lead())
	if s.Sign() == 0 {
		return p
	}
	s.Inv(s)
	out := make(upoly, len(p))
	for j, c := range p {
		out[j] = c.Scale(s)
	}
	return out
}

// sturm returns the Sturm sequence of p over the field.
func (k *field) sturm(p upoly) []upoly {
	if len(p) == 0 {
		return nil
	}
	seq := []upoly{p}
	d := k.derivative(p)
	if len(d) == 0 {
		return seq
	}
	seq = append(seq, d)
	for {
		a, b := seq[len(seq)-2], seq[len(seq)-1]
		r := k.prem(a, b)
		if len(r) == 0 {
			return seq
		}
		seq = append(seq, negate(r))
	}
}

func (k *field) variations(seq []upoly, y0 *big.Rat) int {
	n, last := 0, 0
	for _, p := range seq {
		s := k.signAt(p, y0)
		if s == 0 {
			continue
		}
		if last != 0 && s != last {
			n++
		}
		last = s
	}
	return n
}

func (k *field) variationsAtInfinity(seq []upoly, positive bool) int {
	n, last := 0, 0
	for _, p := range seq {
		s := k.sign(p.lead())
		if !positive && p.degree()%2 == 1 {
			s = -s
		}
		if last != 0 && s != last {
			n++
		}
		last = s
	}
	return n
}

// count returns the number of distinct roots of seq[0](alpha, y) in
// (lo, hi). Neither endpoint may be a root.
func (k *field) count(seq []upoly, lo, hi *big.Rat) int {
	if len(seq) == 0 {
		return 0
	}
	return k.variations(seq, lo) - k.variations(seq, hi)
}

func (k *field) countAll(seq []upoly) int {
	if len(seq) == 0 {
		return 0
	}
	return k.variationsAtInfinity(seq, false) - k.variationsAtInfinity(seq, true)
}
