package algebraic

import "math/big"

// SturmSequence returns the Sturm sequence of p: p, p', and the negated
// remainders of the Euclidean algorithm, each scaled by a positive constant.
// The last element is a constant multiple of gcd(p, p').
func SturmSequence(p Poly) []Poly {
	if p.IsZero() {
		return nil
	}
	seq := []Poly{p}
	d := p.Derivative()
	if d.IsZero() {
		return seq
	}
	seq = append(seq, d)
	for {
		a, b := seq[len(seq)-2], seq[len(seq)-1]
		r := a.Rem(b)
		if r.IsZero() {
			return seq
		}
		// Negate and normalize to a leading coefficient of magnitude one;
		// only the sign of the multiplier matters.
		lead := new(big.Rat).Abs(r.c[len(r.c)-1])
		seq = append(seq, r.Scale(lead.Inv(lead).Neg(lead)))
	}
}

// variations counts sign changes of the sequence evaluated at v, ignoring zeros.
func variations(seq []Poly, v *big.Rat) int {
	n := 0
	last := 0
	for _, p := range seq {
		s := p.SignAt(v)
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

// variationsAtInfinity counts sign changes at +inf (positive) or -inf.
func variationsAtInfinity(seq []Poly, positive bool) int {
	n := 0
	last := 0
	for _, p := range seq {
		s := p.c[len(p.c)-1].Sign()
		if !positive && p.Degree()%2 == 1 {
			s = -s
		}
		if last != 0 && s != last {
			n++
		}
		last = s
	}
	return n
}

// CountRoots returns the number of distinct real roots of seq[0] in the open
// interval (a, b). The endpoints must satisfy a < b and must not be roots of
// seq[0].
func CountRoots(seq []Poly, a, b *big.Rat) int {
	if len(seq) == 0 {
		return 0
	}
	return variations(seq, a) - variations(seq, b)
}

// CountRealRoots returns the number of distinct real roots of seq[0].
func CountRealRoots(seq []Poly) int {
	if len(seq) == 0 {
		return 0
	}
	return variationsAtInfinity(seq, false) - variationsAtInfinity(seq, true)
}

// RootBound returns B > 0 such that every real root of p lies in (-B, B).
// It uses the Cauchy bound 1 + max |c_i / c_n|.
func RootBound(p Poly) *big.Rat {
	b := new(big.Rat)
	if p.Degree() <= 0 {
		return b.SetInt64(1)
	}
	lead := new(big.Rat).Abs(p.c[len(p.c)-1])
	t := new(big.Rat)
	for _, c := range p.c[:len(p.c)-1] {
		t.Abs(c)
		t.Quo(t, lead)
		if t.Cmp(b) > 0 {
			b.Set(t)
		}
	}
	return b.Add(b, big.NewRat(1, 1))
}
