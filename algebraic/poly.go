package algebraic

import (
	"math/big"
	"strings"
)

// Poly is a univariate polynomial with rational coefficients.
//
// The zero value is the zero polynomial. Poly values are immutable: every
// operation returns a new polynomial and leaves its operands untouched, so a
// Poly may be shared freely between goroutines.
type Poly struct {
	c []*big.Rat // c[i] is the coefficient of x^i; the last entry is nonzero
}

// NewPoly returns the polynomial c[0] + c[1]x + c[2]x^2 + ...
// The coefficients are copied. Nil entries are treated as zero.
func NewPoly(c ...*big.Rat) Poly {
	out := make([]*big.Rat, len(c))
	for i, v := range c {
		if v == nil {
			out[i] = new(big.Rat)
			continue
		}
		out[i] = new(big.Rat).Set(v)
	}
	return trim(out)
}

// PolyFromInts returns the polynomial with the given integer coefficients,
// lowest degree first.
func PolyFromInts(c ...int64) Poly {
	out := make([]*big.Rat, len(c))
	for i, v := range c {
		out[i] = new(big.Rat).SetInt64(v)
	}
	return trim(out)
}

// Constant returns the constant polynomial v.
func Constant(v *big.Rat) Poly {
	return NewPoly(v)
}

// Monomial returns v*x^n.
func Monomial(v *big.Rat, n int) Poly {
	if n < 0 {
		panic("algebraic: negative monomial degree")
	}
	c := make([]*big.Rat, n+1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	c[n].Set(v)
	return trim(c)
}

// X returns the polynomial x.
func X() Poly {
	return PolyFromInts(0, 1)
}

// trim drops zero leading coefficients. It takes ownership of c.
func trim(c []*big.Rat) Poly {
	n := len(c)
	for n > 0 && c[n-1].Sign() == 0 {
		n--
	}
	if n == 0 {
		return Poly{}
	}
	return Poly{c: c[:n]}
}

var ratZero = new(big.Rat)

// coeff returns the i-th coefficient without copying. Callers must not
// modify the result.
func (p Poly) coeff(i int) *big.Rat {
	if i < 0 || i >= len(p.c) {
		return ratZero
	}
	return p.c[i]
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return len(p.c) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.c) == 0
}

// IsConstant reports whether p has degree at most zero.
func (p Poly) IsConstant() bool {
	return len(p.c) <= 1
}

// Coeff returns a copy of the coefficient of x^i.
func (p Poly) Coeff(i int) *big.Rat {
	return new(big.Rat).Set(p.coeff(i))
}

// Lead returns a copy of the leading coefficient (zero for the zero polynomial).
func (p Poly) Lead() *big.Rat {
	return p.Coeff(p.Degree())
}

// Coeffs returns copies of all coefficients, lowest degree first.
func (p Poly) Coeffs() []*big.Rat {
	out := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		out[i] = new(big.Rat).Set(v)
	}
	return out
}

// Equal reports whether p and q are the same polynomial.
func (p Poly) Equal(q Poly) bool {
	if len(p.c) != len(q.c) {
		return false
	}
	for i := range p.c {
		if p.c[i].Cmp(q.c[i]) != 0 {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	n := max(len(p.c), len(q.c))
	c := make([]*big.Rat, n)
	for i := range c {
		c[i] = new(big.Rat).Add(p.coeff(i), q.coeff(i))
	}
	return trim(c)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	n := max(len(p.c), len(q.c))
	c := make([]*big.Rat, n)
	for i := range c {
		c[i] = new(big.Rat).Sub(p.coeff(i), q.coeff(i))
	}
	return trim(c)
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	c := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		c[i] = new(big.Rat).Neg(v)
	}
	return Poly{c: c}
}

// Scale returns v*p.
func (p Poly) Scale(v *big.Rat) Poly {
	if v.Sign() == 0 {
		return Poly{}
	}
	c := make([]*big.Rat, len(p.c))
	for i, a := range p.c {
		c[i] = new(big.Rat).Mul(a, v)
	}
	return Poly{c: c}
}

// Mul returns p * q.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	c := make([]*big.Rat, len(p.c)+len(q.c)-1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	t := new(big.Rat)
	for i, a := range p.c {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q.c {
			c[i+j].Add(c[i+j], t.Mul(a, b))
		}
	}
	return trim(c)
}

// Pow returns p^n for n >= 0.
func (p Poly) Pow(n int) Poly {
	if n < 0 {
		panic("algebraic: negative exponent")
	}
	result := PolyFromInts(1)
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// DivMod returns the quotient and remainder of p divided by q.
// It panics if q is the zero polynomial.
func (p Poly) DivMod(q Poly) (quo, rem Poly) {
	if q.IsZero() {
		panic("algebraic: division by the zero polynomial")
	}
	if p.Degree() < q.Degree() {
		return Poly{}, p
	}
	r := p.Coeffs()
	dq := q.Degree()
	lead := q.c[dq]
	qc := make([]*big.Rat, p.Degree()-dq+1)
	for i := range qc {
		qc[i] = new(big.Rat)
	}
	t := new(big.Rat)
	for k := p.Degree() - dq; k >= 0; k-- {
		f := qc[k].Quo(r[k+dq], lead)
		if f.Sign() == 0 {
			continue
		}
		for j := 0; j <= dq; j++ {
			r[k+j].Sub(r[k+j], t.Mul(f, q.c[j]))
		}
	}
	return trim(qc), trim(r[:dq])
}

// Quo returns the quotient of p divided by q.
func (p Poly) Quo(q Poly) Poly {
	quo, _ := p.DivMod(q)
	return quo
}

// Rem returns the remainder of p divided by q.
func (p Poly) Rem(q Poly) Poly {
	_, rem := p.DivMod(q)
	return rem
}

// Monic returns p divided by its leading coefficient.
// The zero polynomial is returned unchanged.
func (p Poly) Monic() Poly {
	if p.IsZero() {
		return p
	}
	return p.Scale(new(big.Rat).Inv(p.c[len(p.c)-1]))
}

// Derivative returns dp/dx.
func (p Poly) Derivative() Poly {
	if len(p.c) <= 1 {
		return Poly{}
	}
	c := make([]*big.Rat, len(p.c)-1)
	for i := range c {
		c[i] = new(big.Rat).Mul(p.c[i+1], new(big.Rat).SetInt64(int64(i+1)))
	}
	return trim(c)
}

// GCD returns the monic greatest common divisor of p and q.
// GCD(0, 0) is the zero polynomial.
func GCD(p, q Poly) Poly {
	for !q.IsZero() {
		p, q = q, p.Rem(q)
	}
	return p.Monic()
}

// SquareFree returns the monic square-free part of p: the product of its
// distinct irreducible factors.
func (p Poly) SquareFree() Poly {
	if p.Degree() <= 0 {
		return p.Monic()
	}
	g := GCD(p, p.Derivative())
	return p.Quo(g).Monic()
}

// Eval returns p(v).
func (p Poly) Eval(v *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for i := len(p.c) - 1; i >= 0; i-- {
		acc.Mul(acc, v)
		acc.Add(acc, p.c[i])
	}
	return acc
}

// SignAt returns the sign of p(v): -1, 0 or +1.
func (p Poly) SignAt(v *big.Rat) int {
	return p.Eval(v).Sign()
}

// String formats p in the variable x, highest degree first.
func (p Poly) String() string {
	return p.Format("x")
}

// Format formats p using the given variable name.
func (p Poly) Format(v string) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i := len(p.c) - 1; i >= 0; i-- {
		c := p.c[i]
		if c.Sign() == 0 {
			continue
		}
		abs := new(big.Rat).Abs(c)
		switch {
		case b.Len() == 0 && c.Sign() < 0:
			b.WriteString("-")
		case b.Len() > 0 && c.Sign() < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		one := abs.Cmp(big.NewRat(1, 1)) == 0
		if !one || i == 0 {
			if abs.IsInt() || i == 0 {
				b.WriteString(abs.RatString())
			} else {
				b.WriteString("(" + abs.RatString() + ")")
			}
		}
		if i > 0 {
			if !one {
				b.WriteString("*")
			}
			b.WriteString(v)
			if i > 1 {
				b.WriteString("^")
				b.WriteString(big.NewInt(int64(i)).String())
			}
		}
	}
	return b.String()
}
