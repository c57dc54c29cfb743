package bivariate

import (
	"math/big"
	"strings"

	"github.com/gogpu/algcurve/algebraic"
)

// Poly is a polynomial in Q[x][y]: a polynomial in y whose coefficients are
// univariate polynomials in x.
//
// The zero value is the zero polynomial. Poly values are immutable.
type Poly struct {
	c []algebraic.Poly // c[j] is the coefficient of y^j; the last entry is nonzero
}

// New returns c[0] + c[1]y + c[2]y^2 + ... for coefficients in x.
func New(c ...algebraic.Poly) Poly {
	out := make([]algebraic.Poly, len(c))
	copy(out, c)
	return trim(out)
}

// FromX returns the univariate polynomial p(x) as a bivariate polynomial.
func FromX(p algebraic.Poly) Poly {
	return New(p)
}

// Const returns the constant polynomial v.
func Const(v *big.Rat) Poly {
	return New(algebraic.Constant(v))
}

// X returns the polynomial x.
func X() Poly {
	return New(algebraic.X())
}

// Y returns the polynomial y.
func Y() Poly {
	return New(algebraic.Poly{}, algebraic.PolyFromInts(1))
}

func trim(c []algebraic.Poly) Poly {
	n := len(c)
	for n > 0 && c[n-1].IsZero() {
		n--
	}
	if n == 0 {
		return Poly{}
	}
	return Poly{c: c[:n]}
}

// DegreeY returns the degree in y, or -1 for the zero polynomial.
func (p Poly) DegreeY() int {
	return len(p.c) - 1
}

// DegreeX returns the largest degree in x among the coefficients, or -1 for
// the zero polynomial.
func (p Poly) DegreeX() int {
	d := -1
	for _, c := range p.c {
		d = max(d, c.Degree())
	}
	return d
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.c) == 0
}

// Coeff returns the coefficient of y^j.
func (p Poly) Coeff(j int) algebraic.Poly {
	if j < 0 || j >= len(p.c) {
		return algebraic.Poly{}
	}
	return p.c[j]
}

// Coeffs returns all y-coefficients, lowest degree first.
func (p Poly) Coeffs() []algebraic.Poly {
	out := make([]algebraic.Poly, len(p.c))
	copy(out, p.c)
	return out
}

// LeadY returns the leading coefficient in y.
func (p Poly) LeadY() algebraic.Poly {
	return p.Coeff(p.DegreeY())
}

// Equal reports whether p and q are the same polynomial.
func (p Poly) Equal(q Poly) bool {
	if len(p.c) != len(q.c) {
		return false
	}
	for j := range p.c {
		if !p.c[j].Equal(q.c[j]) {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	c := make([]algebraic.Poly, max(len(p.c), len(q.c)))
	for j := range c {
		c[j] = p.Coeff(j).Add(q.Coeff(j))
	}
	return trim(c)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	c := make([]algebraic.Poly, max(len(p.c), len(q.c)))
	for j := range c {
		c[j] = p.Coeff(j).Sub(q.Coeff(j))
	}
	return trim(c)
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	c := make([]algebraic.Poly, len(p.c))
	for j, v := range p.c {
		c[j] = v.Neg()
	}
	return Poly{c: c}
}

// Scale returns v*p.
func (p Poly) Scale(v *big.Rat) Poly {
	c := make([]algebraic.Poly, len(p.c))
	for j, a := range p.c {
		c[j] = a.Scale(v)
	}
	return trim(c)
}

// Mul returns p * q.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	c := make([]algebraic.Poly, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		for j, b := range q.c {
			c[i+j] = c[i+j].Add(a.Mul(b))
		}
	}
	return trim(c)
}

// Pow returns p^n for n >= 0.
func (p Poly) Pow(n int) Poly {
	if n < 0 {
		panic("bivariate: negative exponent")
	}
	result := Const(big.NewRat(1, 1))
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

// DerivY returns the partial derivative with respect to y.
func (p Poly) DerivY() Poly {
	if len(p.c) <= 1 {
		return Poly{}
	}
	c := make([]algebraic.Poly, len(p.c)-1)
	for j := range c {
		c[j] = p.c[j+1].Scale(new(big.Rat).SetInt64(int64(j + 1)))
	}
	return trim(c)
}

// DerivX returns the partial derivative with respect to x.
func (p Poly) DerivX() Poly {
	c := make([]algebraic.Poly, len(p.c))
	for j, a := range p.c {
		c[j] = a.Derivative()
	}
	return trim(c)
}

// EvalX substitutes x = v and returns the resulting polynomial in y.
func (p Poly) EvalX(v *big.Rat) algebraic.Poly {
	c := make([]*big.Rat, len(p.c))
	for j, a := range p.c {
		c[j] = a.Eval(v)
	}
	return algebraic.NewPoly(c...)
}

// Eval returns p(x, y).
func (p Poly) Eval(x, y *big.Rat) *big.Rat {
	return p.EvalX(x).Eval(y)
}

// Content returns the monic gcd of the y-coefficients. A non-constant
// content means p has a factor depending on x alone, i.e. vertical lines.
func (p Poly) Content() algebraic.Poly {
	var g algebraic.Poly
	for _, c := range p.c {
		g = algebraic.GCD(g, c)
		if g.Degree() == 0 {
			break
		}
	}
	return g
}

// String formats p with monomials ordered by descending y degree, then
// descending x degree.
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for j := len(p.c) - 1; j >= 0; j-- {
		coeffs := p.c[j].Coeffs()
		for i := len(coeffs) - 1; i >= 0; i-- {
			c := coeffs[i]
			if c.Sign() == 0 {
				continue
			}
			writeMonomial(&b, c, i, j)
		}
	}
	return b.String()
}

func writeMonomial(b *strings.Builder, c *big.Rat, i, j int) {
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
	constant := i == 0 && j == 0
	if !one || constant {
		if abs.IsInt() || constant {
			b.WriteString(abs.RatString())
		} else {
			b.WriteString("(" + abs.RatString() + ")")
		}
		if !constant {
			b.WriteString("*")
		}
	}
	writeVar(b, "x", i)
	if i > 0 && j > 0 {
		b.WriteString("*")
	}
	writeVar(b, "y", j)
}

func writeVar(b *strings.Builder, v string, n int) {
	if n == 0 {
		return
	}
	b.WriteString(v)
	if n > 1 {
		b.WriteString("^")
		b.WriteString(big.NewInt(int64(n)).String())
	}
}
