package bivariate

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/gogpu/algcurve/algebraic"
)

// ErrSyntax is returned by Parse for malformed polynomial expressions.
var ErrSyntax = errors.New("bivariate: syntax error")

// ErrNotUnivariate is returned by ParseUnivariate when the expression
// depends on y.
var ErrNotUnivariate = errors.New("bivariate: expression depends on y")

// maxExponent bounds literal exponents to keep inputs reasonable.
const maxExponent = 64

// Parse parses a polynomial in x and y with rational coefficients.
//
// The grammar accepts + - * / ^ (or **), parentheses, integer and decimal
// literals and implicit multiplication, so "x^2 + y^2 - 1", "2xy - 1/2" and
// "(x - y)(x + y)" are all valid. Division is only allowed by nonzero
// constants.
func Parse(s string) (Poly, error) {
	p := &parser{src: s}
	out, err := p.parseExpr()
	if err != nil {
		return Poly{}, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return Poly{}, p.errorf("unexpected %q", p.src[p.pos])
	}
	return out, nil
}

// MustParse is like Parse but panics on error. It is intended for
// polynomial literals in tests and examples.
func MustParse(s string) Poly {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseUnivariate parses a polynomial in x alone.
func ParseUnivariate(s string) (algebraic.Poly, error) {
	p, err := Parse(s)
	if err != nil {
		return algebraic.Poly{}, err
	}
	if p.DegreeY() > 0 {
		return algebraic.Poly{}, fmt.Errorf("%w: %q", ErrNotUnivariate, s)
	}
	return p.Coeff(0), nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, fmt.Sprintf(format, args...), p.pos)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// peek returns the next non-space byte, or 0 at the end of input.
func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// parseExpr: term { ("+" | "-") term }
func (p *parser) parseExpr() (Poly, error) {
	acc, err := p.parseTerm()
	if err != nil {
		return Poly{}, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			t, err := p.parseTerm()
			if err != nil {
				return Poly{}, err
			}
			acc = acc.Add(t)
		case '-':
			p.pos++
			t, err := p.parseTerm()
			if err != nil {
				return Poly{}, err
			}
			acc = acc.Sub(t)
		default:
			return acc, nil
		}
	}
}

// parseTerm: unary { ("*" | "/" | implicit) unary }
func (p *parser) parseTerm() (Poly, error) {
	acc, err := p.parseUnary()
	if err != nil {
		return Poly{}, err
	}
	for {
		c := p.peek()
		switch {
		case c == '*' && !p.atPowerOp():
			p.pos++
			f, err := p.parseUnary()
			if err != nil {
				return Poly{}, err
			}
			acc = acc.Mul(f)
		case c == '/':
			p.pos++
			at := p.pos
			f, err := p.parseUnary()
			if err != nil {
				return Poly{}, err
			}
			if f.DegreeY() != 0 || f.Coeff(0).Degree() != 0 {
				p.pos = at
				return Poly{}, p.errorf("division by a non-constant or zero")
			}
			acc = acc.Scale(new(big.Rat).Inv(f.Coeff(0).Coeff(0)))
		case startsPrimary(c):
			f, err := p.parsePower()
			if err != nil {
				return Poly{}, err
			}
			acc = acc.Mul(f)
		default:
			return acc, nil
		}
	}
}

func startsPrimary(c byte) bool {
	return c == '(' || c == 'x' || c == 'y' || c == '.' || (c >= '0' && c <= '9')
}

func (p *parser) atPowerOp() bool {
	return p.pos+1 < len(p.src) && p.src[p.pos] == '*' && p.src[p.pos+1] == '*'
}

// parseUnary: { "-" | "+" } power
func (p *parser) parseUnary() (Poly, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return Poly{}, err
		}
		return v.Neg(), nil
	case '+':
		p.pos++
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower: primary [ ("^" | "**") integer ]
func (p *parser) parsePower() (Poly, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return Poly{}, err
	}
	switch {
	case p.peek() == '^':
		p.pos++
	case p.atPowerOp():
		p.pos += 2
	default:
		return base, nil
	}
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return Poly{}, p.errorf("exponent must be a non-negative integer")
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil || n > maxExponent {
		p.pos = start
		return Poly{}, p.errorf("exponent out of range")
	}
	return base.Pow(n), nil
}

// parsePrimary: number | "x" | "y" | "(" expr ")"
func (p *parser) parsePrimary() (Poly, error) {
	c := p.peek()
	switch {
	case c == 0:
		return Poly{}, p.errorf("unexpected end of input")
	case c == 'x':
		p.pos++
		return X(), nil
	case c == 'y':
		p.pos++
		return Y(), nil
	case c == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return Poly{}, err
		}
		if p.peek() != ')' {
			return Poly{}, p.errorf("missing ')'")
		}
		p.pos++
		return v, nil
	case c == '.' || (c >= '0' && c <= '9'):
		start := p.pos
		for p.pos < len(p.src) && (p.src[p.pos] == '.' || (p.src[p.pos] >= '0' && p.src[p.pos] <= '9')) {
			p.pos++
		}
		lit := p.src[start:p.pos]
		v, ok := new(big.Rat).SetString(lit)
		if !ok {
			p.pos = start
			return Poly{}, p.errorf("bad number %q", lit)
		}
		return Const(v), nil
	}
	return Poly{}, p.errorf("unexpected %q", c)
}
