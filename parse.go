package algcurve

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/gogpu/algcurve/algebraic"
	"github.com/gogpu/algcurve/bivariate"
)

// ParseX parses an x-coordinate. Accepted forms are integers ("3"),
// fractions ("-1/2"), decimals ("0.25") and real roots of a polynomial in x
// written "root(x^2 - 2, 1)", which selects the root with the given 0-based
// index in ascending order.
func ParseX(s string) (algebraic.Real, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "root("); ok {
		return parseRoot(s, rest)
	}
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return algebraic.Real{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	return algebraic.RealFromRat(v), nil
}

func parseRoot(s, rest string) (algebraic.Real, error) {
	body, ok := strings.CutSuffix(strings.TrimSpace(rest), ")")
	if !ok {
		return algebraic.Real{}, fmt.Errorf("%w: missing ')' in %q", ErrBadCoordinate, s)
	}
	comma := strings.LastIndexByte(body, ',')
	if comma < 0 {
		return algebraic.Real{}, fmt.Errorf("%w: missing root index in %q", ErrBadCoordinate, s)
	}
	k, err := strconv.Atoi(strings.TrimSpace(body[comma+1:]))
	if err != nil {
		return algebraic.Real{}, fmt.Errorf("%w: bad root index in %q: %w", ErrBadCoordinate, s, err)
	}
	p, err := bivariate.ParseUnivariate(body[:comma])
	if err != nil {
		return algebraic.Real{}, fmt.Errorf("%w: %w", ErrBadCoordinate, err)
	}
	if p.IsZero() {
		return algebraic.Real{}, fmt.Errorf("%w: zero polynomial in %q", ErrBadCoordinate, s)
	}
	roots := algebraic.RealRoots(p)
	if k < 0 || k >= len(roots) {
		return algebraic.Real{}, fmt.Errorf("%w: %q has %d real roots", ErrBadCoordinate, s, len(roots))
	}
	return roots[k], nil
}
