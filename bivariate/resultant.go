package bivariate

import (
	"math/big"

	"github.com/gogpu/algcurve/algebraic"
)

// ResultantY returns the resultant of f and g with respect to y, a
// polynomial in x. It vanishes at x0 exactly when f(x0, y) and g(x0, y) have
// a common root or both leading coefficients vanish at x0.
//
// The Sylvester determinant is computed with Bareiss fraction-free
// elimination over Q[x], so every division is exact.
func ResultantY(f, g Poly) algebraic.Poly {
	if f.IsZero() || g.IsZero() {
		return algebraic.Poly{}
	}
	m, n := f.DegreeY(), g.DegreeY()
	switch {
	case m == 0 && n == 0:
		return algebraic.PolyFromInts(1)
	case m == 0:
		return f.c[0].Pow(n)
	case n == 0:
		return g.c[0].Pow(m)
	}
	return determinant(sylvester(f, g))
}

// sylvester builds the (m+n)x(m+n) Sylvester matrix of f and g in y.
func sylvester(f, g Poly) [][]algebraic.Poly {
	m, n := f.DegreeY(), g.DegreeY()
	size := m + n
	mat := make([][]algebraic.Poly, size)
	for i := range mat {
		mat[i] = make([]algebraic.Poly, size)
	}
	for i := 0; i < n; i++ {
		for k := 0; k <= m; k++ {
			mat[i][i+k] = f.c[m-k]
		}
	}
	for i := 0; i < m; i++ {
		for k := 0; k <= n; k++ {
			mat[n+i][i+k] = g.c[n-k]
		}
	}
	return mat
}

// determinant returns det(mat) using Bareiss elimination. mat is consumed.
func determinant(mat [][]algebraic.Poly) algebraic.Poly {
	size := len(mat)
	if size == 0 {
		return algebraic.PolyFromInts(1)
	}
	negate := false
	prev := algebraic.PolyFromInts(1)
	for k := 0; k < size-1; k++ {
		if mat[k][k].IsZero() {
			swap := -1
			for r := k + 1; r < size; r++ {
				if !mat[r][k].IsZero() {
					swap = r
					break
				}
			}
			if swap < 0 {
				return algebraic.Poly{}
			}
			mat[k], mat[swap] = mat[swap], mat[k]
			negate = !negate
		}
		pivot := mat[k][k]
		for i := k + 1; i < size; i++ {
			for j := k + 1; j < size; j++ {
				v := mat[i][j].Mul(pivot).Sub(mat[i][k].Mul(mat[k][j]))
				mat[i][j] = v.Quo(prev)
			}
			mat[i][k] = algebraic.Poly{}
		}
		prev = pivot
	}
	det := mat[size-1][size-1]
	if negate {
		det = det.Neg()
	}
	return det
}

// DiscriminantY returns Res_y(f, df/dy). Its real roots are the x-coordinates
// of singular points, vertical tangents and vertical asymptotes of f = 0.
func DiscriminantY(f Poly) algebraic.Poly {
	return ResultantY(f, f.DerivY())
}

// FromInts builds a polynomial from integer coefficients: rows[j][i] is the
// coefficient of x^i y^j.
func FromInts(rows ...[]int64) Poly {
	c := make([]algebraic.Poly, len(rows))
	for j, r := range rows {
		c[j] = algebraic.PolyFromInts(r...)
	}
	return trim(c)
}

// Monomial returns v * x^i * y^j.
func Monomial(v *big.Rat, i, j int) Poly {
	c := make([]algebraic.Poly, j+1)
	c[j] = algebraic.Monomial(v, i)
	return trim(c)
}
