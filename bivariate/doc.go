// Package bivariate implements polynomials in Q[x][y] for describing plane
// algebraic curves: arithmetic, a small expression parser and resultants
// with respect to y.
package bivariate
