// Package algebraic provides exact univariate algebra over the rationals.
//
// # Polynomials
//
// [Poly] is an immutable polynomial with math/big.Rat coefficients. It
// supports ring arithmetic, Euclidean division, gcd, square-free parts and
// Sturm sequences.
//
// # Real algebraic numbers
//
// [Real] represents a real algebraic number exactly, either as a rational or
// as the unique root of a square-free polynomial inside an isolating
// interval with rational endpoints. [Compare] decides order and equality
// exactly, also between numbers given by different polynomials, and
// [Real.SignOf] evaluates the sign of any rational polynomial at a Real.
//
//	roots := algebraic.RealRoots(algebraic.PolyFromInts(-2, 0, 1)) // x^2 - 2
//	sqrt2 := roots[1]
//	algebraic.Compare(sqrt2, algebraic.RealFromFrac(3, 2)) // -1
//
// No floating point arithmetic takes part in any decision; Float64 exists
// for display only.
package algebraic
