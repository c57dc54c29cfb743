package algcurve

import "errors"

// Validation errors returned when building curves and curve pairs.
var (
	// ErrDegenerateCurve indicates a constant polynomial.
	ErrDegenerateCurve = errors.New("algcurve: polynomial defines no curve")

	// ErrVerticalComponent indicates a factor depending on x alone, i.e. a
	// vertical line contained in the curve.
	ErrVerticalComponent = errors.New("algcurve: curve contains a vertical line")

	// ErrNotSquareFree indicates a repeated factor.
	ErrNotSquareFree = errors.New("algcurve: polynomial is not square-free")

	// ErrNotCoprime indicates that two curves share a component.
	ErrNotCoprime = errors.New("algcurve: curves share a component")

	// ErrBadCoordinate indicates a malformed x-coordinate expression.
	ErrBadCoordinate = errors.New("algcurve: malformed x-coordinate")
)
