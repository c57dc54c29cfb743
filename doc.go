// Package algcurve computes the exact combined topology of two real plane
// algebraic curves f(x, y) = 0 and g(x, y) = 0.
//
// # Overview
//
// Along the x-axis a pair of curves has finitely many events: x-coordinates
// where either curve is singular, has a vertical tangent or a vertical
// asymptote, or where the two curves meet. Between consecutive events the
// number and vertical order of the curve branches is constant. algcurve finds
// the events exactly and, for any event or the open interval between two
// events, materializes the vertical line: the ordered list of points where
// the curves cross it, each tagged with the curves it lies on.
//
// All arithmetic is exact. Coordinates are rationals or real algebraic
// numbers from package algebraic; polynomials come from package bivariate.
//
// # Quick Start
//
//	f := algcurve.MustParseCurve("x^2 + y^2 - 1")
//	g := algcurve.MustParseCurve("y - x")
//	pa := algcurve.NewPairAnalysis(algcurve.NewCurveAnalysis(f), algcurve.NewCurveAnalysis(g))
//
//	for i := range pa.NumEvents() {
//	    line := pa.VerticalLineAtEvent(i)
//	    fmt.Println(pa.EventX(i), line.NumPoints())
//	}
//
// # Events and Intervals
//
// With n events, indices 0..n-1 name events and indices 0..n name intervals:
// interval i lies between events i-1 and i, interval 0 extends to minus
// infinity and interval n to plus infinity. PerCurveEvent relates a pair
// event to the event of a single curve at the same x, or NoEvent.
//
// VerticalLineForX resolves an arbitrary x. A perturbation of Negative or
// Positive at an event selects the interval just left or right of it; away
// from events the perturbation has no effect.
//
// # Sharing and Concurrency
//
// PairAnalysis is a small value. Copies share one CurvePair, which computes
// vertical lines lazily and caches them, so repeated queries return the same
// *VerticalLine. All methods are safe for concurrent use. CurvePair.MaterializeAll
// fills the cache in parallel.
//
// # Logging
//
// algcurve is silent by default. SetLogger installs a slog.Logger that
// receives debug records for event computation and line materialization.
package algcurve
