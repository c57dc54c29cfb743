package algcurve

import (
	"fmt"

	"github.com/gogpu/algcurve/algebraic"
)

// PairAnalysis is a lightweight, copyable handle to a shared CurvePair. All
// copies observe the same events and the same memoized vertical lines.
//
// The zero value is not usable; its methods panic.
type PairAnalysis struct {
	pair *CurvePair
}

// NewPairAnalysis analyses two curves together.
//
// Precondition: the curves are coprime. Use NewCurvePair to get an error
// instead of a panic.
func NewPairAnalysis(ca0, ca1 *CurveAnalysis, opts ...PairOption) PairAnalysis {
	cp, err := NewCurvePair(ca0, ca1, opts...)
	if err != nil {
		panic(fmt.Sprintf("algcurve: NewPairAnalysis: %v", err))
	}
	return PairAnalysis{pair: cp}
}

// NewPairAnalysisFromPair wraps an existing CurvePair.
func NewPairAnalysisFromPair(cp *CurvePair) PairAnalysis {
	if cp == nil {
		panic("algcurve: NewPairAnalysisFromPair with nil pair")
	}
	return PairAnalysis{pair: cp}
}

func (pa PairAnalysis) repo() *CurvePair {
	if pa.pair == nil {
		panic("algcurve: use of zero PairAnalysis")
	}
	return pa.pair
}

// Pair returns the shared event model.
func (pa PairAnalysis) Pair() *CurvePair {
	return pa.repo()
}

// Curve returns the analysis of the selected curve.
func (pa PairAnalysis) Curve(w Which) *CurveAnalysis {
	return pa.repo().Curve(w)
}

// NumEvents returns the number of pair events.
func (pa PairAnalysis) NumEvents() int {
	return pa.repo().NumEvents()
}

// EventX returns the x-coordinate of pair event i.
//
// Precondition: 0 <= i < NumEvents().
func (pa PairAnalysis) EventX(i int) algebraic.Real {
	return pa.repo().EventX(i)
}

// PerCurveEvent returns the event of the selected curve at pair event i, or
// NoEvent if that curve has no event there.
//
// Precondition: 0 <= i < NumEvents().
func (pa PairAnalysis) PerCurveEvent(i int, w Which) EventRef {
	return pa.repo().EventCorrelation(i).Of(w)
}

// VerticalLineAtEvent returns the line over pair event i.
//
// Precondition: 0 <= i < NumEvents().
func (pa PairAnalysis) VerticalLineAtEvent(i int) *VerticalLine {
	return pa.repo().MaterializeAtEvent(i)
}

// VerticalLineOfInterval returns the line over interval i, the x-range
// between events i-1 and i.
//
// Precondition: 0 <= i <= NumEvents().
func (pa PairAnalysis) VerticalLineOfInterval(i int) *VerticalLine {
	return pa.repo().MaterializeAtInterval(i)
}

// VerticalLineForX returns the cached line at x, or just left or right of x
// when x is an event and perturb is Negative or Positive.
func (pa PairAnalysis) VerticalLineForX(x algebraic.Real, perturb Sign) *VerticalLine {
	return lineAt(pa.repo(), x, perturb)
}

// VerticalLineAtExactX is VerticalLineForX(x, Zero).
func (pa PairAnalysis) VerticalLineAtExactX(x algebraic.Real) *VerticalLine {
	return pa.VerticalLineForX(x, Zero)
}

// SliceAt computes an uncached line at exactly x. See CurvePair.SliceAt.
func (pa PairAnalysis) SliceAt(x algebraic.Real) *VerticalLine {
	return pa.repo().SliceAt(x)
}

// Equal reports whether both handles share the same CurvePair.
func (pa PairAnalysis) Equal(o PairAnalysis) bool {
	return pa.pair != nil && pa.pair == o.pair
}
