package algcurve

import (
	"fmt"
	"slices"

	"github.com/gogpu/algcurve/algebraic"
	"github.com/gogpu/algcurve/bivariate"
)

// Curve is a real plane algebraic curve f(x, y) = 0 with a square-free
// defining polynomial and no vertical line components. Curves are
// immutable.
type Curve struct {
	f    bivariate.Poly
	disc algebraic.Poly // Res_y(f, df/dy)
}

// NewCurve validates f and returns the curve it defines.
//
// f must depend on y, have no factor depending on x alone and be
// square-free; otherwise ErrDegenerateCurve, ErrVerticalComponent or
// ErrNotSquareFree is returned.
func NewCurve(f bivariate.Poly) (*Curve, error) {
	if f.DegreeY() <= 0 && f.DegreeX() <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateCurve, f)
	}
	if f.Content().Degree() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrVerticalComponent, f)
	}
	// With constant content, f is square-free exactly when it shares no
	// factor with its y-derivative.
	disc := bivariate.DiscriminantY(f)
	if disc.IsZero() {
		return nil, fmt.Errorf("%w: %v", ErrNotSquareFree, f)
	}
	return &Curve{f: f, disc: disc}, nil
}

// ParseCurve parses and validates a curve such as "x^2 + y^2 - 1".
func ParseCurve(s string) (*Curve, error) {
	f, err := bivariate.Parse(s)
	if err != nil {
		return nil, err
	}
	return NewCurve(f)
}

// MustParseCurve is like ParseCurve but panics on error.
func MustParseCurve(s string) *Curve {
	c, err := ParseCurve(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Polynomial returns the defining polynomial.
func (c *Curve) Polynomial() bivariate.Poly {
	return c.f
}

func (c *Curve) String() string {
	return c.f.String()
}

// CurveAnalysis holds the events of a single curve: the x-coordinates of its
// singular points, vertical tangents and vertical asymptotes, computed once.
type CurveAnalysis struct {
	curve  *Curve
	events []algebraic.Real
}

// NewCurveAnalysis computes the events of c.
func NewCurveAnalysis(c *Curve) *CurveAnalysis {
	if c == nil {
		panic("algcurve: NewCurveAnalysis of nil curve")
	}
	return &CurveAnalysis{curve: c, events: algebraic.RealRoots(c.disc)}
}

// Curve returns the analysed curve.
func (a *CurveAnalysis) Curve() *Curve {
	return a.curve
}

// Polynomial returns the defining polynomial of the analysed curve.
func (a *CurveAnalysis) Polynomial() bivariate.Poly {
	return a.curve.f
}

// NumEvents returns the number of events of the curve.
func (a *CurveAnalysis) NumEvents() int {
	return len(a.events)
}

// EventX returns the x-coordinate of event i.
//
// Precondition: 0 <= i < NumEvents().
func (a *CurveAnalysis) EventX(i int) algebraic.Real {
	if i < 0 || i >= len(a.events) {
		panic(fmt.Sprintf("algcurve: curve event index %d out of range [0, %d)", i, len(a.events)))
	}
	return a.events[i]
}

// Locate returns the number of events strictly left of x and whether x is
// itself an event; in that case the index is the event's index.
func (a *CurveAnalysis) Locate(x algebraic.Real) (int, bool) {
	return locate(a.events, x)
}

// locate binary-searches sorted events by exact comparison.
func locate(events []algebraic.Real, x algebraic.Real) (int, bool) {
	return slices.BinarySearchFunc(events, x, algebraic.Compare)
}
