package algcurve

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/gogpu/algcurve/algebraic"
	"github.com/gogpu/algcurve/internal/fiber"
)

// LinePoint is a point of a vertical line where at least one curve of the
// pair passes. Its y-coordinate is given by an isolating interval.
type LinePoint struct {
	lo, hi   *big.Rat
	on       [2]bool
	arc      [2]int
	critical [2]bool
}

// Interval returns bounds with lo < y < hi, or lo == hi == y when the
// y-coordinate is rational and known exactly.
func (p LinePoint) Interval() (lo, hi *big.Rat) {
	return new(big.Rat).Set(p.lo), new(big.Rat).Set(p.hi)
}

// IsExact reports whether the y-coordinate is known exactly.
func (p LinePoint) IsExact() bool {
	return p.lo.Cmp(p.hi) == 0
}

// Y returns an approximation of the y-coordinate.
func (p LinePoint) Y() float64 {
	m := new(big.Rat).Add(p.lo, p.hi)
	m.Quo(m, big.NewRat(2, 1))
	f, _ := m.Float64()
	return f
}

// On reports whether the point lies on the given curve.
func (p LinePoint) On(w Which) bool {
	return p.on[w.index()]
}

// Arc returns the position of the point among the points of the given curve
// on this line, counted from the bottom, and whether the point lies on that
// curve at all.
func (p LinePoint) Arc(w Which) (int, bool) {
	i := w.index()
	if !p.on[i] {
		return -1, false
	}
	return p.arc[i], true
}

// IsIntersection reports whether both curves pass through the point.
func (p LinePoint) IsIntersection() bool {
	return p.on[0] && p.on[1]
}

// IsCritical reports whether the point is a singular point or a point with
// vertical tangent of the given curve.
func (p LinePoint) IsCritical(w Which) bool {
	return p.critical[w.index()]
}

func (p LinePoint) String() string {
	var b strings.Builder
	if p.IsExact() {
		fmt.Fprintf(&b, "y=%s", p.lo.RatString())
	} else {
		fmt.Fprintf(&b, "y in (%s, %s)", p.lo.RatString(), p.hi.RatString())
	}
	for c := range 2 {
		if !p.on[c] {
			continue
		}
		fmt.Fprintf(&b, " %s#%d", Which(c), p.arc[c])
		if p.critical[c] {
			b.WriteByte('*')
		}
	}
	return b.String()
}

// VerticalLine is the combined fiber structure of a curve pair over one
// x-coordinate: the points of both curves in ascending order of y.
//
// A VerticalLine is immutable and safe for concurrent use.
type VerticalLine struct {
	x      algebraic.Real
	index  int
	event  bool
	points []LinePoint
	counts [2]int
}

func newVerticalLine(x algebraic.Real, index int, event bool, pts []fiber.Point) *VerticalLine {
	l := &VerticalLine{x: x, index: index, event: event, points: make([]LinePoint, len(pts))}
	for j, pt := range pts {
		lp := LinePoint{lo: pt.Lo, hi: pt.Hi, on: pt.On, critical: pt.Critical, arc: [2]int{-1, -1}}
		for c := range 2 {
			if pt.On[c] {
				lp.arc[c] = l.counts[c]
				l.counts[c]++
			}
		}
		l.points[j] = lp
	}
	return l
}

// X returns the x-coordinate of the line. For an interval line this is the
// rational sample point of the interval.
func (l *VerticalLine) X() algebraic.Real {
	return l.x
}

// Index returns the event index for an event line and the interval index
// otherwise.
func (l *VerticalLine) Index() int {
	return l.index
}

// IsEvent reports whether the line lies over a pair event.
func (l *VerticalLine) IsEvent() bool {
	return l.event
}

// NumPoints returns the number of points on the line.
func (l *VerticalLine) NumPoints() int {
	return len(l.points)
}

// Point returns point j, counted from the bottom.
//
// Precondition: 0 <= j < NumPoints().
func (l *VerticalLine) Point(j int) LinePoint {
	if j < 0 || j >= len(l.points) {
		panic(fmt.Sprintf("algcurve: point index %d out of range [0, %d)", j, len(l.points)))
	}
	return l.points[j]
}

// Points returns a copy of all points, bottom to top.
func (l *VerticalLine) Points() []LinePoint {
	out := make([]LinePoint, len(l.points))
	copy(out, l.points)
	return out
}

// NumPointsOf returns the number of points of the given curve on the line.
func (l *VerticalLine) NumPointsOf(w Which) int {
	return l.counts[w.index()]
}

// PositionOf returns the index among all line points of the arc-th point of
// the given curve.
//
// Precondition: 0 <= arc < NumPointsOf(w).
func (l *VerticalLine) PositionOf(w Which, arc int) int {
	c := w.index()
	if arc < 0 || arc >= l.counts[c] {
		panic(fmt.Sprintf("algcurve: arc %d of %s out of range [0, %d)", arc, w, l.counts[c]))
	}
	for j, p := range l.points {
		if p.on[c] && p.arc[c] == arc {
			return j
		}
	}
	panic("algcurve: inconsistent vertical line")
}

// Equal reports whether two lines belong to the same event or interval and
// have the same topology. X-coordinates within an interval and the
// tightness of isolating intervals may differ.
func (l *VerticalLine) Equal(o *VerticalLine) bool {
	if l == o {
		return true
	}
	if l == nil || o == nil {
		return false
	}
	if l.event != o.event || l.index != o.index || len(l.points) != len(o.points) {
		return false
	}
	for j := range l.points {
		p, q := l.points[j], o.points[j]
		if p.on != q.on || p.critical != q.critical {
			return false
		}
	}
	return true
}

func (l *VerticalLine) String() string {
	var b strings.Builder
	kind := "interval"
	if l.event {
		kind = "event"
	}
	fmt.Fprintf(&b, "%s %d at x=%v: %d points", kind, l.index, l.x, len(l.points))
	for j, p := range l.points {
		fmt.Fprintf(&b, "\n  %d: %v", j, p)
	}
	return b.String()
}
