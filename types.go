package algcurve

import "strconv"

// Which selects one curve of a pair.
type Which uint8

const (
	// Curve0 is the first curve of a pair.
	Curve0 Which = iota
	// Curve1 is the second curve of a pair.
	Curve1
)

// index returns 0 or 1 and panics for any other value.
func (w Which) index() int {
	switch w {
	case Curve0:
		return 0
	case Curve1:
		return 1
	}
	panic("algcurve: invalid curve selector " + strconv.Itoa(int(w)))
}

// Other returns the opposite curve.
func (w Which) Other() Which {
	return Which(1 - w.index())
}

func (w Which) String() string {
	switch w {
	case Curve0:
		return "curve0"
	case Curve1:
		return "curve1"
	}
	return "Which(" + strconv.Itoa(int(w)) + ")"
}

// Sign is a symbolic perturbation of a query abscissa: Negative selects
// the position infinitesimally left of x, Positive the position
// infinitesimally right of it.
type Sign int8

// Perturbation values.
const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Zero:
		return "zero"
	case Positive:
		return "positive"
	}
	return "Sign(" + strconv.Itoa(int(s)) + ")"
}

// EventRef refers to an event of a single curve, or to no event.
// The zero value is NoEvent.
type EventRef struct {
	index int
	valid bool
}

// NoEvent is the EventRef of a curve that has no event at a given
// x-coordinate.
var NoEvent = EventRef{}

// EventAt returns a reference to event i of a curve.
func EventAt(i int) EventRef {
	if i < 0 {
		panic("algcurve: negative event index")
	}
	return EventRef{index: i, valid: true}
}

// Index returns the referenced event index and true, or 0 and false for
// NoEvent.
func (r EventRef) Index() (int, bool) {
	return r.index, r.valid
}

// IsNone reports whether r is NoEvent.
func (r EventRef) IsNone() bool {
	return !r.valid
}

func (r EventRef) String() string {
	if !r.valid {
		return "none"
	}
	return strconv.Itoa(r.index)
}

// Correlation relates one pair event to the events of the two curves at the
// same x-coordinate.
type Correlation [2]EventRef

// Of returns the entry for the given curve.
func (c Correlation) Of(w Which) EventRef {
	return c[w.index()]
}

// IsIntersectionOnly reports whether neither curve has an event of its own
// at this x-coordinate, so the pair event stems from the curves meeting.
func (c Correlation) IsIntersectionOnly() bool {
	return c[0].IsNone() && c[1].IsNone()
}
