package algcurve

import (
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"time"

	"github.com/gogpu/algcurve/algebraic"
	"github.com/gogpu/algcurve/bivariate"
	"github.com/gogpu/algcurve/internal/cache"
	"github.com/gogpu/algcurve/internal/fiber"
	"github.com/gogpu/algcurve/internal/parallel"
)

// EventRepository gives indexed access to the events of a curve pair and
// materializes vertical lines on demand.
//
// Lines returned for the same index are the same value on every call.
type EventRepository interface {
	// NumEvents returns the number of pair events.
	NumEvents() int
	// EventX returns the x-coordinate of event i.
	EventX(i int) algebraic.Real
	// EventCorrelation returns the per-curve events at event i.
	EventCorrelation(i int) Correlation
	// Locate returns the number of events strictly left of x and whether x
	// is itself an event, in which case the index is the event's index.
	Locate(x algebraic.Real) (index int, isEvent bool)
	// MaterializeAtEvent returns the line over event i, 0 <= i < NumEvents().
	MaterializeAtEvent(i int) *VerticalLine
	// MaterializeAtInterval returns the line over interval i,
	// 0 <= i <= NumEvents().
	MaterializeAtInterval(i int) *VerticalLine
}

// lineKey identifies a memoized vertical line.
type lineKey struct {
	event bool
	index int
}

func formatLineKey(k lineKey) string {
	if k.event {
		return "e" + strconv.Itoa(k.index)
	}
	return "i" + strconv.Itoa(k.index)
}

// CurvePair is the event model of two coprime curves. Its events are the
// sorted, distinct x-coordinates where either curve has an event or the two
// curves intersect. Interval i is the open x-range between events i-1 and i,
// with interval 0 unbounded to the left and interval NumEvents() unbounded to
// the right.
//
// CurvePair is safe for concurrent use. Vertical lines are computed lazily
// and cached.
type CurvePair struct {
	analyses [2]*CurveAnalysis
	events   []algebraic.Real
	corr     []Correlation
	samples  []*big.Rat
	width    *big.Rat
	workers  int

	lines *cache.Memo[lineKey, *VerticalLine]
}

var _ EventRepository = (*CurvePair)(nil)

// NewCurvePair computes the events of a pair of curve analyses. It returns
// ErrNotCoprime if the two curves share a component.
func NewCurvePair(ca0, ca1 *CurveAnalysis, opts ...PairOption) (*CurvePair, error) {
	if ca0 == nil || ca1 == nil {
		panic("algcurve: NewCurvePair with nil curve analysis")
	}
	o := defaultPairOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	res := bivariate.ResultantY(ca0.Polynomial(), ca1.Polynomial())
	if res.IsZero() {
		return nil, fmt.Errorf("%w: %v and %v", ErrNotCoprime, ca0.Polynomial(), ca1.Polynomial())
	}

	events := make([]algebraic.Real, 0, ca0.NumEvents()+ca1.NumEvents()+res.Degree())
	events = append(events, ca0.events...)
	events = append(events, ca1.events...)
	if res.Degree() > 0 {
		events = append(events, algebraic.RealRoots(res)...)
	}
	slices.SortFunc(events, algebraic.Compare)
	events = slices.CompactFunc(events, algebraic.Equal)

	cp := &CurvePair{
		analyses: [2]*CurveAnalysis{ca0, ca1},
		events:   events,
		corr:     make([]Correlation, len(events)),
		samples:  make([]*big.Rat, len(events)+1),
		width:    new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), o.precision)),
		workers:  o.workers,
		lines:    cache.NewMemo[lineKey, *VerticalLine](formatLineKey),
	}
	for i, x := range events {
		for c, ca := range cp.analyses {
			if k, ok := ca.Locate(x); ok {
				cp.corr[i][c] = EventAt(k)
			}
		}
	}
	for i := range cp.samples {
		cp.samples[i] = cp.sample(i)
	}

	Logger().Debug("algcurve: curve pair analysed",
		"curve0", ca0.Polynomial().String(),
		"curve1", ca1.Polynomial().String(),
		"events", len(events),
		"elapsed", time.Since(start))
	return cp, nil
}

// sample picks a rational x strictly inside interval i.
func (cp *CurvePair) sample(i int) *big.Rat {
	n := len(cp.events)
	switch {
	case n == 0:
		return new(big.Rat)
	case i == 0:
		return algebraic.RationalBelow(cp.events[0])
	case i == n:
		return algebraic.RationalAbove(cp.events[n-1])
	default:
		return algebraic.RationalBetween(cp.events[i-1], cp.events[i])
	}
}

// Curve returns the analysis of the selected curve.
func (cp *CurvePair) Curve(w Which) *CurveAnalysis {
	return cp.analyses[w.index()]
}

// NumEvents returns the number of pair events.
func (cp *CurvePair) NumEvents() int {
	return len(cp.events)
}

func (cp *CurvePair) checkEvent(i int) {
	if i < 0 || i >= len(cp.events) {
		panic(fmt.Sprintf("algcurve: event index %d out of range [0, %d)", i, len(cp.events)))
	}
}

func (cp *CurvePair) checkInterval(i int) {
	if i < 0 || i > len(cp.events) {
		panic(fmt.Sprintf("algcurve: interval index %d out of range [0, %d]", i, len(cp.events)))
	}
}

// EventX returns the x-coordinate of event i.
func (cp *CurvePair) EventX(i int) algebraic.Real {
	cp.checkEvent(i)
	return cp.events[i]
}

// EventCorrelation returns the per-curve events at event i.
func (cp *CurvePair) EventCorrelation(i int) Correlation {
	cp.checkEvent(i)
	return cp.corr[i]
}

// IntervalX returns the rational sample point of interval i.
func (cp *CurvePair) IntervalX(i int) *big.Rat {
	cp.checkInterval(i)
	return new(big.Rat).Set(cp.samples[i])
}

// Locate returns the number of events strictly left of x and whether x is
// itself an event.
func (cp *CurvePair) Locate(x algebraic.Real) (int, bool) {
	return locate(cp.events, x)
}

// MaterializeAtEvent returns the line over event i.
func (cp *CurvePair) MaterializeAtEvent(i int) *VerticalLine {
	cp.checkEvent(i)
	return cp.lines.GetOrCreate(lineKey{event: true, index: i}, func() *VerticalLine {
		return cp.materialize(cp.events[i], i, true)
	})
}

// MaterializeAtInterval returns the line over the sample point of interval i.
func (cp *CurvePair) MaterializeAtInterval(i int) *VerticalLine {
	cp.checkInterval(i)
	return cp.lines.GetOrCreate(lineKey{index: i}, func() *VerticalLine {
		return cp.materialize(algebraic.RealFromRat(cp.samples[i]), i, false)
	})
}

// SliceAt computes the line over an arbitrary x without caching. Its
// topology equals that of the line of the event or interval containing x;
// only the x-coordinate and the point intervals differ.
func (cp *CurvePair) SliceAt(x algebraic.Real) *VerticalLine {
	i, event := cp.Locate(x)
	if event {
		x = cp.events[i]
	}
	return cp.materialize(x, i, event)
}

// MaterializeAll computes every event and interval line in parallel.
func (cp *CurvePair) MaterializeAll() {
	pool := parallel.NewWorkerPool(cp.workers)
	defer pool.Close()

	n := len(cp.events)
	pool.For(2*n+1, func(k int) {
		if k%2 == 0 {
			cp.MaterializeAtInterval(k / 2)
		} else {
			cp.MaterializeAtEvent(k / 2)
		}
	})
}

// CacheStats describes the vertical line cache of a CurvePair.
type CacheStats struct {
	Lines  int    // materialized lines
	Hits   uint64 // requests answered from the cache
	Misses uint64 // requests that computed a line
}

// CacheStats reports the state of the vertical line cache.
func (cp *CurvePair) CacheStats() CacheStats {
	s := cp.lines.Stats()
	return CacheStats{Lines: s.Len, Hits: s.Hits, Misses: s.Misses}
}

func (cp *CurvePair) materialize(x algebraic.Real, index int, event bool) *VerticalLine {
	start := time.Now()
	curves := [2]bivariate.Poly{cp.analyses[0].Polynomial(), cp.analyses[1].Polynomial()}
	line := newVerticalLine(x, index, event, fiber.Line(x, curves, cp.width))
	Logger().Debug("algcurve: vertical line materialized",
		"event", event,
		"index", index,
		"x", x.String(),
		"points", line.NumPoints(),
		"elapsed", time.Since(start))
	return line
}
