package algcurve

import (
	"testing"

	"github.com/gogpu/algcurve/algebraic"
)

// fakeRepo is an EventRepository over fixed rational events that records
// which lines were requested.
type fakeRepo struct {
	events []algebraic.Real
	lines  map[lineKey]*VerticalLine
	calls  []lineKey
}

func newFakeRepo(xs ...int64) *fakeRepo {
	r := &fakeRepo{lines: make(map[lineKey]*VerticalLine)}
	for _, x := range xs {
		r.events = append(r.events, algebraic.RealFromInt(x))
	}
	return r
}

func (r *fakeRepo) NumEvents() int                   { return len(r.events) }
func (r *fakeRepo) EventX(i int) algebraic.Real      { return r.events[i] }
func (r *fakeRepo) EventCorrelation(int) Correlation { return Correlation{} }
func (r *fakeRepo) Locate(x algebraic.Real) (int, bool) {
	return locate(r.events, x)
}

func (r *fakeRepo) line(k lineKey) *VerticalLine {
	r.calls = append(r.calls, k)
	if l, ok := r.lines[k]; ok {
		return l
	}
	l := &VerticalLine{index: k.index, event: k.event}
	r.lines[k] = l
	return l
}

func (r *fakeRepo) MaterializeAtEvent(i int) *VerticalLine {
	return r.line(lineKey{event: true, index: i})
}

func (r *fakeRepo) MaterializeAtInterval(i int) *VerticalLine {
	return r.line(lineKey{index: i})
}

func TestResolve(t *testing.T) {
	repo := newFakeRepo(-2, 0, 5)
	tests := []struct {
		name    string
		x       algebraic.Real
		perturb Sign
		index   int
		event   bool
	}{
		{"far left", algebraic.RealFromInt(-10), Zero, 0, false},
		{"far left perturbed", algebraic.RealFromInt(-10), Positive, 0, false},
		{"first event", algebraic.RealFromInt(-2), Zero, 0, true},
		{"left of first event", algebraic.RealFromInt(-2), Negative, 0, false},
		{"right of first event", algebraic.RealFromInt(-2), Positive, 1, false},
		{"between", algebraic.RealFromFrac(-1, 3), Negative, 1, false},
		{"middle event", algebraic.RealFromInt(0), Zero, 1, true},
		{"right of last event", algebraic.RealFromInt(5), Positive, 3, false},
		{"left of last event", algebraic.RealFromInt(5), Negative, 2, false},
		{"far right", algebraic.RealFromInt(100), Negative, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, ev := resolve(repo, tt.x, tt.perturb)
			if i != tt.index || ev != tt.event {
				t.Errorf("resolve(%v, %v) = (%d, %v), want (%d, %v)", tt.x, tt.perturb, i, ev, tt.index, tt.event)
			}
		})
	}
}

func TestResolveIrrational(t *testing.T) {
	roots := algebraic.RealRoots(algebraic.PolyFromInts(-2, 0, 1))
	repo := &fakeRepo{events: roots, lines: make(map[lineKey]*VerticalLine)}

	if i, ev := resolve(repo, algebraic.RealFromInt(1), Zero); i != 1 || ev {
		t.Errorf("resolve(1) = (%d, %v), want (1, false)", i, ev)
	}
	// sqrt(2) written as a root of x^4 - 4 is still event 1.
	sqrt2 := algebraic.RealRoots(algebraic.PolyFromInts(-4, 0, 0, 0, 1))[1]
	if i, ev := resolve(repo, sqrt2, Zero); i != 1 || !ev {
		t.Errorf("resolve(sqrt2) = (%d, %v), want (1, true)", i, ev)
	}
}

func TestLineAtDispatch(t *testing.T) {
	repo := newFakeRepo(0)

	lineAt(repo, algebraic.RealFromInt(0), Zero)
	lineAt(repo, algebraic.RealFromInt(0), Negative)
	lineAt(repo, algebraic.RealFromInt(0), Positive)
	lineAt(repo, algebraic.RealFromInt(3), Negative)

	want := []lineKey{{event: true, index: 0}, {index: 0}, {index: 1}, {index: 1}}
	if len(repo.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", repo.calls, want)
	}
	for i := range want {
		if repo.calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, repo.calls[i], want[i])
		}
	}
	if lineAt(repo, algebraic.RealFromInt(1), Zero) != lineAt(repo, algebraic.RealFromInt(2), Positive) {
		t.Error("points of one interval must share a line")
	}
}

func TestResolveInvalidSign(t *testing.T) {
	repo := newFakeRepo(0)
	mustPanic(t, "resolve with Sign(2)", func() { resolve(repo, algebraic.RealFromInt(0), Sign(2)) })
}
