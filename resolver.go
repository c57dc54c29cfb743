package algcurve

import "github.com/gogpu/algcurve/algebraic"

// locator is the part of an EventRepository needed to resolve positions.
type locator interface {
	Locate(x algebraic.Real) (index int, isEvent bool)
}

// resolve maps an x-coordinate and a perturbation to the event or interval
// that holds the vertical line at that position.
//
// If x is event k, Zero selects the event itself, Negative the interval to
// its left (k) and Positive the interval to its right (k+1). Otherwise x
// lies in interval k and the perturbation is ignored.
func resolve(repo locator, x algebraic.Real, perturb Sign) (index int, event bool) {
	k, isEvent := repo.Locate(x)
	if !isEvent {
		return k, false
	}
	switch perturb {
	case Negative:
		return k, false
	case Positive:
		return k + 1, false
	case Zero:
		return k, true
	}
	panic("algcurve: invalid perturbation " + perturb.String())
}

// lineAt materializes the line selected by resolve.
func lineAt(repo EventRepository, x algebraic.Real, perturb Sign) *VerticalLine {
	i, event := resolve(repo, x, perturb)
	if event {
		return repo.MaterializeAtEvent(i)
	}
	return repo.MaterializeAtInterval(i)
}
